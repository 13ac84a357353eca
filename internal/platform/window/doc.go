// Package window runs the game in a native window through Ebitengine.
//
// The backend needs cgo and the platform graphics libraries, so it is only
// compiled with the ebiten build tag:
//
//	go build -tags ebiten ./cmd/pongping
//
// Without the tag this package is empty and the "window" backend is not
// registered.
package window
