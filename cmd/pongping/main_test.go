package main

import (
	"io"
	"testing"
	"time"

	"github.com/vovakirdan/pongping/internal/storage"
)

func TestWinner(t *testing.T) {
	ended := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		name string
		s    storage.SessionEntry
		want string
	}{
		{"open", storage.SessionEntry{Score1: 100}, "in progress"},
		{"p1", storage.SessionEntry{Score1: 200, Score2: 100, EndedAt: ended}, "P1"},
		{"p2", storage.SessionEntry{Score1: 0, Score2: 100, EndedAt: ended}, "P2"},
		{"draw", storage.SessionEntry{EndedAt: ended}, "draw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := winner(tt.s); got != tt.want {
				t.Errorf("winner() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	old := flagLogLevel
	t.Cleanup(func() { flagLogLevel = old })

	flagLogLevel = "debug"
	if _, err := newLogger(io.Discard, "test"); err != nil {
		t.Errorf("debug should be a valid level: %v", err)
	}

	flagLogLevel = "loud"
	if _, err := newLogger(io.Discard, "test"); err == nil {
		t.Error("unknown level should fail")
	}
}
