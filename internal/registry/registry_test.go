package registry

import (
	"context"
	"testing"

	"github.com/vovakirdan/pongping/internal/config"
	"github.com/vovakirdan/pongping/internal/platform"
)

type stubBackend struct{ id string }

func (s stubBackend) ID() string    { return s.id }
func (s stubBackend) Title() string { return "Stub " + s.id }
func (s stubBackend) Run(context.Context, *platform.Runner, config.PongConfig) error {
	return nil
}

func TestRegisterCreateList(t *testing.T) {
	Register("zz-test", func() Backend { return stubBackend{id: "zz-test"} })
	Register("aa-test", func() Backend { return stubBackend{id: "aa-test"} })

	if !Exists("zz-test") || !Exists("aa-test") {
		t.Fatal("registered backends should exist")
	}
	if Exists("missing") {
		t.Error("unregistered backend should not exist")
	}

	b, err := Create("aa-test")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if b.ID() != "aa-test" {
		t.Errorf("Create() returned %q", b.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of an unknown backend should fail")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %v", list)
		}
	}
	found := false
	for _, info := range list {
		if info.ID == "aa-test" && info.Title == "Stub aa-test" {
			found = true
		}
	}
	if !found {
		t.Errorf("List() should include titles, got %v", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", func() Backend { return stubBackend{id: "dup-test"} })

	defer func() {
		if recover() == nil {
			t.Error("registering the same ID twice should panic")
		}
	}()
	Register("dup-test", func() Backend { return stubBackend{id: "dup-test"} })
}
