package commands

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestSayCommand_BroadcastsToRoom(t *testing.T) {
	w := newTestWorld(t)
	c := &SayCommand{world: w}
	tom, tomConn := join(t, w, "square", "h1", "Tom", "red")
	eve, eveConn := join(t, w, "square", "h2", "Eve", "blue")
	_, farConn := join(t, w, "cave", "h3", "Far", "lime")

	if err := c.Execute(tom, "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both occupants receive the line; the speaker's own copy arrives via
	// the room broadcast, once.
	expLine := "\x1b[91mTom\x1b[0m\x1b[37m: \x1b[0m\x1b[37mhello\n\x1b[0m"
	for name, tc := range map[string]struct {
		out string
	}{
		"speaker":  {out: drain(t, tom, tomConn)},
		"listener": {out: drain(t, eve, eveConn)},
	} {
		if !strings.Contains(tc.out, expLine) {
			t.Errorf("%s: expected %q in %q", name, expLine, tc.out)
		}
		if strings.Count(tc.out, "hello") != 1 {
			t.Errorf("%s: line should appear exactly once, got %q", name, tc.out)
		}
	}

	// Other rooms hear nothing
	testutil.AssertEqual(t, "far writes", len(farConn.writes), 0)
}

func TestSayCommand_EmptyInput(t *testing.T) {
	w := newTestWorld(t)
	c := &SayCommand{world: w}
	tom, tomConn := join(t, w, "square", "h1", "Tom", "red")

	testutil.AssertEqual(t, "matches empty", c.Matches(""), false)

	if err := c.Execute(tom, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "writes", len(tomConn.writes), 0)
}
