package commands

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestWhoCommand_Roster(t *testing.T) {
	w := newTestWorld(t)
	c := &WhoCommand{world: w}
	tom, tomConn := join(t, w, "square", "h1", "Tom", "red")
	_, eveConn := join(t, w, "square", "h2", "Eve", "blue")

	if err := c.Execute(tom, "who"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := drain(t, tom, tomConn)
	// Names are column-padded and rendered in their owners' colors.
	if !strings.Contains(out, "\x1b[91mTom     \x1b[0m") {
		t.Errorf("expected padded Tom in red, got %q", out)
	}
	if !strings.Contains(out, "\x1b[94mEve     \x1b[0m") {
		t.Errorf("expected padded Eve in blue, got %q", out)
	}
	if !strings.Contains(out, "Players here:") {
		t.Errorf("expected header, got %q", out)
	}

	// Requester-only
	testutil.AssertEqual(t, "eve writes", len(eveConn.writes), 0)
}

func TestWhoCommand_RowBreaks(t *testing.T) {
	w := newTestWorld(t)
	c := &WhoCommand{world: w}

	names := []string{"Ann", "Ben", "Cat", "Dan", "Eli"}
	tom, tomConn := join(t, w, "square", "h0", "Tom", "red")
	for i, n := range names {
		join(t, w, "square", string(rune('a'+i)), n, "green")
	}

	if err := c.Execute(tom, "who"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := drain(t, tom, tomConn)
	// 6 occupants, break after every 4th name: at least one interior break
	rendered := strings.ReplaceAll(out, "\x1b[0m", "")
	rendered = strings.ReplaceAll(rendered, "\x1b[32m", "")
	rendered = strings.ReplaceAll(rendered, "\x1b[91m", "")
	rendered = strings.ReplaceAll(rendered, "\x1b[37m", "")
	rendered = strings.ReplaceAll(rendered, "\x1b[97m", "")
	lines := strings.Split(rendered, "\n")
	var rosterLines int
	for _, l := range lines {
		if strings.Contains(l, "Ann") || strings.Contains(l, "Eli") {
			rosterLines++
		}
	}
	testutil.AssertEqual(t, "roster spans two lines", rosterLines, 2)
}
