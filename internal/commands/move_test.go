package commands

import (
	"errors"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestMoveCommand_Matches(t *testing.T) {
	c := &MoveCommand{}

	tests := map[string]struct {
		in  string
		exp bool
	}{
		"move with direction":    {in: "move east", exp: true},
		"move alone":             {in: "move", exp: true},
		"bare direction":         {in: "east", exp: true},
		"bare direction cased":   {in: "East", exp: true},
		"direction with trailer": {in: "east side story", exp: false},
		"chatter":                {in: "hello", exp: false},
		"empty":                  {in: "", exp: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "matches", c.Matches(tt.in), tt.exp)
		})
	}
}

func TestMoveCommand_NoExit(t *testing.T) {
	w := newTestWorld(t)
	c := &MoveCommand{world: w}
	tom, tomConn := join(t, w, "square", "h1", "Tom", "red")
	_, eveConn := join(t, w, "square", "h2", "Eve", "blue")

	err := c.Execute(tom, "move north")

	var ue *UserError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UserError, got %v", err)
	}
	testutil.AssertEqual(t, "message", ue.Message, "There is no path that way.")

	// Membership unchanged, nobody hears anything
	testutil.AssertEqual(t, "room", w.FindByAvatar(tom).Id(), "square")
	testutil.AssertEqual(t, "mover buffer", len(tomConn.writes), 0)
	if out := drain(t, tom, tomConn); out != "" {
		t.Errorf("mover should have nothing buffered, got %q", out)
	}
	testutil.AssertEqual(t, "bystander writes", len(eveConn.writes), 0)
}

func TestMoveCommand_BadDirection(t *testing.T) {
	w := newTestWorld(t)
	c := &MoveCommand{world: w}
	tom, _ := join(t, w, "square", "h1", "Tom", "red")

	for _, in := range []string{"move", "move sideways"} {
		err := c.Execute(tom, in)
		var ue *UserError
		if !errors.As(err, &ue) {
			t.Fatalf("%q: expected UserError, got %v", in, err)
		}
		testutil.AssertEqual(t, "message", ue.Message, "Specify a direction.")
	}
}

func TestMoveCommand_Success(t *testing.T) {
	w := newTestWorld(t)
	c := &MoveCommand{world: w}
	tom, tomConn := join(t, w, "square", "h1", "Tom", "red")
	stay, stayConn := join(t, w, "square", "h2", "Stay", "blue")
	dest, destConn := join(t, w, "cave", "h3", "Dee", "lime")

	if err := c.Execute(tom, "move east"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "room", w.FindByAvatar(tom).Id(), "cave")

	// Mover sees the new room, not the arrival notice
	out := drain(t, tom, tomConn)
	if !strings.Contains(out, "[Cave Entrance]") {
		t.Errorf("expected look of destination, got %q", out)
	}
	if strings.Contains(out, "arrives") {
		t.Errorf("mover should not see their own arrival, got %q", out)
	}

	// Origin room hears the departure
	outStay := drain(t, stay, stayConn)
	if !strings.Contains(outStay, "leaves east") {
		t.Errorf("expected departure notice, got %q", outStay)
	}

	// Destination room hears the arrival
	outDest := drain(t, dest, destConn)
	if !strings.Contains(outDest, "arrives") {
		t.Errorf("expected arrival notice, got %q", outDest)
	}
}

func TestMoveCommand_BareDirectionShorthand(t *testing.T) {
	w := newTestWorld(t)
	c := &MoveCommand{world: w}
	tom, _ := join(t, w, "square", "h1", "Tom", "red")

	if err := c.Execute(tom, "east"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "room", w.FindByAvatar(tom).Id(), "cave")
}
