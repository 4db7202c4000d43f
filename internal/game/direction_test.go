package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestDirectionReverseInvolution(t *testing.T) {
	for _, d := range Directions {
		testutil.AssertEqual(t, string(d), d.Reverse().Reverse(), d)
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]struct {
		in    string
		expOk bool
		exp   Direction
	}{
		"north":           {in: "north", expOk: true, exp: North},
		"down":            {in: "down", expOk: true, exp: Down},
		"unknown token":   {in: "sideways", expOk: false},
		"empty":           {in: "", expOk: false},
		"case sensitive":  {in: "North", expOk: false},
		"partial matches": {in: "nor", expOk: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d, ok := ParseDirection(tt.in)
			testutil.AssertEqual(t, "ok", ok, tt.expOk)
			if tt.expOk {
				testutil.AssertEqual(t, "direction", d, tt.exp)
			}
		})
	}
}
