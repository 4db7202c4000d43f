package game

import (
	"strings"
	"testing"

	"github.com/pixil98/go-chat/internal/message"
	"github.com/pixil98/go-testutil"
)

// testConn records every wire write.
type testConn struct {
	writes []string
}

func (c *testConn) Send(data []byte) error {
	c.writes = append(c.writes, string(data))
	return nil
}

func newTestAvatar(handle, name string) (*Avatar, *testConn) {
	conn := &testConn{}
	a := NewAvatar(handle, conn, message.NewHTMLEncoder())
	a.Rename(name)
	return a, conn
}

func TestCheckName(t *testing.T) {
	tests := map[string]struct {
		name   string
		expErr error
	}{
		"plain name":            {name: "Tom"},
		"sixteen bytes exactly": {name: strings.Repeat("a", 16)},
		"seventeen bytes":       {name: strings.Repeat("a", 17), expErr: ErrNameTooLong},
		"space":                 {name: "Tom Bombadil", expErr: ErrNameInvalidCharacter},
		"full-width space":      {name: "Tom　", expErr: ErrNameInvalidCharacter},
		"punctuation":           {name: "Tom!", expErr: ErrNameInvalidCharacter},
		"bracket":               {name: "[Tom]", expErr: ErrNameInvalidCharacter},
		"underscore":            {name: "Tom_2", expErr: ErrNameInvalidCharacter},
		"empty name passes":     {name: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := CheckName(tt.name)
			if tt.expErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err != tt.expErr {
				t.Fatalf("expected %v, got %v", tt.expErr, err)
			}
		})
	}
}

func TestAvatarFlush(t *testing.T) {
	prompt := message.NewColored("> ", message.ColorWhite)

	t.Run("empty buffer writes nothing", func(t *testing.T) {
		a, conn := newTestAvatar("h1", "Tom")
		if err := a.Flush(prompt); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testutil.AssertEqual(t, "writes", len(conn.writes), 0)
	})

	t.Run("buffered messages batch into one write", func(t *testing.T) {
		a, conn := newTestAvatar("h1", "Tom")
		a.Send(message.NewColored("one\n", "white"))
		a.Send(message.NewColored("two\n", "olive"))
		if err := a.Flush(prompt); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		testutil.AssertEqual(t, "writes", len(conn.writes), 1)
		exp := "<br>" +
			"<font color=white>one<br></font>" +
			"<font color=olive>two<br></font>" +
			"<font color=white>>&nbsp;</font>"
		testutil.AssertEqual(t, "payload", conn.writes[0], exp)
	})

	t.Run("flush clears the buffer", func(t *testing.T) {
		a, conn := newTestAvatar("h1", "Tom")
		a.Send(message.New("hi"))
		_ = a.Flush(prompt)
		_ = a.Flush(prompt)
		testutil.AssertEqual(t, "writes", len(conn.writes), 1)
	})
}

func TestAvatarIdentity(t *testing.T) {
	a, _ := newTestAvatar("handle-1", "")

	testutil.AssertEqual(t, "handle", a.Handle(), "handle-1")
	testutil.AssertEqual(t, "default color", a.NameColor(), message.DefaultColor)

	a.Rename("Tom")
	a.SetNameColor("red")
	testutil.AssertEqual(t, "name", a.Name(), "Tom")
	testutil.AssertEqual(t, "color", a.NameColor(), "red")

	// Rename keeps the chosen color
	a.Rename("Tim")
	testutil.AssertEqual(t, "color after rename", a.NameColor(), "red")
}
