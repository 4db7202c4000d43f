package listener

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-chat/internal/game"
	"github.com/pixil98/go-chat/internal/message"
)

// fakeCore records the transport events it is driven with.
type fakeCore struct {
	connects    []string
	received    []string
	disconnects []string

	conn       game.Conn
	connectErr error
}

func (c *fakeCore) Connect(handle string, conn game.Conn, enc message.Encoder) error {
	if c.connectErr != nil {
		return c.connectErr
	}
	c.connects = append(c.connects, handle)
	c.conn = conn
	return nil
}

func (c *fakeCore) Receive(handle, text string) error {
	c.received = append(c.received, text)
	return nil
}

func (c *fakeCore) Disconnect(handle string) error {
	c.disconnects = append(c.disconnects, handle)
	return nil
}

type pipeConn struct {
	io.Reader
	io.Writer
}

func TestAcceptConnection(t *testing.T) {
	core := &fakeCore{}
	m := NewConnectionManager(core, message.NewANSIEncoder())
	out := &bytes.Buffer{}
	conn := &pipeConn{Reader: strings.NewReader("hello\r\n  world  \n"), Writer: out}

	m.AcceptConnection(context.Background(), conn)

	testutil.AssertEqual(t, "connects", len(core.connects), 1)
	if core.connects[0] == "" {
		t.Error("expected a non-empty handle")
	}

	testutil.AssertEqual(t, "lines", len(core.received), 2)
	testutil.AssertEqual(t, "first line", core.received[0], "hello")
	testutil.AssertEqual(t, "trimmed line", core.received[1], "world")

	testutil.AssertEqual(t, "disconnects", len(core.disconnects), 1)
	testutil.AssertEqual(t, "same handle", core.disconnects[0], core.connects[0])

	// The registered conn writes through to the transport.
	if err := core.conn.Send([]byte("hi")); err != nil {
		t.Fatalf("sending: %v", err)
	}
	testutil.AssertEqual(t, "wire write", out.String(), "hi")
}

func TestAcceptConnection_ConnectFailure(t *testing.T) {
	core := &fakeCore{connectErr: errors.New("full")}
	m := NewConnectionManager(core, message.NewANSIEncoder())
	conn := &pipeConn{Reader: strings.NewReader("hello\n"), Writer: &bytes.Buffer{}}

	m.AcceptConnection(context.Background(), conn)

	testutil.AssertEqual(t, "no lines", len(core.received), 0)
	testutil.AssertEqual(t, "no disconnects", len(core.disconnects), 0)
}

func TestCRLFReadWriter(t *testing.T) {
	tests := map[string]struct {
		in  string
		exp string
	}{
		"crlf to lf":   {in: "a\r\nb", exp: "a\nb"},
		"bare cr":      {in: "a\rb", exp: "a\nb"},
		"already bare": {in: "a\nb", exp: "a\nb"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rw := newCRLFReadWriter(&pipeConn{Reader: strings.NewReader(tt.in), Writer: &bytes.Buffer{}})
			got, err := io.ReadAll(rw)
			if err != nil {
				t.Fatalf("reading: %v", err)
			}
			testutil.AssertEqual(t, "normalized", string(got), tt.exp)
		})
	}

	out := &bytes.Buffer{}
	rw := newCRLFReadWriter(&pipeConn{Reader: strings.NewReader(""), Writer: out})
	n, err := rw.Write([]byte("a\nb\n"))
	if err != nil {
		t.Fatalf("writing: %v", err)
	}
	testutil.AssertEqual(t, "reported length", n, 4)
	testutil.AssertEqual(t, "expanded", out.String(), "a\r\nb\r\n")
}
