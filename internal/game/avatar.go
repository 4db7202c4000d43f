package game

import (
	"strings"

	"github.com/pixil98/go-chat/internal/message"
)

// Conn is the transport's per-connection send primitive. A single Send
// carries everything the avatar accumulated during one inbound event.
type Conn interface {
	Send(data []byte) error
}

// MaxNameLength is the maximum avatar name length in bytes.
const MaxNameLength = 16

// invalidNameCharacters are the structural characters a name may not
// contain: ASCII and full-width whitespace plus command-syntax
// punctuation.
const invalidNameCharacters = " 　!\"#$%&'()-=^~\\|@`[{;+:*]},<.>/?_"

// CheckName validates a candidate avatar name against the character and
// length rules. Uniqueness is the registry's concern, not CheckName's.
func CheckName(name string) error {
	if strings.ContainsAny(name, invalidNameCharacters) {
		return ErrNameInvalidCharacter
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// Avatar is a connected user's server-side identity: the connection
// handle, display name and color, and the outbound message buffer that
// accumulates between flushes.
type Avatar struct {
	handle string
	conn   Conn
	enc    message.Encoder

	name  string
	color string

	buffer []*message.Message
}

func NewAvatar(handle string, conn Conn, enc message.Encoder) *Avatar {
	return &Avatar{
		handle: handle,
		conn:   conn,
		enc:    enc,
		color:  message.DefaultColor,
	}
}

// Handle returns the opaque connection handle the avatar is keyed by.
func (a *Avatar) Handle() string {
	return a.handle
}

func (a *Avatar) Name() string {
	return a.name
}

func (a *Avatar) NameColor() string {
	return a.color
}

// Rename sets the avatar's display name. The color is kept.
func (a *Avatar) Rename(name string) {
	a.name = name
}

// SetNameColor changes the color the avatar's name renders in.
func (a *Avatar) SetNameColor(color string) {
	a.color = color
}

// Send appends a message to the outbound buffer. Nothing hits the wire
// until Flush runs.
func (a *Avatar) Send(m *message.Message) {
	a.buffer = append(a.buffer, m)
}

// Flush serializes the buffered messages plus the prompt into a single
// wire write and clears the buffer. An empty buffer writes nothing, so a
// quiet avatar never receives a bare prompt.
func (a *Avatar) Flush(prompt *message.Message) error {
	if len(a.buffer) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString(a.enc.LineBreak())
	for _, m := range a.buffer {
		b.WriteString(a.enc.Encode(m))
	}
	b.WriteString(a.enc.Encode(prompt))
	a.buffer = nil

	return a.conn.Send([]byte(b.String()))
}
