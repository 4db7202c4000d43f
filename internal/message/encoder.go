package message

import (
	"strings"
)

// Encoder serializes a Message into the bytes a particular transport
// understands. Segments are concatenated in insertion order with no
// separator.
type Encoder interface {
	Encode(m *Message) string
	// LineBreak returns the encoder's representation of a bare line break,
	// used as the leading separator of a flushed batch.
	LineBreak() string
}

// HTMLEncoder renders messages in the markup the browser client expects:
// each segment becomes a font span carrying its color, literal spaces are
// replaced with a non-breaking-space escape, and newlines become break
// tags. The output must stay byte-compatible with existing clients.
type HTMLEncoder struct{}

func NewHTMLEncoder() *HTMLEncoder {
	return &HTMLEncoder{}
}

func (e *HTMLEncoder) Encode(m *Message) string {
	var b strings.Builder
	for _, s := range m.segments {
		b.WriteString("<font color=")
		b.WriteString(s.color)
		b.WriteString(">")
		b.WriteString(strings.ReplaceAll(s.text, " ", "&nbsp;"))
		b.WriteString("</font>")
	}
	return strings.ReplaceAll(b.String(), "\n", "<br>")
}

func (e *HTMLEncoder) LineBreak() string {
	return "<br>"
}

// ansiCodes maps the palette's HTML color names onto ANSI SGR codes for
// terminal transports (telnet, ssh).
var ansiCodes = map[string]string{
	"black":   "30",
	"maroon":  "31",
	"green":   "32",
	"olive":   "33",
	"navy":    "34",
	"purple":  "35",
	"teal":    "36",
	"silver":  "37",
	"gray":    "90",
	"red":     "91",
	"lime":    "92",
	"yellow":  "93",
	"blue":    "94",
	"fuchsia": "95",
	"aqua":    "96",
	"white":   "97",
}

// ANSIEncoder renders messages as ANSI-colored terminal text. Text content
// passes through unmodified.
type ANSIEncoder struct{}

func NewANSIEncoder() *ANSIEncoder {
	return &ANSIEncoder{}
}

func (e *ANSIEncoder) Encode(m *Message) string {
	var b strings.Builder
	for _, s := range m.segments {
		if s.text == "" {
			continue
		}
		code, ok := ansiCodes[s.color]
		if !ok {
			code = ansiCodes[DefaultColor]
		}
		b.WriteString("\x1b[")
		b.WriteString(code)
		b.WriteString("m")
		b.WriteString(s.text)
		b.WriteString("\x1b[0m")
	}
	return b.String()
}

func (e *ANSIEncoder) LineBreak() string {
	return "\n"
}
