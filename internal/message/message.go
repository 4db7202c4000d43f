package message

// DefaultColor is used for any segment added without an explicit color.
const DefaultColor = "silver"

// Common colors used by system text.
const (
	ColorWhite  = "white"
	ColorYellow = "yellow"
	ColorOlive  = "olive"
	ColorMaroon = "maroon"
)

// Palette is the fixed set of colors a participant may choose for their
// name during onboarding. Order matters: it is the order the color
// selection screen lists them in.
var Palette = []string{
	"red", "maroon",
	"yellow", "olive",
	"lime", "green",
	"aqua", "teal",
	"blue", "navy",
	"fuchsia", "purple",
}

// PaletteContains reports whether color is a selectable name color.
func PaletteContains(color string) bool {
	for _, c := range Palette {
		if c == color {
			return true
		}
	}
	return false
}

type segment struct {
	text  string
	color string
}

// Message is an ordered sequence of colored text segments. It is built up
// with Add/AddColored and serialized by an Encoder when flushed to a
// connection. A Message is not safe for concurrent use.
type Message struct {
	segments []segment
}

// New creates a message with a single segment in the default color.
func New(text string) *Message {
	return NewColored(text, DefaultColor)
}

// NewColored creates a message with a single segment in the given color.
func NewColored(text, color string) *Message {
	return &Message{segments: []segment{{text: text, color: color}}}
}

// Add appends a segment in the default color and returns the message for
// chaining.
func (m *Message) Add(text string) *Message {
	return m.AddColored(text, DefaultColor)
}

// AddColored appends a segment in the given color and returns the message
// for chaining.
func (m *Message) AddColored(text, color string) *Message {
	m.segments = append(m.segments, segment{text: text, color: color})
	return m
}
