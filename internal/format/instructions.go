package format

import "strings"

// Align is the horizontal alignment of a text instruction.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignJustify
)

// Color is an RGB triple.
type Color struct{ R, G, B int }

var (
	Black  = Color{0, 0, 0}
	Accent = Color{0x00, 0x7b, 0xff}
	Muted  = Color{0x66, 0x66, 0x66}
	Rule   = Color{0xcc, 0xcc, 0xcc}
)

// Instruction describes how to draw one report line. Spacing is in
// multiples of the current line height.
type Instruction struct {
	Kind        Kind
	Text        string
	FontSize    float64
	Color       Color
	Indent      float64
	Marker      string
	Underline   bool
	Align       Align
	SpaceBefore float64
	SpaceAfter  float64
}

const (
	HeadingSize  = 16.0
	BodySize     = 10.0
	BulletIndent = 20.0
	BulletMarker = "•"
)

// Instructions classifies text line by line and returns one drawing
// instruction per non-blank line. Unlike HTML, lines are never grouped.
func Instructions(text string) []Instruction {
	var out []Instruction
	for _, line := range Parse(text) {
		switch line.Kind {
		case Heading:
			out = append(out, Instruction{
				Kind:        Heading,
				Text:        strings.ToUpper(line.Text),
				FontSize:    HeadingSize,
				Color:       Accent,
				Underline:   true,
				Align:       AlignLeft,
				SpaceBefore: 0.7,
				SpaceAfter:  0.3,
			})
		case Bullet:
			out = append(out, Instruction{
				Kind:     Bullet,
				Text:     line.Text,
				FontSize: BodySize,
				Color:    Black,
				Indent:   BulletIndent,
				Marker:   BulletMarker,
				Align:    AlignLeft,
			})
		case Paragraph:
			out = append(out, Instruction{
				Kind:       Paragraph,
				Text:       line.Text,
				FontSize:   BodySize,
				Color:      Black,
				Align:      AlignJustify,
				SpaceAfter: 0.2,
			})
		}
	}
	return out
}
