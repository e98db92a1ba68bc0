// Package format turns the Markdown subset produced by the report generator
// into HTML fragments for the web page and drawing instructions for the PDF.
//
// The dialect is line based: "## " starts a heading, "- " or "* " a bullet,
// any other non-blank line is paragraph text. Both renderings share Classify.
package format

import "strings"

// Kind is the class of a single report line.
type Kind int

const (
	Blank Kind = iota
	Heading
	Bullet
	Paragraph
)

func (k Kind) String() string {
	switch k {
	case Heading:
		return "heading"
	case Bullet:
		return "bullet"
	case Paragraph:
		return "paragraph"
	default:
		return "blank"
	}
}

// Line is a classified report line with its marker removed.
type Line struct {
	Kind Kind
	Text string
}

const (
	headingPrefix = "## "
	dashPrefix    = "- "
	starPrefix    = "* "
)

// Classify maps one line to its kind. Prefixes are matched at the start of
// the line only; indented markers are paragraph text.
func Classify(line string) Line {
	line = strings.TrimRight(line, "\r")
	switch {
	case strings.HasPrefix(line, headingPrefix):
		return Line{Kind: Heading, Text: strings.TrimSpace(line[len(headingPrefix):])}
	case strings.HasPrefix(line, dashPrefix):
		return Line{Kind: Bullet, Text: strings.TrimSpace(line[len(dashPrefix):])}
	case strings.HasPrefix(line, starPrefix):
		return Line{Kind: Bullet, Text: strings.TrimSpace(line[len(starPrefix):])}
	case strings.TrimSpace(line) == "":
		return Line{Kind: Blank}
	default:
		return Line{Kind: Paragraph, Text: strings.TrimSpace(line)}
	}
}

// Parse classifies every line of text.
func Parse(text string) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, Classify(l))
	}
	return lines
}
