package format

import (
	"html"
	"strings"
)

const (
	headingOpen = `<h4 class="mt-3 mb-2 text-primary">`
	listOpen    = `<ul class="list-unstyled">`
	wrapOpen    = `<div class="relatorio-formatado">`
)

// HTML renders the report as an HTML fragment. Consecutive bullets form one
// list and consecutive paragraph lines one paragraph; any other line closes
// the open block, so bullets from different sections never share a list.
func HTML(text string) string {
	var b strings.Builder
	b.WriteString(wrapOpen)

	open := Blank
	closeBlock := func() {
		switch open {
		case Bullet:
			b.WriteString("</ul>")
		case Paragraph:
			b.WriteString("</p>")
		}
		open = Blank
	}

	for _, line := range Parse(text) {
		escaped := html.EscapeString(line.Text)
		switch line.Kind {
		case Heading:
			closeBlock()
			b.WriteString(headingOpen)
			b.WriteString(escaped)
			b.WriteString("</h4>")
		case Bullet:
			if open != Bullet {
				closeBlock()
				b.WriteString(listOpen)
				open = Bullet
			}
			b.WriteString("<li>")
			b.WriteString(escaped)
			b.WriteString("</li>")
		case Paragraph:
			if open == Paragraph {
				b.WriteString("<br>")
			} else {
				closeBlock()
				b.WriteString("<p>")
				open = Paragraph
			}
			b.WriteString(escaped)
		case Blank:
			closeBlock()
		}
	}
	closeBlock()

	b.WriteString("</div>")
	return b.String()
}
