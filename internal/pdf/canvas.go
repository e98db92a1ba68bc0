// Package pdf lays out a stored report as a paginated A4 document.
//
// Layout is expressed against Canvas so it can be checked without decoding
// PDF bytes; FPDFCanvas is the go-pdf/fpdf implementation used in production.
package pdf

import (
	"io"

	"github.com/ayush/bemestar-report/internal/format"
)

// TextStyle describes how a block of text is drawn.
type TextStyle struct {
	Size      float64
	Color     format.Color
	Align     format.Align
	Underline bool
	Indent    float64
}

// Canvas is the drawing surface a Renderer writes to. Positions are in
// points from the top-left corner. Text wraps within the page margins and
// breaks onto new pages on its own.
type Canvas interface {
	PageWidth() float64
	Margin() float64

	// Image draws img scaled to fit inside the w×h box at (x, y), keeping
	// its aspect ratio and centered horizontally in the box. It must leave
	// the canvas usable when img cannot be decoded.
	Image(img []byte, x, y, w, h float64) error
	SetY(y float64)
	Text(text string, style TextStyle)
	Bullet(marker, text string, style TextStyle)
	Rule(x1, x2, width float64, color format.Color)
	// Gap moves the cursor down by lines times the current line height.
	Gap(lines float64)

	Err() error
	Output(w io.Writer) error
}
