package pdf

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/ayush/bemestar-report/internal/format"
)

const (
	fontFamily  = "Helvetica"
	pageMargin  = 50.0
	lineSpacing = 1.2
	markerWidth = 12.0
)

// FPDFCanvas draws onto an A4 portrait document measured in points.
type FPDFCanvas struct {
	doc      *fpdf.Fpdf
	tr       func(string) string
	fontSize float64
	images   int
}

func NewFPDFCanvas() *FPDFCanvas {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.SetCreator("bemestar-report", true)
	doc.AddPage()

	c := &FPDFCanvas{
		doc: doc,
		// Core fonts are cp1252; translate so accented Portuguese renders.
		tr:       doc.UnicodeTranslatorFromDescriptor(""),
		fontSize: format.BodySize,
	}
	doc.SetFont(fontFamily, "", c.fontSize)
	return c
}

func (c *FPDFCanvas) PageWidth() float64 {
	w, _ := c.doc.GetPageSize()
	return w
}

func (c *FPDFCanvas) Margin() float64 { return pageMargin }

func (c *FPDFCanvas) Image(img []byte, x, y, w, h float64) error {
	imageType, err := imageTypeOf(img)
	if err != nil {
		return err
	}

	c.images++
	name := "img" + strconv.Itoa(c.images)
	opts := fpdf.ImageOptions{ImageType: imageType}
	info := c.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))
	if !c.doc.Ok() || info == nil {
		err := c.doc.Error()
		c.doc.ClearError()
		return fmt.Errorf("register image: %w", err)
	}
	x, y, w, h = fitBox(info.Width(), info.Height(), x, y, w, h)
	c.doc.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return nil
}

// fitBox scales an imgW×imgH image to fit inside the w×h box at (x, y),
// keeping its aspect ratio, centered horizontally and aligned to the top.
func fitBox(imgW, imgH, x, y, w, h float64) (float64, float64, float64, float64) {
	if imgW <= 0 || imgH <= 0 {
		return x, y, w, h
	}
	scale := math.Min(w/imgW, h/imgH)
	fw, fh := imgW*scale, imgH*scale
	return x + (w-fw)/2, y, fw, fh
}

func (c *FPDFCanvas) SetY(y float64) { c.doc.SetY(y) }

func (c *FPDFCanvas) Text(text string, style TextStyle) {
	c.apply(style)
	c.doc.SetX(c.doc.GetX() + style.Indent)
	c.doc.MultiCell(0, c.lineHeight(), c.tr(text), "", alignString(style.Align), false)
}

func (c *FPDFCanvas) Bullet(marker, text string, style TextStyle) {
	c.apply(style)
	left, _, _, _ := c.doc.GetMargins()
	c.doc.SetX(left + style.Indent)
	c.doc.CellFormat(markerWidth, c.lineHeight(), c.tr(marker), "", 0, "L", false, 0, "")
	c.doc.MultiCell(0, c.lineHeight(), c.tr(text), "", alignString(style.Align), false)
}

func (c *FPDFCanvas) Rule(x1, x2, width float64, color format.Color) {
	y := c.doc.GetY()
	c.doc.SetLineWidth(width)
	c.doc.SetDrawColor(color.R, color.G, color.B)
	c.doc.Line(x1, y, x2, y)
}

func (c *FPDFCanvas) Gap(lines float64) {
	c.doc.Ln(lines * c.lineHeight())
}

func (c *FPDFCanvas) Err() error { return c.doc.Error() }

// Output closes the document and writes it to w.
func (c *FPDFCanvas) Output(w io.Writer) error {
	return c.doc.Output(w)
}

func (c *FPDFCanvas) apply(style TextStyle) {
	fontStyle := ""
	if style.Underline {
		fontStyle = "U"
	}
	c.fontSize = style.Size
	c.doc.SetFont(fontFamily, fontStyle, style.Size)
	c.doc.SetTextColor(style.Color.R, style.Color.G, style.Color.B)
}

func (c *FPDFCanvas) lineHeight() float64 {
	return c.fontSize * lineSpacing
}

func alignString(a format.Align) string {
	switch a {
	case format.AlignCenter:
		return "C"
	case format.AlignJustify:
		return "J"
	default:
		return "L"
	}
}

func imageTypeOf(img []byte) (string, error) {
	switch ct := http.DetectContentType(img); ct {
	case "image/png":
		return "PNG", nil
	case "image/jpeg":
		return "JPG", nil
	case "image/gif":
		return "GIF", nil
	default:
		return "", fmt.Errorf("unsupported image type %q", ct)
	}
}
