package pdf

import (
	"mime"
	"strings"
	"time"
	"unicode"
)

// Filename returns the download name for a report generated for name on day.
func Filename(name string, day time.Time) string {
	underscored := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, name)
	return "Relatorio_BemEstar_" + underscored + "_" + day.Format(time.DateOnly) + ".pdf"
}

// ContentDisposition returns an attachment header value for filename.
func ContentDisposition(filename string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
}
