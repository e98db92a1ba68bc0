package pdf

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ayush/bemestar-report/internal/format"
	"github.com/ayush/bemestar-report/internal/models"
)

const (
	logoSize = 120.0
	logoGap  = 20.0

	Disclaimer = "Relatório Gerado Automaticamente por IA. Clínica do Bem-Estar SENAI. " +
		"Consulte sempre um profissional de saúde."

	dateLayout = "02/01/2006"
)

// Renderer lays a report out onto a Canvas.
type Renderer struct {
	logo   LogoSource
	logger *zap.Logger
}

// NewRenderer returns a Renderer. logo may be nil, in which case no image is
// drawn.
func NewRenderer(logo LogoSource, logger *zap.Logger) *Renderer {
	return &Renderer{logo: logo, logger: logger}
}

// Render draws, top to bottom: the logo when available, the subject and date
// lines, a rule, the report body and the disclaimer footer. Page breaks are
// left to the canvas.
func (r *Renderer) Render(ctx context.Context, rep *models.Report, c Canvas) error {
	margin := c.Margin()
	width := c.PageWidth()

	c.SetY(margin)
	if img, ok := r.loadLogo(ctx); ok {
		if err := c.Image(img, width/2-logoSize/2, margin, logoSize, logoSize); err != nil {
			r.logger.Warn("logo could not be drawn, continuing without it", zap.Error(err))
		} else {
			c.SetY(margin + logoSize + logoGap)
		}
	}

	c.Text("Análise para: "+rep.UserName, TextStyle{Size: 12, Color: format.Black, Align: format.AlignCenter})
	c.Text("Data da Análise: "+rep.CreatedAt.Local().Format(dateLayout),
		TextStyle{Size: 10, Color: format.Black, Align: format.AlignCenter})
	c.Gap(1)

	c.Rule(margin, width-margin, 1, format.Rule)
	c.Gap(1)

	for _, ins := range format.Instructions(rep.Text) {
		if ins.SpaceBefore > 0 {
			c.Gap(ins.SpaceBefore)
		}
		style := TextStyle{
			Size:      ins.FontSize,
			Color:     ins.Color,
			Align:     ins.Align,
			Underline: ins.Underline,
			Indent:    ins.Indent,
		}
		if ins.Marker != "" {
			c.Bullet(ins.Marker, ins.Text, style)
		} else {
			c.Text(ins.Text, style)
		}
		if ins.SpaceAfter > 0 {
			c.Gap(ins.SpaceAfter)
		}
	}

	c.Gap(3)
	c.Text(Disclaimer, TextStyle{Size: 8, Color: format.Muted, Align: format.AlignCenter})

	if err := c.Err(); err != nil {
		return fmt.Errorf("render report %s: %w", rep.ID, err)
	}
	return nil
}

func (r *Renderer) loadLogo(ctx context.Context) ([]byte, bool) {
	if r.logo == nil {
		return nil, false
	}
	img, found, err := r.logo.Logo(ctx)
	switch {
	case err != nil:
		r.logger.Warn("logo unavailable, starting at top margin", zap.Error(err))
		return nil, false
	case !found:
		r.logger.Warn("logo not found, starting at top margin")
		return nil, false
	}
	return img, true
}
