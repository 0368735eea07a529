package card

import (
	"github.com/genricoloni/musicard/internal/svgtemplate"
)

// Exclamation glyph centred in the 837px placeholder
const placeholderGlyph = "M419.324 635.912C406.035 635.912 394.658 631.18 385.195 621.717C375.732 612.254 371 600.878 371 587.589C371 574.3 375.732 562.923 385.195 553.46C394.658 543.997 406.035 539.265 419.324 539.265C432.613 539.265 443.989 543.997 453.452 553.46C462.915 562.923 467.647 574.3 467.647 587.589C467.647 600.878 462.915 612.254 453.452 621.717C443.989 631.18 432.613 635.912 419.324 635.912ZM371 490.941V201H467.647V490.941H371Z"

// PlaceholderSVG is the thumbnail used when none is supplied
func PlaceholderSVG(fill, glyph svgtemplate.Color) *svgtemplate.Builder {
	return svgtemplate.New(ThumbnailSize, ThumbnailSize).
		Rect(0, 0, ThumbnailSize, ThumbnailSize, svgtemplate.Fill(fill)).
		Path(placeholderGlyph, svgtemplate.Fill(glyph))
}

// BackgroundSVG draws the two flat left panels across the full canvas
func BackgroundSVG(fill svgtemplate.Color) *svgtemplate.Builder {
	return panelsSVG(CanvasWidth, svgtemplate.Fill(fill))
}

// DarknessSVG is the translucent overlay laid over background image panels
func DarknessSVG(opacity float64) *svgtemplate.Builder {
	return panelsSVG(PanelWidth, svgtemplate.FillWithOpacity(overlayColor, opacity))
}

func panelsSVG(width float64, paint ...svgtemplate.Attr) *svgtemplate.Builder {
	return svgtemplate.New(width, CanvasHeight).
		RoundRect(0, 0, PanelWidth, TopPanelHeight, PanelRadius, paint...).
		RoundRect(0, BottomPanelY, PanelWidth, BottomPanelHeight, PanelRadius, paint...)
}

// ProgressBarSVG draws the track, the filled part and the knob.
// The knob is centred knobInset pixels before the end of the filled part.
func ProgressBarSVG(r Resolved) *svgtemplate.Builder {
	completed := r.Completed()
	radius := knobDiameter / 2

	return svgtemplate.New(ProgressBarWidth, ProgressBarHeight).
		RoundRect(0, trackY, ProgressBarWidth, trackHeight, trackRadius, svgtemplate.Fill(r.ProgressBarColor)).
		RoundRect(0, trackY, completed, trackHeight, trackRadius, svgtemplate.Fill(r.ProgressColor)).
		Circle(completed-knobInset, knobTop+radius, radius,
			svgtemplate.Fill(r.ProgressColor),
			svgtemplate.Stroke(r.BackgroundColor, knobStrokeWidth))
}
