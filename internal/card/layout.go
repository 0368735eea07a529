package card

import (
	"image"

	"github.com/genricoloni/musicard/internal/imageio"
)

// Canvas and region geometry, in pixels
const (
	CanvasWidth  = 2458
	CanvasHeight = 837

	PanelWidth        = 1568
	PanelRadius       = 50
	TopPanelHeight    = 512
	BottomPanelY      = 565
	BottomPanelHeight = 272

	ThumbnailSize = 837

	ProgressBarWidth  = 1342
	ProgressBarHeight = 76
	trackY            = 13
	trackHeight       = 47
	trackRadius       = 20
	knobDiameter      = 69.4422
	knobTop           = 3
	knobInset         = 40
	knobStrokeWidth   = 6
)

var (
	ThumbnailOrigin   = image.Pt(1621, 0)
	ProgressBarOrigin = image.Pt(113, 635)

	NameOrigin      = image.Pt(113, 230)
	AuthorOrigin    = image.Pt(113, 370)
	StartTimeOrigin = image.Pt(113, 768)
	EndTimeOrigin   = image.Pt(1332, 768)
)

// Logical font names and pixel sizes of the labels
const (
	nameFont   = "extrabold"
	nameSize   = 124
	authorFont = "regular"
	authorSize = 87
	timeFont   = "semibold"
	timeSize   = 50
)

// panel is one rounded region cut from the background image
type panel struct {
	name string
	crop imageio.CropOptions
	at   image.Point
}

// The background image is cover-filled to PanelWidth x CanvasHeight before these crops
var backgroundPanels = []panel{
	{
		name: "top",
		crop: imageio.CropOptions{X: 0, Y: -170, Width: PanelWidth, Height: TopPanelHeight, BorderRadius: PanelRadius},
		at:   image.Pt(0, 0),
	},
	{
		name: "bottom",
		crop: imageio.CropOptions{X: 0, Y: -845, Width: PanelWidth, Height: BottomPanelHeight, BorderRadius: PanelRadius},
		at:   image.Pt(0, BottomPanelY),
	},
}

// CompletedWidth is the filled length of the progress track for a clamped progress value
func CompletedWidth(progress float64) float64 {
	return ProgressBarWidth * progress / 100
}
