package diagram

import (
	"bytes"
	"image/color"
	"math"
	"strings"

	"FlowAcademy/internal/models"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

const (
	nodeWidth   = 120.0
	nodeHeight  = 36.0
	nodeRadius  = 6.0
	arrowSize   = 8.0
	gridSpacing = 20.0
)

var (
	background = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
	gridColor  = color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0x1a}
	edgeColor  = color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
	labelColor = color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
)

// nodeColor picks a border color by node type, matching the palette used
// for the interactive view: green triggers, blue actions, purple logic,
// gray everything else.
func nodeColor(nodeType string) color.RGBA {
	switch strings.ToLower(nodeType) {
	case models.NodeTypeTrigger:
		return color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}
	case models.NodeTypeAction:
		return color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	case models.NodeTypeLogic:
		return color.RGBA{R: 0xa8, G: 0x55, B: 0xf7, A: 0xff}
	default:
		return color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
	}
}

// RenderPNG draws the workflow on a width x height canvas and returns the
// encoded image. Stateless and side-effect free.
func RenderPNG(w models.Workflow, width, height int) ([]byte, error) {
	layout := Project(w, width, height)

	dc := gg.NewContext(width, height)
	dc.SetColor(background)
	dc.Clear()

	drawGrid(dc, width, height)

	dc.SetFontFace(basicfont.Face7x13)

	for _, e := range layout.Edges {
		drawEdge(dc, e)
	}
	for _, n := range layout.Nodes {
		drawNode(dc, n)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawGrid(dc *gg.Context, width, height int) {
	dc.SetColor(gridColor)
	dc.SetLineWidth(1)
	for x := gridSpacing; x < float64(width); x += gridSpacing {
		dc.DrawLine(x, 0, x, float64(height))
		dc.Stroke()
	}
	for y := gridSpacing; y < float64(height); y += gridSpacing {
		dc.DrawLine(0, y, float64(width), y)
		dc.Stroke()
	}
}

func drawEdge(dc *gg.Context, e PlacedEdge) {
	dc.SetColor(edgeColor)
	dc.SetLineWidth(2)
	dc.DrawLine(e.From.X, e.From.Y, e.To.X, e.To.Y)
	dc.Stroke()

	// Arrowhead at the target end.
	angle := math.Atan2(e.To.Y-e.From.Y, e.To.X-e.From.X)
	left := angle + math.Pi*5/6
	right := angle - math.Pi*5/6
	dc.MoveTo(e.To.X, e.To.Y)
	dc.LineTo(e.To.X+arrowSize*math.Cos(left), e.To.Y+arrowSize*math.Sin(left))
	dc.LineTo(e.To.X+arrowSize*math.Cos(right), e.To.Y+arrowSize*math.Sin(right))
	dc.ClosePath()
	dc.Fill()
}

func drawNode(dc *gg.Context, n PlacedNode) {
	x := n.Position.X - nodeWidth/2
	y := n.Position.Y - nodeHeight/2

	border := nodeColor(n.Node.Type)
	fill := border
	fill.A = 0x22

	dc.SetColor(fill)
	dc.DrawRoundedRectangle(x, y, nodeWidth, nodeHeight, nodeRadius)
	dc.Fill()

	dc.SetColor(border)
	dc.SetLineWidth(2)
	dc.DrawRoundedRectangle(x, y, nodeWidth, nodeHeight, nodeRadius)
	dc.Stroke()

	dc.SetColor(labelColor)
	dc.DrawStringAnchored(n.Node.Label, n.Position.X, n.Position.Y, 0.5, 0.35)
}
