package render

import (
	"image"
	"image/color"
	"log"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/ytget/swipecards/internal/model"
)

// Card frame geometry
const (
	ImageWidth   = 300
	ImageHeight  = 400
	LabelHeight  = 72
	CardWidth    = ImageWidth
	CardHeight   = ImageHeight + LabelHeight
	CornerRadius = 10
	ShadowRadius = 10

	// LabelFontSize matches a large title
	LabelFontSize = 34
)

// shadowAlpha is the opacity added by each ring of the drop shadow
const shadowAlpha = 0.03

// Margin is the transparent border reserved around the card for its shadow
const Margin = ShadowRadius * 2

// FaceSize returns the pixel size of a rendered face including the shadow margin
func FaceSize() (int, int) {
	return CardWidth + 2*Margin, CardHeight + 2*Margin
}

// ImageLoader resolves a card image reference
type ImageLoader func(name string) (*gg.ImageBuf, error)

// Presenter renders card faces. Faces are cached per card, since cards
// are immutable.
type Presenter struct {
	font   *text.FontSource
	loader ImageLoader

	faces  map[string]image.Image
	images map[string]*gg.ImageBuf
}

// NewPresenter creates a presenter. fontData holds a TrueType/OpenType font
// used for labels; with no font the label is omitted.
func NewPresenter(fontData []byte, loader ImageLoader) *Presenter {
	p := &Presenter{
		loader: loader,
		faces:  make(map[string]image.Image),
		images: make(map[string]*gg.ImageBuf),
	}
	if p.loader == nil {
		p.loader = gg.LoadImage
	}

	if len(fontData) > 0 {
		source, err := text.NewFontSource(fontData)
		if err != nil {
			log.Printf("Warning: failed to parse label font: %v", err)
		} else {
			p.font = source
		}
	}
	return p
}

// Face returns the rendered face of a card, including the shadow margin
func (p *Presenter) Face(card *model.Card) image.Image {
	if card == nil {
		w, h := FaceSize()
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	if face, ok := p.faces[card.ID()]; ok {
		return face
	}

	face := p.paint(card)
	p.faces[card.ID()] = face
	return face
}

// Forget drops the cached face of a card that left the stack
func (p *Presenter) Forget(id string) {
	delete(p.faces, id)
}

func (p *Presenter) paint(card *model.Card) image.Image {
	w, h := FaceSize()
	dc := gg.NewContext(w, h)
	defer dc.Close()

	x, y := float64(Margin), float64(Margin)

	// Drop shadow, built from concentric translucent rings
	for i := ShadowRadius; i > 0; i-- {
		spread := float64(i)
		dc.SetRGBA(0, 0, 0, shadowAlpha)
		dc.DrawRoundedRectangle(x-spread, y-spread+ShadowRadius/2, CardWidth+2*spread, CardHeight+2*spread, CornerRadius+spread)
		if err := dc.Fill(); err != nil {
			log.Printf("Warning: shadow fill failed for card %s: %v", card.ID(), err)
			break
		}
	}

	dc.SetColor(card.BackgroundColor())
	dc.DrawRoundedRectangle(x, y, CardWidth, CardHeight, CornerRadius)
	if err := dc.Fill(); err != nil {
		log.Printf("Warning: background fill failed for card %s: %v", card.ID(), err)
	}

	if img := p.cardImage(card.ImageName()); img != nil {
		dc.DrawImage(img, x, y)
	}

	if p.font != nil && card.Name() != "" {
		dc.SetFont(p.font.Face(LabelFontSize))
		dc.SetColor(card.TextColor())
		dc.DrawStringAnchored(card.Name(), x+CardWidth/2, y+ImageHeight+LabelHeight/2, 0.5, 0.3)
	}

	return dc.Image()
}

// cardImage returns the image area of a card: the source image scaled to
// fill the frame, centre-cropped, with rounded top corners.
func (p *Presenter) cardImage(name string) *gg.ImageBuf {
	if name == "" {
		return nil
	}
	if img, ok := p.images[name]; ok {
		return img
	}

	src, err := p.loader(name)
	if err != nil {
		log.Printf("Warning: failed to load card image %s: %v", name, err)
		p.images[name] = nil
		return nil
	}

	img := roundTop(fill(src))
	p.images[name] = img
	return img
}

// fill scales src to cover the image frame, cropping the overflow
func fill(src *gg.ImageBuf) *gg.ImageBuf {
	sw, sh := src.Bounds()
	crop := FillCrop(sw, sh, ImageWidth, ImageHeight)

	dc := gg.NewContext(ImageWidth, ImageHeight)
	defer dc.Close()

	dc.DrawImageEx(src, gg.DrawImageOptions{
		DstWidth:      ImageWidth,
		DstHeight:     ImageHeight,
		SrcRect:       &crop,
		Interpolation: gg.InterpBilinear,
		Opacity:       1.0,
	})
	return gg.ImageBufFromImage(dc.Image())
}

// roundTop masks the top corners of the image frame to the card radius
func roundTop(src *gg.ImageBuf) *gg.ImageBuf {
	dc := gg.NewContext(ImageWidth, ImageHeight)
	defer dc.Close()

	dc.SetFillPattern(dc.CreateImagePattern(src, 0, 0, ImageWidth, ImageHeight))

	const r = CornerRadius
	dc.MoveTo(0, r)
	dc.QuadraticTo(0, 0, r, 0)
	dc.LineTo(ImageWidth-r, 0)
	dc.QuadraticTo(ImageWidth, 0, ImageWidth, r)
	dc.LineTo(ImageWidth, ImageHeight)
	dc.LineTo(0, ImageHeight)
	dc.ClosePath()
	if err := dc.Fill(); err != nil {
		log.Printf("Warning: image mask failed: %v", err)
		return src
	}
	return gg.ImageBufFromImage(dc.Image())
}

// FillCrop returns the centred source rectangle that, scaled to dw x dh,
// covers the destination without distortion.
func FillCrop(sw, sh, dw, dh int) image.Rectangle {
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return image.Rect(0, 0, max(sw, 0), max(sh, 0))
	}

	// Compare aspect ratios without floating point: sw/sh vs dw/dh
	if sw*dh > dw*sh {
		// Source is wider: crop the sides
		cw := sh * dw / dh
		x0 := (sw - cw) / 2
		return image.Rect(x0, 0, x0+cw, sh)
	}
	ch := sw * dh / dw
	y0 := (sh - ch) / 2
	return image.Rect(0, y0, sw, y0+ch)
}

// Placeholder returns a flat face used when a stack has no cards left
func Placeholder(c color.Color) image.Image {
	w, h := FaceSize()
	dc := gg.NewContext(w, h)
	defer dc.Close()

	dc.SetColor(c)
	dc.SetLineWidth(2)
	dc.SetDash(8, 6)
	dc.DrawRoundedRectangle(Margin, Margin, CardWidth, CardHeight, CornerRadius)
	if err := dc.Stroke(); err != nil {
		log.Printf("Warning: placeholder stroke failed: %v", err)
	}
	return dc.Image()
}
