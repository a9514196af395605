package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipecards/internal/model"
	"github.com/ytget/swipecards/internal/render"
)

// CardView shows the face of a card, tilted by its rotation. The face
// stays centred in the space the view is given.
type CardView struct {
	widget.BaseWidget

	card      *model.Card
	presenter *render.Presenter
	rotation  float32
}

// NewCardView creates a new card view
func NewCardView(card *model.Card, presenter *render.Presenter) *CardView {
	cv := &CardView{card: card, presenter: presenter}
	cv.ExtendBaseWidget(cv)
	return cv
}

// Card returns the displayed card
func (cv *CardView) Card() *model.Card {
	return cv.card
}

// Rotation returns the tilt in degrees, positive clockwise
func (cv *CardView) Rotation() float32 {
	return cv.rotation
}

// SetRotation tilts the face. The face is only re-rasterized when the
// angle changes.
func (cv *CardView) SetRotation(degrees float32) {
	if degrees == cv.rotation {
		return
	}
	cv.rotation = degrees
	cv.Refresh()
}

// CreateRenderer creates the widget renderer
func (cv *CardView) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScaleSmooth

	r := &cardViewRenderer{view: cv, image: img}
	r.update()
	return r
}

// faceSize returns the size of a rendered face in canvas units
func faceSize() fyne.Size {
	w, h := render.FaceSize()
	return fyne.NewSize(float32(w), float32(h))
}

type cardViewRenderer struct {
	view  *CardView
	image *canvas.Image

	size     fyne.Size
	rotation float32
}

func (r *cardViewRenderer) Layout(size fyne.Size) {
	r.size = size
	r.place()
}

func (r *cardViewRenderer) MinSize() fyne.Size {
	return faceSize()
}

func (r *cardViewRenderer) Refresh() {
	r.update()
	r.place()
	r.image.Refresh()
}

func (r *cardViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}

func (r *cardViewRenderer) Destroy() {}

func (r *cardViewRenderer) update() {
	if r.image.Image != nil && r.view.rotation == r.rotation {
		return
	}
	face := r.view.presenter.Face(r.view.card)
	r.image.Image = render.Rotate(face, r.view.rotation)
	r.rotation = r.view.rotation
}

// place centres the image, which grows with the tilt
func (r *cardViewRenderer) place() {
	b := r.image.Image.Bounds()
	imgSize := fyne.NewSize(float32(b.Dx()), float32(b.Dy()))

	r.image.Resize(imgSize)
	r.image.Move(fyne.NewPos((r.size.Width-imgSize.Width)/2, (r.size.Height-imgSize.Height)/2))
}
