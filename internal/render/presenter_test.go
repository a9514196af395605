package render

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"

	"github.com/ytget/swipecards/internal/model"
)

func solidImage(w, h int, c color.Color) *gg.ImageBuf {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return gg.ImageBufFromImage(img)
}

func near(a, b uint32) bool {
	d := int(a>>8) - int(b>>8)
	return d >= -3 && d <= 3
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return near(ar, br) && near(ag, bg) && near(ab, bb) && near(aa, ba)
}

func TestFaceSize(t *testing.T) {
	w, h := FaceSize()
	if w != CardWidth+2*Margin || h != CardHeight+2*Margin {
		t.Errorf("FaceSize() = %dx%d", w, h)
	}
}

func TestPresenter_Face(t *testing.T) {
	bg := color.NRGBA{R: 255, G: 204, B: 0, A: 255}
	p := NewPresenter(nil, func(string) (*gg.ImageBuf, error) {
		return nil, errors.New("no images in tests")
	})
	card := model.NewCard("", "Alice", bg, color.Black)

	face := p.Face(card)
	w, h := FaceSize()
	if face.Bounds().Dx() != w || face.Bounds().Dy() != h {
		t.Fatalf("Expected %dx%d face, got %v", w, h, face.Bounds())
	}

	// Well inside the card, away from rounded corners and the label
	inside := face.At(Margin+CornerRadius*2, Margin+CardHeight-CornerRadius*2)
	if !sameColor(inside, bg) {
		t.Errorf("Expected background %v inside the card, got %v", bg, inside)
	}

	// Outer corner of the canvas lies outside card and shadow
	if _, _, _, a := face.At(0, 0).RGBA(); a>>8 > 32 {
		t.Errorf("Expected canvas corner to be nearly transparent, alpha=%d", a>>8)
	}

	if p.Face(card) != face {
		t.Error("Face should be cached per card")
	}
	p.Forget(card.ID())
	if p.Face(card) == face {
		t.Error("Forget should drop the cached face")
	}
}

func TestPresenter_FaceNilCard(t *testing.T) {
	p := NewPresenter(nil, nil)
	face := p.Face(nil)
	w, h := FaceSize()
	if face.Bounds().Dx() != w || face.Bounds().Dy() != h {
		t.Errorf("Expected blank %dx%d face, got %v", w, h, face.Bounds())
	}
}

func TestPresenter_Image(t *testing.T) {
	red := color.NRGBA{R: 220, A: 255}
	loads := 0
	p := NewPresenter(nil, func(name string) (*gg.ImageBuf, error) {
		loads++
		if name != "red.png" {
			t.Errorf("Unexpected image name %s", name)
		}
		return solidImage(60, 40, red), nil
	})

	a := model.NewCard("red.png", "", color.White, color.Black)
	b := model.NewCard("red.png", "", color.White, color.Black)
	face := p.Face(a)
	p.Face(b)

	if loads != 1 {
		t.Errorf("Expected the image to load once, got %d", loads)
	}

	centre := face.At(Margin+ImageWidth/2, Margin+ImageHeight/2)
	if !sameColor(centre, red) {
		t.Errorf("Expected image colour %v in the frame centre, got %v", red, centre)
	}

	label := face.At(Margin+CornerRadius*2, Margin+ImageHeight+LabelHeight/2)
	if !sameColor(label, color.White) {
		t.Errorf("Expected background below the image, got %v", label)
	}
}

func TestPresenter_MissingImageLoggedOnce(t *testing.T) {
	loads := 0
	p := NewPresenter(nil, func(string) (*gg.ImageBuf, error) {
		loads++
		return nil, errors.New("not found")
	})

	p.Face(model.NewCard("missing.png", "A", nil, nil))
	p.Face(model.NewCard("missing.png", "B", nil, nil))

	if loads != 1 {
		t.Errorf("Expected failed load to be cached, got %d attempts", loads)
	}
}

func TestFillCrop(t *testing.T) {
	tests := []struct {
		sw, sh, dw, dh int
		expected       image.Rectangle
	}{
		{300, 400, 300, 400, image.Rect(0, 0, 300, 400)},
		{600, 800, 300, 400, image.Rect(0, 0, 600, 800)},
		{800, 400, 300, 400, image.Rect(250, 0, 550, 400)},
		{300, 800, 300, 400, image.Rect(0, 200, 300, 600)},
		{0, 10, 300, 400, image.Rect(0, 0, 0, 10)},
	}

	for _, test := range tests {
		result := FillCrop(test.sw, test.sh, test.dw, test.dh)
		if result != test.expected {
			t.Errorf("FillCrop(%d, %d, %d, %d) = %v, expected %v",
				test.sw, test.sh, test.dw, test.dh, result, test.expected)
		}
	}
}

func TestPlaceholder(t *testing.T) {
	img := Placeholder(color.Gray{Y: 128})
	w, h := FaceSize()
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Errorf("Expected %dx%d placeholder, got %v", w, h, img.Bounds())
	}
}
