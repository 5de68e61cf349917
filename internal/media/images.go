package media

import (
	"bytes"
	"fmt"
	"image"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// ImageSpec describes how an uploaded image is resized before storage.
type ImageSpec struct {
	Name   string
	Width  int
	Height int
	Crop   bool // fill the box instead of fitting inside it
}

var (
	AvatarSpec = ImageSpec{Name: "avatar", Width: 512, Height: 512, Crop: true}
	LogoSpec   = ImageSpec{Name: "logo", Width: 400, Height: 400}
	CoverSpec  = ImageSpec{Name: "cover", Width: 1600, Height: 600, Crop: true}
)

var imageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

const webpQuality = 85

// ProcessImage decodes a jpeg, png, gif or webp upload, resizes it to spec and
// re-encodes it as webp.
func ProcessImage(data []byte, spec ImageSpec) ([]byte, error) {
	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), imageTypes...) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}

	var (
		img image.Image
		err error
	)
	if mt.Is("image/webp") {
		img, err = webp.Decode(bytes.NewReader(data))
	} else {
		img, err = imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", spec.Name, err)
	}

	b := img.Bounds()
	switch {
	case spec.Crop:
		img = imaging.Fill(img, spec.Width, spec.Height, imaging.Center, imaging.Lanczos)
	case b.Dx() > spec.Width || b.Dy() > spec.Height:
		img = imaging.Fit(img, spec.Width, spec.Height, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode %s: %w", spec.Name, err)
	}
	return buf.Bytes(), nil
}
