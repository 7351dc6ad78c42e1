package attr

import (
	"encoding/base64"
	"io"

	"github.com/spf13/afero"
)

// Image is a menu item image payload. Template images are tinted by
// the host to match the light/dark theme and render under
// templateImage= instead of image=.
type Image struct {
	Base64   string
	Template bool
}

// ImageBase64 wraps already-encoded base64 image data.
func ImageBase64(data string) Image {
	return Image{Base64: data}
}

// ImageBytes encodes a raw image file (typically PNG).
func ImageBytes(b []byte) Image {
	return Image{Base64: base64.StdEncoding.EncodeToString(b)}
}

// ImageReader encodes raw image data read from r.
func ImageReader(r io.Reader) (Image, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Image{}, err
	}
	return ImageBytes(b), nil
}

// ImageFile encodes the image file at path.
func ImageFile(fs afero.Fs, path string) (Image, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return Image{}, err
	}
	return ImageBytes(b), nil
}

// AsTemplate returns a copy with the template flag forced on,
// whatever the source constructor produced.
func (img Image) AsTemplate() Image {
	img.Template = true
	return img
}
