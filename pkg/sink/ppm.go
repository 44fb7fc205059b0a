package sink

import (
	"fmt"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/errors"
)

// RenderPPM writes pixels as a binary P6 portable pixmap. The RGB buffer is
// already in P6 sample order, so it is copied behind the header unchanged.
func RenderPPM(pixels []byte, width, height int) ([]byte, error) {
	if err := errors.ValidateBounds(width, height); err != nil {
		return nil, err
	}
	if len(pixels) != width*height*3 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"pixel buffer holds %d bytes, %dx%d RGB needs %d", len(pixels), width, height, width*height*3)
	}

	header := fmt.Sprintf("P6 %d %d 255\n", width, height)
	out := make([]byte, 0, len(header)+len(pixels))
	out = append(out, header...)
	return append(out, pixels...), nil
}
