package playink

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	_ "image/gif"

	"golang.org/x/image/draw"
)

const (
	maxSocialCardWidth = 1200
	jpegQuality        = 85
)

// processSocialCard scales a social card down to maxSocialCardWidth,
// keeping its aspect ratio and format. Images that already fit, and
// formats other than JPEG and PNG, are returned unchanged.
func processSocialCard(data []byte, name string) ([]byte, error) {
	ext := strings.ToLower(name[strings.LastIndex(name, ".")+1:])
	if ext != "jpg" && ext != "jpeg" && ext != "png" {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode social card %s: %w", name, err)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxSocialCardWidth {
		return data, nil
	}

	newH := h * maxSocialCardWidth / w
	dst := image.NewRGBA(image.Rect(0, 0, maxSocialCardWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if ext == "png" {
		err = png.Encode(&buf, dst)
	} else {
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, fmt.Errorf("encode social card %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
