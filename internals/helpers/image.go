// file: internals/helpers/image.go
package helper

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const maxImageEdge = 1280

// ConvertImageToWebP decodifica una imagen subida (png/jpg), la reduce si
// excede maxImageEdge y la re-encodea como webp con calidad 80.
func ConvertImageToWebP(fileHeader *multipart.FileHeader) ([]byte, string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, "", fmt.Errorf("no se pudo abrir la imagen: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("formato de imagen no soportado: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxImageEdge || bounds.Dy() > maxImageEdge {
		img = imaging.Fit(img, maxImageEdge, maxImageEdge, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, "", fmt.Errorf("no se pudo encodear webp: %w", err)
	}

	name := fileHeader.Filename
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return buf.Bytes(), name + ".webp", nil
}
