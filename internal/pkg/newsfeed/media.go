package newsfeed

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/carlimendez/aulareserva/app/models"
	"github.com/carlimendez/aulareserva/internal/pkg/apperr"
)

// previewMaxWidth caps the downscaled preview generated for image media.
const previewMaxWidth = 800

// Media is the optional attachment of a news item: none, an image or a
// video, carried inline as a base64 data URL.
type Media struct {
	Kind    string
	Data    string
	Preview string
}

// NoMedia is the empty attachment.
func NoMedia() Media {
	return Media{Kind: models.MEDIA_NONE}
}

// BuildMedia classifies an uploaded payload as image or video by MIME sniff
// and encodes it as a data URL. Image payloads additionally get a downscaled
// JPEG preview; a payload that decodes as neither image nor video is
// rejected.
func BuildMedia(payload []byte, declaredMIME string) (Media, error) {
	if len(payload) == 0 {
		return NoMedia(), nil
	}

	mime := declaredMIME
	if mime == "" || mime == "application/octet-stream" {
		mime = http.DetectContentType(payload)
	}

	var kind string
	switch {
	case strings.HasPrefix(mime, "image/"):
		kind = models.MEDIA_IMAGE
	case strings.HasPrefix(mime, "video/"):
		kind = models.MEDIA_VIDEO
	default:
		return Media{}, apperr.Newf(apperr.KindValidation, "unsupported media type %s", mime)
	}

	media := Media{
		Kind: kind,
		Data: fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(payload)),
	}

	if kind == models.MEDIA_IMAGE {
		if preview, err := buildImagePreview(payload); err == nil {
			media.Preview = preview
		}
		// A preview failure is not fatal; the original payload still renders.
	}

	return media, nil
}

func buildImagePreview(payload []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(payload))
	if err != nil {
		return "", err
	}

	if img.Bounds().Dx() > previewMaxWidth {
		img = imaging.Resize(img, previewMaxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(82)); err != nil {
		return "", err
	}

	return fmt.Sprintf("data:image/jpeg;base64,%s", base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}
