package qr

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/onemapafrica/member-hub-api/internal/config"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	verifyPath = "/verify/"

	// defaultSize is the rendered PNG edge length in pixels.
	defaultSize = 256
)

// Codec renders verification URLs as scannable QR images. A single Codec is
// shared by the card lifecycle and the renderer so the encoded payload cannot
// diverge between call sites.
type Codec struct {
	origin string
	size   int
}

func NewCodec(cfg *config.Config) *Codec {
	return &Codec{
		origin: strings.TrimRight(cfg.App.PublicBaseURL, "/"),
		size:   defaultSize,
	}
}

// URL builds the canonical verification URL for a card serial.
func (c *Codec) URL(cardID string) string {
	return c.origin + verifyPath + cardID
}

// EncodePNG encodes the verification URL for cardID into a PNG image.
// The payload is deterministic: decoding the image always yields URL(cardID).
func (c *Codec) EncodePNG(cardID string) ([]byte, error) {
	png, err := qrcode.Encode(c.URL(cardID), qrcode.Medium, c.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr for %s: %w", cardID, err)
	}
	return png, nil
}

// EncodeDataURI encodes the verification URL as a PNG data URI, the form
// stored on the card record and embedded by web clients.
func (c *Codec) EncodeDataURI(cardID string) (string, error) {
	png, err := c.EncodePNG(cardID)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// DecodeDataURI extracts the raw PNG bytes from a stored qrCodeUrl value.
func DecodeDataURI(dataURI string) ([]byte, error) {
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(dataURI, prefix) {
		return nil, fmt.Errorf("not a PNG data URI")
	}
	return base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, prefix))
}
