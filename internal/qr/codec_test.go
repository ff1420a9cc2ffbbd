package qr_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/onemapafrica/member-hub-api/internal/qr"
	"github.com/onemapafrica/member-hub-api/internal/shared/testutil"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodePNG scans a QR PNG back into its text payload.
func decodePNG(t *testing.T, data []byte) string {
	t.Helper()

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "QR output must be a valid PNG")

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)

	result, err := zxqr.NewQRCodeReader().Decode(bmp, nil)
	require.NoError(t, err, "QR image must be scannable")

	return result.GetText()
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	// Given: a codec bound to the configured public origin
	cfg := testutil.NewTestConfig()
	codec := qr.NewCodec(cfg)

	// When: encoding a card serial
	data, err := codec.EncodePNG("OMA-000123")
	require.NoError(t, err)

	// Then: the decoded payload is exactly the verification URL
	payload := decodePNG(t, data)
	assert.Equal(t, "https://hub.onemapafrica.test/verify/OMA-000123", payload)
}

func TestEncodePNG_DeterministicPayload(t *testing.T) {
	cfg := testutil.NewTestConfig()
	codec := qr.NewCodec(cfg)

	first, err := codec.EncodePNG("OMA-2025-001")
	require.NoError(t, err)
	second, err := codec.EncodePNG("OMA-2025-001")
	require.NoError(t, err)

	// Same identifier and origin always yield the same decodable payload.
	assert.Equal(t, decodePNG(t, first), decodePNG(t, second))
	assert.Equal(t, codec.URL("OMA-2025-001"), decodePNG(t, first))
}

func TestEncodeDataURI_RoundTrip(t *testing.T) {
	cfg := testutil.NewTestConfig()
	codec := qr.NewCodec(cfg)

	dataURI, err := codec.EncodeDataURI("OMA-2025-042")
	require.NoError(t, err)

	raw, err := qr.DecodeDataURI(dataURI)
	require.NoError(t, err)

	payload := decodePNG(t, raw)
	assert.Contains(t, payload, "OMA-2025-042")
	assert.Equal(t, codec.URL("OMA-2025-042"), payload)
}

func TestURL_TrailingSlashOrigin(t *testing.T) {
	cfg := testutil.NewTestConfig()
	cfg.App.PublicBaseURL = "https://hub.onemapafrica.test/"
	codec := qr.NewCodec(cfg)

	assert.Equal(t, "https://hub.onemapafrica.test/verify/OMA-000001", codec.URL("OMA-000001"))
}

func TestDecodeDataURI_RejectsNonPNG(t *testing.T) {
	_, err := qr.DecodeDataURI("data:image/jpeg;base64,abcd")
	assert.Error(t, err)
}
