package utils

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// QRCodeDataURI encodes text as a 256px PNG QR code wrapped in a data URI, so
// the code can be embedded straight into API responses and cached client-side
// without separate file storage.
func QRCodeDataURI(text string) (string, error) {
	png, err := qrcode.Encode(text, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
