package web

import (
	"errors"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 256

var errEmptyPayload = errors.New("qr payload is empty")

// PreviewQR renders url as a QR code made of block characters, for printing
// to a terminal.
func PreviewQR(url string) (string, error) {
	if url == "" {
		return "", errEmptyPayload
	}
	qrCode, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return "", err
	}
	return qrCode.ToSmallString(false), nil
}

// previewQRPNG encodes url as a PNG QR code.
func previewQRPNG(url string, sizePx int) ([]byte, error) {
	if url == "" {
		return nil, errEmptyPayload
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}
	return qrcode.Encode(url, qrcode.Medium, sizePx)
}
