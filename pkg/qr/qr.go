// Package qr renders scannable matrix barcodes for asset tags. It is a
// stateless rendering helper with no knowledge of the tag format.
package qr

import qrcode "github.com/skip2/go-qrcode"

const defaultSize = 256

// PNG encodes text into a QR code PNG. A size of 0 falls back to the
// default edge length in pixels.
func PNG(text string, size int) ([]byte, error) {
	if size <= 0 {
		size = defaultSize
	}
	return qrcode.Encode(text, qrcode.Low, size)
}
