// Package qrcode renders QR codes as PNG bytes or data URIs on top of
// skip2/go-qrcode. Options set the recovery level, a brand foreground colour
// and the quiet zone.
//
//	uri, err := qrcode.GenerateBase64Image(card, 256, qrcode.WithForeground(primary))
package qrcode
