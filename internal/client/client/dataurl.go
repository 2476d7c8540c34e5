package client

import (
	"encoding/base64"

	"github.com/gabriel-vasile/mimetype"
)

// EncodeDataURL embeds raw bytes as a data URL
// ("data:image/png;base64,...") suitable for the image_data field. The MIME
// type is sniffed from the content. Empty input yields "".
func EncodeDataURL(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	mime := mimetype.Detect(b).String()
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b)
}
