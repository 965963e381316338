package ingestion

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decoder turns raw bytes into text under one encoding assumption
type decoder struct {
	name   string
	decode func(data []byte) (string, error)
}

// decoders are tried in order: wide-character variants first, then byte-oriented ones
var decoders = []decoder{
	{name: "utf-16", decode: transcoder(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM))},
	{name: "utf-16-le", decode: transcoder(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM))},
	{name: "utf-16-be", decode: transcoder(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM))},
	{name: "utf-8-sig", decode: transcoder(unicode.UTF8BOM)},
	{name: "utf-8", decode: decodeUTF8},
	{name: "latin1", decode: transcoder(charmap.ISO8859_1)},
}

func transcoder(enc encoding.Encoding) func([]byte) (string, error) {
	return func(data []byte) (string, error) {
		out, _, err := transform.Bytes(enc.NewDecoder(), data)
		if err != nil {
			return "", err
		}
		return cleanDecoded(string(out)), nil
	}
}

func decodeUTF8(data []byte) (string, error) {
	return cleanDecoded(strings.ToValidUTF8(string(data), "")), nil
}

// cleanDecoded drops replacement characters and byte order marks left by lenient decoding
func cleanDecoded(s string) string {
	return strings.NewReplacer("\uFFFD", "", "\uFEFF", "").Replace(s)
}
