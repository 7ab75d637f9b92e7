package importer

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// Encoding is a text encoding recognized by its byte-order mark.
type Encoding int

const (
	EncodingUnknown Encoding = iota
	EncodingUTF8
	EncodingUTF16LE
	EncodingUTF16BE
	EncodingUTF32LE
	EncodingUTF32BE
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "UTF-8"
	case EncodingUTF16LE:
		return "UTF-16LE"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF32LE:
		return "UTF-32LE"
	case EncodingUTF32BE:
		return "UTF-32BE"
	default:
		return "Unknown"
	}
}

// Converted reports whether text in this encoding had to be transcoded.
func (e Encoding) Converted() bool {
	return e != EncodingUnknown && e != EncodingUTF8
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
)

// DetectEncoding inspects the byte-order mark at the start of data.
func DetectEncoding(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return EncodingUTF8
	case bytes.HasPrefix(data, bomUTF32LE):
		return EncodingUTF32LE
	case bytes.HasPrefix(data, bomUTF16LE):
		return EncodingUTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return EncodingUTF16BE
	case bytes.HasPrefix(data, bomUTF32BE):
		return EncodingUTF32BE
	}
	return EncodingUnknown
}

// DecodeUTF8 returns data as UTF-8 text with any byte-order mark removed.
func DecodeUTF8(data []byte) (string, Encoding, error) {
	enc := DetectEncoding(data)

	var decoder encoding.Encoding
	switch enc {
	case EncodingUnknown:
		return string(data), enc, nil
	case EncodingUTF8:
		return string(data[len(bomUTF8):]), enc, nil
	case EncodingUTF16LE:
		decoder = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case EncodingUTF16BE:
		decoder = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	case EncodingUTF32LE:
		decoder = utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM)
	case EncodingUTF32BE:
		decoder = utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM)
	}

	out, _, err := transform.Bytes(decoder.NewDecoder(), data)
	if err != nil {
		return "", enc, fmt.Errorf("decoding %s: %w", enc, err)
	}
	return string(out), enc, nil
}

// ReadFileUTF8 reads path and decodes it to UTF-8.
func ReadFileUTF8(path string) (string, Encoding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", EncodingUnknown, err
	}
	return DecodeUTF8(data)
}
