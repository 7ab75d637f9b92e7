package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

func TestDetectEncoding(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Encoding
	}{
		{"utf8 bom", []byte{0xEF, 0xBB, 0xBF, 'a'}, EncodingUTF8},
		{"utf16le", []byte{0xFF, 0xFE, 'a', 0}, EncodingUTF16LE},
		{"utf16be", []byte{0xFE, 0xFF, 0, 'a'}, EncodingUTF16BE},
		{"utf32le", []byte{0xFF, 0xFE, 0, 0, 'a', 0, 0, 0}, EncodingUTF32LE},
		{"utf32be", []byte{0, 0, 0xFE, 0xFF, 0, 0, 0, 'a'}, EncodingUTF32BE},
		{"plain", []byte("abc"), EncodingUnknown},
		{"empty", nil, EncodingUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectEncoding(tt.data))
		})
	}
}

func TestDecodeUTF8(t *testing.T) {
	const text = `{"name":"jürgen"}`

	utf16le, _, err := transform.Bytes(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder(), []byte(text))
	require.NoError(t, err)
	utf16be, _, err := transform.Bytes(unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder(), []byte(text))
	require.NoError(t, err)
	utf32le, _, err := transform.Bytes(utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewEncoder(), []byte(text))
	require.NoError(t, err)

	tests := []struct {
		name      string
		data      []byte
		encoding  Encoding
		converted bool
	}{
		{"plain", []byte(text), EncodingUnknown, false},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, text...), EncodingUTF8, false},
		{"utf16le", utf16le, EncodingUTF16LE, true},
		{"utf16be", utf16be, EncodingUTF16BE, true},
		{"utf32le", utf32le, EncodingUTF32LE, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, enc, err := DecodeUTF8(tt.data)
			require.NoError(t, err)
			assert.Equal(t, text, got)
			assert.Equal(t, tt.encoding, enc)
			assert.Equal(t, tt.converted, enc.Converted())
		})
	}
}

func TestReadFileUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "h.txt")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBFX-A=1\n"), 0o644))

	text, enc, err := ReadFileUTF8(path)
	require.NoError(t, err)
	assert.Equal(t, "X-A=1\n", text)
	assert.Equal(t, EncodingUTF8, enc)

	_, _, err = ReadFileUTF8(filepath.Join(dir, "missing.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseHeaders(t *testing.T) {
	text := "# comment\r\n" +
		"Content-Type = application/json\r\n" +
		"\n" +
		"Authorization=Bearer a=b\n" +
		"not a header\n" +
		"=orphan\n" +
		"X-Empty=\n"

	headers, warnings := ParseHeaders(text)

	assert.Equal(t, []Header{
		{Name: "Content-Type", Value: "application/json"},
		{Name: "Authorization", Value: "Bearer a=b"},
		{Name: "X-Empty", Value: ""},
	}, headers)
	assert.Equal(t, []string{"not a header", "=orphan"}, warnings)
}

func TestParseBody(t *testing.T) {
	t.Run("json object", func(t *testing.T) {
		params, err := ParseBody(`{"name":"john","age":30,"tags":["a", "b"],"meta":{"x": null},"ok":true}`, "body.json")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"name": "john",
			"age":  "30",
			"tags": `["a","b"]`,
			"meta": `{"x":null}`,
			"ok":   "true",
		}, params)
	})

	t.Run("yaml mapping", func(t *testing.T) {
		params, err := ParseBody("name: john\nage: 30\nroles:\n  - admin\n", "body.yaml")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"name":  "john",
			"age":   "30",
			"roles": `["admin"]`,
		}, params)
	})

	t.Run("array rejected", func(t *testing.T) {
		_, err := ParseBody(`[1,2]`, "body.json")
		assert.ErrorIs(t, err, ErrNotObject)
	})

	t.Run("yaml sequence rejected", func(t *testing.T) {
		_, err := ParseBody("- a\n- b\n", "body.yml")
		assert.ErrorIs(t, err, ErrNotObject)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseBody("  \n", "body.json")
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("invalid json carries excerpt and hex", func(t *testing.T) {
		_, err := ParseBody(`{"name": oops}`, "body.json")
		require.Error(t, err)

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, `{"name": oops}`, pe.Excerpt)
		assert.Equal(t, "7b 22 6e 61 6d 65 22 3a 20 6f 6f 70 73 7d", pe.Hex)
	})

	t.Run("excerpt is truncated", func(t *testing.T) {
		long := "{" + string(make([]byte, 100))
		_, err := ParseBody(long, "body.json")

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Len(t, []rune(pe.Excerpt), 50)
		assert.Len(t, pe.Hex, 20*3-1)
	})
}
