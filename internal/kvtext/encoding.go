package kvtext

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names the character encoding of a table file.
type Encoding string

const (
	// EncodingAuto detects UTF-16 and UTF-8 byte order marks and falls back to UTF-8.
	EncodingAuto Encoding = "auto"

	// EncodingUTF8 is UTF-8, with or without a BOM.
	EncodingUTF8 Encoding = "utf-8"

	// EncodingUTF16LE is UTF-16 little-endian. A BOM is honored on input and written on output.
	EncodingUTF16LE Encoding = "utf-16le"

	// EncodingWindows1252 is the Windows Latin-1 code page.
	EncodingWindows1252 Encoding = "windows-1252"
)

// Encodings lists the accepted encoding names.
var Encodings = []Encoding{EncodingAuto, EncodingUTF8, EncodingUTF16LE, EncodingWindows1252}

// ParseEncoding resolves an encoding name case-insensitively.
// The empty string means EncodingAuto.
func ParseEncoding(name string) (Encoding, error) {
	if name == "" {
		return EncodingAuto, nil
	}
	switch strings.ToLower(name) {
	case "auto":
		return EncodingAuto, nil
	case "utf-8", "utf8":
		return EncodingUTF8, nil
	case "utf-16le", "utf16le", "utf-16":
		return EncodingUTF16LE, nil
	case "windows-1252", "cp1252", "latin1":
		return EncodingWindows1252, nil
	}
	return "", fmt.Errorf("%w: %q", ErrEncoding, name)
}

// decoder returns a transformer that converts enc to UTF-8.
func (enc Encoding) decoder() (transform.Transformer, error) {
	switch enc {
	case EncodingAuto, "":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case EncodingUTF8:
		return unicode.UTF8BOM.NewDecoder(), nil
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case EncodingWindows1252:
		return charmap.Windows1252.NewDecoder(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrEncoding, string(enc))
}

// encoder returns a transformer that converts UTF-8 to enc.
// EncodingAuto writes plain UTF-8.
func (enc Encoding) encoder() (transform.Transformer, error) {
	switch enc {
	case EncodingAuto, EncodingUTF8, "":
		return unicode.UTF8.NewEncoder(), nil
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder(), nil
	case EncodingWindows1252:
		return charmap.Windows1252.NewEncoder(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrEncoding, string(enc))
}
