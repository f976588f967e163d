package source

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/quantmind-br/esomanifest-go/internal/domain"
)

// Encoding labels with special meaning
const (
	EncodingUTF8 = "utf-8"
	EncodingAuto = "auto"
)

// Decode converts content to UTF-8.
//
// An empty label or "utf-8" returns content unchanged so the parser still
// sees a byte order mark or invalid bytes. "auto" keeps valid UTF-8 and
// otherwise guesses the encoding. Any other WHATWG label is decoded
// through htmlindex. The returned name is the canonical encoding name.
func Decode(content []byte, label string) ([]byte, string, error) {
	label = strings.ToLower(strings.TrimSpace(label))

	switch label {
	case "", EncodingUTF8, "utf8":
		return content, EncodingUTF8, nil
	case EncodingAuto:
		if utf8.Valid(content) {
			return content, EncodingUTF8, nil
		}
		_, name, _ := charset.DetermineEncoding(content, "text/plain")
		label = name
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", domain.ErrUnsupportedEncoding, label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = label
	}
	if name == EncodingUTF8 {
		return content, name, nil
	}

	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(content), enc.NewDecoder()))
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", name, err)
	}
	return decoded, name, nil
}
