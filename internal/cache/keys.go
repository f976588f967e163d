package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/quantmind-br/esomanifest-go/internal/domain"
)

// PrefixParse is the key prefix of cached parse results
const PrefixParse = "parse"

// keyVersion changes whenever the cached record layout changes
const keyVersion = "v2"

// GenerateKey generates a cache key from the content hash and parse options.
// Identical bytes parsed with identical options share a key, wherever the
// file lives.
func GenerateKey(contentHash string, opts domain.ParseOptions) string {
	h := sha256.New()
	h.Write([]byte(keyVersion))
	h.Write([]byte{0})
	h.Write([]byte(contentHash))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatBool(opts.FullValidation)))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(opts.MaxLineBytes)))
	return PrefixParse + ":" + hex.EncodeToString(h.Sum(nil))
}

// DocumentKey generates the cache key for a document
func DocumentKey(doc *domain.Document, opts domain.ParseOptions) string {
	return GenerateKey(doc.ContentHash(), opts)
}
