// Package namecodec implements the URL-safe text encoding used to carry guest
// names in invitation links.
//
// Encode percent-encodes the text the way JavaScript's encodeURIComponent
// does, base64-encodes the result with the URL-safe alphabet and strips the
// padding. Decode reverses each step. Links produced by the web front end and
// by this package are interchangeable.
package namecodec

import (
	"encoding/base64"
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"
)

// ErrMalformed is returned by Decode for input that is not a valid encoding.
var ErrMalformed = errors.New("namecodec: malformed input")

const upperhex = "0123456789ABCDEF"

// Encode returns the transport-safe form of s.
func Encode(s string) string {
	enc := base64.StdEncoding.EncodeToString([]byte(escapeComponent(s)))
	enc = strings.TrimRight(enc, "=")
	return strings.NewReplacer("+", "-", "/", "_").Replace(enc)
}

// Decode returns the original text of an encoded value. On any failure it
// returns "" and an error wrapping ErrMalformed.
func Decode(s string) (string, error) {
	s = strings.NewReplacer("-", "+", "_", "/").Replace(s)
	if rem := len(s) % 4; rem != 0 {
		s += strings.Repeat("=", 4-rem)
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", errors.Join(ErrMalformed, err)
	}
	out, err := url.PathUnescape(string(raw))
	if err != nil {
		return "", errors.Join(ErrMalformed, err)
	}
	if !utf8.ValidString(out) {
		return "", ErrMalformed
	}
	return out, nil
}

// escapeComponent mirrors encodeURIComponent: every byte outside
// A-Z a-z 0-9 - _ . ! ~ * ' ( ) is percent-encoded from its UTF-8 form.
func escapeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
