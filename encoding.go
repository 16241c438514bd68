package main

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeText converts raw cue sheet bytes to a UTF-8 string. Rippers
// frequently write legacy codepages, so anything that is not valid
// UTF-8 is decoded with the configured fallback charset. Returns the
// decoded text and the name of the encoding that was applied.
func decodeText(data []byte, fallback string) (string, string, error) {
	if bytes.HasPrefix(data, utf8BOM) {
		return string(bytes.TrimPrefix(data, utf8BOM)), "utf-8 (BOM)", nil
	}
	if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}

	enc, err := ianaindex.IANA.Encoding(fallback)
	if err != nil || enc == nil {
		return "", "", fmt.Errorf("unknown fallback encoding %q", fallback)
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", fmt.Errorf("decode as %v: %w", fallback, err)
	}
	return string(decoded), fallback, nil
}
