package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTextUTF8(t *testing.T) {
	text, applied, err := decodeText([]byte("TITLE \"Loveless\""), defaultEncoding)
	require.NoError(t, err)
	assert.Equal(t, "TITLE \"Loveless\"", text)
	assert.Equal(t, "utf-8", applied)
}

func TestDecodeTextStripsBOM(t *testing.T) {
	text, applied, err := decodeText([]byte("\xEF\xBB\xBFTITLE"), defaultEncoding)
	require.NoError(t, err)
	assert.Equal(t, "TITLE", text)
	assert.Equal(t, "utf-8 (BOM)", applied)
}

func TestDecodeTextFallback(t *testing.T) {
	// "Mélodie" in windows-1252: 0xE9 is é, which is not valid UTF-8
	raw := []byte{'M', 0xE9, 'l', 'o', 'd', 'i', 'e'}
	text, applied, err := decodeText(raw, "windows-1252")
	require.NoError(t, err)
	assert.Equal(t, "Mélodie", text)
	assert.Equal(t, "windows-1252", applied)
}

func TestDecodeTextUnknownFallback(t *testing.T) {
	_, _, err := decodeText([]byte{0xE9}, "no-such-charset")
	assert.ErrorContains(t, err, "unknown fallback encoding")
}
