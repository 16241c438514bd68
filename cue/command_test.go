package cue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, source string) []Command {
	t.Helper()
	tokens, err := Tokenize(source)
	require.NoError(t, err)
	commands, err := ParseCommands(tokens)
	require.NoError(t, err)
	return commands
}

func TestParseCommandsHeader(t *testing.T) {
	commands := parseSource(t, `
		REM GENRE Alternative
		REM DATE 1991
		REM DISCID 860B640B
		PERFORMER "My Bloody Valentine"
		TITLE "Loveless"
		FILE "My Bloody Valentine - Loveless.wav" WAVE`)

	assert.Equal(t, []Command{
		Rem{Key: "GENRE", Value: StringToken("Alternative")},
		Rem{Key: "DATE", Value: StringToken("1991")},
		Rem{Key: "DISCID", Value: StringToken("860B640B")},
		Performer{Name: "My Bloody Valentine"},
		Title{Name: "Loveless"},
		File{Path: "My Bloody Valentine - Loveless.wav", Format: Wave},
	}, commands)
}

func TestParseCommandsKeywordsCaseInsensitive(t *testing.T) {
	commands := parseSource(t, `title "Loveless" pErFoRmEr mbv`)
	assert.Equal(t, []Command{
		Title{Name: "Loveless"},
		Performer{Name: "mbv"},
	}, commands)
}

func TestParseTrackAndIndex(t *testing.T) {
	commands := parseSource(t, `
		TRACK 01 AUDIO
		INDEX 01 00:00:00
		TRACK 02 MODE2/2336
		INDEX 00 04:15:20
		INDEX 01 04:17:52`)

	assert.Equal(t, []Command{
		Track{Number: 1, Type: Audio},
		Index{Number: 1, Time: Time{}},
		Track{Number: 2, Type: Mode(2, 2336)},
		Index{Number: 0, Time: Time{Min: 4, Sec: 15, Frame: 20}},
		Index{Number: 1, Time: Time{Min: 4, Sec: 17, Frame: 52}},
	}, commands)
}

func TestParseGapsAndCdText(t *testing.T) {
	commands := parseSource(t, `
		CATALOG 83
		CDTEXTFILE "disc.cdt"
		ISRC USSM19904913
		SONGWRITER "K. Shields"
		PREGAP 00:02:00
		POSTGAP 00:01:00`)

	assert.Equal(t, []Command{
		Catalog{Code: "0000000000083"},
		CdTextFile{Path: "disc.cdt"},
		Isrc{Code: "USSM19904913"},
		Songwriter{Name: "K. Shields"},
		Pregap{Duration: Time{Sec: 2}},
		Postgap{Duration: Time{Sec: 1}},
	}, commands)
}

func TestParseFlags(t *testing.T) {
	commands := parseSource(t, `FLAGS DCP 4CH PRE SCMS TITLE "x"`)
	assert.Equal(t, []Command{
		Flags{Flags: []TrackFlag{Dcp, FourChannel, Pre, Scms}},
		Title{Name: "x"},
	}, commands)

	// the non-flag lookahead token is pushed back, even at a kind boundary
	commands = parseSource(t, `FLAGS PRE INDEX 01 00:00:00`)
	assert.Equal(t, []Command{
		Flags{Flags: []TrackFlag{Pre}},
		Index{Number: 1, Time: Time{}},
	}, commands)
}

func TestParseFlagsEmpty(t *testing.T) {
	tokens, err := Tokenize(`FLAGS INDEX 01 00:00:00`)
	require.NoError(t, err)
	_, err = ParseCommands(tokens)

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, ErrEmptyFlags, syntaxErr.Kind)
}

func TestParseRemKeepsRawToken(t *testing.T) {
	commands := parseSource(t, `REM LENGTH 03:45:00 REM TRACKS 12`)
	assert.Equal(t, []Command{
		Rem{Key: "LENGTH", Value: TimeToken(Time{Min: 3, Sec: 45})},
		Rem{Key: "TRACKS", Value: NumberToken(12)},
	}, commands)
}

func TestParseCommandsSyntaxErrors(t *testing.T) {
	cases := []struct {
		name   string
		source string
		kind   SyntaxErrorKind
	}{
		{"stream exhausted mid-command", `INDEX 01`, ErrUnexpectedEnd},
		{"wrong token kind", `INDEX xx 00:00:00`, ErrWrongTokenKind},
		{"unknown keyword", `BOGUS 01`, ErrUnknownKeyword},
		{"bad file format", `FILE "a.wav" OGG`, ErrBadLiteral},
		{"bad track type", `TRACK 01 WEIRD`, ErrBadLiteral},
		{"keyword slot not a string", `00:00:00`, ErrWrongTokenKind},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Tokenize(tc.source)
			require.NoError(t, err)
			_, err = ParseCommands(tokens)

			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, tc.kind, syntaxErr.Kind)
		})
	}
}

func TestParseEnums(t *testing.T) {
	format, err := ParseFileFormat("wave")
	require.NoError(t, err)
	assert.Equal(t, Wave, format)

	_, err = ParseFileFormat("OGG")
	assert.Error(t, err)

	trackType, err := ParseTrackType("MODE1/2048")
	require.NoError(t, err)
	assert.Equal(t, Mode(1, 2048), trackType)
	assert.Equal(t, "MODE1/2048", trackType.String())

	trackType, err = ParseTrackType("CDI/2352")
	require.NoError(t, err)
	assert.Equal(t, Cdi(2352), trackType)

	_, err = ParseTrackType("MODE3/2048")
	assert.Error(t, err)

	flag, err := ParseTrackFlag("4CH")
	require.NoError(t, err)
	assert.Equal(t, FourChannel, flag)

	_, err = ParseTrackFlag("NOPE")
	assert.Error(t, err)
}
