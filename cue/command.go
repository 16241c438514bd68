package cue

import (
	"fmt"
	"strings"
)

// Command is one grammar element of a cue sheet. The concrete types
// below are the closed set of variants; order of commands in the
// parsed sequence is semantically significant (a Title before any File
// names the album, one after a Track names that track).
type Command interface {
	isCommand()
}

// Catalog is a 13-digit UPC/EAN code.
type Catalog struct{ Code string }

// CdTextFile is a path to a file containing CD-Text info.
type CdTextFile struct{ Path string }

// File is a path to a file containing audio data, to which subsequent
// commands apply.
type File struct {
	Path   string
	Format FileFormat
}

// Flags is a set of per-track subcode flags.
type Flags struct{ Flags []TrackFlag }

// Index is a named time offset within a track. By convention index 0
// is the pregap start and index 1 the track start.
type Index struct {
	Number int
	Time   Time
}

// Isrc is a per-track ISRC code.
type Isrc struct{ Code string }

// Performer is a per-disc or per-track performer name.
type Performer struct{ Name string }

// Postgap is the amount of post-track silence to add.
type Postgap struct{ Duration Time }

// Pregap is the amount of pre-track silence to add.
type Pregap struct{ Duration Time }

// Rem is a remark. The value token is kept verbatim, not reinterpreted.
type Rem struct {
	Key   string
	Value Token
}

// Songwriter is a per-disc or per-track songwriter name.
type Songwriter struct{ Name string }

// Title is a per-disc or per-track title.
type Title struct{ Name string }

// Track declares the type of track to create, to which subsequent
// commands apply.
type Track struct {
	Number int
	Type   TrackType
}

func (Catalog) isCommand()    {}
func (CdTextFile) isCommand() {}
func (File) isCommand()       {}
func (Flags) isCommand()      {}
func (Index) isCommand()      {}
func (Isrc) isCommand()       {}
func (Performer) isCommand()  {}
func (Postgap) isCommand()    {}
func (Pregap) isCommand()     {}
func (Rem) isCommand()        {}
func (Songwriter) isCommand() {}
func (Title) isCommand()      {}
func (Track) isCommand()      {}

// tokenCursor walks the token sequence left to right. Commands consume
// tokens strictly in order; the only pushback is the bounded one-token
// lookahead FLAGS needs to find its end.
type tokenCursor struct {
	tokens []Token
	pos    int
}

func (c *tokenCursor) remaining() bool {
	return c.pos < len(c.tokens)
}

func (c *tokenCursor) next() (Token, bool) {
	if !c.remaining() {
		return Token{}, false
	}
	t := c.tokens[c.pos]
	c.pos++
	return t, true
}

func (c *tokenCursor) backup() {
	c.pos--
}

func (c *tokenCursor) take(keyword string, kind TokenKind) (Token, error) {
	t, ok := c.next()
	if !ok {
		return Token{}, &SyntaxError{Kind: ErrUnexpectedEnd, Keyword: keyword, Expected: kind}
	}
	if t.Kind != kind {
		return Token{}, &SyntaxError{Kind: ErrWrongTokenKind, Keyword: keyword, Expected: kind, Found: &t}
	}
	return t, nil
}

func (c *tokenCursor) takeString(keyword string) (string, error) {
	t, err := c.take(keyword, TokenString)
	return t.Str, err
}

func (c *tokenCursor) takeNumber(keyword string) (int, error) {
	t, err := c.take(keyword, TokenNumber)
	return t.Num, err
}

func (c *tokenCursor) takeTime(keyword string) (Time, error) {
	t, err := c.take(keyword, TokenTime)
	return t.Time, err
}

// ParseCommands groups the token sequence into one Command per grammar
// rule, in input order, draining the sequence completely.
func ParseCommands(tokens []Token) ([]Command, error) {
	cur := &tokenCursor{tokens: tokens}
	var commands []Command
	for cur.remaining() {
		cmd, err := parseCommand(cur)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}

func parseCommand(cur *tokenCursor) (Command, error) {
	keyword, err := cur.takeString("")
	if err != nil {
		return nil, err
	}

	keyword = strings.ToUpper(keyword)
	switch keyword {
	case "CATALOG":
		n, err := cur.takeNumber(keyword)
		if err != nil {
			return nil, err
		}
		return Catalog{Code: fmt.Sprintf("%013d", n)}, nil

	case "CDTEXTFILE":
		path, err := cur.takeString(keyword)
		if err != nil {
			return nil, err
		}
		return CdTextFile{Path: path}, nil

	case "FILE":
		path, err := cur.takeString(keyword)
		if err != nil {
			return nil, err
		}
		formatStr, err := cur.takeString(keyword)
		if err != nil {
			return nil, err
		}
		format, err := ParseFileFormat(formatStr)
		if err != nil {
			return nil, &SyntaxError{Kind: ErrBadLiteral, Keyword: keyword, err: err}
		}
		return File{Path: path, Format: format}, nil

	case "FLAGS":
		return parseFlags(cur)

	case "INDEX":
		number, err := cur.takeNumber(keyword)
		if err != nil {
			return nil, err
		}
		time, err := cur.takeTime(keyword)
		if err != nil {
			return nil, err
		}
		return Index{Number: number, Time: time}, nil

	case "ISRC":
		code, err := cur.takeString(keyword)
		if err != nil {
			return nil, err
		}
		return Isrc{Code: code}, nil

	case "PERFORMER":
		name, err := cur.takeString(keyword)
		if err != nil {
			return nil, err
		}
		return Performer{Name: name}, nil

	case "POSTGAP":
		d, err := cur.takeTime(keyword)
		if err != nil {
			return nil, err
		}
		return Postgap{Duration: d}, nil

	case "PREGAP":
		d, err := cur.takeTime(keyword)
		if err != nil {
			return nil, err
		}
		return Pregap{Duration: d}, nil

	case "REM":
		key, err := cur.takeString(keyword)
		if err != nil {
			return nil, err
		}
		value, ok := cur.next()
		if !ok {
			return nil, &SyntaxError{Kind: ErrUnexpectedEnd, Keyword: keyword}
		}
		return Rem{Key: key, Value: value}, nil

	case "SONGWRITER":
		name, err := cur.takeString(keyword)
		if err != nil {
			return nil, err
		}
		return Songwriter{Name: name}, nil

	case "TITLE":
		name, err := cur.takeString(keyword)
		if err != nil {
			return nil, err
		}
		return Title{Name: name}, nil

	case "TRACK":
		number, err := cur.takeNumber(keyword)
		if err != nil {
			return nil, err
		}
		typeStr, err := cur.takeString(keyword)
		if err != nil {
			return nil, err
		}
		trackType, err := ParseTrackType(typeStr)
		if err != nil {
			return nil, &SyntaxError{Kind: ErrBadLiteral, Keyword: keyword, err: err}
		}
		return Track{Number: number, Type: trackType}, nil

	default:
		return nil, &SyntaxError{Kind: ErrUnknownKeyword, Keyword: keyword}
	}
}

// parseFlags greedily consumes string tokens that parse as track
// flags, pushing the first non-matching token back for the next
// command. At least one flag is required.
func parseFlags(cur *tokenCursor) (Command, error) {
	var flags []TrackFlag
	for {
		t, ok := cur.next()
		if !ok {
			break
		}
		if t.Kind != TokenString {
			cur.backup()
			break
		}
		flag, err := ParseTrackFlag(t.Str)
		if err != nil {
			cur.backup()
			break
		}
		flags = append(flags, flag)
	}
	if len(flags) == 0 {
		return nil, &SyntaxError{Kind: ErrEmptyFlags, Keyword: "FLAGS"}
	}
	return Flags{Flags: flags}, nil
}
