package cue

import "fmt"

// LexError reports input the tokenizer could not consume.
type LexError int

const (
	// ErrUnterminatedQuote means a quoted string was still open at
	// the end of the input.
	ErrUnterminatedQuote LexError = 1

	// ErrQuoteInWord means a literal `"` appeared inside an unquoted
	// string. The quote character has no escape form in cue sheets.
	ErrQuoteInWord LexError = 2
)

func (e LexError) Error() string {
	return fmt.Sprintf("cue: %v", e.name())
}

func (e LexError) name() string {
	switch e {
	case ErrUnterminatedQuote:
		return "quoted string not closed before end of input"
	case ErrQuoteInWord:
		return `the '"' character is not allowed inside an unquoted string`
	default:
		return fmt.Sprintf("unknown lexical error code: %v", int(e))
	}
}

// SyntaxErrorKind classifies the ways command parsing can fail.
type SyntaxErrorKind int

const (
	// ErrUnexpectedEnd means the token stream ran out mid-command.
	ErrUnexpectedEnd SyntaxErrorKind = 1

	// ErrWrongTokenKind means a token of the wrong kind occupied a
	// grammar slot (e.g. a string where INDEX requires a timecode).
	ErrWrongTokenKind SyntaxErrorKind = 2

	// ErrUnknownKeyword means the leading token of a command is not a
	// recognized cue sheet keyword.
	ErrUnknownKeyword SyntaxErrorKind = 3

	// ErrBadLiteral means a string token failed its sub-parse into an
	// enum value (file format, track type, track flag).
	ErrBadLiteral SyntaxErrorKind = 4

	// ErrEmptyFlags means a FLAGS command was not followed by at
	// least one recognizable track flag.
	ErrEmptyFlags SyntaxErrorKind = 5
)

// SyntaxError reports a grammar violation in the token stream.
// Keyword names the command being parsed where one had been read.
// Found is the offending token, nil when the input ended instead.
type SyntaxError struct {
	Kind     SyntaxErrorKind
	Keyword  string
	Expected TokenKind
	Found    *Token

	err error
}

func (e *SyntaxError) Error() string {
	where := ""
	if e.Keyword != "" {
		where = fmt.Sprintf(" in %v command", e.Keyword)
	}
	switch e.Kind {
	case ErrUnexpectedEnd:
		return fmt.Sprintf("cue: unexpected end of input%v", where)
	case ErrWrongTokenKind:
		return fmt.Sprintf("cue: expected %v%v but found %v", e.Expected, where, e.Found)
	case ErrUnknownKeyword:
		return fmt.Sprintf("cue: unknown keyword %q", e.Keyword)
	case ErrBadLiteral:
		return fmt.Sprintf("cue: invalid literal%v: %v", where, e.err)
	case ErrEmptyFlags:
		return "cue: FLAGS command without any track flag"
	default:
		return fmt.Sprintf("cue: unknown syntax error code: %v", int(e.Kind))
	}
}

func (e *SyntaxError) Unwrap() error { return e.err }
