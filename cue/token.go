package cue

import "fmt"

// TokenKind discriminates the members of the Token union.
type TokenKind int

const (
	// TokenString is any bare or quoted run of text. Keywords and
	// numbers longer than two digits all lex as strings.
	TokenString TokenKind = iota

	// TokenNumber is an integer of exactly two digits.
	TokenNumber

	// TokenTime is a position in the 8-character `mm:ss:ff` form.
	TokenTime
)

func (k TokenKind) String() string {
	switch k {
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenTime:
		return "time"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is one lexical element of a cue sheet. Only the field selected
// by Kind is meaningful. Tokens carry no source position; the grammar
// is order-driven.
type Token struct {
	Kind TokenKind
	Str  string
	Num  int
	Time Time
}

// StringToken, NumberToken and TimeToken construct tokens of the
// respective kinds.
func StringToken(s string) Token { return Token{Kind: TokenString, Str: s} }
func NumberToken(n int) Token    { return Token{Kind: TokenNumber, Num: n} }
func TimeToken(t Time) Token     { return Token{Kind: TokenTime, Time: t} }

func (t Token) String() string {
	switch t.Kind {
	case TokenString:
		return fmt.Sprintf("string %q", t.Str)
	case TokenNumber:
		return fmt.Sprintf("number %02d", t.Num)
	case TokenTime:
		return fmt.Sprintf("time %v", t.Time)
	default:
		return fmt.Sprintf("Token(%d)", int(t.Kind))
	}
}
