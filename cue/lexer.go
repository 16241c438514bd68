// Package cue tokenizes cue sheets and parses the token stream into
// typed commands. It is the syntactic half of the pipeline; the
// tracklist package reconstructs album structure from the commands
// this package produces.
//
// The [Hydrogenaudio Knowledgebase] describes the cue sheet format.
//
// [Hydrogenaudio Knowledgebase]: https://wiki.hydrogenaud.io/index.php?title=Cue_sheet
package cue

import "unicode"

// reader is a cursor over the rune sequence of the input. Recognizers
// peek ahead and only commit the cursor on a match.
type reader struct {
	runes []rune
	pos   int
}

// isSpace is [unicode.IsSpace] extended with the byte order mark,
// which some rippers emit and which is ignorable anywhere.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (r *reader) available() bool {
	return r.pos < len(r.runes)
}

// peek returns the next n runes without advancing, and false if fewer
// than n remain.
func (r *reader) peek(n int) ([]rune, bool) {
	if r.pos+n > len(r.runes) {
		return nil, false
	}
	return r.runes[r.pos : r.pos+n], true
}

func (r *reader) skipSpace() {
	for r.available() && isSpace(r.runes[r.pos]) {
		r.pos++
	}
}

// tryTime recognizes the strict 8-character `mm:ss:ff` timecode form.
func (r *reader) tryTime() (Time, bool) {
	next, ok := r.peek(8)
	if !ok {
		return Time{}, false
	}
	t, err := ParseTime(string(next))
	if err != nil {
		return Time{}, false
	}
	r.pos += 8
	return t, true
}

// tryNumber recognizes a run of exactly two digits followed by
// whitespace or end of input. Longer digit runs (an 8-character hex
// disc ID, say) must fall through to the string recognizer.
func (r *reader) tryNumber() (int, bool) {
	next, ok := r.peek(2)
	if !ok || !isDigit(next[0]) || !isDigit(next[1]) {
		return 0, false
	}
	if boundary, ok := r.peek(3); ok && !isSpace(boundary[2]) {
		return 0, false
	}
	r.pos += 2
	return int(next[0]-'0')*10 + int(next[1]-'0'), true
}

// takeString consumes either a double-quote-delimited run (an embedded
// quote is illegal, not an escape) or a maximal run of non-whitespace
// characters.
func (r *reader) takeString() (string, error) {
	quoted := r.runes[r.pos] == '"'
	if quoted {
		r.pos++
	}
	start := r.pos
	for r.available() {
		c := r.runes[r.pos]
		if c == '"' {
			if !quoted {
				return "", ErrQuoteInWord
			}
			s := string(r.runes[start:r.pos])
			r.pos++
			return s, nil
		}
		if !quoted && isSpace(c) {
			break
		}
		r.pos++
	}
	if quoted {
		return "", ErrUnterminatedQuote
	}
	return string(r.runes[start:r.pos]), nil
}

// Tokenize converts a cue sheet into its flat token sequence. Token
// order matches input order. Recognizers are tried in priority order
// (time, number, string) rather than by longest match; see the
// documentation on the Token kinds for why.
func Tokenize(source string) ([]Token, error) {
	r := reader{runes: []rune(source)}
	var tokens []Token

	r.skipSpace()
	for r.available() {
		if t, ok := r.tryTime(); ok {
			tokens = append(tokens, TimeToken(t))
		} else if n, ok := r.tryNumber(); ok {
			tokens = append(tokens, NumberToken(n))
		} else {
			s, err := r.takeString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, StringToken(s))
		}
		r.skipSpace()
	}

	return tokens, nil
}
