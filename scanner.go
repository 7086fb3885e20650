package routepattern

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/utf8string"
)

// Scanner is a forward-only cursor over a route pattern.
//
// Positions are counted in characters, not bytes, so that columns reported in
// diagnostics line up with what a user sees. A Scanner is single-use.
type Scanner struct {
	input    *utf8string.String
	length   int
	position int
}

// NewScanner returns a Scanner positioned at the first character of input.
func NewScanner(input string) *Scanner {
	s := utf8string.NewString(input)

	return &Scanner{input: s, length: s.RuneCount()}
}

// Input returns the pattern being scanned.
func (s *Scanner) Input() string {
	return s.input.String()
}

// Position returns the current 1-based column.
func (s *Scanner) Position() int {
	return s.position + 1
}

// Peek classifies the next character without consuming it.
func (s *Scanner) Peek() TokenKind {
	if !s.hasCharacter() {
		return TokenEnd
	}

	switch s.input.At(s.position) {
	case '{':
		return TokenOpeningBrace
	case '}':
		return TokenClosingBrace
	case '+':
		return TokenPlusSign
	case '*':
		return TokenAsterisk
	case '/':
		return TokenSlash
	default:
		return TokenText
	}
}

// Match consumes a token of the given kind starting at the current position.
// It returns nil when the input does not hold such a token. The position is
// then unchanged, except for TokenRegexText failing on an invalid escape: the
// scanner stays on the character following the backslash, where the problem
// was detected.
func (s *Scanner) Match(kind TokenKind) *Token {
	var t *Token

	switch kind {
	case TokenEnd:
		if s.hasCharacter() {
			return nil
		}

		return &Token{Kind: TokenEnd}

	case TokenSlash, TokenOpeningBrace, TokenClosingBrace, TokenPlusSign, TokenAsterisk:
		if s.Peek() != kind {
			return nil
		}
		t = &Token{Kind: kind}

	case TokenMatchText:
		t = s.scanRun(TokenMatchText, isMatchTextCharacter, isMatchTextCharacter)

	case TokenIdentifierText:
		t = s.scanRun(TokenIdentifierText, isIdentifierStart, isIdentifierPart)

	case TokenRegexText:
		t = s.scanRegex()
	}

	if t == nil {
		return nil
	}

	s.position += t.Len()

	return t
}

// AdvanceOneCharacter skips the character at the current position.
func (s *Scanner) AdvanceOneCharacter() {
	if s.hasCharacter() {
		s.position++
	}
}

// AdvancePastClosingBrace skips up to and including the next "}", or to the
// end of the input if there is none.
func (s *Scanner) AdvancePastClosingBrace() {
	for s.hasCharacter() {
		c := s.input.At(s.position)
		s.position++
		if c == '}' {
			return
		}
	}
}

// CaretLine returns a line with a "^" under the given 1-based column.
func (s *Scanner) CaretLine(column int) string {
	return CaretLine(column)
}

func (s *Scanner) hasCharacter() bool {
	return s.position < s.length
}

// scanRun reads the longest run starting at the current position whose first
// character satisfies first and whose other characters satisfy rest.
func (s *Scanner) scanRun(kind TokenKind, first, rest func(rune) bool) *Token {
	end := s.position

	for end < s.length {
		c := s.input.At(end)
		if end == s.position && !first(c) || end > s.position && !rest(c) {
			break
		}
		end++
	}

	if end == s.position {
		return nil
	}

	return &Token{Kind: kind, Value: s.input.Slice(s.position, end)}
}

func (s *Scanner) scanRegex() *Token {
	var value strings.Builder
	escapes := 0

Loop:
	for i := s.position; i < s.length; i++ {
		c := s.input.At(i)

		switch c {
		case '/':
			break Loop

		case '\\':
			i++
			if i >= s.length {
				s.position = s.length

				return nil
			}

			escaped := s.input.At(i)
			if escaped != '\\' && escaped != '/' {
				s.position = i

				return nil
			}

			value.WriteRune(escaped)
			escapes++

		default:
			value.WriteRune(c)
		}
	}

	if value.Len() == 0 {
		return nil
	}

	return &Token{Kind: TokenRegexText, Value: value.String(), Escapes: escapes}
}

// Adapted from the regexp package: https://cs.opensource.google/go/go/+/refs/tags/go1.23.0:src/regexp/regexp.go;l=705-747

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found at https://go.dev/LICENSE.

// Bitmap used by isMatchTextCharacter.
var matchTextBytes [16]byte

func init() {
	for _, b := range []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~!$&'()*+,;=:@") {
		matchTextBytes[b%16] |= 1 << (b / 16)
	}
}

// isMatchTextCharacter reports whether c may appear in literal path text:
// [A-Za-z0-9\-._~!$&'()*+,;=:@].
func isMatchTextCharacter(c rune) bool {
	return c < utf8.RuneSelf && matchTextBytes[byte(c)%16]&(1<<(byte(c)/16)) != 0
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentifierStart(c rune) bool {
	return isLetter(c) || c == '_'
}

func isIdentifierPart(c rune) bool {
	return isIdentifierStart(c) || (c >= '0' && c <= '9')
}
