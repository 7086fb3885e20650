package routepattern

import (
	"fmt"
	"unicode/utf8"
)

// Token is a classified lexical unit produced by the Scanner.
type Token struct {
	Kind  TokenKind
	Value string
	// Escapes is the number of backslash escapes stripped from Value (TokenRegexText only).
	Escapes int
}

// Len returns the number of characters consumed from the input to produce the token.
func (t Token) Len() int {
	switch t.Kind {
	case TokenEnd:
		return 0
	case TokenMatchText, TokenIdentifierText, TokenRegexText:
		return utf8.RuneCountInString(t.Value) + t.Escapes
	default:
		return 1
	}
}

func (t Token) String() string {
	switch t.Kind {
	case TokenMatchText, TokenIdentifierText, TokenRegexText:
		return fmt.Sprintf("%s (%s)", t.Kind, t.Value)
	default:
		return t.Kind.String()
	}
}

type TokenKind uint8

const (
	// TokenText is returned by Peek for any character without syntactic meaning.
	// It cannot be matched, callers must request one of the text kinds below.
	TokenText TokenKind = iota
	// TokenSlash represents a U+002F (/) code point.
	TokenSlash
	// TokenOpeningBrace represents a U+007B ({) code point.
	TokenOpeningBrace
	// TokenClosingBrace represents a U+007D (}) code point.
	TokenClosingBrace
	// TokenPlusSign represents a U+002B (+) code point.
	TokenPlusSign
	// TokenAsterisk represents a U+002A (*) code point.
	TokenAsterisk
	// TokenEnd represents the end of the pattern string.
	TokenEnd
	// TokenMatchText represents a maximal run of literal path characters.
	TokenMatchText
	// TokenIdentifierText represents a maximal run matching [A-Za-z_][A-Za-z0-9_]*.
	TokenIdentifierText
	// TokenRegexText represents a run of characters up to the next unescaped slash. The escaping backslashes of "\/" and "\\" are not part of the value.
	TokenRegexText
)

var tokenKindNames = [...]string{
	TokenText:           "T_TEXT",
	TokenSlash:          "T_SLASH",
	TokenOpeningBrace:   "T_OPENING_BRACE",
	TokenClosingBrace:   "T_CLOSING_BRACE",
	TokenPlusSign:       "T_PLUS_SIGN",
	TokenAsterisk:       "T_ASTERISK",
	TokenEnd:            "T_END",
	TokenMatchText:      "T_MATCH_TEXT",
	TokenIdentifierText: "T_IDENTIFIER_TEXT",
	TokenRegexText:      "T_REGEX_TEXT",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}

	return fmt.Sprintf("TokenKind(%d)", k)
}
