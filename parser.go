package routepattern

import "errors"

// outcome tells the caller of a production how the list should continue.
type outcome uint8

const (
	// itemParsed means an item was recognized and must be appended.
	itemParsed outcome = iota
	// itemRecovered means the item was malformed, a diagnostic was recorded and
	// the scanner was moved to a recovery point. Nothing is appended.
	itemRecovered
	// itemFatal means the list cannot continue. The item, if any, is still appended.
	itemFatal
)

// Parser is a recursive-descent parser for route patterns.
//
//	pattern_list := pattern_item pattern_list | ε
//	pattern_item := MatchText | Slash | OpeningBrace placeholder ClosingBrace
//	placeholder  := PlusSign IdentifierText regex_suffix
//	              | Asterisk IdentifierText
//	              | IdentifierText regex_suffix
//	regex_suffix := Slash RegexText Slash | ε
//
// Syntax errors never stop Parse: they are recorded as diagnostics and
// parsing resumes at the next recovery point. A Parser is single-use.
type Parser struct {
	scanner     *Scanner
	diagnostics []Diagnostic
	result      PatternList
	parsed      bool
}

func NewParser(scanner *Scanner) *Parser {
	return &Parser{scanner: scanner}
}

// Parse returns the items recognized in the pattern. The result is never nil,
// even when diagnostics were recorded.
//
// Calling Parse again returns the same list without scanning anything.
func (p *Parser) Parse() PatternList {
	if p.parsed {
		return p.result
	}
	p.parsed = true

	list, ok := p.parseList()
	if ok && p.scanner.Match(TokenEnd) == nil {
		p.addDiagnostic(MissingEndError)
	}

	p.result = list

	return list
}

// Diagnostics returns the diagnostics recorded by Parse, in the order they
// were detected.
func (p *Parser) Diagnostics() []Diagnostic {
	diagnostics := make([]Diagnostic, len(p.diagnostics))
	copy(diagnostics, p.diagnostics)

	return diagnostics
}

// Err returns the diagnostics joined into a single error, or nil if there are none.
func (p *Parser) Err() error {
	errs := make([]error, 0, len(p.diagnostics))
	for _, d := range p.diagnostics {
		errs = append(errs, d)
	}

	return errors.Join(errs...)
}

func (p *Parser) addDiagnostic(err error) {
	p.diagnostics = append(p.diagnostics, Diagnostic{Column: p.scanner.Position(), Err: err})
}

// parseList reports false when the list was terminated by an error.
func (p *Parser) parseList() (PatternList, bool) {
	list := PatternList{}

	for {
		switch p.scanner.Peek() {
		case TokenEnd:
			return list, true

		// "+" and "*" are match text outside of a placeholder.
		case TokenText, TokenPlusSign, TokenAsterisk, TokenSlash, TokenOpeningBrace:
			item, o := p.parseItem()
			if item != nil {
				list = append(list, item)
			}
			if o == itemFatal {
				return list, false
			}

		default:
			p.addDiagnostic(UnidentifiedTextError)

			return list, false
		}
	}
}

func (p *Parser) parseItem() (PatternItem, outcome) {
	switch p.scanner.Peek() {
	case TokenSlash:
		p.scanner.Match(TokenSlash)

		return Separator{}, itemParsed

	case TokenOpeningBrace:
		p.scanner.Match(TokenOpeningBrace)

		placeholder, ok := p.parsePlaceholder()
		if !ok {
			p.scanner.AdvancePastClosingBrace()

			return nil, itemRecovered
		}

		if p.scanner.Match(TokenClosingBrace) == nil {
			p.addDiagnostic(MissingClosingBraceError)

			return placeholder, itemFatal
		}

		return placeholder, itemParsed

	default:
		t := p.scanner.Match(TokenMatchText)
		if t == nil {
			p.addDiagnostic(UnexpectedMatchTextError)
			p.scanner.AdvanceOneCharacter()

			return nil, itemRecovered
		}

		return Text{Value: t.Value}, itemParsed
	}
}

func (p *Parser) parsePlaceholder() (Placeholder, bool) {
	switch p.scanner.Peek() {
	case TokenPlusSign:
		p.scanner.Match(TokenPlusSign)

		identifier := p.scanner.Match(TokenIdentifierText)
		if identifier == nil {
			p.addDiagnostic(MissingIdentifierError)

			return Placeholder{}, false
		}

		regex, ok := p.parseRegexSuffix()
		if !ok {
			return Placeholder{}, false
		}

		return Placeholder{Kind: Optional, Identifier: identifier.Value, Regex: regex}, true

	case TokenAsterisk:
		p.scanner.Match(TokenAsterisk)

		identifier := p.scanner.Match(TokenIdentifierText)
		if identifier == nil {
			p.addDiagnostic(MissingIdentifierError)

			return Placeholder{}, false
		}

		return Placeholder{Kind: Absorbing, Identifier: identifier.Value}, true

	default:
		identifier := p.scanner.Match(TokenIdentifierText)
		if identifier == nil {
			p.addDiagnostic(MissingRequiredIdentifierError)

			return Placeholder{}, false
		}

		regex, ok := p.parseRegexSuffix()
		if !ok {
			return Placeholder{}, false
		}

		return Placeholder{Kind: Required, Identifier: identifier.Value, Regex: regex}, true
	}
}

// parseRegexSuffix accepts an empty suffix only before "}" or at the end of
// the input, where the missing "}" is reported by parseItem.
func (p *Parser) parseRegexSuffix() (string, bool) {
	switch p.scanner.Peek() {
	case TokenSlash:
		p.scanner.Match(TokenSlash)

		regex := p.scanner.Match(TokenRegexText)
		if regex == nil {
			p.addDiagnostic(MissingRegexError)

			return "", false
		}

		if p.scanner.Match(TokenSlash) == nil {
			p.addDiagnostic(MissingRegexDelimiterError)

			return "", false
		}

		return regex.Value, true

	case TokenClosingBrace, TokenEnd:
		return "", true

	default:
		p.addDiagnostic(MissingRegexOrCloseError)

		return "", false
	}
}
