package routepattern

import "strings"

// PatternList is the compiled form of a route pattern. Items are in source
// order, which is also the order path segments are matched in.
type PatternList []PatternItem

// PatternItem is one of Text, Separator or Placeholder.
type PatternItem interface {
	// String returns the pattern source for the item.
	String() string

	patternItem()
}

// Text is literal match text.
type Text struct {
	Value string
}

func (Text) patternItem() {}

func (t Text) String() string {
	return t.Value
}

// Separator is a "/" boundary.
type Separator struct{}

func (Separator) patternItem() {}

func (Separator) String() string {
	return "/"
}

type PlaceholderKind uint8

const (
	// Required placeholders must match non-empty text: {name} or {name/regex/}.
	Required PlaceholderKind = iota
	// Optional placeholders may be absent: {+name} or {+name/regex/}.
	Optional
	// Absorbing placeholders capture the rest of the path: {*name}.
	Absorbing
)

func (k PlaceholderKind) String() string {
	switch k {
	case Optional:
		return "optional"
	case Absorbing:
		return "absorbing"
	default:
		return "required"
	}
}

// Placeholder is a named capture point.
type Placeholder struct {
	Kind       PlaceholderKind
	Identifier string
	// Regex constrains the captured text. It is always empty for Absorbing
	// placeholders; for the other kinds the empty string means the default
	// placeholder text class.
	Regex string
}

func (Placeholder) patternItem() {}

func (p Placeholder) String() string {
	var b strings.Builder

	b.WriteByte('{')
	switch p.Kind {
	case Optional:
		b.WriteByte('+')
	case Absorbing:
		b.WriteByte('*')
	}
	b.WriteString(p.Identifier)
	if p.Kind != Absorbing && p.Regex != "" {
		b.WriteByte('/')
		b.WriteString(escapeRegexText(p.Regex))
		b.WriteByte('/')
	}
	b.WriteByte('}')

	return b.String()
}

// String reconstructs the pattern by walking the items left to right.
func (pl PatternList) String() string {
	var b strings.Builder
	for _, item := range pl {
		b.WriteString(item.String())
	}

	return b.String()
}

// Placeholders returns the placeholders of the list in source order.
func (pl PatternList) Placeholders() []Placeholder {
	var placeholders []Placeholder
	for _, item := range pl {
		if p, ok := item.(Placeholder); ok {
			placeholders = append(placeholders, p)
		}
	}

	return placeholders
}

// Identifiers returns the placeholder identifiers in source order.
func (pl PatternList) Identifiers() []string {
	placeholders := pl.Placeholders()
	identifiers := make([]string, 0, len(placeholders))
	for _, p := range placeholders {
		identifiers = append(identifiers, p.Identifier)
	}

	return identifiers
}
