// Package routepattern compiles route patterns such as "/users/{id/[0-9]+/}"
// into a list of literal text, separators and placeholders.
//
// Placeholders come in three kinds: {name} and {name/regex/} are required,
// {+name} and {+name/regex/} are optional, and {*name} absorbs the rest of
// the path. Inside a regex, "/" and "\" must be escaped with a backslash.
//
// Malformed patterns do not make parsing fail. The parser records a
// Diagnostic with the column of the problem, skips to a recovery point and
// carries on, so callers always get a best-effort PatternList.
package routepattern

// Parse compiles pattern with a fresh Scanner and Parser.
func Parse(pattern string) (PatternList, []Diagnostic) {
	p := NewParser(NewScanner(pattern))
	list := p.Parse()

	return list, p.Diagnostics()
}
