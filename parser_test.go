package routepattern_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/dunglas/go-routepattern"
)

type diagnostic struct {
	Column  int
	Message string
}

func simplify(diagnostics []routepattern.Diagnostic) []diagnostic {
	result := make([]diagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		result = append(result, diagnostic{Column: d.Column, Message: d.Message()})
	}

	return result
}

func required(identifier, regex string) routepattern.Placeholder {
	return routepattern.Placeholder{Kind: routepattern.Required, Identifier: identifier, Regex: regex}
}

func text(value string) routepattern.Text {
	return routepattern.Text{Value: value}
}

var sep = routepattern.Separator{}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		name        string
		pattern     string
		list        routepattern.PatternList
		diagnostics []diagnostic
	}{
		{
			name:    "empty",
			pattern: "",
			list:    routepattern.PatternList{},
		},
		{
			name:    "required placeholder",
			pattern: "/users/{id}",
			list:    routepattern.PatternList{sep, text("users"), sep, required("id", "")},
		},
		{
			name:    "regex",
			pattern: "{id/[0-9]+/}",
			list:    routepattern.PatternList{required("id", "[0-9]+")},
		},
		{
			name:    "optional placeholder",
			pattern: "{+path}",
			list: routepattern.PatternList{
				routepattern.Placeholder{Kind: routepattern.Optional, Identifier: "path"},
			},
		},
		{
			name:    "optional placeholder with regex",
			pattern: `/files{+ext/\\.[a-z]+/}`,
			list: routepattern.PatternList{
				sep,
				text("files"),
				routepattern.Placeholder{Kind: routepattern.Optional, Identifier: "ext", Regex: `\.[a-z]+`},
			},
		},
		{
			name:    "absorbing placeholder",
			pattern: "{*rest}",
			list: routepattern.PatternList{
				routepattern.Placeholder{Kind: routepattern.Absorbing, Identifier: "rest"},
			},
		},
		{
			name:    "escaped regex",
			pattern: `{id/\/\\/}`,
			list:    routepattern.PatternList{required("id", `/\`)},
		},
		{
			name:    "plus and asterisk are match text outside placeholders",
			pattern: "+x/*y",
			list:    routepattern.PatternList{text("+x"), sep, text("*y")},
		},
		{
			name:    "adjacent placeholders",
			pattern: "/{a}{_b2}",
			list:    routepattern.PatternList{sep, required("a", ""), required("_b2", "")},
		},
		{
			name:        "missing closing brace keeps the placeholder",
			pattern:     "{id",
			list:        routepattern.PatternList{required("id", "")},
			diagnostics: []diagnostic{{4, "Did not find expected }"}},
		},
		{
			name:        "missing closing brace ends the list",
			pattern:     "{*rest/x/}/more",
			list:        routepattern.PatternList{routepattern.Placeholder{Kind: routepattern.Absorbing, Identifier: "rest"}},
			diagnostics: []diagnostic{{7, "Did not find expected }"}},
		},
		{
			name:        "missing identifier resumes after the brace",
			pattern:     "{/id}/users",
			list:        routepattern.PatternList{sep, text("users")},
			diagnostics: []diagnostic{{2, "Did not find expected identifer"}},
		},
		{
			name:        "empty placeholder",
			pattern:     "{}{id}",
			list:        routepattern.PatternList{required("id", "")},
			diagnostics: []diagnostic{{2, "Did not find expected identifer"}},
		},
		{
			name:        "missing optional identifier",
			pattern:     "{+/x/}/a",
			list:        routepattern.PatternList{sep, text("a")},
			diagnostics: []diagnostic{{3, "Did not find expected identifier"}},
		},
		{
			name:        "missing absorbing identifier",
			pattern:     "{*}",
			list:        routepattern.PatternList{},
			diagnostics: []diagnostic{{3, "Did not find expected identifier"}},
		},
		{
			name:        "empty regex",
			pattern:     "{id//}/a",
			list:        routepattern.PatternList{sep, text("a")},
			diagnostics: []diagnostic{{5, "Did not find expected regex"}},
		},
		{
			name:        "invalid escape in regex",
			pattern:     `{id/a\b/}`,
			list:        routepattern.PatternList{},
			diagnostics: []diagnostic{{7, "Did not find expected regex"}},
		},
		{
			name:        "trailing backslash in regex",
			pattern:     `{id/ab\`,
			list:        routepattern.PatternList{},
			diagnostics: []diagnostic{{8, "Did not find expected regex"}},
		},
		{
			name:        "invalid escape after a brace in regex skips the placeholder",
			pattern:     `{id/a}\x/}b`,
			list:        routepattern.PatternList{text("b")},
			diagnostics: []diagnostic{{8, "Did not find expected regex"}},
		},
		{
			name:        "unterminated regex",
			pattern:     "{id/abc}",
			list:        routepattern.PatternList{},
			diagnostics: []diagnostic{{9, "Did not find expected /"}},
		},
		{
			name:        "neither regex nor closing brace",
			pattern:     "{id:x}/a",
			list:        routepattern.PatternList{sep, text("a")},
			diagnostics: []diagnostic{{4, "Did not find expected regex string or }"}},
		},
		{
			name:        "stray closing brace ends the list",
			pattern:     "abc}def",
			list:        routepattern.PatternList{text("abc")},
			diagnostics: []diagnostic{{4, "Unidentified text in routing string"}},
		},
		{
			name:        "leading closing brace",
			pattern:     "}",
			list:        routepattern.PatternList{},
			diagnostics: []diagnostic{{1, "Unidentified text in routing string"}},
		},
		{
			name:        "unexpected character skips one character",
			pattern:     "a b/c",
			list:        routepattern.PatternList{text("a"), text("b"), sep, text("c")},
			diagnostics: []diagnostic{{2, "Unexpected character in match text"}},
		},
		{
			name:    "columns are counted in characters",
			pattern: "éé}",
			list:    routepattern.PatternList{},
			diagnostics: []diagnostic{
				{1, "Unexpected character in match text"},
				{2, "Unexpected character in match text"},
				{3, "Unidentified text in routing string"},
			},
		},
		{
			name:    "several diagnostics",
			pattern: "/a%b/{1}/{id/x",
			list:    routepattern.PatternList{sep, text("a"), text("b"), sep, sep},
			diagnostics: []diagnostic{
				{3, "Unexpected character in match text"},
				{7, "Did not find expected identifer"},
				{15, "Did not find expected /"},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			list, diagnostics := routepattern.Parse(tc.pattern)

			if list == nil {
				t.Fatal("Parse must never return a nil list")
			}
			if diff := cmp.Diff(tc.list, list); diff != "" {
				t.Errorf("unexpected list for %q (-want +got):\n%s", tc.pattern, diff)
			}
			if diff := cmp.Diff(tc.diagnostics, simplify(diagnostics), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("unexpected diagnostics for %q (-want +got):\n%s", tc.pattern, diff)
			}
		})
	}
}

func TestParseReconstructsInput(t *testing.T) {
	for _, pattern := range []string{
		"/",
		"/users/{id}",
		"/users/{id/[0-9]+/}/posts/{+slug}",
		"/static/{*path}",
		`/{re/a\/b\\c/}`,
		"/~user/!$&'()*+,;=:@-._",
	} {
		list, diagnostics := routepattern.Parse(pattern)
		if len(diagnostics) != 0 {
			t.Errorf("unexpected diagnostics for %q: %v", pattern, diagnostics)

			continue
		}

		if got := list.String(); got != pattern {
			t.Errorf("want %q; got %q", pattern, got)
		}
	}
}

func TestParseMatchTextAndSlashes(t *testing.T) {
	const alphabet = "abcXYZ0189-._~!$&'()*+,;=:@/"

	r := rand.New(rand.NewPCG(1, 2))
	for range 500 {
		var b strings.Builder
		for range r.IntN(20) {
			b.WriteByte(alphabet[r.IntN(len(alphabet))])
		}
		pattern := b.String()

		list, diagnostics := routepattern.Parse(pattern)
		if len(diagnostics) != 0 {
			t.Fatalf("unexpected diagnostics for %q: %v", pattern, diagnostics)
		}
		if got := list.String(); got != pattern {
			t.Fatalf("want %q; got %q", pattern, got)
		}
		for _, item := range list {
			if _, ok := item.(routepattern.Placeholder); ok {
				t.Fatalf("unexpected placeholder in %q", pattern)
			}
		}
	}
}

func TestParserSingleUse(t *testing.T) {
	p := routepattern.NewParser(routepattern.NewScanner("/a}"))

	first := p.Parse()
	second := p.Parse()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second Parse call must return the first result (-first +second):\n%s", diff)
	}
	if n := len(p.Diagnostics()); n != 1 {
		t.Errorf("want 1 diagnostic; got %d", n)
	}
}

func TestParserErr(t *testing.T) {
	p := routepattern.NewParser(routepattern.NewScanner("/users/{id"))
	p.Parse()

	err := p.Err()
	if !errors.Is(err, routepattern.MissingClosingBraceError) {
		t.Fatalf("want MissingClosingBraceError; got %v", err)
	}

	var d routepattern.Diagnostic
	if !errors.As(err, &d) || d.Column != 11 {
		t.Errorf("want a diagnostic at column 11; got %#v", d)
	}
	if got := d.Error(); got != "column 11: Did not find expected }" {
		t.Errorf("unexpected message %q", got)
	}

	ok := routepattern.NewParser(routepattern.NewScanner("/users/{id}"))
	ok.Parse()
	if err := ok.Err(); err != nil {
		t.Errorf("want no error; got %v", err)
	}
}

func TestDiagnosticsAreCopied(t *testing.T) {
	p := routepattern.NewParser(routepattern.NewScanner("}"))
	p.Parse()

	d := p.Diagnostics()
	d[0].Column = 42

	if got := p.Diagnostics()[0].Column; got != 1 {
		t.Errorf("diagnostics must not be mutable by the caller; got column %d", got)
	}
}

func TestPatternListHelpers(t *testing.T) {
	list, _ := routepattern.Parse("/users/{id/[0-9]+/}/files/{*path}")

	want := []string{"id", "path"}
	if diff := cmp.Diff(want, list.Identifiers()); diff != "" {
		t.Errorf("unexpected identifiers (-want +got):\n%s", diff)
	}

	placeholders := list.Placeholders()
	if len(placeholders) != 2 || placeholders[1].Kind != routepattern.Absorbing {
		t.Errorf("unexpected placeholders %#v", placeholders)
	}
	if got := placeholders[0].Kind.String(); got != "required" {
		t.Errorf("want required; got %s", got)
	}
}
