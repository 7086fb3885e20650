package routetable

import (
	"fmt"
	"io"
	"strings"

	"github.com/dunglas/go-routepattern"
)

// Render writes every diagnostic of r followed by the pattern and a caret
// pointing at the column.
func Render(w io.Writer, r CompiledRoute) error {
	for _, d := range r.Diagnostics {
		if _, err := fmt.Fprintf(w, "Column %d: %s\n%s\n%s\n", d.Column, d.Message(), r.Route.URL, routepattern.CaretLine(d.Column)); err != nil {
			return err
		}
	}

	return nil
}

// Report renders the diagnostics of all routes, each block introduced by the
// route name, and returns how many routes had diagnostics.
func Report(w io.Writer, routes []CompiledRoute) (int, error) {
	failed := 0
	for i, r := range routes {
		if r.OK() {
			continue
		}
		failed++

		name := r.Route.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if _, err := fmt.Fprintf(w, "route %s:\n", name); err != nil {
			return failed, err
		}
		if err := Render(w, r); err != nil {
			return failed, err
		}
	}

	return failed, nil
}

// Describe returns a one-line, human-readable description of item.
func Describe(item routepattern.PatternItem) string {
	switch item := item.(type) {
	case routepattern.Text:
		return fmt.Sprintf("text %q", item.Value)

	case routepattern.Separator:
		return "separator"

	case routepattern.Placeholder:
		var b strings.Builder
		fmt.Fprintf(&b, "%s placeholder %s", item.Kind, item.Identifier)
		if item.Regex != "" {
			fmt.Fprintf(&b, " matching %q", item.Regex)
		}

		return b.String()

	default:
		return fmt.Sprintf("%T", item)
	}
}
