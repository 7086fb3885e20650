package routetable

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dunglas/whatwg-url/canonicalizer"
	"github.com/dunglas/whatwg-url/url"
	"gopkg.in/yaml.v3"
)

var (
	InvalidTableError       = errors.New("invalid route table")
	InvalidBaseURLError     = errors.New("invalid base URL")
	DuplicateRouteNameError = errors.New("duplicate route name")
)

var baseURLParser = canonicalizer.New(url.WithFailOnValidationError(), canonicalizer.WithDefaultScheme("http"))

// Route is one entry of a route table.
type Route struct {
	Name    string   `yaml:"name"`
	URL     string   `yaml:"url"`
	Handler string   `yaml:"handler"`
	Methods []string `yaml:"methods,omitempty"`
}

// Table is an ordered collection of routes.
type Table struct {
	// Base is an optional URL the route URLs are relative to. A missing
	// scheme defaults to http.
	Base   string  `yaml:"base,omitempty"`
	Routes []Route `yaml:"routes"`

	// BaseURL is the canonical form of Base, set by Load.
	BaseURL *BaseURL `yaml:"-"`
}

type BaseURL struct {
	Scheme string
	Host   string
	Port   string
	Path   string
}

// Load decodes a YAML route table.
func Load(r io.Reader) (*Table, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var t Table
	if err := decoder.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", InvalidTableError, err)
	}

	if err := t.validate(); err != nil {
		return nil, err
	}

	return &t, nil
}

// LoadFile decodes the YAML route table stored at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

func (t *Table) validate() error {
	names := make(map[string]int, len(t.Routes))
	for i, r := range t.Routes {
		if r.Name == "" {
			continue
		}

		if previous, ok := names[r.Name]; ok {
			return fmt.Errorf("%w: %q (routes %d and %d)", DuplicateRouteNameError, r.Name, previous, i)
		}
		names[r.Name] = i
	}

	if t.Base == "" {
		return nil
	}

	base, err := parseBaseURL(t.Base)
	if err != nil {
		return err
	}
	t.BaseURL = base

	return nil
}

func parseBaseURL(value string) (*BaseURL, error) {
	u, err := baseURLParser.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", InvalidBaseURLError, value, err)
	}

	return &BaseURL{
		Scheme: u.Scheme(),
		Host:   u.Hostname(),
		Port:   u.Port(),
		Path:   u.Pathname(),
	}, nil
}

// Display returns the route URL prefixed with the base path, for messages.
func (t *Table) Display(r Route) string {
	if t.BaseURL == nil {
		return r.URL
	}

	return strings.TrimSuffix(t.BaseURL.Path, "/") + r.URL
}
