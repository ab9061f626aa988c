package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// TabParam is the query parameter that carries the active tab.
const TabParam = "tab"

// Locator is a full navigable location: path, query and in-page fragment.
type Locator struct {
	Query    url.Values
	Path     string
	Fragment string
}

// ParseLocator parses "path?query#fragment". The path must be absolute.
func ParseLocator(raw string) (Locator, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Locator{}, fmt.Errorf("%w: %v", ErrInvalidLocator, err)
	}
	if u.Scheme != "" || u.Host != "" {
		return Locator{}, fmt.Errorf("%w: %q must be a path, not a URL", ErrInvalidLocator, raw)
	}
	if !strings.HasPrefix(u.Path, "/") {
		return Locator{}, fmt.Errorf("%w: %q must start with /", ErrInvalidLocator, raw)
	}
	return Locator{
		Path:     u.Path,
		Query:    u.Query(),
		Fragment: u.Fragment,
	}, nil
}

// MustParseLocator is like ParseLocator but panics on error.
// Intended for constants and tests.
func MustParseLocator(raw string) Locator {
	loc, err := ParseLocator(raw)
	if err != nil {
		panic(err)
	}
	return loc
}

// String renders the locator with path and fragment escaped so that
// ParseLocator reads it back unchanged. Query keys are encoded in sorted order.
func (l Locator) String() string {
	u := url.URL{
		Path:     l.Path,
		RawQuery: l.Query.Encode(),
		Fragment: l.Fragment,
	}
	return u.String()
}

// Param returns the first value of a query parameter.
func (l Locator) Param(name string) (string, bool) {
	if l.Query == nil {
		return "", false
	}
	values, ok := l.Query[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// WithParam returns a copy of the locator with name set to value.
func (l Locator) WithParam(name, value string) Locator {
	out := l.clone()
	out.Query.Set(name, value)
	return out
}

// WithFragment returns a copy of the locator with the fragment replaced.
func (l Locator) WithFragment(fragment string) Locator {
	out := l.clone()
	out.Fragment = fragment
	return out
}

// Equal reports whether two locators render identically.
func (l Locator) Equal(other Locator) bool {
	return l.String() == other.String()
}

func (l Locator) clone() Locator {
	q := make(url.Values, len(l.Query))
	for k, v := range l.Query {
		q[k] = append([]string(nil), v...)
	}
	return Locator{Path: l.Path, Query: q, Fragment: l.Fragment}
}
