package palette

import (
	"errors"
	"strings"

	"colorctl/internal/config"
	"colorctl/pkg/color"
)

// Source tells where a palette entry came from.
type Source string

const (
	SourceAlias Source = "alias"
	SourceX11   Source = "x11"
)

// Entry is one row of the palette shown by `names` and `browse`.
type Entry struct {
	Name   string
	Color  color.Color
	Source Source
}

// Resolver resolves user-defined aliases before falling back to the notations
// understood by package color. It is read-only after construction.
type Resolver struct {
	aliases []Entry
	index   map[string]int
}

// NewResolver builds a resolver from configured aliases. Later definitions
// of the same normalized name win.
func NewResolver(aliases []config.AliasDefinition) *Resolver {
	r := &Resolver{index: make(map[string]int, len(aliases))}
	for _, a := range aliases {
		key := color.NormalizeName(a.Name)
		if key == "" {
			continue
		}
		entry := Entry{Name: a.Name, Color: a.Value, Source: SourceAlias}
		if i, ok := r.index[key]; ok {
			r.aliases[i] = entry
			continue
		}
		r.index[key] = len(r.aliases)
		r.aliases = append(r.aliases, entry)
	}
	return r
}

// Resolve parses s strictly. Aliases shadow X11 names.
func (r *Resolver) Resolve(s string) (color.Color, error) {
	if i, ok := r.index[color.NormalizeName(s)]; ok {
		return r.aliases[i].Color, nil
	}
	return color.Parse(s)
}

// ResolveLenient never fails. fellBack reports that s was not understood and
// transparent black was substituted; err carries the reason.
func (r *Resolver) ResolveLenient(s string) (c color.Color, fellBack bool, err error) {
	c, err = r.Resolve(s)
	if err != nil {
		return color.Transparent, true, err
	}
	return c, false, nil
}

// IsUnrecognized reports whether err means "no grammar matched", as opposed
// to a well-formed literal with an out-of-range channel.
func IsUnrecognized(err error) bool {
	return errors.Is(err, color.ErrUnrecognizedFormat)
}

// Entries lists aliases first, in definition order, then the X11 table.
func (r *Resolver) Entries() []Entry {
	names := color.Names()
	out := make([]Entry, 0, len(r.aliases)+len(names))
	out = append(out, r.aliases...)
	for _, nc := range names {
		c, _ := color.Lookup(nc.Name)
		out = append(out, Entry{Name: nc.Name, Color: c, Source: SourceX11})
	}
	return out
}

// Filter returns the entries whose normalized name contains the normalized
// query, or whose hex value starts with it. An empty query matches everything.
func (r *Resolver) Filter(query string) []Entry {
	q := color.NormalizeName(query)
	all := r.Entries()
	if q == "" {
		return all
	}
	var out []Entry
	for _, e := range all {
		if strings.Contains(color.NormalizeName(e.Name), q) || strings.HasPrefix(e.Color.Hex(), q) {
			out = append(out, e)
		}
	}
	return out
}
