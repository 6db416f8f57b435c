// Package dateutil resolves the document date written into standalone
// pages. Values are either literal text or "auto" forms stamped with the
// conversion time.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidLayout indicates a malformed date layout or auto value.
var ErrInvalidLayout = errors.New("invalid date layout")

// MaxLayoutLength bounds user-supplied layouts.
const MaxLayoutLength = 50

// DefaultLayout is used by a bare "auto".
const DefaultLayout = "YYYY-MM-DD"

// Presets name common layouts usable as "auto:<preset>".
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// tokens are matched longest first.
var tokens = [...]struct{ name, layout string }{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Compile translates a layout such as "DD/MM/YYYY" into a time.Format
// layout. Text inside brackets is copied verbatim, so "[Week of] D MMM"
// keeps "Week of" intact.
func Compile(layout string) (string, error) {
	switch {
	case layout == "":
		return "", fmt.Errorf("%w: empty layout", ErrInvalidLayout)
	case len(layout) > MaxLayoutLength:
		return "", fmt.Errorf("%w: layout longer than %d characters", ErrInvalidLayout, MaxLayoutLength)
	}

	var b strings.Builder
	rest := layout
	for rest != "" {
		literal, after, found := strings.Cut(rest, "[")
		b.WriteString(translate(literal))
		if !found {
			break
		}
		quoted, tail, closed := strings.Cut(after, "]")
		if !closed {
			return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidLayout, len(layout)-len(after)-1)
		}
		b.WriteString(quoted)
		rest = tail
	}
	return b.String(), nil
}

// translate replaces layout tokens in s, leaving other characters alone.
func translate(s string) string {
	var b strings.Builder
	for s != "" {
		matched := false
		for _, tok := range tokens {
			if strings.HasPrefix(s, tok.name) {
				b.WriteString(tok.layout)
				s = s[len(tok.name):]
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(s[0])
			s = s[1:]
		}
	}
	return b.String()
}

// Resolve returns the date text for value:
//
//	""            -> ""
//	"auto"        -> now in DefaultLayout
//	"auto:long"   -> now in the named preset
//	"auto:D.M.YY" -> now in a custom layout
//	anything else -> value unchanged
func Resolve(value string, now time.Time) (string, error) {
	prefix, layout, hasLayout := strings.Cut(value, ":")
	if !strings.EqualFold(prefix, "auto") {
		if strings.HasPrefix(strings.ToLower(value), "auto") && !hasLayout && len(value) > len("auto") {
			return "", fmt.Errorf("%w: %q, use \"auto\" or \"auto:LAYOUT\"", ErrInvalidLayout, value)
		}
		return value, nil
	}

	if !hasLayout {
		layout = DefaultLayout
	} else if preset, ok := Presets[strings.ToLower(layout)]; ok {
		layout = preset
	}

	goLayout, err := Compile(layout)
	if err != nil {
		return "", err
	}
	return now.Format(goLayout), nil
}
