package dateutil

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goodsign/monday"
)

// segment is one piece of a compiled pattern: either a field rendered through
// a Go layout, or literal text copied verbatim.
type segment struct {
	layout  string
	literal string
}

// Pattern is a compiled date pattern. Patterns use the letter scheme of
// java.text.SimpleDateFormat ("yyyy-MM-dd HH:mm:ss"), with text in single
// quotes taken literally and '' standing for a quote.
//
// A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	source   string
	segments []segment

	// layout is the whole pattern as one Go layout. It is only usable when
	// exact is set, meaning no literal collides with a layout element.
	layout string
	exact  bool
}

// Compile parses a pattern. It returns an error wrapping ErrBadPattern for
// letters outside the supported set.
func Compile(pattern string) (*Pattern, error) {
	p := &Pattern{source: pattern}

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			p.segments = append(p.segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			text, n, ok := quoted(pattern[i:])
			if !ok {
				return nil, fmt.Errorf("%w: unterminated quote at offset %d", ErrBadPattern, i)
			}
			lit.WriteString(text)
			i += n

		case isPatternLetter(c):
			n := 1
			for i+n < len(pattern) && pattern[i+n] == c {
				n++
			}

			layout, ok := fieldLayout(c, n)
			if !ok {
				return nil, fmt.Errorf("%w: unsupported field %q at offset %d", ErrBadPattern, pattern[i:i+n], i)
			}

			if c == 'S' {
				// Go only knows fractions that follow their separator
				s := lit.String()
				if s == "" || (s[len(s)-1] != '.' && s[len(s)-1] != ',') {
					return nil, fmt.Errorf("%w: fraction %q at offset %d must follow '.' or ','", ErrBadPattern, pattern[i:i+n], i)
				}
				lit.Reset()
				lit.WriteString(s[:len(s)-1])
				layout = s[len(s)-1:] + layout
			}

			flush()
			p.segments = append(p.segments, segment{layout: layout})
			i += n

		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()

	p.layout, p.exact = p.joinLayout()
	return p, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return p.source
}

// Layout returns the equivalent Go time layout. ok is false when some literal
// in the pattern would be misread as a layout element by the time package.
func (p *Pattern) Layout() (layout string, ok bool) {
	return p.layout, p.exact
}

func (p *Pattern) format(t time.Time, locale monday.Locale) string {
	if p.exact {
		return monday.Format(t, p.layout, locale)
	}
	return p.formatSegments(func(layout string) string {
		return monday.Format(t, layout, locale)
	})
}

func (p *Pattern) parse(text string, loc *time.Location, locale monday.Locale) (time.Time, error) {
	if !p.exact {
		return time.Time{}, ErrAmbiguousLiteral
	}
	return monday.ParseInLocation(p.layout, text, loc, locale)
}

func (p *Pattern) formatSegments(field func(layout string) string) string {
	var b strings.Builder
	for _, s := range p.segments {
		if s.layout == "" {
			b.WriteString(s.literal)
			continue
		}
		b.WriteString(field(s.layout))
	}
	return b.String()
}

// probeTimes differ in every field so that any literal the time package
// would interpret shows up as a formatting difference.
var probeTimes = []time.Time{
	time.Date(2013, time.December, 31, 23, 59, 58, 987654321, time.FixedZone("XST", 5*3600+1800)),
	time.Date(2001, time.February, 3, 4, 5, 6, 7000000, time.FixedZone("YST", -3*3600)),
}

func (p *Pattern) joinLayout() (string, bool) {
	var b strings.Builder
	for _, s := range p.segments {
		b.WriteString(s.layout)
		b.WriteString(s.literal)
	}
	layout := b.String()

	for _, t := range probeTimes {
		want := p.formatSegments(t.Format)
		if t.Format(layout) != want {
			return layout, false
		}
	}
	return layout, true
}

// fieldLayout maps a run of n pattern letters c to a Go layout element.
func fieldLayout(c byte, n int) (string, bool) {
	switch c {
	case 'y':
		if n == 2 {
			return "06", true
		}
		return "2006", true
	case 'M':
		switch n {
		case 1:
			return "1", true
		case 2:
			return "01", true
		case 3:
			return "Jan", true
		default:
			return "January", true
		}
	case 'd':
		return pick(n, "2", "02")
	case 'D':
		if n <= 3 {
			return "002", true
		}
	case 'E':
		if n <= 3 {
			return "Mon", true
		}
		return "Monday", true
	case 'H':
		if n <= 2 {
			return "15", true
		}
	case 'h':
		return pick(n, "3", "03")
	case 'm':
		return pick(n, "4", "04")
	case 's':
		return pick(n, "5", "05")
	case 'S':
		if n <= 9 {
			return strings.Repeat("0", n), true
		}
	case 'a':
		if n == 1 {
			return "PM", true
		}
	case 'z':
		return "MST", true
	case 'Z':
		if n == 1 {
			return "-0700", true
		}
	case 'X':
		switch n {
		case 1:
			return "Z07", true
		case 2:
			return "Z0700", true
		case 3:
			return "Z07:00", true
		}
	}
	return "", false
}

func pick(n int, short, padded string) (string, bool) {
	switch n {
	case 1:
		return short, true
	case 2:
		return padded, true
	}
	return "", false
}

func isPatternLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// quoted reads a quoted literal at the start of s and returns its text and
// the number of bytes consumed.
func quoted(s string) (text string, n int, ok bool) {
	if len(s) > 1 && s[1] == '\'' {
		return "'", 2, true
	}

	var b strings.Builder
	for i := 1; i < len(s); i++ {
		if s[i] != '\'' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '\'' {
			b.WriteByte('\'')
			i++
			continue
		}
		return b.String(), i + 1, true
	}
	return "", 0, false
}

// patterns caches compiled patterns by source text.
var patterns sync.Map

func compileCached(pattern string) (*Pattern, error) {
	if p, ok := patterns.Load(pattern); ok {
		return p.(*Pattern), nil //nolint:forcetypeassert // only *Pattern is stored
	}
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	actual, _ := patterns.LoadOrStore(pattern, p)
	return actual.(*Pattern), nil //nolint:forcetypeassert // only *Pattern is stored
}
