package keywords

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/halfline/uncrustify/token"
)

// maxLabelWidth sizes the label column of Dump output.
const maxLabelWidth = 32

// Overrides is a registry of user-defined spelling-to-kind mappings. An
// override applies unconditionally: no language or preprocessor filtering,
// and it always beats the catalogue.
type Overrides struct {
	m map[string]token.Kind
}

// NewOverrides returns an empty registry.
func NewOverrides() *Overrides {
	return &Overrides{m: make(map[string]token.Kind)}
}

// Set registers spelling with the given kind, replacing any earlier entry.
func (o *Overrides) Set(spelling string, kind token.Kind) {
	o.m[spelling] = kind
}

// Lookup reports the override for spelling, if one is registered.
func (o *Overrides) Lookup(spelling string) (token.Kind, bool) {
	k, ok := o.m[spelling]
	return k, ok
}

// Clear empties the registry.
func (o *Overrides) Clear() {
	clear(o.m)
}

// Len returns the number of registered overrides.
func (o *Overrides) Len() int {
	return len(o.m)
}

// Load reads an override source line by line. A '#' starts a comment running
// to end of line; a line that is blank after comment stripping is skipped;
// otherwise the line must hold exactly one word starting with an
// identifier-start character, which is registered as token.Type.
//
// Registration is immediate per line, so lines read before a failure stay
// registered. A malformed line yields a *ConfigError citing name and the
// 1-based line number.
func (o *Overrides) Load(r io.Reader, name string) error {
	sc := bufio.NewScanner(r)
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		if len(words) > 1 || !isIdentStart(words[0]) {
			return &ConfigError{
				File: name,
				Line: lineNo,
				Msg:  fmt.Sprintf("invalid line (starts with %q)", words[0]),
			}
		}
		o.Set(words[0], token.Type)
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("keywords: read %s: %w", name, err)
	}
	return nil
}

// LoadFile opens path and loads it via Load. An unreadable file is an I/O
// error distinct from the *ConfigError a malformed line produces.
func (o *Overrides) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("keywords: open keyword file: %w", err)
	}
	defer f.Close()
	return o.Load(f, path)
}

// Dump writes every override as one fixed-column line, sorted by spelling.
// A few structural kinds get their own labels; the rest render as a generic
// "set <kind>" directive.
func (o *Overrides) Dump(w io.Writer) {
	spellings := make([]string, 0, len(o.m))
	for s := range o.m {
		spellings = append(spellings, s)
	}
	slices.Sort(spellings)
	for _, spelling := range spellings {
		var label string
		switch o.m[spelling] {
		case token.Type:
			label = "custom type"
		case token.MacroOpen:
			label = "macro-open"
		case token.MacroClose:
			label = "macro-close"
		case token.MacroElse:
			label = "macro-else"
		default:
			label = "set " + o.m[spelling].String()
		}
		fmt.Fprintf(w, "%-*s%s\n", maxLabelWidth, label, spelling)
	}
}

// isIdentStart reports whether s begins with an identifier-start character:
// a letter, '_', '@', or any rune outside ASCII.
func isIdentStart(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) || r == '_' || r == '@' || r >= utf8.RuneSelf
}
