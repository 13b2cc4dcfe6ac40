// Package lang defines the language applicability flags carried by catalogue
// entries and the activation state of the tokenizer.
package lang

import (
	"fmt"
	"strings"
)

// Flags is a bit set of source languages, plus one orthogonal marker bit for
// entries that apply only inside a preprocessor directive.
type Flags uint16

const (
	C Flags = 1 << iota
	CPP
	D
	CS
	Java
	OC
	Vala
	Pawn
	ECMA
)

// Aggregate tags. AllC covers the curly-brace languages; Pawn keeps its own
// lexical rules and only joins via All.
const (
	AllC = C | CPP | D | CS | Java | OC | Vala | ECMA
	All  = AllC | Pawn
)

// FlagPP marks an entry that matches only while lexing inside a preprocessor
// directive (excluding the directive introducing a macro definition).
const FlagPP Flags = 0x8000

const langMask = All

// Intersects reports whether the two flag sets share at least one language.
// The FlagPP marker is ignored; it gates on context, not language.
func (f Flags) Intersects(o Flags) bool {
	return f&o&langMask != 0
}

// PPOnly reports whether the entry carries the directive-only marker.
func (f Flags) PPOnly() bool {
	return f&FlagPP != 0
}

var names = map[string]Flags{
	"C":    C,
	"CPP":  CPP,
	"D":    D,
	"CS":   CS,
	"JAVA": Java,
	"OC":   OC,
	"OC+":  OC | CPP,
	"VALA": Vala,
	"PAWN": Pawn,
	"ECMA": ECMA,
}

// Parse maps a language name (case-insensitive, e.g. "CPP", "OC+") to its
// flag set.
func Parse(name string) (Flags, error) {
	if f, ok := names[strings.ToUpper(name)]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("lang: unknown language %q", name)
}

var ordered = []struct {
	flag Flags
	name string
}{
	{C, "C"},
	{CPP, "CPP"},
	{D, "D"},
	{CS, "CS"},
	{Java, "JAVA"},
	{OC, "OC"},
	{Vala, "VALA"},
	{Pawn, "PAWN"},
	{ECMA, "ECMA"},
}

// String renders the set as "+"-joined language names, with "/PP" appended
// when the directive-only marker is set.
func (f Flags) String() string {
	var parts []string
	for _, l := range ordered {
		if f&l.flag != 0 {
			parts = append(parts, l.name)
		}
	}
	s := strings.Join(parts, "+")
	if s == "" {
		s = "NONE"
	}
	if f.PPOnly() {
		s += "/PP"
	}
	return s
}
