package keywords

import (
	"sort"

	"github.com/halfline/uncrustify/lang"
	"github.com/halfline/uncrustify/token"
)

// Context carries the tokenizer state the resolver consults: which
// preprocessor directive, if any, is open at the current position. The
// resolver reads it on every call and writes it in exactly one case, when a
// pragma introducer is resolved.
type Context struct {
	// Directive is the kind of the open preprocessor directive, or
	// token.None outside one. token.PPDefine suppresses directive-only
	// matches: the body of a macro definition lexes like ordinary code.
	Directive token.Kind
}

func (c *Context) inDirective() bool {
	return c.Directive != token.None && c.Directive != token.PPDefine
}

// A Resolver classifies words against the master catalogue, narrowed to the
// active languages, and against its override registry. Activate and the
// override mutators are meant for the setup phase; once lookup traffic
// starts, Resolve is the only method the tokenizer calls per word.
type Resolver struct {
	langs     lang.Flags
	filtered  []Entry
	overrides *Overrides
}

// New returns a Resolver with an empty override registry and no active
// languages. Call Activate before resolving.
func New() *Resolver {
	return &Resolver{overrides: NewOverrides()}
}

// Overrides returns the resolver's override registry.
func (r *Resolver) Overrides() *Overrides {
	return r.overrides
}

// Activate rebuilds the language-filtered view of the master catalogue for
// the given flag set. It fully replaces any previous activation. The filtered
// view preserves catalogue order, so binary search stays valid.
func (r *Resolver) Activate(flags lang.Flags) {
	r.langs = flags
	r.filtered = r.filtered[:0]
	for _, e := range catalogue {
		if e.Langs.Intersects(flags) {
			r.filtered = append(r.filtered, e)
		}
	}
}

// Active returns the flag set passed to the last Activate call.
func (r *Resolver) Active() lang.Flags {
	return r.langs
}

// ActiveCount returns the size of the language-filtered catalogue.
func (r *Resolver) ActiveCount() int {
	return len(r.filtered)
}

// ActiveAt returns the language-filtered entry at index i in catalogue order.
func (r *Resolver) ActiveAt(i int) Entry {
	return r.filtered[i]
}

// Resolve classifies a word. Overrides win unconditionally; otherwise the
// word is matched against the language-filtered catalogue, breaking ties
// among entries sharing the spelling by taking the first entry, in catalogue
// order, whose languages intersect the activation and whose directive-only
// marker agrees with ctx. Words the catalogue does not claim come back as
// token.Word; the empty word comes back as token.None.
//
// Resolving "_Pragma" or "__pragma" sets ctx.Directive to token.Preproc so
// that directive-only spellings later on the same logical line match.
func (r *Resolver) Resolve(ctx *Context, word string) token.Kind {
	if len(word) == 0 {
		return token.None
	}

	if k, ok := r.overrides.Lookup(word); ok {
		return k
	}

	first, ok := search(r.filtered, word)
	if !ok {
		return token.Word
	}

	// A pragma introducer opens a directive for the tokens that follow it.
	if word == "__pragma" || word == "_Pragma" {
		ctx.Directive = token.Preproc
	}

	if e, ok := r.match(ctx, first, word); ok {
		return e.Kind
	}
	return token.Word
}

// match walks the contiguous run of entries sharing word, starting at first,
// and returns the first one that fits the activation and the preprocessor
// context.
func (r *Resolver) match(ctx *Context, first int, word string) (Entry, bool) {
	inPP := ctx.inDirective()

	for i := first; i < len(r.filtered) && r.filtered[i].Spelling == word; i++ {
		e := r.filtered[i]
		if e.Langs.Intersects(r.langs) && e.Langs.PPOnly() == inPP {
			return e, true
		}
	}
	return Entry{}, false
}

// search locates the first entry for word in a sorted entry slice. Entries
// sharing a spelling are contiguous, so the leftmost match is the start of
// the run.
func search(entries []Entry, word string) (int, bool) {
	i := sort.Search(len(entries), func(i int) bool {
		return entries[i].Spelling >= word
	})
	if i < len(entries) && entries[i].Spelling == word {
		return i, true
	}
	return 0, false
}
