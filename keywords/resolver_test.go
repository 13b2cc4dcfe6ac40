package keywords_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halfline/uncrustify/keywords"
	"github.com/halfline/uncrustify/lang"
	"github.com/halfline/uncrustify/token"
)

func newResolver(t *testing.T, flags lang.Flags) *keywords.Resolver {
	t.Helper()
	r := keywords.New()
	r.Activate(flags)
	return r
}

func TestResolveEmptyWord(t *testing.T) {
	r := newResolver(t, lang.All)
	require.Equal(t, token.None, r.Resolve(&keywords.Context{}, ""))
}

func TestResolveFallsBackToWord(t *testing.T) {
	for _, flags := range []lang.Flags{lang.C, lang.Pawn, lang.All} {
		r := newResolver(t, flags)
		ctx := &keywords.Context{}
		require.Equal(t, token.Word, r.Resolve(ctx, "zzzzznotaword"))
		// Words the scanner produces may start outside the identifier
		// set; they still classify, just not as keywords.
		require.Equal(t, token.Word, r.Resolve(ctx, "123abc"))
	}
}

func TestResolveCommonKeywords(t *testing.T) {
	tests := []struct {
		flags    lang.Flags
		word     string
		expected token.Kind
	}{
		{lang.C, "if", token.If},
		{lang.C, "while", token.While},
		{lang.C, "unsigned", token.Type},
		{lang.CPP, "dynamic_cast", token.TypeCast},
		{lang.CPP, "namespace", token.Namespace},
		{lang.D, "version", token.DVersion},
		{lang.D, "cast", token.DCast},
		{lang.CS, "lock", token.Lock},
		{lang.CS, "when", token.When},
		{lang.Java, "strictfp", token.Qualifier},
		{lang.Pawn, "tagof", token.TagOf},
		{lang.OC, "@selector", token.OCSel},
		{lang.ECMA, "debugger", token.Debugger},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			r := newResolver(t, tt.flags)
			require.Equal(t, tt.expected, r.Resolve(&keywords.Context{}, tt.word))
		})
	}
}

// A keyword of an inactive language is a plain word.
func TestResolveRespectsActivation(t *testing.T) {
	r := newResolver(t, lang.C)
	ctx := &keywords.Context{}

	require.Equal(t, token.Word, r.Resolve(ctx, "tagof"))     // Pawn only
	require.Equal(t, token.Word, r.Resolve(ctx, "unittest"))  // D only
	require.Equal(t, token.Word, r.Resolve(ctx, "@selector")) // OC only
}

func TestActivateReplacesPreviousView(t *testing.T) {
	r := keywords.New()
	ctx := &keywords.Context{}

	r.Activate(lang.D)
	dCount := r.ActiveCount()
	require.Equal(t, token.UnitTest, r.Resolve(ctx, "unittest"))

	r.Activate(lang.Pawn)
	require.Equal(t, token.Word, r.Resolve(ctx, "unittest"))
	require.Equal(t, token.TagOf, r.Resolve(ctx, "tagof"))

	// Re-activating rebuilds rather than appends.
	r.Activate(lang.D)
	require.Equal(t, dCount, r.ActiveCount())
	require.Equal(t, token.UnitTest, r.Resolve(ctx, "unittest"))
}

// The same spelling reaches different entries under different activations.
func TestResolveLanguageGating(t *testing.T) {
	tests := []struct {
		word     string
		flags    lang.Flags
		expected token.Kind
	}{
		{"@interface", lang.OC, token.OCIntf},
		{"@interface", lang.Java, token.Class},
		{"assert", lang.Java, token.Assert},
		{"assert", lang.D, token.Function},
		{"char", lang.Pawn, token.Char},
		{"char", lang.C, token.Type},
		{"native", lang.Pawn, token.Native},
		{"native", lang.Java, token.Qualifier},
		{"package", lang.D, token.Access},
		{"package", lang.Java, token.Package},
		{"synchronized", lang.D, token.Qualifier},
		{"synchronized", lang.Java, token.Synchronized},
		{"typeof", lang.C, token.DeclType},
		{"typeof", lang.CS, token.SizeOf},
		{"volatile", lang.C, token.Qualifier},
		{"volatile", lang.D, token.Volatile},
	}

	for _, tt := range tests {
		t.Run(tt.word+"/"+tt.flags.String(), func(t *testing.T) {
			r := newResolver(t, tt.flags)
			require.Equal(t, tt.expected, r.Resolve(&keywords.Context{}, tt.word))
		})
	}
}

// When several entries for a spelling fit one activation, catalogue order
// decides: the first satisfying entry wins.
func TestResolveFirstEntryWinsInCatalogueOrder(t *testing.T) {
	// Both "assert" rows (Java CT-style assert, D/Pawn function) are
	// active under Java|D; the Java row comes first in the catalogue.
	r := newResolver(t, lang.Java|lang.D)
	require.Equal(t, token.Assert, r.Resolve(&keywords.Context{}, "assert"))
}

func TestResolvePreprocessorTieBreak(t *testing.T) {
	tests := []struct {
		word      string
		directive token.Kind
		expected  token.Kind
	}{
		{"else", token.None, token.Else},
		{"else", token.Preproc, token.PPElse},
		{"if", token.None, token.If},
		{"if", token.Preproc, token.PPIf},
		{"asm", token.None, token.Asm},
		{"asm", token.Preproc, token.PPAsm},
		// Inside a macro definition the directive-only entries stay off.
		{"else", token.PPDefine, token.Else},
		{"if", token.PPDefine, token.If},
	}

	r := newResolver(t, lang.C)
	for _, tt := range tests {
		t.Run(tt.word+"/"+tt.directive.String(), func(t *testing.T) {
			ctx := &keywords.Context{Directive: tt.directive}
			require.Equal(t, tt.expected, r.Resolve(ctx, tt.word))
		})
	}
}

// A directive-only spelling with no plain-code entry is a plain word
// outside directives.
func TestResolveDirectiveOnlySpellings(t *testing.T) {
	r := newResolver(t, lang.C)

	ctx := &keywords.Context{}
	require.Equal(t, token.Word, r.Resolve(ctx, "endif"))
	require.Equal(t, token.Word, r.Resolve(ctx, "ifdef"))

	ctx.Directive = token.Preproc
	require.Equal(t, token.PPEndif, r.Resolve(ctx, "endif"))
	require.Equal(t, token.PPIf, r.Resolve(ctx, "ifdef"))
}

// Resolving a pragma introducer opens a directive for following tokens.
func TestResolvePragmaPrimesContext(t *testing.T) {
	for _, word := range []string{"_Pragma", "__pragma"} {
		t.Run(word, func(t *testing.T) {
			r := newResolver(t, lang.CPP)
			ctx := &keywords.Context{}

			// Without priming, a directive-only spelling stays a word.
			require.Equal(t, token.Word, r.Resolve(ctx, "endif"))

			require.Equal(t, token.PPPragma, r.Resolve(ctx, word))
			require.Equal(t, token.Preproc, ctx.Directive)

			// Now directive-only spellings match.
			require.Equal(t, token.PPEndif, r.Resolve(ctx, "endif"))
		})
	}
}

func TestResolveOverridePrecedence(t *testing.T) {
	r := newResolver(t, lang.C)
	r.Overrides().Set("while", token.Type)
	r.Overrides().Set("MyHandle", token.Type)
	r.Overrides().Set("BEGIN_MAP", token.MacroOpen)

	ctx := &keywords.Context{}
	require.Equal(t, token.Type, r.Resolve(ctx, "while"))
	require.Equal(t, token.Type, r.Resolve(ctx, "MyHandle"))
	require.Equal(t, token.MacroOpen, r.Resolve(ctx, "BEGIN_MAP"))

	// Overrides win regardless of preprocessor context or activation.
	ctx.Directive = token.Preproc
	require.Equal(t, token.Type, r.Resolve(ctx, "while"))
	r.Activate(lang.Pawn)
	require.Equal(t, token.Type, r.Resolve(&keywords.Context{}, "while"))

	r.Overrides().Clear()
	require.Equal(t, token.Word, r.Resolve(&keywords.Context{}, "MyHandle"))
}
