package keywords

import (
	"fmt"

	"github.com/halfline/uncrustify/lang"
	"github.com/halfline/uncrustify/token"
)

// An Entry associates one spelling with a token kind for some set of
// languages. The same spelling may appear in several entries whose flag sets
// differ; such entries are contiguous in the catalogue.
type Entry struct {
	Spelling string
	Kind     token.Kind
	Langs    lang.Flags
}

// catalogue is the master keyword table, ordered byte-wise by spelling.
// Keep sorted; CheckSorted verifies the ordering.
var catalogue = []Entry{
	{"@autoreleasepool", token.AutoreleasePool, lang.OC},
	{"@available", token.OCAvailable, lang.OC},
	{"@catch", token.Catch, lang.OC},
	{"@dynamic", token.OCDynamic, lang.OC},
	{"@end", token.OCEnd, lang.OC},
	{"@finally", token.Finally, lang.OC},
	{"@implementation", token.OCImpl, lang.OC},
	{"@interface", token.OCIntf, lang.OC},
	{"@interface", token.Class, lang.Java},
	{"@private", token.Access, lang.OC},
	{"@property", token.OCProperty, lang.OC},
	{"@protected", token.Access, lang.OC},
	{"@protocol", token.OCProtocol, lang.OC},
	{"@public", token.Access, lang.OC},
	{"@selector", token.OCSel, lang.OC},
	{"@synchronized", token.Synchronized, lang.OC},
	{"@synthesize", token.OCDynamic, lang.OC},
	{"@throw", token.Throw, lang.OC},
	{"@try", token.Try, lang.OC},
	{"API_AVAILABLE", token.Attribute, lang.OC},
	{"API_DEPRECATED", token.Attribute, lang.OC},
	{"API_DEPRECATED_WITH_REPLACEMENT", token.Attribute, lang.OC},
	{"API_UNAVAILABLE", token.Attribute, lang.OC},
	{"BOOL", token.Type, lang.OC},
	{"INT16_C", token.Type, lang.CPP},
	{"INT32_C", token.Type, lang.CPP},
	{"INT64_C", token.Type, lang.CPP},
	{"INT8_C", token.Type, lang.CPP},
	{"INTMAX_C", token.Type, lang.CPP},
	{"NS_ENUM", token.Enum, lang.OC},
	{"NS_OPTIONS", token.Enum, lang.OC},
	{"Q_EMIT", token.QEmit, lang.CPP},
	{"Q_FOREACH", token.For, lang.CPP},
	{"Q_FOREVER", token.QForever, lang.CPP},
	{"Q_GADGET", token.QGadget, lang.CPP},
	{"Q_OBJECT", token.CommentEmbed, lang.CPP},
	{"Q_SIGNALS", token.Access, lang.CPP},
	{"UINT16_C", token.Type, lang.CPP},
	{"UINT32_C", token.Type, lang.CPP},
	{"UINT64_C", token.Type, lang.CPP},
	{"UINT8_C", token.Type, lang.CPP},
	{"UINTMAX_C", token.Type, lang.CPP},
	{"_Bool", token.Type, lang.C | lang.CPP},
	{"_Complex", token.Type, lang.C | lang.CPP},
	{"_Imaginary", token.Type, lang.C | lang.CPP},
	{"_Nonnull", token.Qualifier, lang.OC},
	{"_Null_unspecified", token.Qualifier, lang.OC},
	{"_Nullable", token.Qualifier, lang.OC},
	{"_Pragma", token.PPPragma, lang.All | lang.FlagPP},
	{"__DI__", token.DI, lang.C | lang.CPP},
	{"__HI__", token.HI, lang.C | lang.CPP},
	{"__QI__", token.QI, lang.C | lang.CPP},
	{"__SI__", token.SI, lang.C | lang.CPP},
	{"__asm__", token.Asm, lang.C | lang.CPP},
	{"__attribute__", token.Attribute, lang.C | lang.CPP | lang.OC},
	{"__autoreleasing", token.Qualifier, lang.C | lang.CPP},
	{"__block", token.Qualifier, lang.C | lang.CPP | lang.OC},
	{"__bridge", token.Qualifier, lang.C | lang.CPP},
	{"__bridge_retained", token.Qualifier, lang.C | lang.CPP},
	{"__bridge_transfer", token.Qualifier, lang.C | lang.CPP},
	{"__const__", token.Qualifier, lang.C | lang.CPP},
	{"__declspec", token.DeclSpec, lang.C | lang.CPP},
	{"__except", token.Catch, lang.C | lang.CPP},
	{"__finally", token.Finally, lang.C | lang.CPP},
	{"__has_include", token.HasInclude, lang.C | lang.CPP | lang.OC | lang.FlagPP},
	{"__has_include_next", token.HasIncludeNext, lang.C | lang.CPP | lang.FlagPP},
	{"__inline__", token.Qualifier, lang.C | lang.CPP},
	{"__nonnull", token.Qualifier, lang.OC},
	{"__nothrow__", token.NoThrow, lang.C | lang.CPP},
	{"__null_unspecified", token.Qualifier, lang.OC},
	{"__nullable", token.Qualifier, lang.OC},
	{"__pragma", token.PPPragma, lang.All | lang.FlagPP},
	{"__restrict", token.Qualifier, lang.C | lang.CPP},
	{"__signed__", token.Type, lang.C | lang.CPP},
	{"__strong", token.Qualifier, lang.C | lang.CPP},
	{"__thread", token.Qualifier, lang.C | lang.CPP},
	{"__traits", token.Qualifier, lang.D},
	{"__try", token.Try, lang.C | lang.CPP},
	{"__typeof", token.DeclType, lang.C | lang.CPP | lang.OC},
	{"__typeof__", token.DeclType, lang.C | lang.CPP},
	{"__unsafe_unretained", token.Qualifier, lang.OC},
	{"__unused", token.Attribute, lang.C | lang.CPP},
	{"__volatile__", token.Qualifier, lang.C | lang.CPP},
	{"__weak", token.Qualifier, lang.C | lang.CPP},
	{"__word__", token.WordMode, lang.C | lang.CPP},
	{"abstract", token.Qualifier, lang.CS | lang.D | lang.Java | lang.Vala | lang.ECMA},
	{"add", token.GetSet, lang.CS},
	{"alias", token.Using, lang.D},
	{"align", token.Align, lang.D},
	{"alignof", token.SizeOf, lang.CPP},
	{"and", token.SBool, lang.CPP},
	{"and_eq", token.SAssign, lang.CPP},
	{"as", token.As, lang.CS | lang.Vala},
	{"asm", token.Asm, lang.C | lang.CPP | lang.D},
	{"asm", token.PPAsm, lang.All | lang.FlagPP},
	{"assert", token.Assert, lang.Java},
	{"assert", token.Function, lang.D | lang.Pawn},
	{"assert", token.PPAssert, lang.Pawn | lang.FlagPP},
	{"auto", token.Type, lang.C | lang.CPP | lang.D},
	{"base", token.Base, lang.CS | lang.Vala},
	{"bit", token.Type, lang.D},
	{"bitand", token.Arith, lang.C | lang.CPP},
	{"bitor", token.Arith, lang.C | lang.CPP},
	{"body", token.Body, lang.D},
	{"bool", token.Type, lang.C | lang.CPP | lang.CS | lang.Vala},
	{"boolean", token.Type, lang.Java | lang.ECMA},
	{"break", token.Break, lang.All},
	{"byte", token.Type, lang.CS | lang.D | lang.Java | lang.ECMA},
	{"callback", token.Qualifier, lang.Vala},
	{"case", token.Case, lang.All},
	{"cast", token.DCast, lang.D},
	{"catch", token.Catch, lang.CPP | lang.CS | lang.Vala | lang.D | lang.Java | lang.ECMA},
	{"cdouble", token.Type, lang.D},
	{"cent", token.Type, lang.D},
	{"cfloat", token.Type, lang.D},
	{"char", token.Char, lang.Pawn},
	{"char", token.Type, lang.AllC},
	{"checked", token.Qualifier, lang.CS},
	{"class", token.Class, lang.CPP | lang.CS | lang.D | lang.Java | lang.Vala | lang.ECMA},
	{"compl", token.Arith, lang.CPP},
	{"const", token.Qualifier, lang.All},
	{"const_cast", token.TypeCast, lang.CPP},
	{"constexpr", token.Qualifier, lang.CPP},
	{"construct", token.Construct, lang.Vala},
	{"continue", token.Continue, lang.All},
	{"creal", token.Type, lang.D},
	{"dchar", token.Type, lang.D},
	{"debug", token.Debug, lang.D},
	{"debugger", token.Debugger, lang.ECMA},
	{"decltype", token.DeclType, lang.CPP},
	{"default", token.Default, lang.All},
	{"define", token.PPDefine, lang.All | lang.FlagPP},
	{"defined", token.Defined, lang.Pawn},
	{"defined", token.PPDefined, lang.AllC | lang.FlagPP},
	{"delegate", token.Delegate, lang.CS | lang.Vala | lang.D},
	{"delete", token.Delete, lang.CPP | lang.D | lang.ECMA | lang.Vala},
	{"deprecated", token.Qualifier, lang.D},
	{"do", token.Do, lang.All},
	{"double", token.Type, lang.AllC},
	{"dynamic_cast", token.TypeCast, lang.CPP},
	{"elif", token.PPElse, lang.AllC | lang.FlagPP},
	{"else", token.Else, lang.All},
	{"else", token.PPElse, lang.All | lang.FlagPP},
	{"elseif", token.PPElse, lang.Pawn | lang.FlagPP},
	{"emit", token.PPEmit, lang.Pawn | lang.FlagPP},
	{"endif", token.PPEndif, lang.All | lang.FlagPP},
	{"endinput", token.PPEndInput, lang.Pawn | lang.FlagPP},
	{"endregion", token.PPEndRegion, lang.All | lang.FlagPP},
	{"endscript", token.PPEndInput, lang.Pawn | lang.FlagPP},
	{"enum", token.Enum, lang.All},
	{"error", token.PPError, lang.Pawn | lang.FlagPP},
	{"errordomain", token.Enum, lang.Vala},
	{"event", token.Type, lang.CS},
	{"exit", token.Function, lang.Pawn},
	{"explicit", token.Qualifier, lang.CPP | lang.CS},
	{"export", token.Export, lang.CPP | lang.D | lang.ECMA},
	{"extends", token.Qualifier, lang.Java | lang.ECMA},
	{"extern", token.Extern, lang.C | lang.CPP | lang.OC | lang.CS | lang.D | lang.Vala},
	{"false", token.Word, lang.All},
	{"file", token.PPFile, lang.Pawn | lang.FlagPP},
	{"final", token.Qualifier, lang.CPP | lang.D | lang.ECMA},
	{"finally", token.Finally, lang.D | lang.CS | lang.Vala | lang.ECMA | lang.Java},
	{"fixed", token.Fixed, lang.CS},
	{"flags", token.Type, lang.Vala},
	{"float", token.Type, lang.AllC},
	{"for", token.For, lang.All},
	{"foreach", token.For, lang.CS | lang.D | lang.Vala},
	{"foreach_reverse", token.For, lang.D},
	{"forward", token.Forward, lang.Pawn},
	{"friend", token.Friend, lang.CPP},
	{"function", token.Function, lang.D | lang.ECMA},
	{"get", token.GetSet, lang.CS | lang.Vala},
	{"goto", token.Goto, lang.All},
	{"idouble", token.Type, lang.D},
	{"if", token.If, lang.All},
	{"if", token.PPIf, lang.All | lang.FlagPP},
	{"ifdef", token.PPIf, lang.AllC | lang.FlagPP},
	{"ifloat", token.Type, lang.D},
	{"ifndef", token.PPIf, lang.AllC | lang.FlagPP},
	{"implements", token.Qualifier, lang.Java | lang.ECMA},
	{"implicit", token.Qualifier, lang.CS},
	{"import", token.Import, lang.D | lang.Java | lang.ECMA},
	{"import", token.PPInclude, lang.OC | lang.FlagPP},
	{"in", token.In, lang.D | lang.CS | lang.Vala | lang.ECMA | lang.OC},
	{"include", token.PPInclude, lang.C | lang.CPP | lang.OC | lang.Pawn | lang.FlagPP},
	{"inline", token.Qualifier, lang.C | lang.CPP},
	{"inout", token.Qualifier, lang.D},
	{"instanceof", token.SizeOf, lang.Java | lang.ECMA},
	{"int", token.Type, lang.AllC},
	{"interface", token.Class, lang.CPP | lang.CS | lang.D | lang.Java | lang.Vala | lang.ECMA},
	{"internal", token.Qualifier, lang.CS | lang.Vala},
	{"invariant", token.Invariant, lang.D},
	{"ireal", token.Type, lang.D},
	{"is", token.SCompare, lang.D | lang.CS | lang.Vala},
	{"lazy", token.Lazy, lang.D},
	{"line", token.PPLine, lang.Pawn | lang.FlagPP},
	{"lock", token.Lock, lang.CS | lang.Vala},
	{"long", token.Type, lang.AllC},
	{"macro", token.DMacro, lang.D},
	{"mixin", token.Class, lang.D}, // may need special handling
	{"module", token.DModule, lang.D},
	{"mutable", token.Qualifier, lang.CPP},
	{"namespace", token.Namespace, lang.CPP | lang.CS | lang.Vala},
	{"native", token.Native, lang.Pawn},
	{"native", token.Qualifier, lang.Java | lang.ECMA},
	{"new", token.New, lang.CPP | lang.CS | lang.D | lang.Java | lang.Pawn | lang.Vala | lang.ECMA},
	{"noexcept", token.NoExcept, lang.CPP},
	{"nonnull", token.Type, lang.OC},
	{"not", token.SArith, lang.CPP},
	{"not_eq", token.SCompare, lang.CPP},
	{"null_resettable", token.OCPropertyAttr, lang.OC},
	{"null_unspecified", token.Type, lang.OC},
	{"nullable", token.Type, lang.OC},
	{"object", token.Type, lang.CS},
	{"operator", token.Operator, lang.CPP | lang.CS | lang.Pawn},
	{"or", token.SBool, lang.CPP},
	{"or_eq", token.SAssign, lang.CPP},
	{"out", token.Qualifier, lang.CS | lang.D | lang.Vala},
	{"override", token.Qualifier, lang.CPP | lang.CS | lang.D | lang.Vala},
	{"package", token.Access, lang.D},
	{"package", token.Package, lang.ECMA | lang.Java},
	{"params", token.Type, lang.CS | lang.Vala},
	{"pragma", token.PPPragma, lang.All | lang.FlagPP},
	{"private", token.Access, lang.AllC}, // not C
	{"property", token.PPProperty, lang.CS | lang.FlagPP},
	{"protected", token.Access, lang.AllC},
	{"public", token.Access, lang.All},
	{"readonly", token.Qualifier, lang.CS},
	{"real", token.Type, lang.D},
	{"ref", token.Qualifier, lang.CS | lang.Vala},
	{"region", token.PPRegion, lang.All | lang.FlagPP},
	{"register", token.Qualifier, lang.C | lang.CPP},
	{"reinterpret_cast", token.TypeCast, lang.CPP},
	{"remove", token.GetSet, lang.CS},
	{"restrict", token.Qualifier, lang.C | lang.CPP},
	{"return", token.Return, lang.All},
	{"sbyte", token.Type, lang.CS},
	{"scope", token.DScope, lang.D},
	{"sealed", token.Qualifier, lang.CS},
	{"section", token.PPSection, lang.Pawn | lang.FlagPP},
	{"self", token.This, lang.OC},
	{"set", token.GetSet, lang.CS | lang.Vala},
	{"short", token.Type, lang.AllC},
	{"signal", token.Access, lang.Vala},
	{"signals", token.Access, lang.CPP},
	{"signed", token.Type, lang.C | lang.CPP},
	{"size_t", token.Type, lang.AllC},
	{"sizeof", token.SizeOf, lang.C | lang.CPP | lang.CS | lang.Vala | lang.Pawn},
	{"sleep", token.SizeOf, lang.Pawn},
	{"stackalloc", token.New, lang.CS},
	{"state", token.State, lang.Pawn},
	{"static", token.Qualifier, lang.All},
	{"static_cast", token.TypeCast, lang.CPP},
	{"stock", token.Stock, lang.Pawn},
	{"strictfp", token.Qualifier, lang.Java},
	{"string", token.Type, lang.CS | lang.Vala},
	{"struct", token.Struct, lang.C | lang.CPP | lang.OC | lang.CS | lang.D | lang.Vala},
	{"super", token.Super, lang.D | lang.Java | lang.ECMA},
	{"switch", token.Switch, lang.All},
	{"synchronized", token.Qualifier, lang.D | lang.ECMA},
	{"synchronized", token.Synchronized, lang.Java},
	{"tagof", token.TagOf, lang.Pawn},
	{"template", token.Template, lang.CPP | lang.D},
	{"this", token.This, lang.CPP | lang.CS | lang.D | lang.Java | lang.Vala | lang.ECMA},
	{"throw", token.Throw, lang.CPP | lang.CS | lang.Vala | lang.D | lang.Java | lang.ECMA},
	{"throws", token.Qualifier, lang.Java | lang.ECMA | lang.Vala},
	{"transient", token.Qualifier, lang.Java | lang.ECMA},
	{"true", token.Word, lang.All},
	{"try", token.Try, lang.CPP | lang.CS | lang.D | lang.Java | lang.ECMA | lang.Vala},
	{"tryinclude", token.PPInclude, lang.Pawn | lang.FlagPP},
	{"typedef", token.Typedef, lang.C | lang.CPP | lang.OC | lang.D},
	{"typeid", token.SizeOf, lang.CPP | lang.D},
	{"typename", token.TypeName, lang.CPP},
	{"typeof", token.DeclType, lang.C | lang.CPP},
	{"typeof", token.SizeOf, lang.CS | lang.D | lang.Vala | lang.ECMA},
	{"ubyte", token.Type, lang.D},
	{"ucent", token.Type, lang.D},
	{"uint", token.Type, lang.CS | lang.Vala | lang.D},
	{"ulong", token.Type, lang.CS | lang.Vala | lang.D},
	{"unchecked", token.Qualifier, lang.CS},
	{"undef", token.PPUndef, lang.All | lang.FlagPP},
	{"union", token.Union, lang.C | lang.CPP | lang.D},
	{"unittest", token.UnitTest, lang.D},
	{"unsafe", token.Unsafe, lang.CS},
	{"unsafe_unretained", token.Qualifier, lang.OC},
	{"unsigned", token.Type, lang.C | lang.CPP},
	{"ushort", token.Type, lang.CS | lang.Vala | lang.D},
	{"using", token.Using, lang.CPP | lang.CS | lang.Vala},
	{"var", token.Type, lang.CS | lang.Vala | lang.ECMA},
	{"version", token.DVersion, lang.D},
	{"virtual", token.Qualifier, lang.CPP | lang.CS | lang.Vala},
	{"void", token.Type, lang.AllC},
	{"volatile", token.Qualifier, lang.C | lang.CPP | lang.CS | lang.Java | lang.ECMA},
	{"volatile", token.Volatile, lang.D},
	{"wchar", token.Type, lang.D},
	{"wchar_t", token.Type, lang.C | lang.CPP},
	{"weak", token.Qualifier, lang.Vala},
	{"when", token.When, lang.CS},
	{"where", token.Where, lang.CS},
	{"while", token.While, lang.All},
	{"with", token.DWith, lang.D | lang.ECMA},
	{"xor", token.SArith, lang.CPP},
	{"xor_eq", token.SAssign, lang.CPP},
}

// Count returns the number of entries in the master catalogue.
func Count() int {
	return len(catalogue)
}

// At returns the catalogue entry at index i in sort order.
func At(i int) Entry {
	return catalogue[i]
}

// CheckSorted verifies the master catalogue's ordering invariant. It returns
// a *ConfigError naming the first out-of-order pair, or nil. The table is
// fixed at build time, so a failure indicates a bad edit, not a runtime
// condition.
func CheckSorted() error {
	return checkSorted(catalogue)
}

func checkSorted(entries []Entry) error {
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Spelling > entries[i].Spelling {
			return &ConfigError{
				Msg: fmt.Sprintf("bad sort order at index %d: %q before %q",
					i-1, entries[i-1].Spelling, entries[i].Spelling),
			}
		}
	}
	return nil
}

// LookupAll returns every master catalogue entry for a spelling, in catalogue
// order and ignoring language activation. It backs diagnostic output; Resolve
// is the classification path.
func LookupAll(word string) []Entry {
	first, ok := search(catalogue, word)
	if !ok {
		return nil
	}
	last := first
	for last < len(catalogue) && catalogue[last].Spelling == word {
		last++
	}
	out := make([]Entry, last-first)
	copy(out, catalogue[first:last])
	return out
}
