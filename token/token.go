// Package token defines the lexical categories a classified word can carry
// and the structural pattern each statement-introducing category implies.
package token

// Kind is the lexical category assigned to a word.
type Kind int

const (
	// None is the empty classification, returned for zero-length words. It
	// also marks "no open preprocessor directive" in resolver contexts.
	None Kind = iota

	// Word is a plain identifier: any word the catalogue and the override
	// registry do not claim.
	Word

	// Type is the generic type kind. Override files register their
	// spellings with this kind.
	Type

	Qualifier
	Access
	Attribute

	// Statement and declaration keywords.
	If
	ElseIf
	Else
	Switch
	Case
	Default
	For
	While
	WhileOfDo
	Do
	Break
	Continue
	Goto
	Return
	Try
	Catch
	Finally
	Throw
	New
	Delete
	SizeOf
	DeclType
	TypeCast
	Typedef
	TypeName
	Template
	Namespace
	Class
	Struct
	Union
	Enum
	Operator
	Friend
	Extern
	Export
	Import
	Using
	UsingStmt
	This
	Super
	Base
	Assert
	Function
	GetSet
	DeclSpec
	Asm
	Align
	As
	In
	Lock
	When
	Where
	Synchronized
	Delegate
	Lazy
	Invariant
	UnitTest
	Unsafe
	Volatile
	Fixed
	Debug
	Debugger
	Construct
	NoExcept
	NoThrow
	Defined
	Package
	Char
	Forward
	Native
	State
	Stock
	TagOf

	// Spelled-out operators ("and", "xor_eq", "is", ...).
	Arith
	SArith
	SBool
	SAssign
	SCompare

	// Qt extensions.
	QEmit
	QForever
	QGadget
	CommentEmbed

	// GCC machine modes.
	QI
	HI
	SI
	DI
	WordMode

	// Objective-C.
	AutoreleasePool
	OCAvailable
	OCDynamic
	OCEnd
	OCImpl
	OCIntf
	OCProperty
	OCPropertyAttr
	OCProtocol
	OCSel
	HasInclude
	HasIncludeNext

	// D.
	DCast
	DMacro
	DModule
	DScope
	DScopeIf
	DVersion
	DVersionIf
	DWith
	Body

	// Preprocessor. Preproc is the generic "inside a directive" kind; the
	// PP* kinds apply only when lexed inside a directive.
	Preproc
	PPDefine
	PPInclude
	PPIf
	PPElse
	PPEndif
	PPPragma
	PPRegion
	PPEndRegion
	PPError
	PPFile
	PPLine
	PPSection
	PPAsm
	PPAssert
	PPEmit
	PPEndInput
	PPUndef
	PPDefined
	PPProperty

	// User-defined macro structure markers, reachable only via overrides.
	MacroOpen
	MacroClose
	MacroElse
)

var kindNames = [...]string{
	None:            "NONE",
	Word:            "WORD",
	Type:            "TYPE",
	Qualifier:       "QUALIFIER",
	Access:          "ACCESS",
	Attribute:       "ATTRIBUTE",
	If:              "IF",
	ElseIf:          "ELSEIF",
	Else:            "ELSE",
	Switch:          "SWITCH",
	Case:            "CASE",
	Default:         "DEFAULT",
	For:             "FOR",
	While:           "WHILE",
	WhileOfDo:       "WHILE_OF_DO",
	Do:              "DO",
	Break:           "BREAK",
	Continue:        "CONTINUE",
	Goto:            "GOTO",
	Return:          "RETURN",
	Try:             "TRY",
	Catch:           "CATCH",
	Finally:         "FINALLY",
	Throw:           "THROW",
	New:             "NEW",
	Delete:          "DELETE",
	SizeOf:          "SIZEOF",
	DeclType:        "DECLTYPE",
	TypeCast:        "TYPE_CAST",
	Typedef:         "TYPEDEF",
	TypeName:        "TYPENAME",
	Template:        "TEMPLATE",
	Namespace:       "NAMESPACE",
	Class:           "CLASS",
	Struct:          "STRUCT",
	Union:           "UNION",
	Enum:            "ENUM",
	Operator:        "OPERATOR",
	Friend:          "FRIEND",
	Extern:          "EXTERN",
	Export:          "EXPORT",
	Import:          "IMPORT",
	Using:           "USING",
	UsingStmt:       "USING_STMT",
	This:            "THIS",
	Super:           "SUPER",
	Base:            "BASE",
	Assert:          "ASSERT",
	Function:        "FUNCTION",
	GetSet:          "GETSET",
	DeclSpec:        "DECLSPEC",
	Asm:             "ASM",
	Align:           "ALIGN",
	As:              "AS",
	In:              "IN",
	Lock:            "LOCK",
	When:            "WHEN",
	Where:           "WHERE",
	Synchronized:    "SYNCHRONIZED",
	Delegate:        "DELEGATE",
	Lazy:            "LAZY",
	Invariant:       "INVARIANT",
	UnitTest:        "UNITTEST",
	Unsafe:          "UNSAFE",
	Volatile:        "VOLATILE",
	Fixed:           "FIXED",
	Debug:           "DEBUG",
	Debugger:        "DEBUGGER",
	Construct:       "CONSTRUCT",
	NoExcept:        "NOEXCEPT",
	NoThrow:         "NOTHROW",
	Defined:         "DEFINED",
	Package:         "PACKAGE",
	Char:            "CHAR",
	Forward:         "FORWARD",
	Native:          "NATIVE",
	State:           "STATE",
	Stock:           "STOCK",
	TagOf:           "TAGOF",
	Arith:           "ARITH",
	SArith:          "SARITH",
	SBool:           "SBOOL",
	SAssign:         "SASSIGN",
	SCompare:        "SCOMPARE",
	QEmit:           "Q_EMIT",
	QForever:        "Q_FOREVER",
	QGadget:         "Q_GADGET",
	CommentEmbed:    "COMMENT_EMBED",
	QI:              "QI",
	HI:              "HI",
	SI:              "SI",
	DI:              "DI",
	WordMode:        "WORD_",
	AutoreleasePool: "AUTORELEASEPOOL",
	OCAvailable:     "OC_AVAILABLE",
	OCDynamic:       "OC_DYNAMIC",
	OCEnd:           "OC_END",
	OCImpl:          "OC_IMPL",
	OCIntf:          "OC_INTF",
	OCProperty:      "OC_PROPERTY",
	OCPropertyAttr:  "OC_PROPERTY_ATTR",
	OCProtocol:      "OC_PROTOCOL",
	OCSel:           "OC_SEL",
	HasInclude:      "HAS_INCLUDE",
	HasIncludeNext:  "HAS_INCLUDE_NEXT",
	DCast:           "D_CAST",
	DMacro:          "D_MACRO",
	DModule:         "D_MODULE",
	DScope:          "D_SCOPE",
	DScopeIf:        "D_SCOPE_IF",
	DVersion:        "D_VERSION",
	DVersionIf:      "D_VERSION_IF",
	DWith:           "D_WITH",
	Body:            "BODY",
	Preproc:         "PREPROC",
	PPDefine:        "PP_DEFINE",
	PPInclude:       "PP_INCLUDE",
	PPIf:            "PP_IF",
	PPElse:          "PP_ELSE",
	PPEndif:         "PP_ENDIF",
	PPPragma:        "PP_PRAGMA",
	PPRegion:        "PP_REGION",
	PPEndRegion:     "PP_ENDREGION",
	PPError:         "PP_ERROR",
	PPFile:          "PP_FILE",
	PPLine:          "PP_LINE",
	PPSection:       "PP_SECTION",
	PPAsm:           "PP_ASM",
	PPAssert:        "PP_ASSERT",
	PPEmit:          "PP_EMIT",
	PPEndInput:      "PP_ENDINPUT",
	PPUndef:         "PP_UNDEF",
	PPDefined:       "PP_DEFINED",
	PPProperty:      "PP_PROPERTY",
	MacroOpen:       "MACRO_OPEN",
	MacroClose:      "MACRO_CLOSE",
	MacroElse:       "MACRO_ELSE",
}

// String returns the kind's name, e.g. "PP_IF".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) || kindNames[k] == "" {
		return "UNKNOWN"
	}
	return kindNames[k]
}
