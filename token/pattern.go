package token

// PatternClass describes the syntactic shape a statement-introducing keyword
// expects around it: whether a parenthesized clause and/or a braced block
// follows, and whether either is optional.
type PatternClass int

const (
	// PatternNone means the kind implies no structural shape.
	PatternNone PatternClass = iota

	// PatternBraced is a bare block with no leading parenthesized clause
	// (do, try, finally).
	PatternBraced

	// PatternParenBraced is a parenthesized clause followed by a block
	// (if, for, while, switch).
	PatternParenBraced

	// PatternOptParenBraced is a block with an optional parenthesized
	// clause before it (catch, version).
	PatternOptParenBraced

	// PatternIdentBraced is a name followed by a block (namespace).
	PatternIdentBraced

	// PatternParen is a trailing parenthesized clause with no block (the
	// while that closes a do-while).
	PatternParen

	// PatternOptParen is an optional trailing parenthesized clause
	// (invariant).
	PatternOptParen

	// PatternElse is a bare block or chained clause with no parens (else).
	PatternElse
)

var patternNames = [...]string{
	PatternNone:           "none",
	PatternBraced:         "braced",
	PatternParenBraced:    "paren-braced",
	PatternOptParenBraced: "opt-paren-braced",
	PatternIdentBraced:    "ident-braced",
	PatternParen:          "paren",
	PatternOptParen:       "opt-paren",
	PatternElse:           "else",
}

func (p PatternClass) String() string {
	if p < 0 || int(p) >= len(patternNames) {
		return "none"
	}
	return patternNames[p]
}

// Pattern reports the structural shape implied by a keyword kind. Kinds that
// introduce no structure map to PatternNone; the function never fails.
func Pattern(k Kind) PatternClass {
	switch k {
	case If, ElseIf, Switch, For, While, Synchronized, UsingStmt, Lock,
		DWith, DVersionIf, DScopeIf:
		return PatternParenBraced

	case Else:
		return PatternElse

	case Do, Try, Finally, Body, UnitTest, Unsafe, Volatile, GetSet:
		return PatternBraced

	case Catch, DVersion, Debug:
		return PatternOptParenBraced

	case Namespace:
		return PatternIdentBraced

	case WhileOfDo:
		return PatternParen

	case Invariant:
		return PatternOptParen

	default:
		return PatternNone
	}
}
