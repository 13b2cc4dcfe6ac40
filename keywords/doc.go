/*
Package keywords resolves raw source-text words into classified token kinds
for a tokenizer shared by several source languages (C, C++, C#, D, Java,
Objective-C, Vala, Pawn, ECMA dialects) and their preprocessor layer.

The same spelling can mean different things depending on which language is
active and whether the word occurs inside a preprocessor directive:
"interface" opens a class-like construct in several languages, "else" is a
statement keyword in code but a directive keyword after a '#'. The package
holds a master catalogue of (spelling, kind, language flags) entries sorted
by spelling, narrows it to the active languages via Activate, and breaks
multi-entry ties in Resolve using the active flags and the preprocessor
context.

Users can claim additional spellings at runtime through the override
registry, either directly with Set or from a keyword file with Load; an
override always beats the catalogue.

The package is built for a single-writer setup phase followed by read-only
lookup traffic; concurrent mutation of the registry or activation during
lookups needs external synchronization.
*/
package keywords
