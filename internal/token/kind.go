package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token. Note that `async` lexes as an
	// identifier, not a keyword.
	Ident

	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwConstant represents the 'constant' parameter mode keyword.
	KwConstant // constant
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFinalize represents the 'finalize' keyword.
	KwFinalize // finalize
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwInline represents the 'inline' keyword.
	KwInline // inline
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwMapping represents the 'mapping' keyword.
	KwMapping // mapping
	// KwProgram represents the 'program' keyword.
	KwProgram // program
	// KwPublic represents the 'public' parameter mode keyword.
	KwPublic // public
	// KwRecord represents the 'record' keyword.
	KwRecord // record
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwThen represents the 'then' keyword.
	KwThen // then
	// KwTransition represents the 'transition' keyword.
	KwTransition // transition
	// KwTrue represents the 'true' keyword.
	KwTrue // true

	// IntLit represents an integer literal, optionally with a type suffix.
	IntLit
	// StringLit represents a double-quoted string literal.
	StringLit

	Assign        // =
	EqEq          // ==
	Bang          // !
	BangEq        // !=
	Lt            // <
	LtEq          // <=
	Gt            // >
	GtEq          // >=
	Plus          // +
	PlusAssign    // +=
	Minus         // -
	MinusAssign   // -=
	Star          // *
	StarAssign    // *=
	StarStar      // **
	Slash         // /
	SlashAssign   // /=
	Percent       // %
	PercentAssign // %=
	AndAnd        // &&
	OrOr          // ||
	Amp           // &
	Pipe          // |
	Caret         // ^
	LParen        // (
	RParen        // )
	LBracket      // [
	RBracket      // ]
	LBrace        // {
	RBrace        // }
	Comma         // ,
	Dot           // .
	DotDot        // ..
	Semicolon     // ;
	Colon         // :
	ColonColon    // ::
	Question      // ?
	Arrow         // ->
	FatArrow      // =>
	Underscore    // _
	At            // @
)

var kindNames = map[Kind]string{
	Invalid:       "invalid",
	EOF:           "<eof>",
	Ident:         "identifier",
	KwConst:       "const",
	KwConstant:    "constant",
	KwElse:        "else",
	KwFalse:       "false",
	KwFinalize:    "finalize",
	KwFor:         "for",
	KwFunction:    "function",
	KwIf:          "if",
	KwImport:      "import",
	KwIn:          "in",
	KwInline:      "inline",
	KwLet:         "let",
	KwMapping:     "mapping",
	KwProgram:     "program",
	KwPublic:      "public",
	KwRecord:      "record",
	KwReturn:      "return",
	KwStruct:      "struct",
	KwThen:        "then",
	KwTransition:  "transition",
	KwTrue:        "true",
	IntLit:        "integer literal",
	StringLit:     "string literal",
	Assign:        "=",
	EqEq:          "==",
	Bang:          "!",
	BangEq:        "!=",
	Lt:            "<",
	LtEq:          "<=",
	Gt:            ">",
	GtEq:          ">=",
	Plus:          "+",
	PlusAssign:    "+=",
	Minus:         "-",
	MinusAssign:   "-=",
	Star:          "*",
	StarAssign:    "*=",
	StarStar:      "**",
	Slash:         "/",
	SlashAssign:   "/=",
	Percent:       "%",
	PercentAssign: "%=",
	AndAnd:        "&&",
	OrOr:          "||",
	Amp:           "&",
	Pipe:          "|",
	Caret:         "^",
	LParen:        "(",
	RParen:        ")",
	LBracket:      "[",
	RBracket:      "]",
	LBrace:        "{",
	RBrace:        "}",
	Comma:         ",",
	Dot:           ".",
	DotDot:        "..",
	Semicolon:     ";",
	Colon:         ":",
	ColonColon:    "::",
	Question:      "?",
	Arrow:         "->",
	FatArrow:      "=>",
	Underscore:    "_",
	At:            "@",
}

// String returns the display form used in diagnostics: the literal spelling
// for keywords and punctuation, a descriptive name otherwise.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
