package diag

import (
	"fmt"
)

// Code is the numeric suffix of a stable diagnostic identifier. The full
// identifier renders as EPAR037 plus the four-digit code, e.g. code 5 is
// EPAR0370005. Codes are frozen: test expectations match on them byte-wise.
type Code uint16

const (
	// UnknownCode is the fallback for unclassified failures.
	UnknownCode Code = 0

	// Parser errors.
	ParUnexpectedToken             Code = 3  // token cannot start anything here
	ParUnexpected                  Code = 5  // expected X, found Y
	ParUnexpectedEOF               Code = 9  // input ended mid-construct
	ParExpectedIdentifier          Code = 12 // identifier required
	ParExpectedExpression          Code = 14 // expression required
	ParMismatchedDelimiter         Code = 16 // closing delimiter missing
	ParInvalidAssignTarget         Code = 18 // left side cannot be assigned
	ParFinalizeStatementDeprecated Code = 31 // statement-level finalize(...) removed

	// Lexer errors share the parser code family.
	LexUnknownChar         Code = 40
	LexUnterminatedString  Code = 41
	LexUnterminatedComment Code = 42

	// Driver / IO.
	IOLoadFile Code = 90
)

var codeDescription = map[Code]string{
	UnknownCode:                    "unknown error",
	ParUnexpectedToken:             "unexpected token",
	ParUnexpected:                  "expected one token, found another",
	ParUnexpectedEOF:               "unexpected end of input",
	ParExpectedIdentifier:          "expected identifier",
	ParExpectedExpression:          "expected expression",
	ParMismatchedDelimiter:         "mismatched delimiter",
	ParInvalidAssignTarget:         "invalid assignment target",
	ParFinalizeStatementDeprecated: "deprecated finalize statement",
	LexUnknownChar:                 "unknown character",
	LexUnterminatedString:          "unterminated string literal",
	LexUnterminatedComment:         "unterminated block comment",
	IOLoadFile:                     "failed to load file",
}

// ID returns the stable string identifier, e.g. EPAR0370031.
func (c Code) ID() string {
	return fmt.Sprintf("EPAR037%04d", uint16(c))
}

// Title returns a short human description of the code class.
func (c Code) Title() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
