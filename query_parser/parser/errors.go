package parser

import (
	lex "DukaDB/query_parser/lexer"
	"errors"
	"fmt"
)

var (
	ErrUnexpectedToken   = errors.New("unexpected token")
	ErrExpectedTableOrIx = errors.New("expected TABLE or INDEX after CREATE")
	ErrInvalidNumber     = errors.New("invalid number literal")
)

// SyntaxError reports the token the parser wanted and the one it found.
type SyntaxError struct {
	Expected string
	Actual   lex.TokenKind
	Value    string
	Pos      int
	Err      error
}

func (e *SyntaxError) Error() string {
	actual := e.Actual.String()
	if e.Actual == lex.END {
		actual = "end of input"
	}
	if e.Err != nil {
		return fmt.Sprintf("%v: %s at position %d", e.Err, actual, e.Pos)
	}
	return fmt.Sprintf("Expected %s but got %s at position %d", e.Expected, actual, e.Pos)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
