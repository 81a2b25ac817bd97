package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeSelect(t *testing.T) {
	tokens := Tokenize("select id, name FROM users WHERE age >= 21;")
	assert.Equal(t, []TokenKind{
		SELECT, IDENT, COMMA, IDENT, FROM, IDENT, WHERE, IDENT, GREATER_EQUAL, NUMBER, SEMICOLON, END,
	}, kinds(tokens))
	assert.Equal(t, "select", tokens[0].Value)
	assert.Equal(t, 7, tokens[1].Pos)
	assert.Equal(t, "21", tokens[9].Value)
}

func TestOperators(t *testing.T) {
	tests := []struct {
		in   string
		want TokenKind
	}{
		{"=", EQUALS},
		{"<>", NOT_EQUALS},
		{"!=", NOT_EQUALS},
		{"<", LESS_THAN},
		{">", GREATER_THAN},
		{"<=", LESS_EQUAL},
		{">=", GREATER_EQUAL},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tokens := Tokenize(tt.in)
			assert.Equal(t, []TokenKind{tt.want, END}, kinds(tokens))
			assert.Equal(t, tt.in, tokens[0].Value)
		})
	}
}

func TestStringLiterals(t *testing.T) {
	tokens := Tokenize(`'it\'s' 'a\nb'`)
	assert.Equal(t, []TokenKind{STRING, STRING, END}, kinds(tokens))
	assert.Equal(t, "it's", tokens[0].Value)
	// the escape copies the next character without interpreting it
	assert.Equal(t, "anb", tokens[1].Value)
}

func TestUnterminatedStringRunsToEnd(t *testing.T) {
	tokens := Tokenize("'abc def")
	assert.Equal(t, []TokenKind{STRING, END}, kinds(tokens))
	assert.Equal(t, "abc def", tokens[0].Value)
}

func TestNumbersKeepDots(t *testing.T) {
	tokens := Tokenize("3.14 1.2.3 42")
	assert.Equal(t, []TokenKind{NUMBER, NUMBER, NUMBER, END}, kinds(tokens))
	assert.Equal(t, "1.2.3", tokens[1].Value)
}

func TestKeywordsIgnoreCase(t *testing.T) {
	tokens := Tokenize("Create TABLE t_1 (x int Primary key)")
	assert.Equal(t, []TokenKind{
		CREATE, TABLE, IDENT, OPENROUNDED, IDENT, IDENT, PRIMARY, KEY, CLOSEDROUNDED, END,
	}, kinds(tokens))
	assert.Equal(t, "t_1", tokens[2].Value)
}

func TestLoneBangIsSkipped(t *testing.T) {
	tokens := Tokenize("a ! b")
	assert.Equal(t, []TokenKind{IDENT, IDENT, END}, kinds(tokens))
}

func TestUnknownCharacter(t *testing.T) {
	tokens := Tokenize("a @ b")
	assert.Equal(t, []TokenKind{IDENT, UNKNOWN, IDENT, END}, kinds(tokens))
	assert.Equal(t, "@", tokens[1].Value)
	assert.Equal(t, 2, tokens[1].Pos)
}

func TestEmptyInput(t *testing.T) {
	tokens := Tokenize("   ")
	assert.Equal(t, []TokenKind{END}, kinds(tokens))
	assert.Equal(t, 3, tokens[0].Pos)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "SELECT", SELECT.String())
	assert.Equal(t, "IDENTIFIER", IDENT.String())
	assert.Equal(t, "EOF", END.String())
}
