package lex

import (
	"strings"
	"unicode"
)

// Lexer walks the input one character at a time. It never fails: characters
// it does not understand come back as UNKNOWN tokens for the parser to reject.
type Lexer struct {
	input   []rune
	pos     int
	readPos int
	ch      rune
}

const eof rune = 0

func New(input string) *Lexer {
	l := &Lexer{input: []rune(input)}
	l.readChar()
	return l
}

// Tokenize lexes the whole input. The result always ends with an END token.
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == END {
			return tokens
		}
	}
}

func (l *Lexer) NextToken() Token {
	for {
		l.skipWhiteSpaces()
		// a lone '!' is dropped
		if l.ch == '!' && l.peekChar() != '=' && !l.atEnd() {
			l.readChar()
			continue
		}
		break
	}

	start := l.pos
	if l.atEnd() {
		return Token{Kind: END, Value: "", Pos: start}
	}

	switch l.ch {
	case ',':
		return l.single(COMMA)
	case ';':
		return l.single(SEMICOLON)
	case '(':
		return l.single(OPENROUNDED)
	case ')':
		return l.single(CLOSEDROUNDED)
	case '*':
		return l.single(ASTERISK)
	case '=':
		return l.single(EQUALS)
	case '<':
		switch l.peekChar() {
		case '=':
			return l.double(LESS_EQUAL)
		case '>':
			return l.double(NOT_EQUALS)
		}
		return l.single(LESS_THAN)
	case '>':
		if l.peekChar() == '=' {
			return l.double(GREATER_EQUAL)
		}
		return l.single(GREATER_THAN)
	case '!':
		return l.double(NOT_EQUALS)
	case '\'':
		return Token{Kind: STRING, Value: l.readString(), Pos: start}
	}

	switch {
	case isLetter(l.ch):
		word := l.readIdentifier()
		if kind, ok := keywords[strings.ToUpper(word)]; ok {
			return Token{Kind: kind, Value: word, Pos: start}
		}
		return Token{Kind: IDENT, Value: word, Pos: start}
	case isDigit(l.ch):
		return Token{Kind: NUMBER, Value: l.readNumber(), Pos: start}
	}
	return l.single(UNKNOWN)
}

func (l *Lexer) single(kind TokenKind) Token {
	tok := Token{Kind: kind, Value: string(l.ch), Pos: l.pos}
	l.readChar()
	return tok
}

func (l *Lexer) double(kind TokenKind) Token {
	start := l.pos
	l.readChar()
	l.readChar()
	return Token{Kind: kind, Value: string(l.input[start:l.pos]), Pos: start}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = eof
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return eof
	}
	return l.input[l.readPos]
}

// atEnd distinguishes end of input from a literal NUL character.
func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) skipWhiteSpaces() {
	for !l.atEnd() && unicode.IsSpace(l.ch) {
		l.readChar()
	}
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	return unicode.IsDigit(ch)
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for !l.atEnd() && (isLetter(l.ch) || isDigit(l.ch)) {
		l.readChar()
	}
	return string(l.input[start:l.pos])
}

// readNumber takes digits and dots as they come; "1.2.3" is rejected
// later, when the parser converts the literal.
func (l *Lexer) readNumber() string {
	start := l.pos
	for !l.atEnd() && (isDigit(l.ch) || l.ch == '.') {
		l.readChar()
	}
	return string(l.input[start:l.pos])
}

// readString reads a quoted literal. A backslash copies the next character
// as-is, and a missing closing quote runs to the end of input.
func (l *Lexer) readString() string {
	l.readChar() // opening '
	var sb strings.Builder
	for !l.atEnd() && l.ch != '\'' {
		if l.ch == '\\' {
			l.readChar()
			if l.atEnd() {
				break
			}
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	if !l.atEnd() {
		l.readChar() // closing '
	}
	return sb.String()
}
