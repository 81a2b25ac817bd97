package parser

import (
	lex "DukaDB/query_parser/lexer"
	"DukaDB/types"
	"math"
	"strconv"
	"strings"
)

// Parser is a recursive-descent parser with one token of lookahead.
// Anything after a complete statement (a trailing ';' for example) is ignored.
type Parser struct {
	l         *lex.Lexer
	curToken  lex.Token
	peekToken lex.Token
}

func New(l *lex.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse lexes and parses a single statement.
func Parse(sql string) (Statement, error) {
	return New(lex.New(sql)).ParseStatement()
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) is(kind lex.TokenKind) bool {
	return p.curToken.Kind == kind
}

// expect checks the current token and consumes it.
func (p *Parser) expect(kind lex.TokenKind) (lex.Token, error) {
	tok := p.curToken
	if tok.Kind != kind {
		return tok, p.errExpected(kind.String())
	}
	p.nextToken()
	return tok, nil
}

func (p *Parser) ident() (string, error) {
	tok, err := p.expect(lex.IDENT)
	return tok.Value, err
}

func (p *Parser) errExpected(what string) *SyntaxError {
	return &SyntaxError{
		Expected: what,
		Actual:   p.curToken.Kind,
		Value:    p.curToken.Value,
		Pos:      p.curToken.Pos,
	}
}

func (p *Parser) fail(err error) *SyntaxError {
	se := p.errExpected("")
	se.Err = err
	return se
}

// Entry point
func (p *Parser) ParseStatement() (Statement, error) {
	switch p.curToken.Kind {
	case lex.CREATE:
		p.nextToken()
		switch p.curToken.Kind {
		case lex.TABLE:
			return done(p.parseCreateTable())
		case lex.INDEX, lex.UNIQUE:
			return done(p.parseCreateIndex())
		}
		return nil, p.fail(ErrExpectedTableOrIx)
	case lex.DROP:
		return done(p.parseDropTable())
	case lex.INSERT:
		return done(p.parseInsert())
	case lex.SELECT:
		return done(p.parseSelect())
	case lex.UPDATE:
		return done(p.parseUpdate())
	case lex.DELETE:
		return done(p.parseDelete())
	}
	return nil, p.fail(ErrUnexpectedToken)
}

// done drops the partial statement when parsing failed.
func done[T Statement](stmt T, err error) (Statement, error) {
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseValue reads NUMBER, STRING or NULL. Numbers with a '.' become
// floats; integers become INT when they fit in 32 bits and LONG otherwise.
func (p *Parser) parseValue() (types.Value, error) {
	tok := p.curToken
	switch tok.Kind {
	case lex.NUMBER:
		v, err := numberValue(tok.Value)
		if err != nil {
			return types.Value{}, p.fail(ErrInvalidNumber)
		}
		p.nextToken()
		return v, nil
	case lex.STRING:
		p.nextToken()
		return types.TextValue(tok.Value), nil
	case lex.NULL:
		p.nextToken()
		return types.NullValue(), nil
	}
	return types.Value{}, p.errExpected("value")
}

func numberValue(lit string) (types.Value, error) {
	if strings.Contains(lit, ".") {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return types.Value{}, err
		}
		return types.FloatValue(f), nil
	}
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return types.Value{}, err
	}
	if n >= math.MinInt32 && n <= math.MaxInt32 {
		return types.IntValue(int32(n)), nil
	}
	return types.LongValue(n), nil
}

// parseWhere reads "WHERE cond ((AND|OR) cond)*" into a flat chain.
func (p *Parser) parseWhere() (*WhereClause, error) {
	if !p.is(lex.WHERE) {
		return nil, nil
	}
	p.nextToken()

	where := &WhereClause{}
	for {
		cond, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		switch p.curToken.Kind {
		case lex.AND:
			cond.Next = LogicAnd
		case lex.OR:
			cond.Next = LogicOr
		}
		where.Conditions = append(where.Conditions, cond)
		if cond.Next == LogicNone {
			return where, nil
		}
		p.nextToken()
	}
}

func (p *Parser) parseCondition() (Condition, error) {
	left, err := p.ident()
	if err != nil {
		return Condition{}, err
	}
	if !p.curToken.Kind.IsComparison() {
		return Condition{}, p.errExpected("comparison operator")
	}
	cond := Condition{Left: left, Op: p.curToken.Kind}
	p.nextToken()

	if p.is(lex.IDENT) {
		cond.RightColumn = p.curToken.Value
		p.nextToken()
		return cond, nil
	}
	cond.RightValue, err = p.parseValue()
	return cond, err
}
