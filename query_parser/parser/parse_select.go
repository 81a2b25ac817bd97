package parser

import (
	lex "DukaDB/query_parser/lexer"
)

// --- SELECT (* | cols) FROM table [join] [WHERE ...] ---
func (p *Parser) parseSelect() (*SelectStmt, error) {
	p.nextToken()

	stmt := &SelectStmt{}
	if p.is(lex.ASTERISK) {
		stmt.Star = true
		p.nextToken()
	} else {
		for {
			col, err := p.ident()
			if err != nil {
				return nil, err
			}
			stmt.Columns = append(stmt.Columns, col)
			if !p.is(lex.COMMA) {
				break
			}
			p.nextToken()
		}
	}

	if _, err := p.expect(lex.FROM); err != nil {
		return nil, err
	}
	table, err := p.ident()
	if err != nil {
		return nil, err
	}
	stmt.Table = table

	switch p.curToken.Kind {
	case lex.JOIN, lex.INNER, lex.LEFT, lex.RIGHT:
		if stmt.Join, err = p.parseJoin(); err != nil {
			return nil, err
		}
	}

	if stmt.Where, err = p.parseWhere(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// [INNER|LEFT|RIGHT] JOIN table ON leftCol = rightCol
func (p *Parser) parseJoin() (*JoinClause, error) {
	join := &JoinClause{Kind: InnerJoin}
	switch p.curToken.Kind {
	case lex.INNER:
		p.nextToken()
	case lex.LEFT:
		join.Kind = LeftJoin
		p.nextToken()
	case lex.RIGHT:
		join.Kind = RightJoin
		p.nextToken()
	}

	if _, err := p.expect(lex.JOIN); err != nil {
		return nil, err
	}

	var err error
	if join.Table, err = p.ident(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.ON); err != nil {
		return nil, err
	}
	if join.LeftColumn, err = p.ident(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.EQUALS); err != nil {
		return nil, err
	}
	if join.RightColumn, err = p.ident(); err != nil {
		return nil, err
	}
	return join, nil
}
