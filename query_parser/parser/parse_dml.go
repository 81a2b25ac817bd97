package parser

import (
	lex "DukaDB/query_parser/lexer"
	"DukaDB/types"
	"strings"
)

// --- INSERT INTO table [(cols)] VALUES (values) ---
func (p *Parser) parseInsert() (*InsertStmt, error) {
	p.nextToken()
	if _, err := p.expect(lex.INTO); err != nil {
		return nil, err
	}

	table, err := p.ident()
	if err != nil {
		return nil, err
	}
	stmt := &InsertStmt{Table: table}

	if p.is(lex.OPENROUNDED) {
		p.nextToken()
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
		if _, err := p.expect(lex.CLOSEDROUNDED); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lex.VALUES); err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.OPENROUNDED); err != nil {
		return nil, err
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		stmt.Values = append(stmt.Values, v)
		if !p.is(lex.COMMA) {
			break
		}
		p.nextToken()
	}
	if _, err := p.expect(lex.CLOSEDROUNDED); err != nil {
		return nil, err
	}
	return stmt, nil
}

// --- UPDATE table SET col = value (, col = value)* [WHERE ...] ---
func (p *Parser) parseUpdate() (*UpdateStmt, error) {
	p.nextToken()

	table, err := p.ident()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.SET); err != nil {
		return nil, err
	}

	stmt := &UpdateStmt{Table: table}
	for {
		col, err := p.ident()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lex.EQUALS); err != nil {
			return nil, err
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		stmt.setAssignment(col, v)

		if !p.is(lex.COMMA) {
			break
		}
		p.nextToken()
	}

	if stmt.Where, err = p.parseWhere(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (s *UpdateStmt) setAssignment(col string, v types.Value) {
	for i := range s.Assignments {
		if strings.EqualFold(s.Assignments[i].Column, col) {
			s.Assignments[i].Value = v
			return
		}
	}
	s.Assignments = append(s.Assignments, Assignment{Column: col, Value: v})
}

// --- DELETE FROM table [WHERE ...] ---
func (p *Parser) parseDelete() (*DeleteStmt, error) {
	p.nextToken()
	if _, err := p.expect(lex.FROM); err != nil {
		return nil, err
	}
	table, err := p.ident()
	if err != nil {
		return nil, err
	}
	stmt := &DeleteStmt{Table: table}
	if stmt.Where, err = p.parseWhere(); err != nil {
		return nil, err
	}
	return stmt, nil
}
