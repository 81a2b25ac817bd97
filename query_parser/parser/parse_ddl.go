package parser

import (
	lex "DukaDB/query_parser/lexer"
	"strconv"
)

// --- CREATE TABLE ---
// curToken is TABLE
func (p *Parser) parseCreateTable() (*CreateTableStmt, error) {
	p.nextToken()

	table, err := p.ident()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.OPENROUNDED); err != nil {
		return nil, err
	}

	stmt := &CreateTableStmt{TableName: table}
	for {
		col, err := p.parseColumnDef()
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
	return stmt, nil
}

// name type [(size)] [PRIMARY KEY] [UNIQUE] [NOT NULL], modifiers in any order
func (p *Parser) parseColumnDef() (ColumnDef, error) {
	var col ColumnDef
	var err error

	if col.Name, err = p.ident(); err != nil {
		return col, err
	}
	if col.Type, err = p.ident(); err != nil {
		return col, err
	}

	if p.is(lex.OPENROUNDED) {
		p.nextToken()
		if !p.is(lex.NUMBER) {
			return col, p.errExpected(lex.NUMBER.String())
		}
		size, err := strconv.Atoi(p.curToken.Value)
		if err != nil {
			return col, p.fail(ErrInvalidNumber)
		}
		p.nextToken()
		col.Size = &size
		if _, err := p.expect(lex.CLOSEDROUNDED); err != nil {
			return col, err
		}
	}

	// an unrecognised token ends the modifiers; the caller then
	// reports it as a missing ',' or ')'
	for !p.is(lex.COMMA) && !p.is(lex.CLOSEDROUNDED) {
		switch p.curToken.Kind {
		case lex.PRIMARY:
			p.nextToken()
			if _, err := p.expect(lex.KEY); err != nil {
				return col, err
			}
			col.PrimaryKey = true
		case lex.UNIQUE:
			p.nextToken()
			col.Unique = true
		case lex.NOT:
			p.nextToken()
			if _, err := p.expect(lex.NULL); err != nil {
				return col, err
			}
			col.NotNull = true
		default:
			return col, nil
		}
	}
	return col, nil
}

// --- CREATE [UNIQUE] INDEX name ON table (column) ---
func (p *Parser) parseCreateIndex() (*CreateIndexStmt, error) {
	stmt := &CreateIndexStmt{}
	if p.is(lex.UNIQUE) {
		stmt.Unique = true
		p.nextToken()
	}
	if _, err := p.expect(lex.INDEX); err != nil {
		return nil, err
	}

	var err error
	if stmt.IndexName, err = p.ident(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.ON); err != nil {
		return nil, err
	}
	if stmt.TableName, err = p.ident(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.OPENROUNDED); err != nil {
		return nil, err
	}
	if stmt.Column, err = p.ident(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.CLOSEDROUNDED); err != nil {
		return nil, err
	}
	return stmt, nil
}

// --- DROP TABLE ---
func (p *Parser) parseDropTable() (*DropTableStmt, error) {
	p.nextToken()
	if _, err := p.expect(lex.TABLE); err != nil {
		return nil, err
	}
	table, err := p.ident()
	if err != nil {
		return nil, err
	}
	return &DropTableStmt{TableName: table}, nil
}
