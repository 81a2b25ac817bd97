package lex

type TokenKind int

const (
	// identifier and literals
	IDENT TokenKind = iota
	NUMBER
	STRING

	// keywords
	SELECT
	INSERT
	UPDATE
	DELETE
	CREATE
	DROP
	TABLE
	FROM
	WHERE
	INTO
	VALUES
	SET
	AND
	OR
	PRIMARY
	KEY
	UNIQUE
	NOT
	NULL
	INDEX
	JOIN
	ON
	INNER
	LEFT
	RIGHT

	// operators
	EQUALS
	NOT_EQUALS
	LESS_THAN
	GREATER_THAN
	LESS_EQUAL
	GREATER_EQUAL

	// symbols
	COMMA
	SEMICOLON
	OPENROUNDED
	CLOSEDROUNDED
	ASTERISK

	END
	UNKNOWN
)

// Token is one lexeme. Pos is the offset, in characters, of its first
// character in the input.
type Token struct {
	Kind  TokenKind
	Value string
	Pos   int
}

var keywords = map[string]TokenKind{
	"SELECT":  SELECT,
	"INSERT":  INSERT,
	"UPDATE":  UPDATE,
	"DELETE":  DELETE,
	"CREATE":  CREATE,
	"DROP":    DROP,
	"TABLE":   TABLE,
	"FROM":    FROM,
	"WHERE":   WHERE,
	"INTO":    INTO,
	"VALUES":  VALUES,
	"SET":     SET,
	"AND":     AND,
	"OR":      OR,
	"PRIMARY": PRIMARY,
	"KEY":     KEY,
	"UNIQUE":  UNIQUE,
	"NOT":     NOT,
	"NULL":    NULL,
	"INDEX":   INDEX,
	"JOIN":    JOIN,
	"ON":      ON,
	"INNER":   INNER,
	"LEFT":    LEFT,
	"RIGHT":   RIGHT,
}

func (tk TokenKind) String() string {
	switch tk {
	case IDENT:
		return "IDENTIFIER"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case EQUALS:
		return "EQUALS"
	case NOT_EQUALS:
		return "NOT_EQUALS"
	case LESS_THAN:
		return "LESS_THAN"
	case GREATER_THAN:
		return "GREATER_THAN"
	case LESS_EQUAL:
		return "LESS_EQUAL"
	case GREATER_EQUAL:
		return "GREATER_EQUAL"
	case COMMA:
		return "COMMA"
	case SEMICOLON:
		return "SEMICOLON"
	case OPENROUNDED:
		return "LEFT_PAREN"
	case CLOSEDROUNDED:
		return "RIGHT_PAREN"
	case ASTERISK:
		return "ASTERISK"
	case END:
		return "EOF"
	case UNKNOWN:
		return "UNKNOWN"
	}
	for word, kind := range keywords {
		if kind == tk {
			return word
		}
	}
	return "UNKNOWN"
}

// IsComparison reports whether the kind is one of the WHERE operators.
func (tk TokenKind) IsComparison() bool {
	return tk >= EQUALS && tk <= GREATER_EQUAL
}
