package dbservice

import (
	"strings"

	"github.com/alecthomas/participle/v2"
)

// metaCommand is a shell command answered from the catalog rather than by
// the SQL engine.
type metaCommand struct {
	ShowTables bool    `parser:"  @'show' 'tables'"`
	Describe   *string `parser:"| ('describe' | 'desc') @Ident"`
}

var metaParser = participle.MustBuild[metaCommand](
	participle.CaseInsensitive("Ident"),
)

// parseMeta returns nil when sql is not a meta-command.
func parseMeta(sql string) *metaCommand {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return nil
	}
	switch strings.ToLower(fields[0]) {
	case "show", "describe", "desc":
	default:
		return nil
	}

	cmd, err := metaParser.ParseString("", sql)
	if err != nil {
		return nil
	}
	return cmd
}
