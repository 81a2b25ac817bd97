package executor

import (
	"DukaDB/query_parser/parser"
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

// stmtCache keeps parsed statements keyed by their SQL text so a repeated
// statement skips lexing and parsing. Statements are never modified after
// parsing, which makes sharing them safe.
type stmtCache struct {
	cache *ristretto.Cache[string, parser.Statement]
}

func newStmtCache(size int64) (*stmtCache, error) {
	if size <= 0 {
		return &stmtCache{}, nil
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, parser.Statement]{
		NumCounters:        size * 10,
		MaxCost:            size,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("statement cache: %w", err)
	}
	return &stmtCache{cache: cache}, nil
}

func (sc *stmtCache) parse(sql string) (stmt parser.Statement, hit bool, err error) {
	if sc.cache != nil {
		if stmt, ok := sc.cache.Get(sql); ok {
			return stmt, true, nil
		}
	}
	stmt, err = parser.Parse(sql)
	if err != nil {
		return nil, false, err
	}
	if sc.cache != nil {
		sc.cache.Set(sql, stmt, 1)
	}
	return stmt, false, nil
}

// wait blocks until buffered writes are visible to parse.
func (sc *stmtCache) wait() {
	if sc.cache != nil {
		sc.cache.Wait()
	}
}

func (sc *stmtCache) close() {
	if sc.cache != nil {
		sc.cache.Close()
	}
}
