// Inspect a table's row file (.tbl) using the schema in schema.meta.
// Usage: go run ./cmd/inspect_tbl -data <dir> <table>
// Example: go run ./cmd/inspect_tbl -data data products
package main

import (
	"flag"
	"fmt"
	"os"

	dbservice "DukaDB/db_service"
	storageengine "DukaDB/storage_engine"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
)

func main() {
	dataDir := flag.String("data", "data", "data directory")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s -data <dir> <table>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s -data data products\n", os.Args[0])
		os.Exit(1)
	}
	if err := inspect(*dataDir, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func inspect(dataDir, table string) error {
	se, err := storageengine.NewStorageEngine(dataDir)
	if err != nil {
		return err
	}
	schema, err := se.CatalogManager.GetTable(table)
	if err != nil {
		return err
	}
	size, err := se.FileSize(schema.Name)
	if err != nil {
		return err
	}
	rows, err := se.ReadAllRows(schema)
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", se.TablePath(schema.Name), humanize.Bytes(uint64(size)))
	for _, c := range schema.Columns {
		fmt.Printf("  %-20s %-9s size=%-4d pk=%-5t unique=%-5t nullable=%t\n",
			c.Name, c.Type, c.Size, c.PrimaryKey, c.Unique, c.Nullable)
	}

	enc := json.NewEncoder(os.Stdout)
	for _, row := range rows {
		rec := dbservice.Record{Columns: schema.ColumnNames(), Values: row}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	fmt.Printf("%s rows, %s per row on average\n", humanize.Comma(int64(len(rows))), avgRow(size, len(rows)))
	return nil
}

func avgRow(size int64, rows int) string {
	if rows == 0 {
		return "n/a"
	}
	return humanize.Bytes(uint64(size) / uint64(rows))
}
