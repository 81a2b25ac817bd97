package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	dbservice "DukaDB/db_service"
	executor "DukaDB/query_executor"

	"github.com/dustin/go-humanize"
)

const helpText = `Statements:
  CREATE TABLE name (col TYPE [PRIMARY KEY] [UNIQUE] [NOT NULL], ...)
  CREATE [UNIQUE] INDEX name ON table (col)
  DROP TABLE name
  INSERT INTO table [(cols)] VALUES (...)
  SELECT *|cols FROM table [[INNER|LEFT|RIGHT] JOIN t ON a = b] [WHERE ...]
  UPDATE table SET col = value, ... [WHERE ...]
  DELETE FROM table [WHERE ...]
  SHOW TABLES
  DESCRIBE table
Commands: help, clear, exit, quit`

func main() {
	dataDir := flag.String("data", "data", "directory holding schema.meta and the table files")
	asJSON := flag.Bool("json", false, "print responses as JSON")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	engine, err := executor.Open(*dataDir, executor.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}
	defer engine.Close()
	svc := dbservice.New(engine)

	fmt.Printf("DukaDB shell, data in %s. Type help for commands.\n", *dataDir)

	scanner := bufio.NewScanner(os.Stdin)
	// REPL
	for {
		fmt.Print("duka> ")

		if !scanner.Scan() { // Ctrl+D pressed
			fmt.Println()
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "exit", "quit":
			return
		case "help":
			fmt.Println(helpText)
			continue
		case "clear":
			fmt.Print("\033[H\033[2J")
			continue
		}

		resp := svc.Execute(line)
		if *asJSON {
			data, err := resp.JSON()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Println(string(data))
			continue
		}
		printResponse(resp)
	}
}

func printResponse(resp *dbservice.Response) {
	if !resp.Success || len(resp.ColumnNames) == 0 {
		fmt.Println(resp.Message)
		return
	}

	widths := make([]int, len(resp.ColumnNames))
	for i, c := range resp.ColumnNames {
		widths[i] = len(c)
	}
	cells := make([][]string, len(resp.Rows))
	for r, row := range resp.Rows {
		cells[r] = make([]string, len(row))
		for i, v := range row {
			cells[r][i] = v.String()
			widths[i] = max(widths[i], len(cells[r][i]))
		}
	}

	sep := "+"
	for _, w := range widths {
		sep += strings.Repeat("-", w+2) + "+"
	}
	printRow := func(vals []string) {
		var b strings.Builder
		b.WriteString("|")
		for i, v := range vals {
			fmt.Fprintf(&b, " %-*s |", widths[i], v)
		}
		fmt.Println(b.String())
	}

	fmt.Println(sep)
	printRow(resp.ColumnNames)
	fmt.Println(sep)
	for _, row := range cells {
		printRow(row)
	}
	fmt.Println(sep)

	footer := fmt.Sprintf("(%s rows, %s)", humanize.Comma(int64(len(resp.Rows))), resp.Elapsed.Round(time.Microsecond))
	if resp.Note != "" {
		footer += " " + resp.Note
	}
	fmt.Println(footer)
}
