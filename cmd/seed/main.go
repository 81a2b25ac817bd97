// Seed program: creates the demo tables products and sales with sample rows
// and a unique index on products.sku.
// Run: go run ./cmd/seed -data data
// Then inspect: go run ./cmd/inspect_tbl -data data products
package main

import (
	"flag"
	"fmt"
	"log"

	dbservice "DukaDB/db_service"
	executor "DukaDB/query_executor"
)

func main() {
	dataDir := flag.String("data", "data", "data directory")
	flag.Parse()

	engine, err := executor.Open(*dataDir)
	if err != nil {
		log.Fatalf("open: %v", err)
	}
	defer engine.Close()
	svc := dbservice.New(engine)

	run := func(sql string) {
		resp := svc.Execute(sql)
		if !resp.Success {
			log.Fatalf("execute %q: %s", sql, resp.Message)
		}
	}

	if _, ok := engine.Describe("products"); ok {
		fmt.Printf("%s already holds the demo tables\n", *dataDir)
		return
	}
	fmt.Printf("Seeding %s...\n", *dataDir)

	// Table 1: products (id PK, sku unique)
	run(`CREATE TABLE products (id INT PRIMARY KEY, sku VARCHAR(12) UNIQUE NOT NULL, name VARCHAR(100), price INT, stock INT, category VARCHAR(50))`)
	// the index only sees rows inserted after it exists
	run(`CREATE UNIQUE INDEX idx_products_sku ON products (sku)`)
	run(`INSERT INTO products VALUES (1, 'EL-LAP-01', 'Laptop', 75000, 10, 'Electronics')`)
	run(`INSERT INTO products VALUES (2, 'EL-MOU-01', 'Mouse', 1500, 50, 'Electronics')`)
	run(`INSERT INTO products VALUES (3, 'EL-KEY-01', 'Keyboard', 3000, 30, 'Electronics')`)
	run(`INSERT INTO products VALUES (4, 'EL-MON-01', 'Monitor', 25000, 15, 'Electronics')`)
	run(`INSERT INTO products VALUES (5, 'FU-CHR-01', 'Desk Chair', 12000, 20, 'Furniture')`)

	// Table 2: sales (product_id refers to products.id)
	run(`CREATE TABLE sales (id INT PRIMARY KEY, product_id INT, quantity INT, total_amount LONG, sale_date DATE)`)
	run(`INSERT INTO sales VALUES (1, 1, 2, 150000, '2024-01-15')`)
	run(`INSERT INTO sales VALUES (2, 2, 5, 7500, '2024-01-16')`)
	run(`INSERT INTO sales VALUES (3, 4, 1, 25000, '2024-02-03')`)
	run(`INSERT INTO sales VALUES (4, 2, 3, 4500, '2024-02-10')`)

	fmt.Println("Done. Tables: products (5 rows), sales (4 rows).")
	fmt.Println("Try: SELECT name, quantity FROM products JOIN sales ON id = product_id")
}
