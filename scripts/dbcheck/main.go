package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"mwell-store/internal/config"

	"github.com/jackc/pgx/v5"
)

var tables = []string{"products", "users", "appointments", "orders", "reviews", "wishlist_items"}

// Checks that the configured database is reachable and reports what the
// server has migrated into it.
func main() {
	cfg, err := config.LoadDatabase()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid database configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	var dbName string
	if err := conn.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully connected to database: %s\n", dbName)

	rows, err := conn.Query(ctx, "SELECT datname FROM pg_database WHERE datistemplate = false ORDER BY datname")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Query failed: %v\n", err)
		os.Exit(1)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nAvailable databases:")
	for _, name := range names {
		fmt.Printf("  - %s\n", name)
	}

	fmt.Println("\nRow counts:")
	for _, table := range tables {
		var count int64
		err := conn.QueryRow(ctx, "SELECT count(*) FROM "+pgx.Identifier{table}.Sanitize()).Scan(&count)
		if err != nil {
			// Table missing until the server has run its migrations.
			fmt.Printf("  - %-13s unavailable (%v)\n", table, err)
			continue
		}
		fmt.Printf("  - %-13s %d\n", table, count)
	}
}
