package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"flight-route-service/internal/adapters/cache"
	"flight-route-service/internal/platform/config"
	"flight-route-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// cachetool manages the persistent quote cache from the command line:
//
//	cachetool init   create the price_cache table
//	cachetool count  print the number of cached quotes
//	cachetool clear  delete all cached quotes
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if len(os.Args) != 2 {
		usage()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn, err := openBackend(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	switch os.Args[1] {
	case "init":
		if err := cache.InitSchema(conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		log.Println("Schema ready.")

	case "count":
		var n int
		if err := conn.QueryRow(`SELECT COUNT(*) FROM price_cache`).Scan(&n); err != nil {
			log.Fatalf("count failed: %v", err)
		}
		fmt.Println(n)

	case "clear":
		res, err := conn.Exec(`DELETE FROM price_cache`)
		if err != nil {
			log.Fatalf("clear failed: %v", err)
		}
		deleted, _ := res.RowsAffected()
		log.Printf("Deleted %d cached quotes.", deleted)

	default:
		usage()
	}
}

func openBackend(cfg *config.Config) (*sql.DB, error) {
	switch cfg.Cache.Backend {
	case "sqlite":
		return db.OpenSqlite(cfg.Cache.SqlitePath)
	case "postgres":
		return db.Open(cfg.Cache.PostgresDSN)
	}
	return nil, fmt.Errorf("cachetool: CACHE_BACKEND must be sqlite or postgres, got %q", cfg.Cache.Backend)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: cachetool [init|count|clear]")
	os.Exit(2)
}
