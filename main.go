package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"inkwell/app/config"
	"inkwell/app/models"
	"inkwell/app/origin"
	"inkwell/app/routes"
	"inkwell/app/store"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage())
		os.Exit(1)
	}

	// Missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()
	cfg := config.Load()

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		fmt.Print(usage())
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve(cfg)
	case "init":
		initDb(cfg)
	case "clean":
		clean(cfg)
	case "backup":
		backup(cfg)
	case "restore":
		if len(os.Args) < 3 {
			fmt.Println("Error: backup file path required for restore")
			os.Exit(1)
		}
		restore(cfg, os.Args[2])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		fmt.Print(usage())
		os.Exit(1)
	}
}

func usage() string {
	return `Usage: inkwell <command> [options]

Commands:
  serve              Run the blog server
  init               Initialize a new empty database
  clean              Remove the database
  backup             Create a backup of the database
  restore <file>     Restore the database from a backup
  version            Show version information
  help               Display this help message
`
}

// serve opens the database and runs the HTTP server.
func serve(cfg config.AppConfig) {
	opts := badger.DefaultOptions(cfg.DatabasePath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	router, err := routes.Setup(store.NewBadgerStore(db), originPosts(cfg), cfg)
	if err != nil {
		log.Fatalf("Failed to setup routes: %v", err)
	}

	log.Printf("Starting blog server on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// originPosts loads the static read-only collection, preferring a configured
// external file over the embedded seed.
func originPosts(cfg config.AppConfig) []models.Post {
	if cfg.OriginPath == "" {
		return origin.Default()
	}
	posts, err := origin.LoadFile(cfg.OriginPath)
	if err != nil {
		log.Fatalf("Failed to load origin posts: %v", err)
	}
	return posts
}

// initDb initializes a new empty database
func initDb(cfg config.AppConfig) {
	if _, err := os.Stat(cfg.DatabasePath); err == nil {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	if err := os.MkdirAll(cfg.DatabasePath, 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	db, err := badger.Open(badger.DefaultOptions(cfg.DatabasePath).WithLogger(nil))
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	fmt.Println("Database initialized successfully")
}

// clean removes the database
func clean(cfg config.AppConfig) {
	if _, err := os.Stat(cfg.DatabasePath); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return
	}

	fmt.Print("Are you sure you want to clean the database? This cannot be undone. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.RemoveAll(cfg.DatabasePath); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned successfully")
}

// backup creates a backup of the database
func backup(cfg config.AppConfig) {
	if _, err := os.Stat(cfg.DatabasePath); os.IsNotExist(err) {
		fmt.Println("No database exists to backup")
		return
	}

	backupDir := "data/backups"
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		log.Fatalf("Failed to create backup directory: %v", err)
	}

	db, err := badger.Open(badger.DefaultOptions(cfg.DatabasePath).WithLogger(nil))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		log.Fatalf("Failed to create backup file: %v", err)
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		log.Fatalf("Failed to backup database: %v", err)
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
}

// restore restores the database from a backup
func restore(cfg config.AppConfig, backupFile string) {
	if _, err := os.Stat(backupFile); os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return
	}

	if _, err := os.Stat(cfg.DatabasePath); err == nil {
		fmt.Print("Existing database found. Do you want to replace it? [y/N] ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Operation cancelled")
			return
		}
		if err := os.RemoveAll(cfg.DatabasePath); err != nil {
			log.Fatalf("Failed to remove existing database: %v", err)
		}
	}

	if err := os.MkdirAll(cfg.DatabasePath, 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	db, err := badger.Open(badger.DefaultOptions(cfg.DatabasePath).WithLogger(nil))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		log.Fatalf("Failed to open backup file: %v", err)
	}
	defer f.Close()

	if err := db.Load(f, 4); err != nil {
		log.Fatalf("Failed to restore database: %v", err)
	}

	fmt.Println("Database restored successfully")
}
