package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig collects the settings the server needs to run.
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	AdminPassword string
	PageSize      int
	OriginPath    string
}

// Load reads the application config from environment variables, supplying
// safe defaults for anything missing.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "data/badger"
	}

	adminPassword := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD"))
	if adminPassword == "" {
		// Dev default. The gate is advisory either way.
		adminPassword = "admin123"
	}

	pageSize := 6
	if raw := strings.TrimSpace(os.Getenv("PAGE_SIZE")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			pageSize = n
		}
	}

	originPath := strings.TrimSpace(os.Getenv("ORIGIN_POSTS_PATH"))

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  databasePath,
		AdminPassword: adminPassword,
		PageSize:      pageSize,
		OriginPath:    originPath,
	}
}
