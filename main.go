package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Baugest615/case-management/pkg/validation"

	"github.com/gin-gonic/gin"
)

func main() {
	// Auto-load ./.env if present (no external dependency) before reading vars
	loadDotEnv()

	var err error
	cfg, err = loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	// Support a lightweight migrate command: `./case-management migrate`
	// It runs AutoMigrate then exits. Useful for CI or manual store setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB(cfg)
		fmt.Println("migration completed")
		return
	}

	initDB(cfg)

	store := NewCaseStore(db, cfg.RemoteTimeout)
	repo = NewCaseRepository(store, validation.DefaultLimits(cfg.MaxCaseAmount), cfg.CreditCardFeeRate)
	repo.Initialize(context.Background())

	if cfg.ImportDir != "" {
		if err := startImportWatcher(cfg.ImportDir); err != nil {
			log.Printf("import watcher disabled: %v", err)
		}
	}

	r := gin.Default()

	setupRoutes(r)

	r.Run(":" + cfg.Port)
}

// loadDotEnv loads key=value pairs from a local .env file into the environment
// without overwriting variables that are already set. Lines starting with # are ignored.
func loadDotEnv() {
	path := ".env"
	if _, err := os.Stat(path); err != nil {
		return // no .env file
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// split on first '='
		if eq := strings.IndexByte(line, '='); eq > 0 {
			key := strings.TrimSpace(line[:eq])
			val := strings.TrimSpace(line[eq+1:])
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}
}
