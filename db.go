package main

import (
	"log"
	"os"

	"github.com/Baugest615/case-management/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB(cfg Config) {
	dsn, err := cfg.DSN()
	if err != nil {
		log.Fatal(err)
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres store:", err)
	}
	if cfg.AutoMigrate {
		// Migrate tables individually so a failure on one doesn't block others.
		if err := db.AutoMigrate(&models.Case{}); err != nil {
			log.Printf("migration warning (cases): %v", err)
		}
		if err := db.AutoMigrate(&models.Receipt{}); err != nil {
			log.Printf("migration warning (receipts): %v", err)
		}
	}
	ensureUploadBase(cfg)
}

// ensureUploadBase creates the base directory for stored receipt images.
func ensureUploadBase(cfg Config) {
	if err := os.MkdirAll(cfg.UploadBase, 0755); err != nil {
		log.Printf("failed to create upload base dir %s: %v", cfg.UploadBase, err)
	}
}
