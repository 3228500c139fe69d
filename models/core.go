package models

import (
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/KartForge/ShpDxfBridge/config"
)

var DB *gorm.DB

// InitDatabase opens the sqlite task database and migrates the
// conversion history table.
func InitDatabase() error {
	dbPath := config.Database
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			log.Printf("create database dir failed: %v", err)
			return err
		}
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Printf("open database failed: %v", err)
		return err
	}
	DB.NamingStrategy = schema.NamingStrategy{
		SingularTable: true,
	}

	if err := DB.AutoMigrate(&ConvertRecord{}); err != nil {
		log.Printf("migrate tables failed: %v", err)
		return err
	}
	return nil
}

func GetDB() *gorm.DB {
	return DB
}
