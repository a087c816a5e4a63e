package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"continuous-improvement-backend/internal/config"
	"continuous-improvement-backend/internal/database"
	"continuous-improvement-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SeedFile is the shape of every YAML file under scripts/data. A file may carry
// any subset of the sections.
type SeedFile struct {
	Statuses   []string       `yaml:"statuses"`
	Categories []string       `yaml:"categories"`
	Champions  []ChampionData `yaml:"champions"`
}

type ChampionData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// seedCounts reports how many rows were created per table
type seedCounts struct {
	Statuses   int
	Categories int
	Champions  int
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seed, err := loadSeedFiles("scripts/data")
	if err != nil {
		log.Fatalf("Failed to read YAML files: %v", err)
	}

	counts, err := applySeed(db, seed)
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	log.Printf("Initial data loaded: %d statuses, %d categories, %d champions created",
		counts.Statuses, counts.Categories, counts.Champions)
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadSeedFiles merges every *.yaml file found under dataDir
func loadSeedFiles(dataDir string) (*SeedFile, error) {
	merged := &SeedFile{}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		merged.Statuses = append(merged.Statuses, file.Statuses...)
		merged.Categories = append(merged.Categories, file.Categories...)
		merged.Champions = append(merged.Champions, file.Champions...)
		return nil
	})

	return merged, err
}

// applySeed inserts the rows that do not exist yet, matching statuses and categories
// by name and champions by email
func applySeed(db *gorm.DB, seed *SeedFile) (seedCounts, error) {
	var counts seedCounts

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, name := range seed.Statuses {
			created, err := firstOrCreate(tx, &models.Status{}, "name = ?", name, &models.Status{Name: name})
			if err != nil {
				return fmt.Errorf("status %q: %w", name, err)
			}
			if created {
				counts.Statuses++
			}
		}

		for _, name := range seed.Categories {
			created, err := firstOrCreate(tx, &models.Category{}, "name = ?", name, &models.Category{Name: name})
			if err != nil {
				return fmt.Errorf("category %q: %w", name, err)
			}
			if created {
				counts.Categories++
			}
		}

		for _, c := range seed.Champions {
			if c.Email == "" {
				return fmt.Errorf("champion %q has no email", c.Name)
			}
			created, err := firstOrCreate(tx, &models.Champion{}, "email = ?", c.Email, &models.Champion{Name: c.Name, Email: c.Email})
			if err != nil {
				return fmt.Errorf("champion %q: %w", c.Email, err)
			}
			if created {
				counts.Champions++
			}
		}
		return nil
	})

	return counts, err
}

func firstOrCreate(tx *gorm.DB, probe interface{}, query string, arg interface{}, row interface{}) (bool, error) {
	err := tx.Where(query, arg).First(probe).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := tx.Create(row).Error; err != nil {
		return false, err
	}
	return true, nil
}
