package db

import (
	"fmt"
	"os"
	"path/filepath"

	"kuesioner/config"
	"kuesioner/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"go.uber.org/zap"
)

// Connect opens the database (sqlite3 by default) and migrates the
// key-value table that backs the response slot.
func Connect(conf config.Configuration, logger *zap.Logger) (*gorm.DB, error) {
	database := conf.Database
	if database == "" {
		database = "sqlite3"
	}

	var (
		db  *gorm.DB
		err error
	)

	if database == "postgres" || database == "postgresql" {
		logger.Info("using postgresql connection", zap.String("host", conf.DbHost), zap.String("db", conf.DbName))
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass
		db, err = gorm.Open("postgres", path)
	} else {
		file := conf.DbPath
		if file == "" {
			file = "db/database.db"
		}
		if file != ":memory:" {
			if mkErr := os.MkdirAll(filepath.Dir(file), 0o755); mkErr != nil {
				return nil, fmt.Errorf("create db dir: %w", mkErr)
			}
		}
		logger.Info("using sqlite3 connection", zap.String("path", file))
		db, err = gorm.Open("sqlite3", file)
	}

	if err != nil {
		logger.Error("database connection failed", zap.Error(err))
		return nil, err
	}

	if conf.DbPath == ":memory:" {
		// every new connection would see its own empty database
		db.DB().SetMaxOpenConns(1)
	}
	db.LogMode(conf.LogLevel == "debug")

	if err := db.AutoMigrate(&models.KeyValue{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	return db, nil
}
