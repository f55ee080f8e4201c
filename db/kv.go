package db

import (
	"context"
	"fmt"

	"kuesioner/models"
	"kuesioner/store"

	"github.com/jinzhu/gorm"
)

var _ store.Storage = (*GormStorage)(nil)

// GormStorage keeps storage slots as rows of the key_values table.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (s *GormStorage) Get(_ context.Context, key string) (string, bool, error) {
	var kv models.KeyValue
	err := s.db.Where("slot_key = ?", key).First(&kv).Error
	if gorm.IsRecordNotFoundError(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return kv.Value, true, nil
}

// Set upserts the slot inside a transaction.
func (s *GormStorage) Set(_ context.Context, key, value string) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var kv models.KeyValue
	err := tx.Where("slot_key = ?", key).First(&kv).Error
	switch {
	case gorm.IsRecordNotFoundError(err):
		kv = models.KeyValue{Key: key, Value: value}
		if err := tx.Create(&kv).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("create slot: %w", err)
		}
	case err != nil:
		tx.Rollback()
		return err
	default:
		if err := tx.Model(&models.KeyValue{}).Where("id = ?", kv.ID).Update("value", value).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("update slot: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}
	return nil
}
