package models

import "time"

// KeyValue is one named storage slot kept in the SQL database.
type KeyValue struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Key       string     `gorm:"column:slot_key;not null;unique" json:"key"`
	Value     string     `gorm:"type:text" json:"value"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
