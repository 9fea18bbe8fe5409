package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvEntry is the single table the postgres driver uses. The store contract is
// an opaque string KV, so the relational layer holds whole JSON documents
// rather than per-entity tables.
type kvEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value;type:text"`
}

func (kvEntry) TableName() string { return "kv_entries" }

// GormStore backs the KV contract with a postgres table through GORM.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (g *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry kvEntry
	err := g.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (g *GormStore) Set(ctx context.Context, key, value string) error {
	entry := kvEntry{Key: key, Value: value}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&entry).Error
}

func (g *GormStore) Remove(ctx context.Context, key string) error {
	return g.db.WithContext(ctx).Delete(&kvEntry{}, "key = ?", key).Error
}
