package store

import (
	"errors"
	"log"
	"os"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// KVEntry is one persisted document: key plus its JSON value, mirroring
// the key→array layout of the original local storage.
type KVEntry struct {
	Key   string         `gorm:"primaryKey;size:64;column:doc_key"`
	Value datatypes.JSON `gorm:"column:doc_value"`

	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// MySQLStore backs the key-value contract with a single gorm table.
type MySQLStore struct {
	db *gorm.DB
}

func OpenMySQL(dsn string) (*MySQLStore, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, err
	}

	return &MySQLStore{db: db}, nil
}

func (s *MySQLStore) Load(key string, def []byte) []byte {
	var entry KVEntry
	if err := s.db.First(&entry, "doc_key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ store: load %q failed, using default: %v", key, err)
		}
		return def
	}
	return []byte(entry.Value)
}

func (s *MySQLStore) Save(key string, value []byte) error {
	entry := KVEntry{Key: key, Value: datatypes.JSON(value)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "doc_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"doc_value", "updated_at"}),
	}).Create(&entry).Error
}
