package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type saveRecord struct {
	Slot      string `gorm:"primaryKey;size:128"`
	Payload   []byte
	UpdatedAt time.Time
}

func (saveRecord) TableName() string {
	return "save_slots"
}

// PostgresStore keeps save slots in a PostgreSQL table via gorm.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore opens the database, pings it, and migrates the slot table.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&saveRecord{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate save slots: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Put(ctx context.Context, slot string, data Data) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode save data: %w", err)
	}
	rec := saveRecord{Slot: slot, Payload: payload, UpdatedAt: time.Now()}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to upsert save slot: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, slot string) (Data, error) {
	var rec saveRecord
	err := s.db.WithContext(ctx).First(&rec, "slot = ?", slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Data{}, ErrSlotNotFound
	}
	if err != nil {
		return Data{}, fmt.Errorf("failed to get save slot: %w", err)
	}
	var data Data
	if err := json.Unmarshal(rec.Payload, &data); err != nil {
		return Data{}, fmt.Errorf("decode save data: %w", err)
	}
	return data, nil
}

func (s *PostgresStore) Delete(ctx context.Context, slot string) error {
	res := s.db.WithContext(ctx).Delete(&saveRecord{}, "slot = ?", slot)
	if res.Error != nil {
		return fmt.Errorf("failed to delete save slot: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]string, error) {
	var slots []string
	err := s.db.WithContext(ctx).
		Model(&saveRecord{}).
		Order("slot ASC").
		Pluck("slot", &slots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list save slots: %w", err)
	}
	return slots, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() {
	if s.db == nil {
		return
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
