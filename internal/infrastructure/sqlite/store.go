// Package sqlite guarda las instantáneas en una tabla de SQLite vía GORM.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/OnKodr-dev/inventory-app/internal/domain/repository"
)

var _ repository.SnapshotStore = (*Store)(nil)

// snapshotRow una fila por clave.
type snapshotRow struct {
	Name      string `gorm:"primaryKey;size:128"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string { return "snapshots" }

// Open abre (o crea) la base SQLite en path.
func Open(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de sqlite: %w", err)
		}
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// Store almacén de instantáneas sobre GORM.
type Store struct {
	db *gorm.DB
}

// NewStore migra la tabla snapshots y devuelve el almacén.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("migrar snapshots: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	var row snapshotRow
	err := s.db.WithContext(ctx).Where("name = ?", key).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("leer instantánea %s: %w", key, err)
	}
	return row.Value, nil
}

func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	row := snapshotRow{Name: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("guardar instantánea %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("name = ?", key).Delete(&snapshotRow{}).Error; err != nil {
		return fmt.Errorf("borrar instantánea %s: %w", key, err)
	}
	return nil
}

// Close cierra la conexión subyacente.
func (s *Store) Close() error { return CloseDB(s.db) }

// CloseDB cierra el *sql.DB de una conexión abierta con Open.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
