// Package storagestats reports how much of the studio storage quota is used
package storagestats

import (
	"context"
	"fmt"
	"math"

	"studio-admin/internal/config"
	"studio-admin/internal/database"

	"go.uber.org/zap"
)

// Storage is the raw collaborator reading, in the units the dashboard shows
type Storage struct {
	UsedStorageKB  float64 `json:"usedStorageKB" bson:"usedStorageKB"`
	UsedStorageMB  float64 `json:"usedStorageMB" bson:"usedStorageMB"`
	TotalStorageMB float64 `json:"totalStorageMB" bson:"totalStorageMB"`
}

// FromBytes converts a byte count into a Storage reading against totalMB
func FromBytes(used int64, totalMB float64) *Storage {
	kb := float64(used) / 1024
	return &Storage{
		UsedStorageKB:  round2(kb),
		UsedStorageMB:  round2(kb / 1024),
		TotalStorageMB: totalMB,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Provider reads the current storage usage
type Provider interface {
	Name() string
	Storage(ctx context.Context) (*Storage, error)
}

// NewProvider picks the provider configured by STORAGE_SOURCE
func NewProvider(cfg *config.Config, mongodb *database.MongodbDB, logger *zap.Logger) (Provider, error) {
	switch cfg.StorageSource {
	case "mongo", "":
		logger.Info("Storage provider: mongo", zap.String("db", cfg.DBName))
		return NewMongoProvider(mongodb.DB, cfg.StorageTotalMB), nil
	case "minio":
		p, err := NewMinioProvider(cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Storage provider: minio", zap.String("bucket", cfg.MinioBucket))
		return p, nil
	}
	return nil, fmt.Errorf("unknown storage source %q", cfg.StorageSource)
}
