package storagestats

import (
	"context"

	"studio-admin/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProvider measures the application database with dbStats
type MongoProvider struct {
	db      *mongo.Database
	totalMB float64
}

func NewMongoProvider(db *mongo.Database, totalMB float64) *MongoProvider {
	return &MongoProvider{db: db, totalMB: totalMB}
}

func (p *MongoProvider) Name() string { return "mongo" }

// Storage counts data and index storage, as the hosting quota does
func (p *MongoProvider) Storage(ctx context.Context) (*Storage, error) {
	var stats struct {
		StorageSize float64 `bson:"storageSize"`
		IndexSize   float64 `bson:"indexSize"`
	}

	cmd := bson.D{{Key: "dbStats", Value: 1}, {Key: "scale", Value: 1}}
	if err := p.db.RunCommand(ctx, cmd).Decode(&stats); err != nil {
		return nil, apperr.Upstream(err)
	}

	return FromBytes(int64(stats.StorageSize+stats.IndexSize), p.totalMB), nil
}
