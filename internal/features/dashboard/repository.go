package dashboard

import (
	"context"
	"time"

	"studio-admin/internal/common/apperr"
	"studio-admin/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SnapshotRepository persists periodic stats snapshots
type SnapshotRepository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, snapshot *Snapshot) error
	List(ctx context.Context, limit int64) ([]Snapshot, error)
}

type SnapshotRepositoryImpl struct {
	collection *mongo.Collection
}

func NewSnapshotRepository(db *database.MongodbDB) SnapshotRepository {
	return newSnapshotRepository(db.DB.Collection(database.ColStatsSnapshots))
}

func newSnapshotRepository(coll *mongo.Collection) *SnapshotRepositoryImpl {
	return &SnapshotRepositoryImpl{collection: coll}
}

func (r *SnapshotRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "takenAt", Value: -1}},
	})
	return apperr.Upstream(err)
}

func (r *SnapshotRepositoryImpl) Create(ctx context.Context, snapshot *Snapshot) error {
	if snapshot.ID.IsZero() {
		snapshot.ID = primitive.NewObjectID()
	}
	if snapshot.TakenAt.IsZero() {
		snapshot.TakenAt = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, snapshot)
	return apperr.Upstream(err)
}

// List returns the latest snapshots, newest first
func (r *SnapshotRepositoryImpl) List(ctx context.Context, limit int64) ([]Snapshot, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "takenAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	defer cursor.Close(ctx)

	snapshots := make([]Snapshot, 0)
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, apperr.Upstream(err)
	}
	return snapshots, nil
}
