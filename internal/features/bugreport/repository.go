package bugreport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studio-admin/internal/common/apperr"
	"studio-admin/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BugReportRepository defines the data operations on the bugreports collection
type BugReportRepository interface {
	EnsureIndexes(ctx context.Context) error
	List(ctx context.Context) ([]BugReport, error)
	FindByID(ctx context.Context, id string) (*BugReport, error)
	Create(ctx context.Context, report *BugReport) error
	Resolve(ctx context.Context, id string, message string, at time.Time) (*BugReport, error)
}

// BugReportRepositoryImpl implements BugReportRepository
type BugReportRepositoryImpl struct {
	collection *mongo.Collection
}

// NewBugReportRepository creates a new bug report repository
func NewBugReportRepository(db *database.MongodbDB) BugReportRepository {
	return newBugReportRepository(db.DB.Collection(database.ColBugReports))
}

func newBugReportRepository(coll *mongo.Collection) *BugReportRepositoryImpl {
	return &BugReportRepositoryImpl{collection: coll}
}

// EnsureIndexes creates the list ordering index
func (r *BugReportRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	return apperr.Upstream(err)
}

// List returns every report, newest first
func (r *BugReportRepositoryImpl) List(ctx context.Context) ([]BugReport, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	defer cursor.Close(ctx)

	reports := make([]BugReport, 0)
	if err = cursor.All(ctx, &reports); err != nil {
		return nil, apperr.Upstream(err)
	}
	return reports, nil
}

// FindByID retrieves a report by ID
func (r *BugReportRepositoryImpl) FindByID(ctx context.Context, id string) (*BugReport, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFoundf("bug report %s", id)
	}

	var report BugReport
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&report); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFoundf("bug report %s", id)
		}
		return nil, apperr.Upstream(err)
	}
	return &report, nil
}

// Create inserts a new report
func (r *BugReportRepositoryImpl) Create(ctx context.Context, report *BugReport) error {
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}
	report.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, report)
	return apperr.Upstream(err)
}

// Resolve closes a report that is not yet terminal in one conditional write.
// When nothing matched it tells a missing report apart from a closed one.
func (r *BugReportRepositoryImpl) Resolve(ctx context.Context, id string, message string, at time.Time) (*BugReport, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFoundf("bug report %s", id)
	}

	filter := bson.M{
		"_id":    oid,
		"status": bson.M{"$nin": terminalStatuses},
	}
	update := bson.M{"$set": bson.M{
		"status":            StatusClosed,
		"resolutionMessage": message,
		"resolvedAt":        at,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var report BugReport
	err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&report)
	if err == nil {
		return &report, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.Upstream(err)
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	if count == 0 {
		return nil, apperr.NotFoundf("bug report %s", id)
	}
	return nil, fmt.Errorf("%w: bug report %s is already resolved", apperr.ErrInvalidState, id)
}
