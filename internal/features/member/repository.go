package member

import (
	"context"
	"errors"
	"time"

	"studio-admin/internal/common/apperr"
	"studio-admin/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MemberRepository defines the data operations on the members collection
type MemberRepository interface {
	EnsureIndexes(ctx context.Context) error
	List(ctx context.Context) ([]Member, error)
	FindByID(ctx context.Context, id string) (*Member, error)
	FindByUsernameFold(ctx context.Context, username string) (*Member, error)
	Create(ctx context.Context, member *Member) error
	Update(ctx context.Context, id string, input MemberInput) (*Member, error)
	Delete(ctx context.Context, id string) error
	SetAccessFlag(ctx context.Context, id string, flag AccessFlag, value bool) (*Member, error)
}

// MemberRepositoryImpl implements MemberRepository
type MemberRepositoryImpl struct {
	collection *mongo.Collection
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *database.MongodbDB) MemberRepository {
	return newMemberRepository(db.DB.Collection(database.ColMembers))
}

func newMemberRepository(coll *mongo.Collection) *MemberRepositoryImpl {
	return &MemberRepositoryImpl{collection: coll}
}

// caseInsensitive compares strings ignoring case and diacritics
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

// EnsureIndexes creates the unique username index
func (r *MemberRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_1"),
	})
	return wrapError(err)
}

// List returns every member, newest first
func (r *MemberRepositoryImpl) List(ctx context.Context) ([]Member, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, wrapError(err)
	}
	defer cursor.Close(ctx)

	members := make([]Member, 0)
	if err = cursor.All(ctx, &members); err != nil {
		return nil, wrapError(err)
	}
	return members, nil
}

// FindByID retrieves a member by ID
func (r *MemberRepositoryImpl) FindByID(ctx context.Context, id string) (*Member, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFoundf("member %s", id)
	}

	var member Member
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&member); err != nil {
		return nil, wrapNotFound(err, id)
	}
	return &member, nil
}

// FindByUsernameFold looks a member up by username ignoring case
func (r *MemberRepositoryImpl) FindByUsernameFold(ctx context.Context, username string) (*Member, error) {
	opts := options.FindOne().SetCollation(caseInsensitive)

	var member Member
	if err := r.collection.FindOne(ctx, bson.M{"username": username}, opts).Decode(&member); err != nil {
		return nil, wrapNotFound(err, username)
	}
	return &member, nil
}

// Create inserts a new member
func (r *MemberRepositoryImpl) Create(ctx context.Context, member *Member) error {
	now := time.Now().UTC()
	if member.ID.IsZero() {
		member.ID = primitive.NewObjectID()
	}
	member.CreatedAt = now
	member.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, member); err != nil {
		return wrapError(err)
	}
	return nil
}

// Update replaces username, password and access in a single write
func (r *MemberRepositoryImpl) Update(ctx context.Context, id string, input MemberInput) (*Member, error) {
	set := bson.M{
		"username":  input.Username,
		"password":  input.Password,
		"access":    input.Access,
		"updatedAt": time.Now().UTC(),
	}
	return r.findOneAndSet(ctx, id, set)
}

// Delete removes a member permanently
func (r *MemberRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFoundf("member %s", id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return wrapError(err)
	}
	if result.DeletedCount == 0 {
		return apperr.NotFoundf("member %s", id)
	}
	return nil
}

// SetAccessFlag writes exactly one access field
func (r *MemberRepositoryImpl) SetAccessFlag(ctx context.Context, id string, flag AccessFlag, value bool) (*Member, error) {
	// flag comes from ParseAccessFlag, never from raw input
	set := bson.M{
		"access." + string(flag): value,
		"updatedAt":              time.Now().UTC(),
	}
	return r.findOneAndSet(ctx, id, set)
}

func (r *MemberRepositoryImpl) findOneAndSet(ctx context.Context, id string, set bson.M) (*Member, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFoundf("member %s", id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var member Member
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&member)
	if err != nil {
		return nil, wrapNotFound(err, id)
	}
	return &member, nil
}

func wrapNotFound(err error, key string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFoundf("member %s", key)
	}
	return wrapError(err)
}

func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return apperr.ErrDuplicateUsername
	}
	return apperr.Upstream(err)
}
