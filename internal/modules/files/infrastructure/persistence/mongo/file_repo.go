package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"docshare/internal/modules/files/domain"
)

// CollectionName is the Mongo collection holding file records
const CollectionName = "files"

// MongoFileRepository implements domain.FileRepository on MongoDB
type MongoFileRepository struct {
	coll *mongo.Collection
}

// NewFileRepository creates a new MongoDB-based file repository
func NewFileRepository(db *mongo.Database) *MongoFileRepository {
	return &MongoFileRepository{coll: db.Collection(CollectionName)}
}

// EnsureIndexes creates the unique index on the stored filename.
// Deletion is keyed on it, so duplicates must be rejected at insert.
func (r *MongoFileRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "filename", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Insert implements domain.FileRepository
func (r *MongoFileRepository) Insert(ctx context.Context, file *domain.File) error {
	_, err := r.coll.InsertOne(ctx, file)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateStoredName
	}
	return err
}

// ListByUsername implements domain.FileRepository. Results come back in
// natural (insertion) order.
func (r *MongoFileRepository) ListByUsername(ctx context.Context, username string) ([]domain.File, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"username": username})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var files []domain.File
	if err := cursor.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// DeleteByStoredName implements domain.FileRepository
func (r *MongoFileRepository) DeleteByStoredName(ctx context.Context, storedName string) (*domain.File, error) {
	file := &domain.File{}
	err := r.coll.FindOneAndDelete(ctx, bson.M{"filename": storedName}).Decode(file)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return file, nil
}
