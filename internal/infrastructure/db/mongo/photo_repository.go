package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lojinha/catalog-api/internal/core/domain"
)

const photosCollection = "product_photos"

type PhotoRepository struct {
	coll *mongo.Collection
	seq  *Sequence
}

func NewPhotoRepository(db *mongo.Database, seq *Sequence) *PhotoRepository {
	return &PhotoRepository{coll: db.Collection(photosCollection), seq: seq}
}

// CreateMany assigns ids and inserts all rows in one batch. InsertMany is a
// single ordered statement, so a failure leaves no partial batch behind for
// the caller to clean up, only the already-written blobs, which the service
// compensates.
func (r *PhotoRepository) CreateMany(ctx context.Context, photos []*domain.ProductPhoto) error {
	if len(photos) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, len(photos))
	for i, p := range photos {
		id, err := r.seq.Next(ctx, photosCollection)
		if err != nil {
			return err
		}
		p.ID = id
		docs[i] = p
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert photos: %w", err)
	}
	return nil
}

// FindByProduct lists rows in insertion order (_id ascending).
func (r *PhotoRepository) FindByProduct(ctx context.Context, productID int64) ([]*domain.ProductPhoto, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer cur.Close(ctx)

	photos := make([]*domain.ProductPhoto, 0)
	for cur.Next(ctx) {
		var p domain.ProductPhoto
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode photo: %w", err)
		}
		photos = append(photos, &p)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return photos, nil
}

func (r *PhotoRepository) FindByID(ctx context.Context, productID, photoID int64) (*domain.ProductPhoto, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.ProductPhoto
	err := r.coll.FindOne(ctx, bson.M{"_id": photoID, "product_id": productID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("find photo: %w", err)
	}
	return &p, nil
}

func (r *PhotoRepository) Delete(ctx context.Context, productID, photoID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": photoID, "product_id": productID})
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

// EnsureIndexes creates the product_id lookup index.
func (r *PhotoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "product_id", Value: 1}},
	})
	return err
}
