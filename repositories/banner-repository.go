package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bloomie-blog/models"
)

type BannerRepository struct {
	col *mongo.Collection
}

func NewBannerRepository(db *mongo.Database) *BannerRepository {
	return &BannerRepository{col: db.Collection("banners")}
}

// List returns all banners, newest first.
func (r *BannerRepository) List(ctx context.Context) ([]models.Banner, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Banner
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Active returns the most recently created banner flagged active. Several
// banners may be active at once; creation order breaks the tie.
func (r *BannerRepository) Active(ctx context.Context) (*models.Banner, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var b models.Banner
	if err := r.col.FindOne(ctx, bson.M{"active": true}, opts).Decode(&b); err != nil {
		return nil, mapFindErr(err)
	}
	return &b, nil
}

func (r *BannerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Banner, error) {
	var b models.Banner
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return nil, mapFindErr(err)
	}
	return &b, nil
}

func (r *BannerRepository) Insert(ctx context.Context, b *models.Banner) (primitive.ObjectID, error) {
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	b.ID = id
	return id, nil
}

func (r *BannerRepository) Replace(ctx context.Context, id primitive.ObjectID, b *models.Banner) error {
	b.ID = id
	b.UpdatedAt = time.Now()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": id}, b)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BannerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
