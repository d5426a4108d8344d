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

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection("blogs")}
}

// SlugExists checks whether any post already owns the given slug.
func (r *BlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"slug": slug}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return err == nil, err
}

// Insert inserts a new blog document and returns its assigned id.
func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) (primitive.ObjectID, error) {
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

// FindByID returns a blog by its ObjectID.
func (r *BlogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return nil, mapFindErr(err)
	}
	return &b, nil
}

// FindBySlug returns a blog by its slug.
func (r *BlogRepository) FindBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&b); err != nil {
		return nil, mapFindErr(err)
	}
	return &b, nil
}

// Replace overwrites the document with the given id. Last write wins; there
// is no optimistic locking.
func (r *BlogRepository) Replace(ctx context.Context, id primitive.ObjectID, b *models.Blog) error {
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

// Delete removes the document with the given id.
func (r *BlogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns blogs matching the composed query plus the unpaginated total.
func (r *BlogRepository) List(ctx context.Context, q BlogQuery) ([]models.Blog, int64, error) {
	built := q.Build()

	total, err := r.col.CountDocuments(ctx, built.Filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSkip(built.Skip).
		SetLimit(built.Limit).
		SetSort(built.Sort)
	cur, err := r.col.Find(ctx, built.Filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var results []models.Blog
	for cur.Next(ctx) {
		var b models.Blog
		if err := cur.Decode(&b); err != nil {
			return nil, 0, err
		}
		results = append(results, b)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// TextSearch runs the store's full-text query over published posts and
// returns them ordered by relevance score, not by any client sort.
func (r *BlogRepository) TextSearch(ctx context.Context, term string, limit int64) ([]models.Blog, error) {
	filter := bson.M{
		"$text":  bson.M{"$search": term},
		"status": models.StatusPublished,
	}
	findOpts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}})
	if limit > 0 {
		findOpts = findOpts.SetLimit(limit)
	}

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Blog
	for cur.Next(ctx) {
		var b models.Blog
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		results = append(results, b)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// IncrementViews bumps the views counter by 1.
func (r *BlogRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"views": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementLikes bumps the likes counter by 1 and returns the updated post.
func (r *BlogRepository) IncrementLikes(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$inc": bson.M{"likes": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	})
}

// Publish transitions the post to published and stamps publishedDate.
func (r *BlogRepository) Publish(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$set": bson.M{
			"status":        models.StatusPublished,
			"publishedDate": time.Now(),
			"updatedAt":     time.Now(),
		},
	})
}

// Archive transitions the post to archived.
func (r *BlogRepository) Archive(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$set": bson.M{
			"status":    models.StatusArchived,
			"updatedAt": time.Now(),
		},
	})
}

func (r *BlogRepository) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Blog, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var b models.Blog
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&b); err != nil {
		return nil, mapFindErr(err)
	}
	return &b, nil
}
