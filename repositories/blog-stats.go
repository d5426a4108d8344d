package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"bloomie-blog/models"
)

// CategoryCount is one entry of the per-category breakdown. A post counts
// toward every category it belongs to.
type CategoryCount struct {
	Category string `bson:"_id" json:"category"`
	Count    int64  `bson:"count" json:"count"`
}

// BlogStatistics is the dashboard aggregate over the whole collection.
type BlogStatistics struct {
	TotalBlogs     int64           `json:"totalBlogs"`
	PublishedBlogs int64           `json:"publishedBlogs"`
	DraftBlogs     int64           `json:"draftBlogs"`
	TotalViews     int64           `json:"totalViews"`
	TotalLikes     int64           `json:"totalLikes"`
	CategoryStats  []CategoryCount `json:"categoryStats"`
}

// Statistics computes totals and the per-category post counts, ordered by
// count descending.
func (r *BlogRepository) Statistics(ctx context.Context) (*BlogStatistics, error) {
	stats := &BlogStatistics{CategoryStats: []CategoryCount{}}

	var err error
	if stats.TotalBlogs, err = r.col.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.PublishedBlogs, err = r.col.CountDocuments(ctx, bson.M{"status": models.StatusPublished}); err != nil {
		return nil, err
	}
	if stats.DraftBlogs, err = r.col.CountDocuments(ctx, bson.M{"status": models.StatusDraft}); err != nil {
		return nil, err
	}

	if stats.TotalViews, err = r.sumField(ctx, "$views"); err != nil {
		return nil, err
	}
	if stats.TotalLikes, err = r.sumField(ctx, "$likes"); err != nil {
		return nil, err
	}

	pipeline := []bson.M{
		{"$unwind": "$categories"},
		{"$group": bson.M{"_id": "$categories", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	if err := cur.All(ctx, &stats.CategoryStats); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *BlogRepository) sumField(ctx context.Context, field string) (int64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": field}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var out []struct {
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}
