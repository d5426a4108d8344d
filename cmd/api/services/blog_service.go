package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloomie-blog/cmd/api/dto"
	"bloomie-blog/cmd/internal/logger"
	"bloomie-blog/content"
	"bloomie-blog/models"
	"bloomie-blog/repositories"
	"bloomie-blog/slugify"
	"bloomie-blog/validation"
)

// ErrDuplicate signals a unique-index conflict the caller can act on
// (category name taken, slug race lost beyond retry).
var ErrDuplicate = errors.New("duplicate value for a unique field")

// slugInsertRetries bounds how often Create/Update re-suffix the slug after
// losing a unique-index race.
const slugInsertRetries = 3

// BlogStore is the persistence surface the blog write pipeline and read
// queries need. *repositories.BlogRepository implements it; tests use an
// in-memory fake.
type BlogStore interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
	Insert(ctx context.Context, b *models.Blog) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*models.Blog, error)
	Replace(ctx context.Context, id primitive.ObjectID, b *models.Blog) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, q repositories.BlogQuery) ([]models.Blog, int64, error)
	TextSearch(ctx context.Context, term string, limit int64) ([]models.Blog, error)
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
	IncrementLikes(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	Publish(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	Archive(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	Statistics(ctx context.Context) (*repositories.BlogStatistics, error)
}

// ImageRemover deletes stored image files behind local image URLs.
type ImageRemover interface {
	RemoveByURL(url string) error
}

// BlogService runs the write pipeline (normalize, validate, slug, derive,
// persist) and composes read queries.
type BlogService struct {
	store  BlogStore
	images ImageRemover
}

func NewBlogService(store BlogStore, images ImageRemover) *BlogService {
	return &BlogService{store: store, images: images}
}

// Create runs the full write pipeline on a new post and persists it.
func (s *BlogService) Create(ctx context.Context, in dto.BlogInput) (*models.Blog, error) {
	b := &models.Blog{
		Title:           strDeref(in.Title),
		Slug:            strDeref(in.Slug),
		Content:         strDeref(in.Content),
		Excerpt:         strDeref(in.Excerpt),
		Author:          strDeref(in.Author),
		Status:          strDeref(in.Status),
		PublishedTime:   strDeref(in.PublishedTime),
		MetaTitle:       strDeref(in.MetaTitle),
		MetaDescription: strDeref(in.MetaDescription),
		AllowComments:   true,
	}
	if in.Categories != nil {
		b.Categories = *in.Categories
	}
	if in.Tags != nil {
		b.Tags = *in.Tags
	}
	if in.Keywords != nil {
		b.Keywords = *in.Keywords
	}
	if in.Images != nil {
		b.Images = *in.Images
	}
	if in.AllowComments != nil {
		b.AllowComments = *in.AllowComments
	}
	if in.ReadTime != nil {
		b.ReadTime = *in.ReadTime
	}
	if in.PublishedDate != nil {
		b.PublishedDate = *in.PublishedDate
	}

	// (1) normalize, (2) validate
	validation.NormalizeBlog(b)
	if errs := validation.ValidateBlog(b); errs.OrNil() != nil {
		return nil, errs
	}

	// (3) slug
	if b.Slug == "" {
		slug, err := slugify.Unique(ctx, b.Title, s.store.SlugExists)
		if err != nil {
			return nil, err
		}
		b.Slug = slug
	} else {
		// caller-supplied slug: keep it unless taken, then disambiguate
		taken, err := s.store.SlugExists(ctx, b.Slug)
		if err != nil {
			return nil, err
		}
		if taken {
			b.Slug = slugify.WithTimestamp(b.Slug)
		}
	}

	// (4) derive anything the caller left blank
	s.applyDerivations(b, in, true)
	s.applyDefaults(b)

	// (5) persist; the unique slug index is the authority, so losing the
	// check-then-insert race just means re-suffixing and trying again
	for attempt := 0; ; attempt++ {
		if _, err := s.store.Insert(ctx, b); err != nil {
			if repositories.IsDuplicateKey(err) && attempt < slugInsertRetries {
				b.Slug = slugify.WithTimestamp(slugify.Make(b.Title))
				continue
			}
			if repositories.IsDuplicateKey(err) {
				return nil, ErrDuplicate
			}
			return nil, err
		}
		return b, nil
	}
}

// Update applies a partial patch through the same pipeline. Missing records
// fail with ErrNotFound; there is no upsert.
func (s *BlogService) Update(ctx context.Context, hexID string, in dto.BlogInput) (*models.Blog, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := *existing
	if in.Title != nil {
		upd.Title = *in.Title
	}
	if in.Content != nil {
		upd.Content = *in.Content
	}
	if in.Excerpt != nil {
		upd.Excerpt = *in.Excerpt
	}
	if in.Author != nil {
		upd.Author = *in.Author
	}
	if in.Categories != nil {
		upd.Categories = *in.Categories
	}
	if in.Tags != nil {
		upd.Tags = *in.Tags
	}
	if in.Keywords != nil {
		upd.Keywords = *in.Keywords
	}
	if in.Images != nil {
		upd.Images = *in.Images
	}
	if in.Status != nil {
		upd.Status = *in.Status
	}
	if in.PublishedDate != nil {
		upd.PublishedDate = *in.PublishedDate
	}
	if in.PublishedTime != nil {
		upd.PublishedTime = *in.PublishedTime
	}
	if in.MetaTitle != nil {
		upd.MetaTitle = *in.MetaTitle
	}
	if in.MetaDescription != nil {
		upd.MetaDescription = *in.MetaDescription
	}
	if in.AllowComments != nil {
		upd.AllowComments = *in.AllowComments
	}
	if in.ReadTime != nil {
		upd.ReadTime = *in.ReadTime
	}
	if in.Slug != nil {
		upd.Slug = *in.Slug
	}

	validation.NormalizeBlog(&upd)
	if errs := validation.ValidateBlog(&upd); errs.OrNil() != nil {
		return nil, errs
	}

	titleChanged := upd.Title != existing.Title
	contentChanged := upd.Content != existing.Content

	// Slug stays immutable unless the title changed (and the caller did
	// not pin a slug explicitly) or the caller supplied a new slug.
	switch {
	case in.Slug != nil && upd.Slug != existing.Slug:
		taken, err := s.store.SlugExists(ctx, upd.Slug)
		if err != nil {
			return nil, err
		}
		if taken {
			upd.Slug = slugify.WithTimestamp(upd.Slug)
		}
	case in.Slug == nil && titleChanged:
		slug, err := slugify.Unique(ctx, upd.Title, s.slugExistsExcluding(existing.Slug))
		if err != nil {
			return nil, err
		}
		upd.Slug = slug
	default:
		upd.Slug = existing.Slug
	}

	if contentChanged {
		s.applyDerivations(&upd, in, false)
	} else {
		// content untouched: only refill derived fields the caller blanked
		s.refillBlank(&upd)
	}
	s.applyDefaults(&upd)

	for attempt := 0; ; attempt++ {
		if err := s.store.Replace(ctx, id, &upd); err != nil {
			if repositories.IsDuplicateKey(err) && attempt < slugInsertRetries {
				upd.Slug = slugify.WithTimestamp(slugify.Make(upd.Title))
				continue
			}
			if repositories.IsDuplicateKey(err) {
				return nil, ErrDuplicate
			}
			return nil, err
		}
		return &upd, nil
	}
}

// applyDerivations fills derived fields from content. With force set
// (create, or content changed on update) readTime is recomputed unless the
// caller supplied it in this same write.
func (s *BlogService) applyDerivations(b *models.Blog, in dto.BlogInput, create bool) {
	d := content.Derive(b.Content)
	if b.Excerpt == "" || (!create && in.Excerpt == nil) {
		b.Excerpt = d.Excerpt
	}
	if b.MetaDescription == "" || (!create && in.MetaDescription == nil) {
		b.MetaDescription = d.MetaDescription
	}
	if in.ReadTime == nil {
		b.ReadTime = d.ReadTime
	}
	if b.MetaTitle == "" {
		b.MetaTitle = truncateRunes(b.Title, 70)
	}
}

// refillBlank restores the non-null invariant on derived fields without
// overriding values that are already present.
func (s *BlogService) refillBlank(b *models.Blog) {
	if b.Excerpt != "" && b.MetaDescription != "" && b.MetaTitle != "" {
		return
	}
	d := content.Derive(b.Content)
	if b.Excerpt == "" {
		b.Excerpt = d.Excerpt
	}
	if b.MetaDescription == "" {
		b.MetaDescription = d.MetaDescription
	}
	if b.MetaTitle == "" {
		b.MetaTitle = truncateRunes(b.Title, 70)
	}
}

func (s *BlogService) applyDefaults(b *models.Blog) {
	if b.Status == "" {
		b.Status = models.StatusDraft
	}
	if b.PublishedDate.IsZero() {
		b.PublishedDate = time.Now()
	}
}

// slugExistsExcluding wraps the store's existence check so a post updating
// its own title can keep a slug it already owns.
func (s *BlogService) slugExistsExcluding(own string) slugify.ExistsFunc {
	return func(ctx context.Context, slug string) (bool, error) {
		if slug == own {
			return false, nil
		}
		return s.store.SlugExists(ctx, slug)
	}
}

// GetByID returns a single post.
func (s *BlogService) GetByID(ctx context.Context, hexID string) (*models.Blog, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

// GetBySlug returns a post by slug and increments its view counter as a
// side effect.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	b, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.store.IncrementViews(ctx, b.ID); err != nil {
		logger.Log.Warnf("failed to increment views for %s: %v", slug, err)
	} else {
		b.Views++
	}
	return b, nil
}

// Delete removes a post and best-effort deletes its locally stored image
// files. A failed file removal is logged, never escalated.
func (s *BlogService) Delete(ctx context.Context, hexID string) error {
	id, err := parseID(hexID)
	if err != nil {
		return err
	}
	b, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}

	for _, img := range b.Images {
		if err := s.images.RemoveByURL(img.URL); err != nil {
			logger.Log.Warnf("failed to remove image file %s: %v", img.URL, err)
		}
	}

	return s.store.Delete(ctx, id)
}

// List runs the composed filter/sort/paginate query.
func (s *BlogService) List(ctx context.Context, q dto.ListBlogsQuery) ([]models.Blog, dto.Pagination, error) {
	return s.list(ctx, repositories.BlogQuery{
		Status:   q.Status,
		Category: q.Category,
		Tag:      strings.ToLower(q.Tag),
		Author:   q.Author,
		Search:   q.Search,
		SortBy:   q.SortBy,
		Order:    q.Order,
		Page:     q.Page,
		Limit:    q.Limit,
	})
}

// ListPublished returns published posts, newest publishedDate first.
func (s *BlogService) ListPublished(ctx context.Context, page, limit int) ([]models.Blog, dto.Pagination, error) {
	return s.list(ctx, repositories.BlogQuery{
		Status: models.StatusPublished,
		SortBy: "publishedDate",
		Page:   page,
		Limit:  limit,
	})
}

// ListByCategory returns published posts in a category.
func (s *BlogService) ListByCategory(ctx context.Context, category string, page, limit int) ([]models.Blog, dto.Pagination, error) {
	return s.list(ctx, repositories.BlogQuery{
		Status:   models.StatusPublished,
		Category: category,
		SortBy:   "publishedDate",
		Page:     page,
		Limit:    limit,
	})
}

// ListByTag returns published posts carrying a tag. Tags are stored
// lowercase, so the path parameter is folded before matching.
func (s *BlogService) ListByTag(ctx context.Context, tag string, page, limit int) ([]models.Blog, dto.Pagination, error) {
	return s.list(ctx, repositories.BlogQuery{
		Status: models.StatusPublished,
		Tag:    strings.ToLower(tag),
		SortBy: "publishedDate",
		Page:   page,
		Limit:  limit,
	})
}

// ListByAuthor returns published posts by author (case-insensitive partial
// match).
func (s *BlogService) ListByAuthor(ctx context.Context, author string, page, limit int) ([]models.Blog, dto.Pagination, error) {
	return s.list(ctx, repositories.BlogQuery{
		Status: models.StatusPublished,
		Author: author,
		SortBy: "publishedDate",
		Page:   page,
		Limit:  limit,
	})
}

// Popular returns published posts ranked by views.
func (s *BlogService) Popular(ctx context.Context, limit int) ([]models.Blog, error) {
	items, _, err := s.list(ctx, repositories.BlogQuery{
		Status: models.StatusPublished,
		SortBy: "views",
		Limit:  limit,
	})
	return items, err
}

// Recent returns the latest published posts.
func (s *BlogService) Recent(ctx context.Context, limit int) ([]models.Blog, error) {
	items, _, err := s.list(ctx, repositories.BlogQuery{
		Status: models.StatusPublished,
		SortBy: "publishedDate",
		Limit:  limit,
	})
	return items, err
}

func (s *BlogService) list(ctx context.Context, q repositories.BlogQuery) ([]models.Blog, dto.Pagination, error) {
	items, total, err := s.store.List(ctx, q)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	if items == nil {
		items = []models.Blog{}
	}
	built := q.Build()
	return items, dto.Pagination{
		Page:  built.Page,
		Limit: int(built.Limit),
		Total: total,
		Pages: built.Pages(total),
	}, nil
}

// Search runs the store's relevance-ranked full-text query over published
// posts.
func (s *BlogService) Search(ctx context.Context, term string, limit int) ([]models.Blog, error) {
	items, err := s.store.TextSearch(ctx, term, int64(limit))
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Blog{}
	}
	return items, nil
}

// Like increments the likes counter by exactly 1 and leaves every other
// field untouched.
func (s *BlogService) Like(ctx context.Context, hexID string) (*models.Blog, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	return s.store.IncrementLikes(ctx, id)
}

// Publish transitions a post to published, stamping publishedDate.
func (s *BlogService) Publish(ctx context.Context, hexID string) (*models.Blog, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	return s.store.Publish(ctx, id)
}

// Archive transitions a post to archived.
func (s *BlogService) Archive(ctx context.Context, hexID string) (*models.Blog, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	return s.store.Archive(ctx, id)
}

func parseID(hexID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		// a malformed id can never match a document
		return primitive.NilObjectID, repositories.ErrNotFound
	}
	return id, nil
}

func strDeref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func truncateRunes(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
