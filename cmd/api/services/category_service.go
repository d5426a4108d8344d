package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloomie-blog/cmd/api/dto"
	"bloomie-blog/models"
	"bloomie-blog/repositories"
	"bloomie-blog/slugify"
	"bloomie-blog/validation"
)

// CategoryStore is the persistence surface for categories.
type CategoryStore interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, activeOnly bool) ([]models.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	Insert(ctx context.Context, c *models.Category) (primitive.ObjectID, error)
	Replace(ctx context.Context, id primitive.ObjectID, c *models.Category) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CategoryService struct {
	store CategoryStore
}

func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

// List returns categories, optionally only active ones, sorted by name.
func (s *CategoryService) List(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	items, err := s.store.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Category{}
	}
	return items, nil
}

func (s *CategoryService) GetByID(ctx context.Context, hexID string) (*models.Category, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

// Create validates a new category and derives its slug from the name.
func (s *CategoryService) Create(ctx context.Context, in dto.CategoryInput) (*models.Category, error) {
	c := &models.Category{
		Name:        strDeref(in.Name),
		Slug:        strDeref(in.Slug),
		Description: strDeref(in.Description),
		Color:       strDeref(in.Color),
		Active:      true,
	}
	if in.Active != nil {
		c.Active = *in.Active
	}

	validation.NormalizeCategory(c)
	if errs := validation.ValidateCategory(c); errs.OrNil() != nil {
		return nil, errs
	}

	if c.Slug == "" {
		slug, err := slugify.Unique(ctx, c.Name, s.store.SlugExists)
		if err != nil {
			return nil, err
		}
		c.Slug = slug
	}

	if _, err := s.store.Insert(ctx, c); err != nil {
		if repositories.IsDuplicateKey(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return c, nil
}

// Update applies a partial patch to an existing category.
func (s *CategoryService) Update(ctx context.Context, hexID string, in dto.CategoryInput) (*models.Category, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := *existing
	if in.Name != nil {
		upd.Name = *in.Name
	}
	if in.Slug != nil {
		upd.Slug = *in.Slug
	}
	if in.Description != nil {
		upd.Description = *in.Description
	}
	if in.Color != nil {
		upd.Color = *in.Color
	}
	if in.Active != nil {
		upd.Active = *in.Active
	}

	validation.NormalizeCategory(&upd)
	if errs := validation.ValidateCategory(&upd); errs.OrNil() != nil {
		return nil, errs
	}

	if in.Slug == nil && upd.Name != existing.Name {
		slug, err := slugify.Unique(ctx, upd.Name, func(ctx context.Context, slug string) (bool, error) {
			if slug == existing.Slug {
				return false, nil
			}
			return s.store.SlugExists(ctx, slug)
		})
		if err != nil {
			return nil, err
		}
		upd.Slug = slug
	}

	if err := s.store.Replace(ctx, id, &upd); err != nil {
		if repositories.IsDuplicateKey(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &upd, nil
}

func (s *CategoryService) Delete(ctx context.Context, hexID string) error {
	id, err := parseID(hexID)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}
