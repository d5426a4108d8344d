package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloomie-blog/cmd/api/dto"
	"bloomie-blog/cmd/api/services"
	"bloomie-blog/models"
	"bloomie-blog/repositories"
)

type fakeCategoryStore struct {
	categories []*models.Category
	insertErr  error
}

func (f *fakeCategoryStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryStore) List(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range f.categories {
		if activeOnly && !c.Active {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategoryStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCategoryStore) Insert(ctx context.Context, c *models.Category) (primitive.ObjectID, error) {
	if f.insertErr != nil {
		return primitive.NilObjectID, f.insertErr
	}
	c.ID = primitive.NewObjectID()
	cp := *c
	f.categories = append(f.categories, &cp)
	return c.ID, nil
}

func (f *fakeCategoryStore) Replace(ctx context.Context, id primitive.ObjectID, c *models.Category) error {
	for i, existing := range f.categories {
		if existing.ID == id {
			cp := *c
			cp.ID = id
			f.categories[i] = &cp
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeCategoryStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, c := range f.categories {
		if c.ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func TestCategoryCreateDerivesSlugAndDefaults(t *testing.T) {
	svc := services.NewCategoryService(&fakeCategoryStore{})

	c, err := svc.Create(context.Background(), dto.CategoryInput{Name: strPtr("Cloud Native")})
	require.NoError(t, err)

	assert.Equal(t, "cloud-native", c.Slug)
	assert.Equal(t, models.DefaultCategoryColor, c.Color)
	assert.True(t, c.Active)
}

func TestCategoryCreateDuplicateKey(t *testing.T) {
	store := &fakeCategoryStore{insertErr: dupKeyErr()}
	svc := services.NewCategoryService(store)

	_, err := svc.Create(context.Background(), dto.CategoryInput{Name: strPtr("Tech")})
	assert.ErrorIs(t, err, services.ErrDuplicate)
}

func TestCategoryCreateValidation(t *testing.T) {
	svc := services.NewCategoryService(&fakeCategoryStore{})

	_, err := svc.Create(context.Background(), dto.CategoryInput{
		Name:  strPtr("x"),
		Color: strPtr("blue"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "color")
}

func TestCategoryUpdateRenameRegeneratesSlug(t *testing.T) {
	store := &fakeCategoryStore{}
	svc := services.NewCategoryService(store)

	c, err := svc.Create(context.Background(), dto.CategoryInput{Name: strPtr("Old Name")})
	require.NoError(t, err)

	upd, err := svc.Update(context.Background(), c.ID.Hex(), dto.CategoryInput{Name: strPtr("New Name")})
	require.NoError(t, err)
	assert.Equal(t, "new-name", upd.Slug)

	// pinned slug survives a rename
	upd, err = svc.Update(context.Background(), c.ID.Hex(), dto.CategoryInput{
		Name: strPtr("Renamed Again"),
		Slug: strPtr("pinned-slug"),
	})
	require.NoError(t, err)
	assert.Equal(t, "pinned-slug", upd.Slug)
}

func TestCategoryListActiveOnly(t *testing.T) {
	store := &fakeCategoryStore{}
	svc := services.NewCategoryService(store)

	_, err := svc.Create(context.Background(), dto.CategoryInput{Name: strPtr("Visible")})
	require.NoError(t, err)
	inactive := false
	_, err = svc.Create(context.Background(), dto.CategoryInput{Name: strPtr("Hidden"), Active: &inactive})
	require.NoError(t, err)

	active, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, "Visible", active[0].Name)

	all, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
