package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloomie-blog/cmd/api/dto"
	"bloomie-blog/models"
	"bloomie-blog/validation"
)

// BannerStore is the persistence surface for banners.
type BannerStore interface {
	List(ctx context.Context) ([]models.Banner, error)
	Active(ctx context.Context) (*models.Banner, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Banner, error)
	Insert(ctx context.Context, b *models.Banner) (primitive.ObjectID, error)
	Replace(ctx context.Context, id primitive.ObjectID, b *models.Banner) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BannerService struct {
	store BannerStore
}

func NewBannerService(store BannerStore) *BannerService {
	return &BannerService{store: store}
}

// List returns all banners, newest first.
func (s *BannerService) List(ctx context.Context) ([]models.Banner, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Banner{}
	}
	return items, nil
}

// Active returns the most recently created active banner.
func (s *BannerService) Active(ctx context.Context) (*models.Banner, error) {
	return s.store.Active(ctx)
}

func (s *BannerService) GetByID(ctx context.Context, hexID string) (*models.Banner, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

func (s *BannerService) Create(ctx context.Context, in dto.BannerInput) (*models.Banner, error) {
	b := &models.Banner{
		Header:          strDeref(in.Header),
		Text:            strDeref(in.Text),
		ButtonText:      strDeref(in.ButtonText),
		ButtonLink:      strDeref(in.ButtonLink),
		BackgroundImage: strDeref(in.BackgroundImage),
		Active:          true,
	}
	if in.Active != nil {
		b.Active = *in.Active
	}

	validation.NormalizeBanner(b)
	if errs := validation.ValidateBanner(b); errs.OrNil() != nil {
		return nil, errs
	}

	if _, err := s.store.Insert(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BannerService) Update(ctx context.Context, hexID string, in dto.BannerInput) (*models.Banner, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := *existing
	if in.Header != nil {
		upd.Header = *in.Header
	}
	if in.Text != nil {
		upd.Text = *in.Text
	}
	if in.ButtonText != nil {
		upd.ButtonText = *in.ButtonText
	}
	if in.ButtonLink != nil {
		upd.ButtonLink = *in.ButtonLink
	}
	if in.BackgroundImage != nil {
		upd.BackgroundImage = *in.BackgroundImage
	}
	if in.Active != nil {
		upd.Active = *in.Active
	}

	validation.NormalizeBanner(&upd)
	if errs := validation.ValidateBanner(&upd); errs.OrNil() != nil {
		return nil, errs
	}

	if err := s.store.Replace(ctx, id, &upd); err != nil {
		return nil, err
	}
	return &upd, nil
}

func (s *BannerService) Delete(ctx context.Context, hexID string) error {
	id, err := parseID(hexID)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}
