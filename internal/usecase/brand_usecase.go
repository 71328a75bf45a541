package usecase

import (
	"context"
	"net/http"
	"strings"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"
)

type BrandUsecase struct {
	brandRepo repo.BrandRepository
}

// DI
func NewBrandUsecase(brandRepo repo.BrandRepository) *BrandUsecase {
	return &BrandUsecase{brandRepo: brandRepo}
}

type BrandInput struct {
	Name        string  `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url"`
	IsActive    *bool   `json:"is_active"`
}

func (u *BrandUsecase) List(ctx context.Context, in CatalogListInput) ([]model.Brand, int64, error) {
	q, err := in.normalize()
	if err != nil {
		return nil, 0, err
	}

	items, total, err := u.brandRepo.List(ctx, q)
	if err != nil {
		return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, total, nil
}

func (u *BrandUsecase) Get(ctx context.Context, id int64) (model.Brand, error) {
	b, err := u.brandRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Brand{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return b, nil
}

func (u *BrandUsecase) Create(ctx context.Context, in BrandInput) (model.Brand, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Brand{}, NewValidationError("The given data was invalid.",
			map[string]string{"name": "The name field is required."})
	}

	slug := ""
	if in.Slug != nil {
		slug = strings.TrimSpace(*in.Slug)
	}
	if slug == "" {
		slug = Slugify(in.Name)
	}
	taken, err := u.brandRepo.SlugExists(ctx, slug, 0)
	if err != nil {
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return model.Brand{}, NewValidationError("The given data was invalid.",
			map[string]string{"slug": "The slug has already been taken."})
	}

	b := model.Brand{
		Name:     strings.TrimSpace(in.Name),
		Slug:     slug,
		IsActive: true,
	}
	applyBrandInput(&b, in)

	created, err := u.brandRepo.Create(ctx, b)
	if err != nil {
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *BrandUsecase) Update(ctx context.Context, id int64, in BrandInput) (model.Brand, error) {
	current, err := u.brandRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Brand{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if strings.TrimSpace(in.Name) == "" {
		return model.Brand{}, NewValidationError("The given data was invalid.",
			map[string]string{"name": "The name field is required."})
	}

	slug := current.Slug
	if in.Slug != nil && strings.TrimSpace(*in.Slug) != "" {
		slug = strings.TrimSpace(*in.Slug)
	}
	taken, err := u.brandRepo.SlugExists(ctx, slug, id)
	if err != nil {
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return model.Brand{}, NewValidationError("The given data was invalid.",
			map[string]string{"slug": "The slug has already been taken."})
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Slug = slug
	applyBrandInput(&current, in)

	if err := u.brandRepo.Update(ctx, current); err != nil {
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return current, nil
}

// 紐づく商品・バリアントのFKはNULLに落ちる
func (u *BrandUsecase) Delete(ctx context.Context, id int64) error {
	err := u.brandRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func applyBrandInput(b *model.Brand, in BrandInput) {
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.LogoURL != nil {
		b.LogoURL = *in.LogoURL
	}
	if in.IsActive != nil {
		b.IsActive = *in.IsActive
	}
}
