package usecase

import (
	"context"
	"net/http"
	"strings"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
}

// DI
func NewCategoryUsecase(categoryRepo repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

type CategoryInput struct {
	Name        string  `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	ParentID    *int64  `json:"parent_id"`
	IsActive    *bool   `json:"is_active"`
}

type CatalogListInput struct {
	Page     int
	PerPage  int
	Search   string
	IsActive *bool
}

func (in CatalogListInput) normalize() (repo.ListQuery, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.PerPage < 1 {
		in.PerPage = 15
	}
	if in.PerPage > 100 {
		return repo.ListQuery{}, NewHTTPError(http.StatusBadRequest, "invalid per_page")
	}
	return repo.ListQuery{
		Page:     in.Page,
		PerPage:  in.PerPage,
		Search:   strings.TrimSpace(in.Search),
		IsActive: in.IsActive,
	}, nil
}

func (u *CategoryUsecase) List(ctx context.Context, in CatalogListInput) ([]model.Category, int64, error) {
	q, err := in.normalize()
	if err != nil {
		return nil, 0, err
	}

	items, total, err := u.categoryRepo.List(ctx, q)
	if err != nil {
		return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, total, nil
}

func (u *CategoryUsecase) Get(ctx context.Context, id int64) (model.Category, error) {
	c, err := u.categoryRepo.FindWithChildren(ctx, id)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CategoryUsecase) Create(ctx context.Context, in CategoryInput) (model.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Category{}, NewValidationError("The given data was invalid.",
			map[string]string{"name": "The name field is required."})
	}

	slug, err := u.resolveSlug(ctx, in, 0)
	if err != nil {
		return model.Category{}, err
	}

	if in.ParentID != nil {
		if _, err := u.categoryRepo.FindByID(ctx, *in.ParentID); err != nil {
			if err == repo.ErrNotFound {
				return model.Category{}, NewValidationError("The given data was invalid.",
					map[string]string{"parent_id": "The selected parent id is invalid."})
			}
			return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	c := model.Category{
		Name:     strings.TrimSpace(in.Name),
		Slug:     slug,
		ParentID: in.ParentID,
		IsActive: true,
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}

	created, err := u.categoryRepo.Create(ctx, c)
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *CategoryUsecase) Update(ctx context.Context, id int64, in CategoryInput) (model.Category, error) {
	current, err := u.categoryRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if strings.TrimSpace(in.Name) == "" {
		return model.Category{}, NewValidationError("The given data was invalid.",
			map[string]string{"name": "The name field is required."})
	}

	// 自分自身を親にはできない
	if in.ParentID != nil && *in.ParentID == id {
		return model.Category{}, NewValidationError("The given data was invalid.",
			map[string]string{"parent_id": "The category cannot be its own parent."})
	}
	if in.ParentID != nil {
		if _, err := u.categoryRepo.FindByID(ctx, *in.ParentID); err != nil {
			if err == repo.ErrNotFound {
				return model.Category{}, NewValidationError("The given data was invalid.",
					map[string]string{"parent_id": "The selected parent id is invalid."})
			}
			return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	slug := current.Slug
	if in.Slug != nil && strings.TrimSpace(*in.Slug) != "" {
		slug = strings.TrimSpace(*in.Slug)
	}
	taken, err := u.categoryRepo.SlugExists(ctx, slug, id)
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return model.Category{}, NewValidationError("The given data was invalid.",
			map[string]string{"slug": "The slug has already been taken."})
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Slug = slug
	if in.ParentID != nil {
		current.ParentID = in.ParentID
	}
	if in.Description != nil {
		current.Description = *in.Description
	}
	if in.IsActive != nil {
		current.IsActive = *in.IsActive
	}

	if err := u.categoryRepo.Update(ctx, current); err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return current, nil
}

func (u *CategoryUsecase) Delete(ctx context.Context, id int64) error {
	err := u.categoryRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CategoryUsecase) resolveSlug(ctx context.Context, in CategoryInput, excludeID int64) (string, error) {
	slug := ""
	if in.Slug != nil {
		slug = strings.TrimSpace(*in.Slug)
	}
	if slug == "" {
		slug = Slugify(in.Name)
	}

	taken, err := u.categoryRepo.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return "", NewValidationError("The given data was invalid.",
			map[string]string{"slug": "The slug has already been taken."})
	}
	return slug, nil
}
