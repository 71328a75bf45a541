package usecase

import (
	"context"
	"net/http"
	"strings"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"
)

type AttributeUsecase struct {
	attributeRepo repo.AttributeRepository
}

// DI
func NewAttributeUsecase(attributeRepo repo.AttributeRepository) *AttributeUsecase {
	return &AttributeUsecase{attributeRepo: attributeRepo}
}

type AttributeInput struct {
	Name string  `json:"name"`
	Slug *string `json:"slug"`
}

type AttributeValueInput struct {
	Value     string `json:"value"`
	SortOrder *int   `json:"sort_order"`
}

func (u *AttributeUsecase) List(ctx context.Context, in CatalogListInput) ([]model.Attribute, int64, error) {
	q, err := in.normalize()
	if err != nil {
		return nil, 0, err
	}

	items, total, err := u.attributeRepo.List(ctx, q)
	if err != nil {
		return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, total, nil
}

func (u *AttributeUsecase) Get(ctx context.Context, id int64) (model.Attribute, error) {
	a, err := u.attributeRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Attribute{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Attribute{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return a, nil
}

func (u *AttributeUsecase) Create(ctx context.Context, in AttributeInput) (model.Attribute, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Attribute{}, NewValidationError("The given data was invalid.",
			map[string]string{"name": "The name field is required."})
	}

	slug := ""
	if in.Slug != nil {
		slug = strings.TrimSpace(*in.Slug)
	}
	if slug == "" {
		slug = Slugify(in.Name)
	}
	taken, err := u.attributeRepo.SlugExists(ctx, slug, 0)
	if err != nil {
		return model.Attribute{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return model.Attribute{}, NewValidationError("The given data was invalid.",
			map[string]string{"slug": "The slug has already been taken."})
	}

	created, err := u.attributeRepo.Create(ctx, model.Attribute{
		Name: strings.TrimSpace(in.Name),
		Slug: slug,
	})
	if err != nil {
		return model.Attribute{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *AttributeUsecase) Update(ctx context.Context, id int64, in AttributeInput) (model.Attribute, error) {
	current, err := u.attributeRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Attribute{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Attribute{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if strings.TrimSpace(in.Name) == "" {
		return model.Attribute{}, NewValidationError("The given data was invalid.",
			map[string]string{"name": "The name field is required."})
	}

	slug := current.Slug
	if in.Slug != nil && strings.TrimSpace(*in.Slug) != "" {
		slug = strings.TrimSpace(*in.Slug)
	}
	taken, err := u.attributeRepo.SlugExists(ctx, slug, id)
	if err != nil {
		return model.Attribute{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return model.Attribute{}, NewValidationError("The given data was invalid.",
			map[string]string{"slug": "The slug has already been taken."})
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Slug = slug

	if err := u.attributeRepo.Update(ctx, current); err != nil {
		return model.Attribute{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return current, nil
}

// 値ごと消える（cascade）
func (u *AttributeUsecase) Delete(ctx context.Context, id int64) error {
	err := u.attributeRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// POST /attributes/:id/values
func (u *AttributeUsecase) AddValue(ctx context.Context, attributeID int64, in AttributeValueInput) (model.AttributeValue, error) {
	if strings.TrimSpace(in.Value) == "" {
		return model.AttributeValue{}, NewValidationError("The given data was invalid.",
			map[string]string{"value": "The value field is required."})
	}

	if _, err := u.attributeRepo.FindByID(ctx, attributeID); err != nil {
		if err == repo.ErrNotFound {
			return model.AttributeValue{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.AttributeValue{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	v := model.AttributeValue{
		AttributeID: attributeID,
		Value:       strings.TrimSpace(in.Value),
	}
	if in.SortOrder != nil {
		v.SortOrder = *in.SortOrder
	}

	created, err := u.attributeRepo.AddValue(ctx, v)
	if err != nil {
		return model.AttributeValue{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// DELETE /attributes/:id/values/:valueId
// 親属性が一致しない値は404扱い。
func (u *AttributeUsecase) DeleteValue(ctx context.Context, attributeID int64, valueID int64) error {
	if _, err := u.attributeRepo.FindValue(ctx, attributeID, valueID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.attributeRepo.DeleteValue(ctx, attributeID, valueID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
