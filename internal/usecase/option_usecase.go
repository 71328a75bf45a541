package usecase

import (
	"context"
	"net/http"
	"strings"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"
)

// Size/Color/Fabric/Fitの管理。形が同じなので1ファイルにまとめる。

type OptionInput struct {
	Name      string  `json:"name"`
	Code      *string `json:"code"`
	HexCode   *string `json:"hex_code"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

func (in OptionInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewValidationError("The given data was invalid.",
			map[string]string{"name": "The name field is required."})
	}
	return nil
}

type SizeUsecase struct {
	sizeRepo repo.SizeRepository
}

func NewSizeUsecase(sizeRepo repo.SizeRepository) *SizeUsecase {
	return &SizeUsecase{sizeRepo: sizeRepo}
}

func (u *SizeUsecase) List(ctx context.Context, in CatalogListInput) ([]model.Size, int64, error) {
	q, err := in.normalize()
	if err != nil {
		return nil, 0, err
	}
	items, total, err := u.sizeRepo.List(ctx, q)
	if err != nil {
		return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, total, nil
}

func (u *SizeUsecase) Create(ctx context.Context, in OptionInput) (model.Size, error) {
	if err := in.validate(); err != nil {
		return model.Size{}, err
	}

	s := model.Size{Name: strings.TrimSpace(in.Name), IsActive: true}
	if in.Code != nil {
		s.Code = *in.Code
	}
	if in.SortOrder != nil {
		s.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}

	created, err := u.sizeRepo.Create(ctx, s)
	if err != nil {
		return model.Size{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *SizeUsecase) Update(ctx context.Context, id int64, in OptionInput) (model.Size, error) {
	current, err := u.sizeRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Size{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Size{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := in.validate(); err != nil {
		return model.Size{}, err
	}

	current.Name = strings.TrimSpace(in.Name)
	if in.Code != nil {
		current.Code = *in.Code
	}
	if in.SortOrder != nil {
		current.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		current.IsActive = *in.IsActive
	}

	if err := u.sizeRepo.Update(ctx, current); err != nil {
		return model.Size{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return current, nil
}

// 参照しているバリアントのsize_idはNULLに落ちる
func (u *SizeUsecase) Delete(ctx context.Context, id int64) error {
	err := u.sizeRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type ColorUsecase struct {
	colorRepo repo.ColorRepository
}

func NewColorUsecase(colorRepo repo.ColorRepository) *ColorUsecase {
	return &ColorUsecase{colorRepo: colorRepo}
}

func (u *ColorUsecase) List(ctx context.Context, in CatalogListInput) ([]model.Color, int64, error) {
	q, err := in.normalize()
	if err != nil {
		return nil, 0, err
	}
	items, total, err := u.colorRepo.List(ctx, q)
	if err != nil {
		return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, total, nil
}

func (u *ColorUsecase) Create(ctx context.Context, in OptionInput) (model.Color, error) {
	if err := in.validate(); err != nil {
		return model.Color{}, err
	}

	c := model.Color{Name: strings.TrimSpace(in.Name), IsActive: true}
	if in.HexCode != nil {
		c.HexCode = *in.HexCode
	}
	if in.SortOrder != nil {
		c.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}

	created, err := u.colorRepo.Create(ctx, c)
	if err != nil {
		return model.Color{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *ColorUsecase) Update(ctx context.Context, id int64, in OptionInput) (model.Color, error) {
	current, err := u.colorRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Color{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Color{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := in.validate(); err != nil {
		return model.Color{}, err
	}

	current.Name = strings.TrimSpace(in.Name)
	if in.HexCode != nil {
		current.HexCode = *in.HexCode
	}
	if in.SortOrder != nil {
		current.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		current.IsActive = *in.IsActive
	}

	if err := u.colorRepo.Update(ctx, current); err != nil {
		return model.Color{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return current, nil
}

func (u *ColorUsecase) Delete(ctx context.Context, id int64) error {
	err := u.colorRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type FabricUsecase struct {
	fabricRepo repo.FabricRepository
}

func NewFabricUsecase(fabricRepo repo.FabricRepository) *FabricUsecase {
	return &FabricUsecase{fabricRepo: fabricRepo}
}

func (u *FabricUsecase) List(ctx context.Context, in CatalogListInput) ([]model.Fabric, int64, error) {
	q, err := in.normalize()
	if err != nil {
		return nil, 0, err
	}
	items, total, err := u.fabricRepo.List(ctx, q)
	if err != nil {
		return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, total, nil
}

func (u *FabricUsecase) Create(ctx context.Context, in OptionInput) (model.Fabric, error) {
	if err := in.validate(); err != nil {
		return model.Fabric{}, err
	}

	f := model.Fabric{Name: strings.TrimSpace(in.Name), IsActive: true}
	if in.SortOrder != nil {
		f.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		f.IsActive = *in.IsActive
	}

	created, err := u.fabricRepo.Create(ctx, f)
	if err != nil {
		return model.Fabric{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *FabricUsecase) Update(ctx context.Context, id int64, in OptionInput) (model.Fabric, error) {
	current, err := u.fabricRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Fabric{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Fabric{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := in.validate(); err != nil {
		return model.Fabric{}, err
	}

	current.Name = strings.TrimSpace(in.Name)
	if in.SortOrder != nil {
		current.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		current.IsActive = *in.IsActive
	}

	if err := u.fabricRepo.Update(ctx, current); err != nil {
		return model.Fabric{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return current, nil
}

func (u *FabricUsecase) Delete(ctx context.Context, id int64) error {
	err := u.fabricRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type FitUsecase struct {
	fitRepo repo.FitRepository
}

func NewFitUsecase(fitRepo repo.FitRepository) *FitUsecase {
	return &FitUsecase{fitRepo: fitRepo}
}

func (u *FitUsecase) List(ctx context.Context, in CatalogListInput) ([]model.Fit, int64, error) {
	q, err := in.normalize()
	if err != nil {
		return nil, 0, err
	}
	items, total, err := u.fitRepo.List(ctx, q)
	if err != nil {
		return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, total, nil
}

func (u *FitUsecase) Create(ctx context.Context, in OptionInput) (model.Fit, error) {
	if err := in.validate(); err != nil {
		return model.Fit{}, err
	}

	f := model.Fit{Name: strings.TrimSpace(in.Name), IsActive: true}
	if in.SortOrder != nil {
		f.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		f.IsActive = *in.IsActive
	}

	created, err := u.fitRepo.Create(ctx, f)
	if err != nil {
		return model.Fit{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *FitUsecase) Update(ctx context.Context, id int64, in OptionInput) (model.Fit, error) {
	current, err := u.fitRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Fit{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Fit{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := in.validate(); err != nil {
		return model.Fit{}, err
	}

	current.Name = strings.TrimSpace(in.Name)
	if in.SortOrder != nil {
		current.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		current.IsActive = *in.IsActive
	}

	if err := u.fitRepo.Update(ctx, current); err != nil {
		return model.Fit{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return current, nil
}

func (u *FitUsecase) Delete(ctx context.Context, id int64) error {
	err := u.fitRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
