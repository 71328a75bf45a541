package usecase

import (
	"context"
	"net/http"
	"strings"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"

	"github.com/shopspring/decimal"
)

type StoreUsecase struct {
	storeRepo repo.StoreRepository
	txm       repo.TransactionManager
}

// DI
func NewStoreUsecase(storeRepo repo.StoreRepository, txm repo.TransactionManager) *StoreUsecase {
	return &StoreUsecase{storeRepo: storeRepo, txm: txm}
}

type StoreInput struct {
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	IsActive  *bool   `json:"is_active"`
	IsDefault *bool   `json:"is_default"`
}

func (in StoreInput) validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "The name field is required."
	}
	if strings.TrimSpace(in.Code) == "" {
		fields["code"] = "The code field is required."
	}
	if len(fields) > 0 {
		return NewValidationError("The given data was invalid.", fields)
	}
	return nil
}

func (u *StoreUsecase) List(ctx context.Context, in CatalogListInput) ([]model.Store, int64, error) {
	q, err := in.normalize()
	if err != nil {
		return nil, 0, err
	}
	items, total, err := u.storeRepo.List(ctx, q)
	if err != nil {
		return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, total, nil
}

func (u *StoreUsecase) Get(ctx context.Context, id int64) (model.Store, error) {
	s, err := u.storeRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Store{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Store{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

// 店舗作成。is_default=trueなら他店舗のdefaultを同一Tx内で落とす。
func (u *StoreUsecase) Create(ctx context.Context, in StoreInput) (model.Store, error) {
	if err := in.validate(); err != nil {
		return model.Store{}, err
	}

	taken, err := u.storeRepo.CodeExists(ctx, strings.TrimSpace(in.Code), 0)
	if err != nil {
		return model.Store{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return model.Store{}, NewValidationError("The given data was invalid.",
			map[string]string{"code": "The code has already been taken."})
	}

	s := model.Store{
		Name:     strings.TrimSpace(in.Name),
		Code:     strings.TrimSpace(in.Code),
		IsActive: true,
	}
	applyStoreInput(&s, in)

	var created model.Store
	err = u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		var txErr error
		created, txErr = r.Stores().Create(ctx, s)
		if txErr != nil {
			return txErr
		}
		if created.IsDefault {
			return r.Stores().ClearDefaultExcept(ctx, created.ID)
		}
		return nil
	})
	if err != nil {
		return model.Store{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *StoreUsecase) Update(ctx context.Context, id int64, in StoreInput) (model.Store, error) {
	current, err := u.storeRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Store{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Store{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := in.validate(); err != nil {
		return model.Store{}, err
	}

	taken, err := u.storeRepo.CodeExists(ctx, strings.TrimSpace(in.Code), id)
	if err != nil {
		return model.Store{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return model.Store{}, NewValidationError("The given data was invalid.",
			map[string]string{"code": "The code has already been taken."})
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Code = strings.TrimSpace(in.Code)
	applyStoreInput(&current, in)

	err = u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		if txErr := r.Stores().Update(ctx, current); txErr != nil {
			return txErr
		}
		if current.IsDefault {
			return r.Stores().ClearDefaultExcept(ctx, current.ID)
		}
		return nil
	})
	if err != nil {
		return model.Store{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return current, nil
}

func (u *StoreUsecase) Delete(ctx context.Context, id int64) error {
	err := u.storeRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func applyStoreInput(s *model.Store, in StoreInput) {
	if in.Address != nil {
		s.Address = *in.Address
	}
	if in.Phone != nil {
		s.Phone = *in.Phone
	}
	if in.Email != nil {
		s.Email = *in.Email
	}
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}
	if in.IsDefault != nil {
		s.IsDefault = *in.IsDefault
	}
}

type TaxClassUsecase struct {
	taxRepo repo.TaxClassRepository
	txm     repo.TransactionManager
}

// DI
func NewTaxClassUsecase(taxRepo repo.TaxClassRepository, txm repo.TransactionManager) *TaxClassUsecase {
	return &TaxClassUsecase{taxRepo: taxRepo, txm: txm}
}

type TaxClassInput struct {
	Name      string           `json:"name"`
	Rate      *decimal.Decimal `json:"rate"`
	IsDefault *bool            `json:"is_default"`
}

func (in TaxClassInput) validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "The name field is required."
	}
	if in.Rate == nil {
		fields["rate"] = "The rate field is required."
	} else if in.Rate.IsNegative() || in.Rate.GreaterThan(decimal.NewFromInt(100)) {
		fields["rate"] = "The rate must be between 0 and 100."
	}
	if len(fields) > 0 {
		return NewValidationError("The given data was invalid.", fields)
	}
	return nil
}

func (u *TaxClassUsecase) List(ctx context.Context, in CatalogListInput) ([]model.TaxClass, int64, error) {
	q, err := in.normalize()
	if err != nil {
		return nil, 0, err
	}
	items, total, err := u.taxRepo.List(ctx, q)
	if err != nil {
		return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, total, nil
}

func (u *TaxClassUsecase) Get(ctx context.Context, id int64) (model.TaxClass, error) {
	t, err := u.taxRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.TaxClass{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.TaxClass{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return t, nil
}

func (u *TaxClassUsecase) Create(ctx context.Context, in TaxClassInput) (model.TaxClass, error) {
	if err := in.validate(); err != nil {
		return model.TaxClass{}, err
	}

	t := model.TaxClass{
		Name: strings.TrimSpace(in.Name),
		Rate: *in.Rate,
	}
	if in.IsDefault != nil {
		t.IsDefault = *in.IsDefault
	}

	var created model.TaxClass
	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		var txErr error
		created, txErr = r.TaxClasses().Create(ctx, t)
		if txErr != nil {
			return txErr
		}
		if created.IsDefault {
			return r.TaxClasses().ClearDefaultExcept(ctx, created.ID)
		}
		return nil
	})
	if err != nil {
		return model.TaxClass{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *TaxClassUsecase) Update(ctx context.Context, id int64, in TaxClassInput) (model.TaxClass, error) {
	current, err := u.taxRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.TaxClass{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.TaxClass{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := in.validate(); err != nil {
		return model.TaxClass{}, err
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Rate = *in.Rate
	if in.IsDefault != nil {
		current.IsDefault = *in.IsDefault
	}

	err = u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		if txErr := r.TaxClasses().Update(ctx, current); txErr != nil {
			return txErr
		}
		if current.IsDefault {
			return r.TaxClasses().ClearDefaultExcept(ctx, current.ID)
		}
		return nil
	})
	if err != nil {
		return model.TaxClass{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return current, nil
}

func (u *TaxClassUsecase) Delete(ctx context.Context, id int64) error {
	err := u.taxRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
