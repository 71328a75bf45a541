package usecase

import (
	"context"
	"net/http"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"
)

type InventoryUsecase struct {
	storeRepo     repo.StoreRepository
	variantRepo   repo.VariantRepository
	inventoryRepo repo.StoreInventoryRepository
	movementRepo  repo.StockMovementRepository
	txm           repo.TransactionManager
}

// DI
func NewInventoryUsecase(
	storeRepo repo.StoreRepository,
	variantRepo repo.VariantRepository,
	inventoryRepo repo.StoreInventoryRepository,
	movementRepo repo.StockMovementRepository,
	txm repo.TransactionManager,
) *InventoryUsecase {
	return &InventoryUsecase{
		storeRepo:     storeRepo,
		variantRepo:   variantRepo,
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
		txm:           txm,
	}
}

type AdjustInventoryInput struct {
	Quantity *int    `json:"quantity"`
	Type     *string `json:"type"`
	Notes    *string `json:"notes"`

	// 操作した管理ユーザー（handler側で詰める）
	UserID *int64 `json:"-"`
}

type AdjustInventoryOutput struct {
	Inventory model.StoreInventory `json:"inventory"`
	Movement  model.StockMovement  `json:"movement"`
}

// 店舗在庫の調整。在庫行のupsert・台帳への追記・バリアント合計の
// 更新を1トランザクションで行う。
func (u *InventoryUsecase) Adjust(ctx context.Context, storeID int64, variantID int64, in AdjustInventoryInput) (AdjustInventoryOutput, error) {
	if in.Quantity == nil {
		return AdjustInventoryOutput{}, NewValidationError("The given data was invalid.",
			map[string]string{"quantity": "The quantity field is required."})
	}
	if *in.Quantity < 0 {
		return AdjustInventoryOutput{}, NewValidationError("The given data was invalid.",
			map[string]string{"quantity": "The quantity must be at least 0."})
	}

	movementType := model.MovementAdjustment
	if in.Type != nil {
		movementType = model.MovementType(*in.Type)
		if !model.ValidMovementType(movementType) {
			return AdjustInventoryOutput{}, NewValidationError("The given data was invalid.",
				map[string]string{"type": "The selected type is invalid."})
		}
	}

	if _, err := u.storeRepo.FindByID(ctx, storeID); err != nil {
		if err == repo.ErrNotFound {
			return AdjustInventoryOutput{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return AdjustInventoryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if _, err := u.variantRepo.FindByID(ctx, variantID); err != nil {
		if err == repo.ErrNotFound {
			return AdjustInventoryOutput{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return AdjustInventoryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var out AdjustInventoryOutput
	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		before := 0
		current, txErr := r.StoreInventory().Find(ctx, storeID, variantID)
		if txErr != nil && txErr != repo.ErrNotFound {
			return txErr
		}
		if txErr == nil {
			before = current.Quantity
		}

		saved, txErr := r.StoreInventory().Upsert(ctx, model.StoreInventory{
			StoreID:   storeID,
			VariantID: variantID,
			Quantity:  *in.Quantity,
		})
		if txErr != nil {
			return txErr
		}

		sid := storeID
		movement := model.StockMovement{
			VariantID:      variantID,
			StoreID:        &sid,
			Type:           movementType,
			Quantity:       *in.Quantity - before,
			QuantityBefore: before,
			QuantityAfter:  *in.Quantity,
			UserID:         in.UserID,
		}
		if in.Notes != nil {
			movement.Notes = *in.Notes
		}
		createdMovement, txErr := r.StockMovements().Create(ctx, movement)
		if txErr != nil {
			return txErr
		}

		// バリアントのstock_quantityは全店舗合計に追従させる
		rows, txErr := r.StoreInventory().ListByVariant(ctx, variantID)
		if txErr != nil {
			return txErr
		}
		total := 0
		for _, row := range rows {
			total += row.Quantity
		}
		if txErr = r.Variants().SetStock(ctx, variantID, total); txErr != nil {
			return txErr
		}

		out = AdjustInventoryOutput{Inventory: saved, Movement: createdMovement}
		return nil
	})
	if err != nil {
		return AdjustInventoryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return out, nil
}

// GET /variants/:id/inventory 店舗別の内訳
func (u *InventoryUsecase) ListByVariant(ctx context.Context, variantID int64) ([]model.StoreInventory, error) {
	if _, err := u.variantRepo.FindByID(ctx, variantID); err != nil {
		if err == repo.ErrNotFound {
			return nil, NewHTTPError(http.StatusNotFound, "not found")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	rows, err := u.inventoryRepo.ListByVariant(ctx, variantID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rows, nil
}

// GET /variants/:id/movements
func (u *InventoryUsecase) ListMovements(ctx context.Context, variantID int64, page int, perPage int) ([]model.StockMovement, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 15
	}

	if _, err := u.variantRepo.FindByID(ctx, variantID); err != nil {
		if err == repo.ErrNotFound {
			return nil, 0, NewHTTPError(http.StatusNotFound, "not found")
		}
		return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	movements, total, err := u.movementRepo.ListByVariant(ctx, variantID, page, perPage)
	if err != nil {
		return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return movements, total, nil
}
