package usecase

import (
	"context"
	"net/http"
	"strings"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"

	"github.com/shopspring/decimal"
)

// 提出されたバリアント一覧を永続済みの集合に突き合わせる。
//   - idが自商品のバリアントに一致 → その行を更新
//   - idなし・不一致（他商品のidを含む） → 新規作成。他商品の行には触らない
//   - 提出リストに現れなかった既存行 → ハードデリート
//
// 呼び出し側がトランザクション内で呼ぶこと。
func (u *ProductUsecase) syncVariants(ctx context.Context, r repo.TxRepos, product model.Product, inputs []VariantInput) error {
	existing, err := r.Variants().ListByProduct(ctx, product.ID)
	if err != nil {
		return err
	}

	owned := make(map[int64]model.ProductVariant, len(existing))
	for _, v := range existing {
		owned[v.ID] = v
	}

	kept := make(map[int64]bool, len(inputs))
	sequence := len(existing)

	for _, in := range inputs {
		if in.ID != nil {
			if current, ok := owned[*in.ID]; ok {
				updated := current
				applyVariantInput(&updated, in)
				if err := u.ensureVariantSKU(ctx, r, &updated, product, &sequence); err != nil {
					return err
				}
				if err := r.Variants().Update(ctx, updated); err != nil {
					return err
				}
				kept[current.ID] = true

				if in.Images != nil {
					if err := syncVariantImages(ctx, r, product.ID, current.ID, *in.Images); err != nil {
						return err
					}
				}
				continue
			}
			// 他商品のidは無視して新規作成に回す
		}

		created := model.ProductVariant{
			ProductID:         product.ID,
			RetailPrice:       decimal.Zero,
			IsOnline:          true,
			IsPos:             true,
			IsActive:          true,
			StockQuantity:     0,
			LowStockThreshold: 5,
		}
		applyVariantInput(&created, in)
		if err := u.ensureVariantSKU(ctx, r, &created, product, &sequence); err != nil {
			return err
		}

		saved, err := r.Variants().Create(ctx, created)
		if err != nil {
			return err
		}
		kept[saved.ID] = true

		if in.Images != nil {
			if err := syncVariantImages(ctx, r, product.ID, saved.ID, *in.Images); err != nil {
				return err
			}
		}
	}

	// 提出リストに現れなかった既存行を消す
	for _, v := range existing {
		if kept[v.ID] {
			continue
		}
		if err := r.Images().DeleteByVariant(ctx, v.ID); err != nil {
			return err
		}
		if err := r.Variants().Delete(ctx, v.ID); err != nil {
			return err
		}
	}

	return nil
}

// SKUが空なら自動生成する。衝突したら連番を進めて引き直す。
func (u *ProductUsecase) ensureVariantSKU(ctx context.Context, r repo.TxRepos, v *model.ProductVariant, product model.Product, sequence *int) error {
	if strings.TrimSpace(v.SKU) != "" {
		taken, err := r.Variants().SKUExists(ctx, v.SKU, v.ID)
		if err != nil {
			return err
		}
		if taken {
			return NewValidationError("The given data was invalid.",
				map[string]string{"sku": "The sku has already been taken."})
		}
		return nil
	}

	for {
		*sequence++
		candidate := GenerateSKU(product.Name, product.ProductType, *sequence)
		taken, err := r.Variants().SKUExists(ctx, candidate, v.ID)
		if err != nil {
			return err
		}
		if !taken {
			v.SKU = candidate
			return nil
		}
	}
}

// バリアント画像の同期。全消し→作り直し。
// sort_orderは提出時のインデックスのまま使う（空URLを飛ばしても詰め直さない）。
func syncVariantImages(ctx context.Context, r repo.TxRepos, productID int64, variantID int64, urls []string) error {
	if err := r.Images().DeleteByVariant(ctx, variantID); err != nil {
		return err
	}

	for imgIndex, url := range urls {
		if strings.TrimSpace(url) == "" {
			continue
		}

		vid := variantID
		_, err := r.Images().Create(ctx, model.ProductImage{
			ProductID: productID,
			VariantID: &vid,
			ImageURL:  url,
			IsPrimary: imgIndex == 0,
			SortOrder: imgIndex,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// 未指定以外のフィールドを反映する
func applyVariantInput(v *model.ProductVariant, in VariantInput) {
	if in.SKU != nil {
		v.SKU = strings.TrimSpace(*in.SKU)
	}
	if in.Barcode != nil {
		v.Barcode = in.Barcode
	}
	if in.SizeID != nil {
		v.SizeID = in.SizeID
	}
	if in.ColorID != nil {
		v.ColorID = in.ColorID
	}
	if in.FabricID != nil {
		v.FabricID = in.FabricID
	}
	if in.FitID != nil {
		v.FitID = in.FitID
	}
	if in.TaxClassID != nil {
		v.TaxClassID = in.TaxClassID
	}
	if in.CostPrice != nil {
		v.CostPrice = decimal.NullDecimal{Decimal: *in.CostPrice, Valid: true}
	}
	if in.RetailPrice != nil {
		v.RetailPrice = *in.RetailPrice
	}
	if in.SalePrice != nil {
		v.SalePrice = decimal.NullDecimal{Decimal: *in.SalePrice, Valid: true}
	}
	if in.Weight != nil {
		v.Weight = decimal.NullDecimal{Decimal: *in.Weight, Valid: true}
	}
	if in.IsOnline != nil {
		v.IsOnline = *in.IsOnline
	}
	if in.IsPos != nil {
		v.IsPos = *in.IsPos
	}
	if in.IsActive != nil {
		v.IsActive = *in.IsActive
	}
	if in.StockQuantity != nil {
		v.StockQuantity = *in.StockQuantity
	}
	if in.LowStockThreshold != nil {
		v.LowStockThreshold = *in.LowStockThreshold
	}
}

// POST /products/:id/variants
func (u *ProductUsecase) CreateVariant(ctx context.Context, productID int64, in VariantInput) (model.ProductVariant, error) {
	if productID <= 0 {
		return model.ProductVariant{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if in.RetailPrice != nil && in.RetailPrice.IsNegative() {
		return model.ProductVariant{}, NewValidationError("The given data was invalid.",
			map[string]string{"retail_price": "The retail price must be at least 0."})
	}

	product, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.ProductVariant{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.ProductVariant{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var saved model.ProductVariant
	err = u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		count, txErr := r.Variants().CountByProduct(ctx, productID)
		if txErr != nil {
			return txErr
		}
		sequence := int(count)

		v := model.ProductVariant{
			ProductID:         productID,
			RetailPrice:       decimal.Zero,
			IsOnline:          true,
			IsPos:             true,
			IsActive:          true,
			LowStockThreshold: 5,
		}
		applyVariantInput(&v, in)
		if txErr = u.ensureVariantSKU(ctx, r, &v, product, &sequence); txErr != nil {
			return txErr
		}

		saved, txErr = r.Variants().Create(ctx, v)
		if txErr != nil {
			return txErr
		}

		if in.Images != nil {
			return syncVariantImages(ctx, r, productID, saved.ID, *in.Images)
		}
		return nil
	})
	if err != nil {
		if ve, ok := AsValidationError(err); ok {
			return model.ProductVariant{}, ve
		}
		if he, ok := AsHTTPError(err); ok {
			return model.ProductVariant{}, he
		}
		return model.ProductVariant{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return saved, nil
}

// PUT /products/:id/variants/:variantId
func (u *ProductUsecase) UpdateVariant(ctx context.Context, productID int64, variantID int64, in VariantInput) (model.ProductVariant, error) {
	current, err := u.variantRepo.FindByID(ctx, variantID)
	if err == repo.ErrNotFound {
		return model.ProductVariant{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.ProductVariant{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 他商品のバリアントは触らせない
	if current.ProductID != productID {
		return model.ProductVariant{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	product, err := u.productRepo.FindByID(ctx, productID)
	if err != nil {
		return model.ProductVariant{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	updated := current
	applyVariantInput(&updated, in)

	err = u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		sequence := 0
		if txErr := u.ensureVariantSKU(ctx, r, &updated, product, &sequence); txErr != nil {
			return txErr
		}
		if txErr := r.Variants().Update(ctx, updated); txErr != nil {
			return txErr
		}
		if in.Images != nil {
			return syncVariantImages(ctx, r, productID, variantID, *in.Images)
		}
		return nil
	})
	if err != nil {
		if ve, ok := AsValidationError(err); ok {
			return model.ProductVariant{}, ve
		}
		return model.ProductVariant{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return updated, nil
}

// DELETE /products/:id/variants/:variantId
func (u *ProductUsecase) DeleteVariant(ctx context.Context, productID int64, variantID int64) error {
	current, err := u.variantRepo.FindByID(ctx, variantID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if current.ProductID != productID {
		return NewHTTPError(http.StatusNotFound, "not found")
	}

	err = u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		if txErr := r.Images().DeleteByVariant(ctx, variantID); txErr != nil {
			return txErr
		}
		return r.Variants().Delete(ctx, variantID)
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// GET /products/:id/movements
func (u *ProductUsecase) ListMovements(ctx context.Context, productID int64, page int, perPage int) ([]model.StockMovement, int64, error) {
	if productID <= 0 {
		return nil, 0, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 15
	}

	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return nil, 0, NewHTTPError(http.StatusNotFound, "not found")
		}
		return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	movements, total, err := u.movementRepo.ListByProduct(ctx, productID, page, perPage)
	if err != nil {
		return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return movements, total, nil
}
