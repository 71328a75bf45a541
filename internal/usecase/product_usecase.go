package usecase

import (
	"context"
	"net/http"
	"strings"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	productRepo  repo.ProductRepository
	variantRepo  repo.VariantRepository
	movementRepo repo.StockMovementRepository
	txm          repo.TransactionManager
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	variantRepo repo.VariantRepository,
	movementRepo repo.StockMovementRepository,
	txm repo.TransactionManager,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		variantRepo:  variantRepo,
		movementRepo: movementRepo,
		txm:          txm,
	}
}

// GET /products の入力DTO
type ListProductsInput struct {
	Page       int
	PerPage    int
	Search     string
	CategoryID *int64
	BrandID    *int64
	Status     string
	IsActive   *bool
}

type ProductListOutput struct {
	Items   []model.Product
	Total   int64
	Page    int
	PerPage int
}

// 画像1枚分の入力
type ImageInput struct {
	ImageURL  string `json:"image_url"`
	IsPrimary *bool  `json:"is_primary"`
}

// バリアント1件分の入力。nilのフィールドは「未指定」。
type VariantInput struct {
	ID                *int64           `json:"id"`
	SKU               *string          `json:"sku"`
	Barcode           *string          `json:"barcode"`
	SizeID            *int64           `json:"size_id"`
	ColorID           *int64           `json:"color_id"`
	FabricID          *int64           `json:"fabric_id"`
	FitID             *int64           `json:"fit_id"`
	TaxClassID        *int64           `json:"tax_class_id"`
	CostPrice         *decimal.Decimal `json:"cost_price"`
	RetailPrice       *decimal.Decimal `json:"retail_price"`
	SalePrice         *decimal.Decimal `json:"sale_price"`
	Weight            *decimal.Decimal `json:"weight"`
	IsOnline          *bool            `json:"is_online"`
	IsPos             *bool            `json:"is_pos"`
	IsActive          *bool            `json:"is_active"`
	StockQuantity     *int             `json:"stock_quantity"`
	LowStockThreshold *int             `json:"low_stock_threshold"`

	// nil=画像はそのまま / 非nil=全消し→作り直し
	Images *[]string `json:"images"`
}

// 商品入力。nilのフィールドは未指定扱い。
type ProductInput struct {
	Name              string           `json:"name"`
	Slug              *string          `json:"slug"`
	Description       *string          `json:"description"`
	ShortDescription  *string          `json:"short_description"`
	ProductType       *string          `json:"product_type"`
	BrandID           *int64           `json:"brand_id"`
	Price             *decimal.Decimal `json:"price"`
	SalePrice         *decimal.Decimal `json:"sale_price"`
	CostPrice         *decimal.Decimal `json:"cost_price"`
	StockQuantity     *int             `json:"stock_quantity"`
	Status            *string          `json:"status"`
	IsActive          *bool            `json:"is_active"`
	IsFeatured        *bool            `json:"is_featured"`
	IsBestseller      *bool            `json:"is_bestseller"`
	MetaTitle         *string          `json:"meta_title"`
	MetaDescription   *string          `json:"meta_description"`
	MetaKeywords      *string          `json:"meta_keywords"`
	CategoryIDs       *[]int64         `json:"categories"`
	AttributeValueIDs *[]int64         `json:"attribute_values"`
	Images            *[]ImageInput    `json:"images"`
	Variants          *[]VariantInput  `json:"variants"`
}

func (u *ProductUsecase) List(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.PerPage < 1 {
		in.PerPage = 15
	}
	if in.PerPage > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid per_page")
	}
	if in.Status != "" && !model.ValidProductStatus(model.ProductStatus(in.Status)) {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	items, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Page:       in.Page,
		PerPage:    in.PerPage,
		Search:     strings.TrimSpace(in.Search),
		CategoryID: in.CategoryID,
		BrandID:    in.BrandID,
		Status:     in.Status,
		IsActive:   in.IsActive,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{Items: items, Total: total, Page: in.Page, PerPage: in.PerPage}, nil
}

func (u *ProductUsecase) Get(ctx context.Context, id int64) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindDetail(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// 商品名と必須項目の検証
func (u *ProductUsecase) validateInput(in ProductInput) error {
	fields := map[string]string{}

	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "The name field is required."
	}
	if in.Price == nil {
		fields["price"] = "The price field is required."
	} else if in.Price.IsNegative() {
		fields["price"] = "The price must be at least 0."
	}
	if in.SalePrice != nil && in.SalePrice.IsNegative() {
		fields["sale_price"] = "The sale price must be at least 0."
	}
	if in.CostPrice != nil && in.CostPrice.IsNegative() {
		fields["cost_price"] = "The cost price must be at least 0."
	}
	if in.StockQuantity != nil && *in.StockQuantity < 0 {
		fields["stock_quantity"] = "The stock quantity must be at least 0."
	}
	if in.Status != nil && !model.ValidProductStatus(model.ProductStatus(*in.Status)) {
		fields["status"] = "The selected status is invalid."
	}
	if in.ProductType != nil && !model.ValidProductType(model.ProductType(*in.ProductType)) {
		fields["product_type"] = "The selected product type is invalid."
	}

	if len(fields) > 0 {
		return NewValidationError("The given data was invalid.", fields)
	}
	return nil
}

// 商品作成。バリアント・画像・関連の作成を1トランザクションで行う。
func (u *ProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := u.validateInput(in); err != nil {
		return model.Product{}, err
	}

	slug := ""
	if in.Slug != nil {
		slug = strings.TrimSpace(*in.Slug)
	}
	if slug == "" {
		slug = Slugify(in.Name)
	}

	taken, err := u.productRepo.SlugExists(ctx, slug, 0)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return model.Product{}, NewValidationError("The given data was invalid.",
			map[string]string{"slug": "The slug has already been taken."})
	}

	p := model.Product{
		Name:        strings.TrimSpace(in.Name),
		Slug:        slug,
		ProductType: model.ProductTypeStitched,
		Price:       *in.Price,
		Status:      model.ProductStatusDraft,
		IsActive:    true,
	}
	applyProductInput(&p, in)

	var created model.Product
	err = u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		var txErr error
		created, txErr = r.Products().Create(ctx, p)
		if txErr != nil {
			return txErr
		}

		if in.CategoryIDs != nil {
			if txErr = r.Products().ReplaceCategories(ctx, created.ID, *in.CategoryIDs); txErr != nil {
				return txErr
			}
		}
		if in.AttributeValueIDs != nil {
			if txErr = r.Products().ReplaceAttributeValues(ctx, created.ID, *in.AttributeValueIDs); txErr != nil {
				return txErr
			}
		}
		if in.Images != nil {
			if txErr = createProductImages(ctx, r, created.ID, *in.Images); txErr != nil {
				return txErr
			}
		}
		if in.Variants != nil {
			if txErr = u.syncVariants(ctx, r, created, *in.Variants); txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		if he, ok := AsHTTPError(err); ok {
			return model.Product{}, he
		}
		if ve, ok := AsValidationError(err); ok {
			return model.Product{}, ve
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.Get(ctx, created.ID)
}

// 商品更新。提出されたバリアント一覧との同期も行う。
func (u *ProductUsecase) Update(ctx context.Context, id int64, in ProductInput) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := u.validateInput(in); err != nil {
		return model.Product{}, err
	}

	current, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// slug未指定なら現状維持
	slug := current.Slug
	if in.Slug != nil && strings.TrimSpace(*in.Slug) != "" {
		slug = strings.TrimSpace(*in.Slug)
	}

	taken, err := u.productRepo.SlugExists(ctx, slug, id)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return model.Product{}, NewValidationError("The given data was invalid.",
			map[string]string{"slug": "The slug has already been taken."})
	}

	p := current
	p.Name = strings.TrimSpace(in.Name)
	p.Slug = slug
	p.Price = *in.Price
	applyProductInput(&p, in)

	err = u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		if txErr := r.Products().Update(ctx, p); txErr != nil {
			return txErr
		}

		if in.CategoryIDs != nil {
			if txErr := r.Products().ReplaceCategories(ctx, p.ID, *in.CategoryIDs); txErr != nil {
				return txErr
			}
		}
		if in.AttributeValueIDs != nil {
			if txErr := r.Products().ReplaceAttributeValues(ctx, p.ID, *in.AttributeValueIDs); txErr != nil {
				return txErr
			}
		}
		if in.Images != nil {
			// 商品直下の画像は全消し→作り直し
			if txErr := r.Images().DeleteProductLevel(ctx, p.ID); txErr != nil {
				return txErr
			}
			if txErr := createProductImages(ctx, r, p.ID, *in.Images); txErr != nil {
				return txErr
			}
		}
		if in.Variants != nil {
			if txErr := u.syncVariants(ctx, r, p, *in.Variants); txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		if he, ok := AsHTTPError(err); ok {
			return model.Product{}, he
		}
		if ve, ok := AsValidationError(err); ok {
			return model.Product{}, ve
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.Get(ctx, id)
}

func (u *ProductUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.productRepo.SoftDelete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 未指定以外のフィールドを反映する
func applyProductInput(p *model.Product, in ProductInput) {
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ShortDescription != nil {
		p.ShortDescription = *in.ShortDescription
	}
	if in.ProductType != nil {
		p.ProductType = model.ProductType(*in.ProductType)
	}
	if in.BrandID != nil {
		p.BrandID = in.BrandID
	}
	if in.SalePrice != nil {
		p.SalePrice = decimal.NullDecimal{Decimal: *in.SalePrice, Valid: true}
	}
	if in.CostPrice != nil {
		p.CostPrice = decimal.NullDecimal{Decimal: *in.CostPrice, Valid: true}
	}
	if in.StockQuantity != nil {
		p.StockQuantity = *in.StockQuantity
	}
	if in.Status != nil {
		p.Status = model.ProductStatus(*in.Status)
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.IsFeatured != nil {
		p.IsFeatured = *in.IsFeatured
	}
	if in.IsBestseller != nil {
		p.IsBestseller = *in.IsBestseller
	}
	if in.MetaTitle != nil {
		p.MetaTitle = *in.MetaTitle
	}
	if in.MetaDescription != nil {
		p.MetaDescription = *in.MetaDescription
	}
	if in.MetaKeywords != nil {
		p.MetaKeywords = *in.MetaKeywords
	}
}

// 商品直下の画像の作成。先頭をprimary扱い（明示指定があればそちら）。
func createProductImages(ctx context.Context, r repo.TxRepos, productID int64, images []ImageInput) error {
	for index, img := range images {
		if strings.TrimSpace(img.ImageURL) == "" {
			continue
		}

		isPrimary := index == 0
		if img.IsPrimary != nil {
			isPrimary = *img.IsPrimary
		}

		_, err := r.Images().Create(ctx, model.ProductImage{
			ProductID: productID,
			ImageURL:  img.ImageURL,
			IsPrimary: isPrimary,
			SortOrder: index,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
