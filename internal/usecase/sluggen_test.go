package usecase_test

import (
	"testing"

	"backoffice/internal/domain/model"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "red-shirt", usecase.Slugify("Red Shirt"))
	assert.Equal(t, "summer-sale-2024", usecase.Slugify("  Summer Sale 2024!  "))
	assert.Equal(t, "a-b-c", usecase.Slugify("a---b___c"))
	assert.Equal(t, "", usecase.Slugify("!!!"))
}

func TestGenerateSKU(t *testing.T) {
	assert.Equal(t, "RED-STU-001", usecase.GenerateSKU("Red Shirt", model.ProductTypeStitched, 1))
	assert.Equal(t, "RED-UNS-012", usecase.GenerateSKU("Red Shirt", model.ProductTypeUnstitched, 12))

	// 英字が3文字未満でもある分だけ使う
	assert.Equal(t, "AB-STU-001", usecase.GenerateSKU("A B", model.ProductTypeStitched, 1))

	// 英字が拾えない名前はPRDにフォールバック
	assert.Equal(t, "PRD-STU-007", usecase.GenerateSKU("無地の布", model.ProductTypeStitched, 7))
}
