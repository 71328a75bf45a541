package usecase

import (
	"fmt"
	"strings"
	"unicode"

	"backoffice/internal/domain/model"
)

// 商品名からURLスラッグを作る（小文字化して非英数を'-'に潰す）
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

// SKUの接頭辞: 商品名の英字だけを拾って先頭3文字を大文字に
func skuPrefix(name string) string {
	var letters []rune
	for _, r := range name {
		if unicode.IsLetter(r) && r < 128 {
			letters = append(letters, unicode.ToUpper(r))
			if len(letters) == 3 {
				break
			}
		}
	}
	if len(letters) == 0 {
		return "PRD"
	}
	return string(letters)
}

// 商品タイプのコード（stitched→STU / unstitched→UNS）
func productTypeCode(t model.ProductType) string {
	if t == model.ProductTypeUnstitched {
		return "UNS"
	}
	return "STU"
}

// 自動SKU: {商品名の英字3文字}-{STU|UNS}-{3桁連番}
func GenerateSKU(productName string, productType model.ProductType, sequence int) string {
	return fmt.Sprintf("%s-%s-%03d", skuPrefix(productName), productTypeCode(productType), sequence)
}
