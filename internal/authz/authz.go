package authz

import "backoffice/internal/domain/model"

// ロール→許可の静的な対応表。外部ストアは持たない。
var grants = map[model.Role][]string{
	model.RoleSuperAdmin: allPermissions(),
	model.RoleAdmin:      allPermissions(),
	model.RoleStaff: {
		"view-dashboard",
		"view-products", "view-categories", "view-brands", "view-attributes",
		"view-sizes", "view-colors", "view-fabrics", "view-fits",
		"view-tax-classes", "view-stores", "view-inventory",
	},
	model.RoleTailor: {
		"view-dashboard",
		"view-products", "view-inventory",
	},
}

var resources = []string{
	"users", "products", "categories", "brands", "attributes",
	"sizes", "colors", "fabrics", "fits", "tax-classes", "stores", "inventory",
}

func allPermissions() []string {
	perms := []string{"view-dashboard"}
	for _, res := range resources {
		perms = append(perms,
			"view-"+res,
			"create-"+res,
			"edit-"+res,
			"delete-"+res,
		)
	}
	return perms
}

// 許可判定サービス。requiredはロール名でも許可名でもよい。
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// いずれか1つでも満たせば許可（OR。ANDではない）。
func (s *Service) Authorize(principal *model.User, required ...string) bool {
	if principal == nil || len(required) == 0 {
		return false
	}

	for _, want := range required {
		if want == string(principal.Role) {
			return true
		}
		for _, perm := range grants[principal.Role] {
			if perm == want {
				return true
			}
		}
	}
	return false
}
