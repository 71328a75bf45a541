package authz_test

import (
	"testing"

	"backoffice/internal/authz"
	"backoffice/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func user(role model.Role) *model.User {
	return &model.User{ID: 1, Role: role, IsActive: true}
}

func TestAuthorize_RoleName(t *testing.T) {
	svc := authz.NewService()

	assert.True(t, svc.Authorize(user(model.RoleTailor), "tailor"))
	assert.False(t, svc.Authorize(user(model.RoleStaff), "tailor"))
}

func TestAuthorize_PermissionName(t *testing.T) {
	svc := authz.NewService()

	assert.True(t, svc.Authorize(user(model.RoleStaff), "view-products"))
	assert.False(t, svc.Authorize(user(model.RoleStaff), "delete-products"))
	assert.True(t, svc.Authorize(user(model.RoleAdmin), "delete-products"))
	assert.True(t, svc.Authorize(user(model.RoleSuperAdmin), "delete-users"))
}

func TestAuthorize_OrSemantics(t *testing.T) {
	svc := authz.NewService()

	// いずれか1つ満たせば許可
	assert.True(t, svc.Authorize(user(model.RoleTailor), "delete-users", "view-products"))
	assert.False(t, svc.Authorize(user(model.RoleTailor), "delete-users", "edit-products"))
}

func TestAuthorize_Degenerate(t *testing.T) {
	svc := authz.NewService()

	assert.False(t, svc.Authorize(nil, "view-products"))
	assert.False(t, svc.Authorize(user(model.RoleAdmin)))
}
