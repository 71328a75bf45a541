package usecase

import (
	"context"
	"net/http"
	"net/mail"
	"strings"

	"backoffice/internal/auth"
	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"
)

type UserUsecase struct {
	userRepo repo.UserRepository
	hasher   auth.PasswordHasher
}

// DI
func NewUserUsecase(userRepo repo.UserRepository, hasher auth.PasswordHasher) *UserUsecase {
	return &UserUsecase{userRepo: userRepo, hasher: hasher}
}

type ListUsersInput struct {
	Page    int
	PerPage int
	Role    string
	Search  string
}

type UserInput struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

func (u *UserUsecase) List(ctx context.Context, in ListUsersInput) ([]model.User, int64, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.PerPage < 1 {
		in.PerPage = 15
	}
	if in.Role != "" && !model.ValidRole(model.Role(in.Role)) {
		return nil, 0, NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	users, total, err := u.userRepo.List(ctx, repo.UserListQuery{
		Page:    in.Page,
		PerPage: in.PerPage,
		Role:    in.Role,
		Search:  strings.TrimSpace(in.Search),
	})
	if err != nil {
		return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return users, total, nil
}

func (u *UserUsecase) Get(ctx context.Context, id int64) (model.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.User{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return user, nil
}

// 管理ユーザー作成。super_adminを作れるのはsuper_adminだけ。
func (u *UserUsecase) Create(ctx context.Context, actor model.User, in UserInput) (model.User, error) {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "The name field is required."
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		fields["email"] = "The email field is required."
	} else if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "The email must be a valid email address."
	}
	if in.Password == nil || len(*in.Password) < 8 {
		fields["password"] = "The password must be at least 8 characters."
	}

	role := model.RoleStaff
	if in.Role != nil {
		role = model.Role(*in.Role)
		if !model.ValidRole(role) {
			fields["role"] = "The selected role is invalid."
		}
	}
	if len(fields) > 0 {
		return model.User{}, NewValidationError("The given data was invalid.", fields)
	}

	if role == model.RoleSuperAdmin && !actor.IsSuperAdmin() {
		return model.User{}, NewHTTPError(http.StatusForbidden, "Only super admins can assign the super admin role.")
	}

	taken, err := u.userRepo.EmailExists(ctx, email, 0)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return model.User{}, NewValidationError("The given data was invalid.",
			map[string]string{"email": "The email has already been taken."})
	}

	hash, err := u.hasher.Hash(*in.Password)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	user := model.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	created, err := u.userRepo.Create(ctx, user)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// 管理ユーザー更新。
//   - 自分自身のロールは変えられない
//   - super_adminのロールを触れるのはsuper_adminだけ
func (u *UserUsecase) Update(ctx context.Context, actor model.User, id int64, in UserInput) (model.User, error) {
	current, err := u.userRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.User{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "The name field is required."
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		fields["email"] = "The email field is required."
	} else if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "The email must be a valid email address."
	}
	if in.Password != nil && len(*in.Password) < 8 {
		fields["password"] = "The password must be at least 8 characters."
	}
	if in.Role != nil && !model.ValidRole(model.Role(*in.Role)) {
		fields["role"] = "The selected role is invalid."
	}
	if len(fields) > 0 {
		return model.User{}, NewValidationError("The given data was invalid.", fields)
	}

	if in.Role != nil && model.Role(*in.Role) != current.Role {
		if actor.ID == current.ID {
			return model.User{}, NewHTTPError(http.StatusForbidden, "You cannot change your own role.")
		}
		if (current.IsSuperAdmin() || model.Role(*in.Role) == model.RoleSuperAdmin) && !actor.IsSuperAdmin() {
			return model.User{}, NewHTTPError(http.StatusForbidden, "Only super admins can assign the super admin role.")
		}
	}

	taken, err := u.userRepo.EmailExists(ctx, email, id)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return model.User{}, NewValidationError("The given data was invalid.",
			map[string]string{"email": "The email has already been taken."})
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Email = email
	if in.Role != nil {
		current.Role = model.Role(*in.Role)
	}
	if in.IsActive != nil {
		current.IsActive = *in.IsActive
	}
	if in.Password != nil {
		hash, hashErr := u.hasher.Hash(*in.Password)
		if hashErr != nil {
			return model.User{}, NewHTTPError(http.StatusInternalServerError, "hash error")
		}
		current.PasswordHash = hash
	}

	if err := u.userRepo.Update(ctx, current); err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return current, nil
}

// 管理ユーザー削除。
//   - 自分自身は消せない
//   - super_adminを消せるのはsuper_adminだけ
func (u *UserUsecase) Delete(ctx context.Context, actor model.User, id int64) error {
	if actor.ID == id {
		return NewHTTPError(http.StatusForbidden, "You cannot delete your own account.")
	}

	target, err := u.userRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if target.IsSuperAdmin() && !actor.IsSuperAdmin() {
		return NewHTTPError(http.StatusForbidden, "Only super admins can delete super admin accounts.")
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
