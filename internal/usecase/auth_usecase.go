package usecase

import (
	"context"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"backoffice/internal/auth"
	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"
)

type AuthUsecase struct {
	userRepo     repo.UserRepository
	customerRepo repo.CustomerRepository
	hasher       auth.PasswordHasher
	tokens       *auth.TokenIssuer
}

// DI
func NewAuthUsecase(
	userRepo repo.UserRepository,
	customerRepo repo.CustomerRepository,
	hasher auth.PasswordHasher,
	tokens *auth.TokenIssuer,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		hasher:       hasher,
		tokens:       tokens,
	}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// handlerがcookieに詰めるセッション
type Session struct {
	Token     string
	ExpiresAt time.Time
}

type AdminLoginOutput struct {
	User    model.User
	Session Session
}

type CustomerLoginOutput struct {
	Customer model.Customer
	Session  Session
}

func (in LoginInput) validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Email) == "" {
		fields["email"] = "The email field is required."
	}
	if in.Password == "" {
		fields["password"] = "The password field is required."
	}
	if len(fields) > 0 {
		return NewValidationError("The given data was invalid.", fields)
	}
	return nil
}

// 管理側ログイン。停止ユーザーは資格情報が合っていても401。
func (u *AuthUsecase) AdminLogin(ctx context.Context, in LoginInput) (AdminLoginOutput, error) {
	if err := in.validate(); err != nil {
		return AdminLoginOutput{}, err
	}

	user, err := u.userRepo.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err == repo.ErrNotFound {
		return AdminLoginOutput{}, NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return AdminLoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.hasher.Compare(user.PasswordHash, in.Password); err != nil {
		return AdminLoginOutput{}, NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsActive {
		return AdminLoginOutput{}, NewHTTPError(http.StatusUnauthorized, "Your account has been deactivated.")
	}

	_ = u.userRepo.TouchLastLogin(ctx, user.ID)

	token, exp, err := u.tokens.Issue(user.ID, auth.GuardAdmin)
	if err != nil {
		return AdminLoginOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	return AdminLoginOutput{
		User:    user,
		Session: Session{Token: token, ExpiresAt: exp},
	}, nil
}

func (u *AuthUsecase) AdminMe(ctx context.Context, userID int64) (model.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !user.IsActive {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
	}
	return user, nil
}

// 顧客側ログイン
func (u *AuthUsecase) CustomerLogin(ctx context.Context, in LoginInput) (CustomerLoginOutput, error) {
	if err := in.validate(); err != nil {
		return CustomerLoginOutput{}, err
	}

	customer, err := u.customerRepo.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err == repo.ErrNotFound {
		return CustomerLoginOutput{}, NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return CustomerLoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.hasher.Compare(customer.PasswordHash, in.Password); err != nil {
		return CustomerLoginOutput{}, NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	token, exp, err := u.tokens.Issue(customer.ID, auth.GuardCustomer)
	if err != nil {
		return CustomerLoginOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	return CustomerLoginOutput{
		Customer: customer,
		Session:  Session{Token: token, ExpiresAt: exp},
	}, nil
}

// 顧客登録。登録成功でそのままログイン状態にする。
func (u *AuthUsecase) CustomerRegister(ctx context.Context, in RegisterInput) (CustomerLoginOutput, error) {
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
	if len(in.Password) < 8 {
		fields["password"] = "The password must be at least 8 characters."
	} else if in.Password != in.PasswordConfirmation {
		fields["password"] = "The password confirmation does not match."
	}
	if len(fields) > 0 {
		return CustomerLoginOutput{}, NewValidationError("The given data was invalid.", fields)
	}

	taken, err := u.customerRepo.EmailExists(ctx, email)
	if err != nil {
		return CustomerLoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return CustomerLoginOutput{}, NewValidationError("The given data was invalid.",
			map[string]string{"email": "The email has already been taken."})
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return CustomerLoginOutput{}, NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	created, err := u.customerRepo.Create(ctx, model.Customer{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: hash,
	})
	if err != nil {
		return CustomerLoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	token, exp, err := u.tokens.Issue(created.ID, auth.GuardCustomer)
	if err != nil {
		return CustomerLoginOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	return CustomerLoginOutput{
		Customer: created,
		Session:  Session{Token: token, ExpiresAt: exp},
	}, nil
}

func (u *AuthUsecase) CustomerMe(ctx context.Context, customerID int64) (model.Customer, error) {
	customer, err := u.customerRepo.FindByID(ctx, customerID)
	if err == repo.ErrNotFound {
		return model.Customer{}, NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return customer, nil
}
