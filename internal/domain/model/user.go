package model

import "time"

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleStaff      Role = "staff"
	RoleTailor     Role = "tailor"
)

// 管理画面で割り当てられるロール一覧
var Roles = []Role{RoleSuperAdmin, RoleAdmin, RoleStaff, RoleTailor}

// ロール文字列が定義済みかどうか
func ValidRole(r Role) bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// 管理側（admin guard）のプリンシパル
type User struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;not null" json:"-"`
	Role         Role       `gorm:"type:varchar(20);not null;default:'staff'" json:"role"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}
