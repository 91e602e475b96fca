package domain

import "time"

type Role string

const (
	RoleStudioOwner Role = "studio_owner"
	RoleEmployee    Role = "employee"
	RoleCustomer    Role = "customer"
	RoleNone        Role = ""
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudioOwner, RoleEmployee, RoleCustomer:
		return true
	}
	return false
}

// RoleFromFlags resolves the legacy is_customer/is_employee/is_studio_owner
// booleans into a single role. Customer wins over employee, employee over owner.
func RoleFromFlags(isStudioOwner, isEmployee, isCustomer bool) Role {
	switch {
	case isCustomer:
		return RoleCustomer
	case isEmployee:
		return RoleEmployee
	case isStudioOwner:
		return RoleStudioOwner
	}
	return RoleNone
}

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:150;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Role         Role      `json:"role" gorm:"size:32;not null;default:''"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
