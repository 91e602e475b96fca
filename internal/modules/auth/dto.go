package auth

import "studioreserve/internal/domain"

// RegisterRequest accepts either role or the legacy is_* flags.
type RegisterRequest struct {
	Username        string      `json:"username" binding:"required" validate:"required,min=3,max=150"`
	Password        string      `json:"password" binding:"required" validate:"required,min=8,max=72"`
	ConfirmPassword string      `json:"confirm_password" binding:"required" validate:"required,eqfield=Password"`
	Role            domain.Role `json:"role" validate:"omitempty,role"`
	IsStudioOwner   bool        `json:"is_studio_owner"`
	IsEmployee      bool        `json:"is_employee"`
	IsCustomer      bool        `json:"is_customer"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type ListUsersQuery struct {
	Role   string `form:"role" validate:"omitempty,role"`
	Limit  int    `form:"limit" validate:"gte=0,lte=500"`
	Offset int    `form:"offset" validate:"gte=0"`
}

type UserPublic struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

func toPublic(u *domain.User) UserPublic {
	return UserPublic{ID: u.ID, Username: u.Username, Role: u.Role}
}
