package studio

type CreateStudioRequest struct {
	Name               string `json:"name" binding:"required" validate:"required,max=100"`
	MaxCustomersPerDay *int   `json:"max_customers_per_day" validate:"omitempty,gte=0"`
}

// UpdateStudioRequest replaces every editable field.
type UpdateStudioRequest struct {
	Name               string `json:"name" binding:"required" validate:"required,max=100"`
	MaxCustomersPerDay *int   `json:"max_customers_per_day" validate:"required,gte=0"`
}

type ListStudiosQuery struct {
	OwnerID int64 `form:"owner_id"`
	Limit   int   `form:"limit" validate:"gte=0,lte=500"`
	Offset  int   `form:"offset" validate:"gte=0"`
}

type AssignEmployeeRequest struct {
	StudioID int64 `json:"studio_id" binding:"required" validate:"required,gt=0"`
	UserID   int64 `json:"user_id" binding:"required" validate:"required,gt=0"`
}
