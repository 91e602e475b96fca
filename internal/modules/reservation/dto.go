package reservation

type CreateReservationRequest struct {
	CustomerID int64   `json:"customer_id"`
	StudioID   int64   `json:"studio_id" binding:"required" validate:"required,gt=0"`
	Date       string  `json:"date" binding:"required" validate:"required,slot_date"`
	Time       string  `json:"time" binding:"required" validate:"required,slot_time"`
	Notes      *string `json:"notes"`
}

// ReplaceReservationRequest carries every field; a replace never patches.
type ReplaceReservationRequest = CreateReservationRequest

type ListReservationsQuery struct {
	Date     string `form:"date" validate:"omitempty,slot_date"`
	StudioID int64  `form:"studio_id" validate:"gte=0"`
	Limit    int    `form:"limit" validate:"gte=0,lte=500"`
	Offset   int    `form:"offset" validate:"gte=0"`
}
