package domain

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Reservation occupies one slot: a (studio, date, time) triple.
type Reservation struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	CustomerID int64     `json:"customer_id" gorm:"not null;index"`
	StudioID   int64     `json:"studio_id" gorm:"not null;uniqueIndex:idx_reservation_slot,priority:1;index:idx_reservation_day,priority:1"`
	Date       string    `json:"date" gorm:"size:10;not null;uniqueIndex:idx_reservation_slot,priority:2;index:idx_reservation_day,priority:2"`
	Time       string    `json:"time" gorm:"size:5;not null;uniqueIndex:idx_reservation_slot,priority:3"`
	Notes      *string   `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Customer *User   `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Studio   *Studio `json:"-" gorm:"foreignKey:StudioID;constraint:OnDelete:CASCADE"`
}

func (Reservation) TableName() string { return "reservations" }
