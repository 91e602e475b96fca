package domain

import "time"

type Studio struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"size:100;not null"`
	OwnerID            int64     `json:"owner_id" gorm:"not null;index"`
	MaxCustomersPerDay int       `json:"max_customers_per_day" gorm:"not null;check:chk_studios_max_customers,max_customers_per_day >= 0"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Owner *User `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

func (Studio) TableName() string { return "studios" }
