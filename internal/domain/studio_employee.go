package domain

import "time"

// StudioEmployee links an employee to the one studio they work at.
type StudioEmployee struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_studio_employee_user"`
	StudioID  int64     `json:"studio_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`

	User   *User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Studio *Studio `json:"-" gorm:"foreignKey:StudioID;constraint:OnDelete:CASCADE"`
}

func (StudioEmployee) TableName() string { return "studio_employees" }
