package repository

import (
	"errors"

	"gorm.io/gorm"

	"studioreserve/internal/domain"
)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
