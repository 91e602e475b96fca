package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"studioreserve/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		role := domain.Role(fl.Field().String())
		return role == domain.RoleNone || role.Valid()
	})

	validate.RegisterValidation("slot_date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(domain.DateLayout, fl.Field().String())
		return err == nil
	})

	validate.RegisterValidation("slot_time", func(fl validator.FieldLevel) bool {
		_, ok := NormalizeTime(fl.Field().String())
		return ok
	})
}

// NormalizeTime accepts HH:MM or HH:MM:SS and returns HH:MM.
func NormalizeTime(v string) (string, bool) {
	v = strings.TrimSpace(v)
	for _, layout := range []string{domain.TimeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(domain.TimeLayout), true
		}
	}
	return "", false
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string)
	for _, err := range verrs {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "gt", "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "role":
			errors[field] = "Invalid role. Must be: studio_owner, employee or customer"
		case "slot_date":
			errors[field] = "Invalid date. Expected YYYY-MM-DD"
		case "slot_time":
			errors[field] = "Invalid time. Expected HH:MM"
		default:
			errors[field] = "Invalid value"
		}
	}
	return errors
}
