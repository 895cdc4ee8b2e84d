package catalog

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Input carries the submitted fields of a new movie before validation.
type Input struct {
	Name          string  `validate:"required,max=100"`
	Genre         string  `validate:"required,max=50,genre"`
	Rating        float64 `validate:"gte=0,lte=10"`
	Comment       string  `validate:"required,max=500"`
	ImageFilename string  `validate:"-"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Genre may contain letters, spaces and hyphens only. Digits are the
	// usual mistake, so they are checked first for a clearer failure.
	v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if unicode.IsDigit(r) {
				return false
			}
			if !unicode.IsLetter(r) && !unicode.IsSpace(r) && r != '-' {
				return false
			}
		}
		return true
	})
	return v
}

// Validate checks the field rules and reports the first violation with the
// offending field named.
func (in Input) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("%s must not be empty", fe.Field())
		case "max":
			return fmt.Errorf("%s must be at most %s characters", fe.Field(), fe.Param())
		case "gte", "lte":
			return errors.New("Rating must be between 0 and 10")
		case "genre":
			return errors.New("Genre should contain only letters, spaces and hyphens")
		}
		return fmt.Errorf("%s is invalid", fe.Field())
	}
	return err
}
