package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports which input fields violated their constraints.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

// validate is the shared validator instance. Custom rules cover the closed
// Speciality and Symptom enums; field names in errors follow the json tags.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("speciality", func(fl validator.FieldLevel) bool {
		return Speciality(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("symptom", func(fl validator.FieldLevel) bool {
		return Symptom(fl.Field().String()).Valid()
	})

	return v
}

func runValidation(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return &ValidationError{Fields: fields}
}
