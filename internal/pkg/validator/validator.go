package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validations
	registerCustomValidations()
}

func registerCustomValidations() {
	// Media type validation
	validate.RegisterValidation("media_type", func(fl validator.FieldLevel) bool {
		mediaType := fl.Field().String()
		validTypes := []string{"hoarding", "bus_shelter", "digital", "gantry", "pole_kiosk"}
		for _, t := range validTypes {
			if mediaType == t {
				return true
			}
		}
		return false
	})

	// Illumination validation
	validate.RegisterValidation("illumination", func(fl validator.FieldLevel) bool {
		illumination := fl.Field().String()
		validValues := []string{"front_lit", "back_lit", "digital", "non_lit"}
		for _, v := range validValues {
			if illumination == v {
				return true
			}
		}
		return false
	})

}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "gt":
			errors[field] = "Value must be greater than " + err.Param()
		case "uuid":
			errors[field] = "Invalid identifier format"
		case "datetime":
			errors[field] = "Invalid date, expected " + err.Param()
		case "oneof":
			errors[field] = "Must be one of: " + err.Param()
		case "media_type":
			errors[field] = "Invalid media type. Must be: hoarding, bus_shelter, digital, gantry, or pole_kiosk"
		case "illumination":
			errors[field] = "Invalid illumination. Must be: front_lit, back_lit, digital, or non_lit"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
