package dto

import (
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("user_id", validateUserID)
	}
}

// validateUserID accepts any valid UTF-8 string without control characters.
// The ID ends up in the download filename header and in the barcode.
func validateUserID(fl validator.FieldLevel) bool {
	return IsValidUserID(fl.Field().String())
}

// IsValidUserID reports whether id can be used as a pass serial number.
func IsValidUserID(id string) bool {
	if id == "" || !utf8.ValidString(id) {
		return false
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
