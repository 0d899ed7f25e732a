package handler

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validationMessage flattens the first failing field into the single-string
// error shape every endpoint uses.
func validationMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return fmt.Sprintf("Field '%s' failed on '%s' validation", errs[0].Field(), errs[0].Tag())
	}
	return "Invalid request payload"
}
