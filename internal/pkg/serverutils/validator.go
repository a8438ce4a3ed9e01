package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and folds failures into a single
// 400 with field names the client can act on.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewBusinessError(fiber.StatusBadRequest, CodeValidation, "invalid request body")
	}

	invalid := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		invalid = append(invalid, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return NewBusinessError(fiber.StatusBadRequest, CodeValidation,
		"invalid fields: "+strings.Join(invalid, ", "))
}
