package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkInput runs struct validation and wraps failures in ErrInvalid so the
// HTTP layer can map them to a 400 envelope.
func checkInput(in any) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalid, err)
	}
	return nil
}
