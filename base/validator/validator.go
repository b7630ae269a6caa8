package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// account ids are lowercase alphanumeric segments joined by - or _ and
// separated by dots, 2 to 64 characters
var accountIdRe = regexp.MustCompile(`^(([a-z\d]+[-_])*[a-z\d]+\.)*([a-z\d]+[-_])*[a-z\d]+$`)

// IsValidAccountId returns is an account id well formed or not
func IsValidAccountId(account string) bool {
	return len(account) >= 2 && len(account) <= 64 && accountIdRe.MatchString(account)
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
