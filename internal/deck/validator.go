package deck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	return validate, trans, nil
}

// validateStruct runs the validator over a struct whose string fields have
// already been trimmed and converts the first failure into a ValidationError.
func validateStruct(validate *validator.Validate, trans ut.Translator, v any) error {
	if err := validate.Struct(v); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) || len(errs) == 0 {
			return fmt.Errorf("validate.Struct > %w", err)
		}
		first := errs[0]
		return ValidationError{
			Field:   strings.ToLower(first.Field()),
			Message: first.Translate(trans),
		}
	}
	return nil
}
