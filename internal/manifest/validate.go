package manifest

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern      = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	componentIDPattern = regexp.MustCompile(`^[a-z0-9_]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// report fields by their manifest names rather than Go names
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("component_id", func(fl validator.FieldLevel) bool {
			return componentIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation. Prop values are
// checked when the manifest is built.
func Validate(m *Manifest) error {
	if m == nil {
		return stylekiterrors.NewValidationError("manifest", "manifest is nil", nil)
	}

	if err := validatorInstance().Struct(m); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(m.Components))
	for i, c := range m.Components {
		if first, exists := seen[c.ID]; exists {
			return stylekiterrors.NewValidationError(fieldForComponent(i, "id"), fmt.Sprintf("duplicate component id %q (first declared at components[%d])", c.ID, first), nil)
		}
		seen[c.ID] = i
	}

	if err := m.Theme.validate(); err != nil {
		return err
	}

	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return stylekiterrors.NewValidationError("manifest", err.Error(), err)
	}

	fe := ves[0]
	field := manifestFieldName(fe)
	msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())

	if fe.Tag() == "oneof" {
		if value, ok := fe.Value().(string); ok {
			if hint := suggest(value, strings.Fields(fe.Param())); hint != "" {
				return &stylekiterrors.ValidationError{Field: field, Message: msg, Suggestion: hint, Err: err}
			}
		}
	}
	return stylekiterrors.NewValidationError(field, msg, err)
}

// manifestFieldName drops the root type name: "Manifest.components[0].kind"
// becomes "components[0].kind".
func manifestFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func fieldForComponent(index int, field string) string {
	return fmt.Sprintf("components[%d].%s", index, field)
}
