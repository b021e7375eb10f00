package contact

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Inquiry types accepted by the contact endpoint
const (
	TypeGeneral = "general"
	TypeCareers = "careers"
	TypeSupport = "support"
)

// Inquiry is one contact form submission. It only lives for a single attempt.
type Inquiry struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Subject string `json:"subject" form:"subject" validate:"required"`
	Message string `json:"message" form:"message" validate:"required"`
	Type    string `json:"type" form:"type" validate:"oneof=general careers support"`
}

// ValidationError lists every field that is missing or malformed
type ValidationError struct {
	Fields []string `json:"fields"`
}

func (e *ValidationError) Error() string {
	return "invalid inquiry: " + strings.Join(e.Fields, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Normalize trims every field and defaults an unset type to general
func (i Inquiry) Normalize() Inquiry {
	normalized := Inquiry{
		Name:    strings.TrimSpace(i.Name),
		Email:   strings.TrimSpace(i.Email),
		Subject: strings.TrimSpace(i.Subject),
		Message: strings.TrimSpace(i.Message),
		Type:    strings.ToLower(strings.TrimSpace(i.Type)),
	}
	if normalized.Type == "" {
		normalized.Type = TypeGeneral
	}
	return normalized
}

// Validate checks a normalized copy of the inquiry and returns a *ValidationError on failure
func (i Inquiry) Validate() error {
	err := validate.Struct(i.Normalize())
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate inquiry")
	}
	invalid := &ValidationError{}
	for _, fieldErr := range fieldErrs {
		invalid.Fields = append(invalid.Fields, fieldErr.Field())
	}
	return invalid
}

// IsZero reports whether every field is blank
func (i Inquiry) IsZero() bool {
	n := i.Normalize()
	return n.Name == "" && n.Email == "" && n.Subject == "" && n.Message == "" && strings.TrimSpace(i.Type) == ""
}
