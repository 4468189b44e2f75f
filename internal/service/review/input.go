package review

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/review-relay/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields under their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the tag rules on v and converts failures into a
// *domain.ValidationError.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate input: %w", err)
	}

	errs := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, domain.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return domain.NewValidationErrors(errs)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		return "max " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "invalid"
	}
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// CreateInput holds the parameters for issuing an edit link.
// Every field is optional.
type CreateInput struct {
	Email   string `json:"email"   validate:"max=320"`
	Subject string `json:"subject" validate:"max=998"`
	Body    string `json:"body"    validate:"max=100000"`
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	return validateStruct(i)
}

// SubmitInput is a reviewer decision as posted by the edit page.
type SubmitInput struct {
	RequestID string        `json:"requestId" validate:"max=64"`
	Email     string        `json:"email"     validate:"max=320"`
	Subject   string        `json:"subject"   validate:"max=998"`
	Body      string        `json:"body"      validate:"max=100000"`
	Action    domain.Action `json:"action"    validate:"omitempty,oneof=edit approve stop"`
	Source    string        `json:"source"    validate:"max=64"`
}

// Validate checks all fields and collects all errors. An edit must carry a
// subject or a body; approve and stop may rely on the stored draft.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError
	if err := validateStruct(i); err != nil {
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		errs = append(errs, ve.Errors...)
	}

	if i.action() == domain.ActionEdit && blank(i.Subject) && blank(i.Body) {
		errs = append(errs, domain.FieldError{Field: "body", Message: "subject or body is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// action returns the decision, defaulting to edit.
func (i SubmitInput) action() domain.Action {
	if i.Action == "" {
		return domain.ActionEdit
	}
	return i.Action
}

// RewriteInput holds the parameters for an AI rewrite.
type RewriteInput struct {
	CurrentBody string `json:"currentBody" validate:"required,max=100000"`
	Feedback    string `json:"feedback"    validate:"required,max=5000"`
}

// Validate checks all fields and collects all errors.
func (i RewriteInput) Validate() error {
	return validateStruct(i)
}
