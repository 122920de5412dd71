package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels.
var FieldLabels = map[string]string{
	// CandidateProfile fields
	"FullName":       "Full name",
	"Email":          "Email address",
	"Phone":          "Phone number",
	"City":           "City",
	"Nationality":    "Nationality",
	"EducationLevel": "Education level",
	"Experience":     "Experience",
	"Skills":         "Skills",
	"ResumeURL":      "Resume URL",
	"PhotoURL":       "Photo URL",

	// EmployerProfile fields
	"CompanyName":  "Company name",
	"ContactEmail": "Contact email",
	"Website":      "Website",
}

func label(field string) string {
	if l, ok := FieldLabels[field]; ok {
		return l
	}
	return field
}

// Message turns a validator error into a readable, per-field message list.
func Message(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	name := label(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", name)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
	case "valid_phone":
		return fmt.Sprintf("%s must be a valid phone number", name)
	case "valid_name":
		return fmt.Sprintf("%s contains invalid characters", name)
	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji", name)
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}
