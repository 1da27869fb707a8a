package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var nonDigits = regexp.MustCompile(`\D`)

// ValidateSubmitLeadInput checa só a forma mínima que o dashboard sempre
// exigiu: nome e pelo menos um canal de contato. Regra de negócio de verdade
// fica no backend metropole.
func ValidateSubmitLeadInput(input SubmitLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" && strings.TrimSpace(input.CellPhone) == "" {
		errors = append(errors, ValidationError{"email", "email or cellPhone is required"})
	}

	if strings.TrimSpace(input.Email) != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	if strings.TrimSpace(input.CellPhone) != "" && !isValidPhoneNumber(input.CellPhone) {
		errors = append(errors, ValidationError{"cellPhone", "must be a valid phone number"})
	}

	if strings.TrimSpace(input.Product) == "" {
		errors = append(errors, ValidationError{"product", "is required"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	return len(cleaned) >= 10 && len(cleaned) <= 13
}
