package report

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

const (
	MinNameLen        = 3
	MinAddressLen     = 5
	MinDescriptionLen = 10
	cpfDigits         = 11
	cepDigits         = 8
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps form field names to their first validation message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}

// Submission is the full complaint form as entered, masks included.
type Submission struct {
	Name        string
	CPF         string
	BirthDate   string
	Phone       string
	Email       string
	Category    string
	CEP         string
	Address     string
	Description string
}

// Validator checks a submission the way the complaint form does: every
// field is checked and all failures are reported at once.
type Validator interface {
	ValidateSubmission(s Submission) error
}

type FormValidator struct{}

func NewFormValidator() *FormValidator {
	return &FormValidator{}
}

func (v *FormValidator) ValidateSubmission(s Submission) error {
	errs := FieldErrors{}

	if err := v.validateName(s.Name); err != nil {
		errs["name"] = err.Error()
	}
	if err := v.validateCPF(s.CPF); err != nil {
		errs["cpf"] = err.Error()
	}
	if strings.TrimSpace(s.BirthDate) == "" {
		errs["birthDate"] = "birth date is required"
	}
	if err := v.validatePhone(s.Phone); err != nil {
		errs["phone"] = err.Error()
	}
	if !emailRe.MatchString(strings.TrimSpace(s.Email)) {
		errs["email"] = "invalid email address"
	}
	if err := v.validateCategory(s.Category); err != nil {
		errs["category"] = err.Error()
	}
	if err := v.validateCEP(s.CEP); err != nil {
		errs["cep"] = err.Error()
	}
	if len(strings.TrimSpace(s.Address)) < MinAddressLen {
		errs["address"] = fmt.Sprintf("address must be at least %d characters", MinAddressLen)
	}
	if len(strings.TrimSpace(s.Description)) < MinDescriptionLen {
		errs["description"] = fmt.Sprintf("description must be at least %d characters", MinDescriptionLen)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *FormValidator) validateName(name string) error {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < MinNameLen {
		return fmt.Errorf("name must be at least %d characters", MinNameLen)
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return fmt.Errorf("name can only contain letters and spaces")
		}
	}
	return nil
}

func (v *FormValidator) validateCPF(cpf string) error {
	if len(onlyDigits(cpf)) != cpfDigits {
		return fmt.Errorf("cpf must have %d digits", cpfDigits)
	}
	return nil
}

func (v *FormValidator) validatePhone(phone string) error {
	n := len(onlyDigits(phone))
	if n != 10 && n != 11 {
		return fmt.Errorf("phone must have 10 or 11 digits")
	}
	return nil
}

func (v *FormValidator) validateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("select a category")
	}
	if !KnownCategory(category) {
		return fmt.Errorf("unknown category")
	}
	return nil
}

// validateCEP accepts an empty CEP: the form treats it as optional and
// only checks the length once something is typed.
func (v *FormValidator) validateCEP(cep string) error {
	if strings.TrimSpace(cep) == "" {
		return nil
	}
	if len(onlyDigits(cep)) != cepDigits {
		return fmt.Errorf("cep must have %d digits", cepDigits)
	}
	return nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
