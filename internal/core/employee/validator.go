package employee

import (
	"fmt"
	"regexp"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9 ()\-]{7,15}$`)
	agePattern   = regexp.MustCompile(`^[0-9]+$`)
)

const (
	msgInvalidEmail = "Invalid email format"
	msgInvalidPhone = "Invalid phone number format"
	msgInvalidAge   = "Age must be a number"
)

// ValidationError は入力値の検証エラーです。Error() は利用者にそのまま表示されます。
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidEmail はメールアドレスの書式を検証します。
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPhone は電話番号の書式を検証します。
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// ValidateRecord は必須項目と書式を決められた順序で検証します。
func ValidateRecord(fields Fields) error {
	for _, name := range RequiredFields {
		if fields[name] == "" {
			return &ValidationError{Field: name, Message: fmt.Sprintf("Field '%s' is required", name)}
		}
	}

	if !IsValidEmail(fields[FieldEmail]) {
		return &ValidationError{Field: FieldEmail, Message: msgInvalidEmail}
	}
	if !IsValidPhone(fields[FieldPhone]) {
		return &ValidationError{Field: FieldPhone, Message: msgInvalidPhone}
	}
	if !agePattern.MatchString(fields[FieldAge]) {
		return &ValidationError{Field: FieldAge, Message: msgInvalidAge}
	}

	return nil
}
