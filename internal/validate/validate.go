package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

var (
	// Имя: с заглавной буквы, дальше только буквы и пробелы
	fullNameRe = regexp.MustCompile(`^[A-Z][a-zA-Z\s]+$`)
	// Email: классическая форма local@domain.tld, TLD минимум 2 буквы
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

var v = newValidator()

// newValidator регистрирует кастомные правила анкеты
func newValidator() *validator.Validate {
	vd := validator.New()

	mustRegister(vd, "full_name", func(fl validator.FieldLevel) bool {
		return fullNameRe.MatchString(fl.Field().String())
	})
	mustRegister(vd, "candidate_email", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})

	return vd
}

func mustRegister(vd *validator.Validate, tag string, fn validator.Func) {
	if err := vd.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// IsValidFullName проверяет форму полного имени кандидата
func IsValidFullName(fullName string) bool {
	return v.Var(fullName, "full_name") == nil
}

// IsValidEmail проверяет форму email адреса
func IsValidEmail(email string) bool {
	return v.Var(email, "candidate_email") == nil
}

// IsValidPhoneNumber проверяет номер телефона против нумерационного
// плана страны. Код страны и номер склеиваются в международный формат,
// любая ошибка парсинга означает невалидный номер.
func IsValidPhoneNumber(phoneNumber, countryCode string) bool {
	parsed, err := phonenumbers.Parse(countryCode+phoneNumber, "")
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(parsed)
}
