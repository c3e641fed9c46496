package dto

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by the request types.
// Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		if err = v.RegisterValidation("digits", validateDigits); err != nil {
			return
		}
		err = v.RegisterValidation("strongsecret", validateStrongSecret)
	})
	return err
}

// jsonFieldName reports fields by their JSON name in validation errors.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func validateDigits(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsStrongSecret requires more than 8 characters, an upper-case letter and a
// character that is neither a letter nor a digit.
func IsStrongSecret(s string) bool {
	if utf8.RuneCountInString(s) <= 8 {
		return false
	}

	var upper, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			special = true
		}
	}
	return upper && special
}

func validateStrongSecret(fl validator.FieldLevel) bool {
	return IsStrongSecret(fl.Field().String())
}
