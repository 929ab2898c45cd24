package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	minEmailLength    = 6
	maxEmailLength    = 320
	minPasswordLength = 8
	forbiddenInLocal  = "()<>[]:;,\\\""
)

var emailValidator = validator.New()

// CheckEmail reports whether value is an acceptable account email. It never panics.
func CheckEmail(value string) bool {
	if n := utf8.RuneCountInString(value); n < minEmailLength || n > maxEmailLength {
		return false
	}
	if strings.Count(value, "@") != 1 || strings.ContainsAny(value, forbiddenInLocal) {
		return false
	}
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 || strings.Contains(value, "..") {
		return false
	}

	local, host, _ := strings.Cut(value, "@")
	if local == "" || strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	if !validHost(host) {
		return false
	}

	return emailValidator.Var(value, "required,email") == nil
}

func validHost(host string) bool {
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" || strings.HasPrefix(l, "-") || strings.HasSuffix(l, "-") {
			return false
		}
		for _, r := range l {
			if r != '-' && !(r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))) {
				return false
			}
		}
	}
	return true
}

// CheckPassword requires at least eight characters including an uppercase
// letter, a digit and a special character.
func CheckPassword(value string) bool {
	if utf8.RuneCountInString(value) < minPasswordLength {
		return false
	}

	var upper, digit, special bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return upper && digit && special
}
