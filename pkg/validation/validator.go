package validation

import (
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	UsernameMin = 3
	UsernameMax = 30
	PasswordMin = 8
	LinkNameMax = 100
	LinkURLMax  = 2000
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return Username(fl.Field().String())
	})
	// Registered as a func, not a tag alias: the special-character class
	// includes validator tag metacharacters (comma, pipe) that an alias
	// cannot express.
	_ = v.RegisterValidation("strongpwd", func(fl validator.FieldLevel) bool {
		return strongPassword(fl.Field().String())
	})
	return v
}

// Init configures the global validator used by Gin's binding to report field
// names from their json tags. Request structs only rely on the built-in
// "required" rule; the richer username/strongpwd checks run in the services.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// Username reports whether s is 3-30 chars of letters, digits, or underscore.
func Username(s string) bool {
	if len(s) < UsernameMin || len(s) > UsernameMax {
		return false
	}
	return usernameRe.MatchString(s)
}

// StrongPassword reports whether s is at least 8 chars and mixes upper, lower,
// digit, and special characters.
func StrongPassword(s string) bool {
	return validate.Var(s, "strongpwd") == nil
}

func strongPassword(s string) bool {
	if utf8.RuneCountInString(s) < PasswordMin {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}

// LinkName reports whether s is a valid bookmark name after trimming. Bounds
// count characters, not bytes, so multibyte names get the full budget.
func LinkName(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 1 && n <= LinkNameMax
}

// LinkURL reports whether s is an absolute http or https URL within bounds.
func LinkURL(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < 1 || n > LinkURLMax {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
