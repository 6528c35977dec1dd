package service

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

var (
	// qqPattern matches QQ numbers: 5-11 digits without a leading zero.
	qqPattern = regexp.MustCompile(`^[1-9][0-9]{4,10}$`)
	// mailboxPattern matches a single-@ address with a dotted domain.
	mailboxPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// validate is built at package init so a bad rule fails at startup.
var validate = newStructValidator()

// fieldMessages maps "<field>.<tag>" to client-facing messages.
var fieldMessages = map[string]string{
	"email.mailbox": "invalid email format",
	"qq.qq":         "invalid QQ number",
}

// newStructValidator returns a validator with custom rules registered.
func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register validation tag %q: %v", tag, err)
		}
	}
	mustRegister("qq", matchPattern(qqPattern))
	mustRegister("mailbox", matchPattern(mailboxPattern))
	return v
}

func matchPattern(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return re.MatchString(value)
	}
}

// validateStruct runs tag validation and converts the first failure into a
// validation error. Missing required fields are reported before format errors.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return NewError(CodeValidation, "invalid input", err)
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return NewError(CodeValidation, "please fill in all required fields", nil)
		}
	}
	fe := fieldErrs[0]
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return NewError(CodeValidation, msg, nil)
	}
	return NewError(CodeValidation, "invalid "+fe.Field(), nil)
}
