package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

const (
	NicknameMinLen = 2
	NicknameMaxLen = 30
	PasswordMinLen = 8

	nicknamePunct = "_-."
	symbols       = "!@#$%^&*()_+-=[]{};:'\\|,.<>/?"
)

var errNicknameCharset = errors.New("nickname may only contain letters, digits, '_', '-' and '.'")

// runeRule is a character class a password must include, exposed as a binding tag.
type runeRule struct {
	tag  string
	what string
	in   func(rune) bool
}

var passwordRules = []runeRule{
	{tag: "containsuppercase", what: "one uppercase letter", in: unicode.IsUpper},
	{tag: "containslowercase", what: "one lowercase letter", in: unicode.IsLower},
	{tag: "containsdigit", what: "one number", in: unicode.IsNumber},
	{tag: "containssymbol", what: "one special character", in: isSymbol},
}

func isSymbol(r rune) bool { return strings.ContainsRune(symbols, r) }

func isNicknameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(nicknamePunct, r)
}

// AppValidator implements the usecasecontract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates the use-case level validator.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	register(v)
	return &AppValidator{validate: v}
}

func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidateNickname counts characters, not bytes, so Hangul and accented
// nicknames get the same 2 to 30 limit as ASCII ones.
func (av *AppValidator) ValidateNickname(nickname string) error {
	return checkNickname(nickname)
}

func (av *AppValidator) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < PasswordMinLen {
		return fmt.Errorf("password must be at least %d characters long", PasswordMinLen)
	}
	for _, rule := range passwordRules {
		if strings.IndexFunc(password, rule.in) < 0 {
			return fmt.Errorf("password must contain at least %s", rule.what)
		}
	}
	return nil
}

func checkNickname(nickname string) error {
	if n := utf8.RuneCountInString(nickname); n < NicknameMinLen || n > NicknameMaxLen {
		return fmt.Errorf("nickname must be %d to %d characters long", NicknameMinLen, NicknameMaxLen)
	}
	if strings.IndexFunc(nickname, func(r rune) bool { return !isNicknameRune(r) }) >= 0 {
		return errNicknameCharset
	}
	return nil
}

// RegisterCustomValidators adds the password and nickname tags to gin's binding engine.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		register(v)
	}
}

func register(v *validator.Validate) {
	for _, rule := range passwordRules {
		in := rule.in
		_ = v.RegisterValidation(rule.tag, func(fl validator.FieldLevel) bool {
			return strings.IndexFunc(fl.Field().String(), in) >= 0
		})
	}
	_ = v.RegisterValidation("nickname", func(fl validator.FieldLevel) bool {
		return checkNickname(fl.Field().String()) == nil
	})
}
