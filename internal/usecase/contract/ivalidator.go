package usecasecontract

type IValidator interface {
	ValidateEmail(email string) error
	ValidateNickname(nickname string) error
	ValidatePasswordStrength(password string) error
}
