package repository

type CreateUserOptions struct {
	Email              string
	PasswordHash       string
	LanguagePreference string
	UserType           string
}
