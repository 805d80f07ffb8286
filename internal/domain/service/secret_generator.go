package service

// SecretGenerator invents new superuser passwords.
type SecretGenerator interface {
	Generate() (string, error)
}
