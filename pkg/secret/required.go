package secret

type RequiredPassword struct{}

// Creates a secret that always returns ErrPasswordRequired
func NewRequiredPassword() Password {
	return RequiredPassword{}
}

// Returns ErrPasswordRequired
func (p RequiredPassword) String() (string, error) {
	return "", ErrPasswordRequired
}

// Returns ErrPasswordRequired
func (p RequiredPassword) Bytes() ([]byte, error) {
	return nil, ErrPasswordRequired
}
