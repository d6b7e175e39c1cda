package secret

type ClearPassword struct {
	password []byte
}

// Stores a clear text password
func NewClearPassword(password []byte) Password {
	return ClearPassword{password: password}
}

func NewClearPasswordFromString(password string) Password {
	return ClearPassword{password: []byte(password)}
}

// Returns the password as a string
func (p ClearPassword) String() (string, error) {
	return string(p.password), nil
}

// Returns the password as bytes
func (p ClearPassword) Bytes() ([]byte, error) {
	return p.password, nil
}
