package secret

import "errors"

var (
	ErrPasswordRequired = errors.New("secret: password required")
)

// Password is a secret that may be backed by memory, a prompt, or
// a placeholder that refuses to reveal anything. A nil Password is
// an absent argument.
type Password interface {
	String() (string, error)
	Bytes() ([]byte, error)
}
