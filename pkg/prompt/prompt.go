package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const (
	userPrompt = "password-toolkit> $ "
)

var (
	ErrPasswordMismatch = errors.New("prompt: passwords do not match")
)

func PrintBanner(version string) {
	color.New(color.FgGreen).Printf("Password Toolkit v%s\n\n", version)
}

// Prompts for a password without echoing it to the terminal. When
// stdin is not a terminal, a single line is read instead.
func PasswordPrompt(message string) ([]byte, error) {
	fmt.Printf("%s: \n", message)
	fmt.Print(userPrompt)
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return ReadLine(os.Stdin)
	}
	password, err := term.ReadPassword(fd)
	if err != nil {
		return nil, err
	}
	fmt.Println()
	return password, nil
}

// Prompts for a new password twice and returns it if both
// entries match
func NewPassword() ([]byte, error) {
	password, err := PasswordPrompt("Password")
	if err != nil {
		return nil, err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return password, nil
	}
	confirm, err := PasswordPrompt("Confirm Password")
	if err != nil {
		return nil, err
	}
	if string(password) != string(confirm) {
		return nil, ErrPasswordMismatch
	}
	return password, nil
}

func Password() ([]byte, error) {
	return PasswordPrompt("Password")
}

// Reads a single line, without the trailing newline
func ReadLine(reader io.Reader) ([]byte, error) {
	response, err := bufio.NewReader(reader).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && response != "") {
		return nil, err
	}
	return []byte(strings.TrimRight(response, "\r\n")), nil
}
