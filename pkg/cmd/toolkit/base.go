package toolkit

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/jeremyhahn/go-password-toolkit/pkg/app"
	"github.com/jeremyhahn/go-password-toolkit/pkg/prompt"
	"github.com/jeremyhahn/go-password-toolkit/pkg/secret"
	"github.com/jeremyhahn/go-password-toolkit/pkg/serializer"
	"github.com/spf13/cobra"
)

const (
	FORMAT_TEXT = "text"
)

var (
	App        *app.App
	InitParams *app.AppInitParams
	Format     = FORMAT_TEXT

	ErrNotInitialized = errors.New("toolkit: app not initialized")
)

// Writes the entity using the configured format. The text format
// delegates to the provided printer.
func printOutput[E any](cmd *cobra.Command, entity E, text func()) error {
	if Format == "" || Format == FORMAT_TEXT {
		text()
		return nil
	}
	serializerType, err := serializer.ParseSerializer(Format)
	if err != nil {
		return err
	}
	s, err := serializer.NewSerializer[E](serializerType)
	if err != nil {
		return err
	}
	data, err := s.Serialize(entity)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// Returns the password passed on the command line, or prompts for
// one. When confirm is true, the prompt asks for the password twice.
func readPassword(password string, confirm bool) (secret.Password, error) {
	if password != "" {
		return secret.NewClearPasswordFromString(password), nil
	}
	var b []byte
	var err error
	if confirm {
		b, err = prompt.NewPassword()
	} else {
		b, err = prompt.Password()
	}
	if err != nil {
		return nil, err
	}
	return secret.NewClearPassword(b), nil
}

// Logs the error and prints it in red to the command's error stream
func printError(cmd *cobra.Command, err error) {
	if App != nil && App.Logger != nil {
		App.Logger.Error(err)
	}
	color.New(color.FgRed).Fprintln(cmd.ErrOrStderr(), err)
}

func requireApp() error {
	if App == nil || App.Config == nil {
		return ErrNotInitialized
	}
	return nil
}
