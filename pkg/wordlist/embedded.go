package wordlist

import (
	"embed"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	EMBEDDED_PASSWORDS = "resources/passwords.txt"
	EMBEDDED_NAMES     = "resources/names.txt"
)

//go:embed resources/passwords.txt resources/names.txt
var resources embed.FS

// Copies the built-in word lists into the file system at the
// configured paths. Used to populate the AFERO_MEMORY backend.
func Seed(fs afero.Fs, config Config) error {
	for src, dst := range map[string]string{
		EMBEDDED_PASSWORDS: config.Passwords,
		EMBEDDED_NAMES:     config.Names,
	} {
		if dst == "" {
			return ErrEmptyPath
		}
		data, err := resources.ReadFile(src)
		if err != nil {
			return err
		}
		if dir := filepath.Dir(dst); dir != "." {
			if err := fs.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
		if err := afero.WriteFile(fs, dst, data, 0644); err != nil {
			return err
		}
	}
	return nil
}
