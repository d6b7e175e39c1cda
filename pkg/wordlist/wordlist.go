package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jeremyhahn/go-password-toolkit/pkg/logging"
	"github.com/jeremyhahn/go-password-toolkit/pkg/util"
	"github.com/spf13/afero"
)

type Backend string

func (b Backend) String() string {
	return string(b)
}

var (
	BackendAferoFS     Backend = "AFERO_FS"
	BackendAferoMemory Backend = "AFERO_MEMORY"

	ErrInvalidBackend = errors.New("wordlist: invalid backend")
	ErrEmptyPath      = errors.New("wordlist: empty path")
)

type Config struct {
	Backend   string `yaml:"backend" json:"backend" mapstructure:"backend"`
	Passwords string `yaml:"passwords" json:"passwords" mapstructure:"passwords"`
	Names     string `yaml:"names" json:"names" mapstructure:"names"`
}

// Returns the built-in word lists served from memory
func DefaultConfig() Config {
	return Config{
		Backend:   BackendAferoMemory.String(),
		Passwords: "resources/passwords.txt",
		Names:     "resources/names.txt",
	}
}

func (c Config) Validate() error {
	var errs []error
	if _, err := ParseAferoBackend(c.Backend); err != nil {
		errs = append(errs, fmt.Errorf("%w: %s", err, c.Backend))
	}
	if c.Passwords == "" {
		errs = append(errs, fmt.Errorf("%w: passwords", ErrEmptyPath))
	}
	if c.Names == "" {
		errs = append(errs, fmt.Errorf("%w: names", ErrEmptyPath))
	}
	return errors.Join(errs...)
}

func ParseAferoBackend(backend string) (afero.Fs, error) {
	switch backend {
	case BackendAferoFS.String():
		return afero.NewOsFs(), nil
	case BackendAferoMemory.String():
		return afero.NewMemMapFs(), nil
	default:
		return nil, ErrInvalidBackend
	}
}

// Immutable common password and name lists. Both lists are
// safe for concurrent reads.
type WordLists struct {
	passwords           map[string]struct{}
	names               map[string]struct{}
	passwordFingerprint string
	nameFingerprint     string
}

// Creates word lists from memory. Blank entries are skipped and
// names are stored lower-cased.
func NewWordLists(passwords, names []string) *WordLists {
	return &WordLists{
		passwords:           toSet(passwords, false),
		names:               toSet(names, true),
		passwordFingerprint: fingerprint(passwords),
		nameFingerprint:     fingerprint(names),
	}
}

// Returns true if the password exactly matches a common password
func (w *WordLists) IsCommonPassword(password string) bool {
	if w == nil {
		return false
	}
	_, ok := w.passwords[password]
	return ok
}

// Returns true if the name matches a common name, ignoring case
func (w *WordLists) IsName(name string) bool {
	if w == nil {
		return false
	}
	_, ok := w.names[strings.ToLower(name)]
	return ok
}

// Returns true once at least one list holds entries
func (w *WordLists) Loaded() bool {
	return w != nil && (len(w.passwords) > 0 || len(w.names) > 0)
}

// Returns the number of common passwords and names
func (w *WordLists) Len() (int, int) {
	if w == nil {
		return 0, 0
	}
	return len(w.passwords), len(w.names)
}

// Returns the xxhash fingerprints of the password and name lists
func (w *WordLists) Fingerprint() (string, string) {
	if w == nil {
		return "", ""
	}
	return w.passwordFingerprint, w.nameFingerprint
}

type Loader struct {
	fs     afero.Fs
	logger *logging.Logger
}

func NewLoader(logger *logging.Logger, fs afero.Fs) *Loader {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	return &Loader{
		fs:     fs,
		logger: logger,
	}
}

// Creates a loader using the file system selected by the
// configured backend. The memory backend is seeded with the
// built-in word lists.
func NewLoaderFromConfig(logger *logging.Logger, config Config) (*Loader, error) {
	fs, err := ParseAferoBackend(config.Backend)
	if err != nil {
		return nil, err
	}
	if config.Backend == BackendAferoMemory.String() {
		if err := Seed(fs, config); err != nil {
			return nil, err
		}
	}
	return NewLoader(logger, fs), nil
}

// Reads the common password and name lists, one entry per line
func (l *Loader) Load(passwordsPath, namesPath string) (*WordLists, error) {

	passwords, err := l.readLines(passwordsPath)
	if err != nil {
		return nil, err
	}
	names, err := l.readLines(namesPath)
	if err != nil {
		return nil, err
	}

	lists := NewWordLists(passwords, names)
	numPasswords, numNames := lists.Len()
	passwordID, nameID := lists.Fingerprint()
	l.logger.Debug("wordlist: loaded word lists",
		"passwords", passwordsPath,
		"passwords-count", numPasswords,
		"passwords-fingerprint", passwordID,
		"names", namesPath,
		"names-count", numNames,
		"names-fingerprint", nameID)

	return lists, nil
}

func (l *Loader) LoadConfig(config Config) (*WordLists, error) {
	return l.Load(config.Passwords, config.Names)
}

func (l *Loader) readLines(path string) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	file, err := l.fs.Open(path)
	if err != nil {
		l.logger.Error(err)
		return nil, err
	}
	defer file.Close()
	return ReadLines(file)
}

// Reads non-blank lines with trailing carriage returns removed
func ReadLines(reader io.Reader) ([]string, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func toSet(entries []string, lower bool) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		if lower {
			entry = strings.ToLower(entry)
		}
		set[entry] = struct{}{}
	}
	return set
}

// Order independent fingerprint of the list entries
func fingerprint(entries []string) string {
	sorted := make([]string, len(entries))
	copy(sorted, entries)
	sort.Strings(sorted)
	return util.Fingerprint([]byte(strings.Join(sorted, "\n")))
}
