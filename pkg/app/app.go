package app

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jeremyhahn/go-password-toolkit/pkg/config"
	"github.com/jeremyhahn/go-password-toolkit/pkg/crypto/argon2"
	"github.com/jeremyhahn/go-password-toolkit/pkg/generator"
	"github.com/jeremyhahn/go-password-toolkit/pkg/logging"
	"github.com/jeremyhahn/go-password-toolkit/pkg/strength"
	"github.com/jeremyhahn/go-password-toolkit/pkg/wordlist"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	Name = config.Name
)

var (
	ErrNotInitialized = errors.New("password-toolkit: app not initialized")

	ENV_DEV     Environment = "dev"
	ENV_PREPROD Environment = "preprod"
	ENV_PROD    Environment = "prod"
)

type Environment string

func ParseEnvironment(env string) Environment {
	switch env {
	case string(ENV_DEV):
		return ENV_DEV
	case string(ENV_PREPROD):
		return ENV_PREPROD
	case string(ENV_PROD):
		return ENV_PROD
	default:
		return Environment(env)
	}
}

type App struct {
	Config      *config.Config
	ConfigDir   string
	Environment Environment
	Fs          afero.Fs
	Logger      *logging.Logger
	Random      io.Reader
	WordLists   *wordlist.WordLists
	logFile     afero.File
}

func NewApp() *App {
	return new(App)
}

type AppInitParams struct {
	ConfigDir    string
	Debug        bool
	DebugSecrets bool
	Env          string
	LogDir       string
	Fs           afero.Fs
	Random       io.Reader
	Viper        *viper.Viper
}

// Initialize the toolkit by loading the configuration file and
// initializing the logger. Word lists are loaded on demand by
// LoadWordLists.
func (app *App) Init(initParams *AppInitParams) (*App, error) {

	if initParams == nil {
		initParams = &AppInitParams{}
	}

	app.ConfigDir = initParams.ConfigDir
	app.Environment = ParseEnvironment(initParams.Env)

	app.Fs = initParams.Fs
	if app.Fs == nil {
		app.Fs = afero.NewOsFs()
	}
	app.Random = initParams.Random
	if app.Random == nil {
		app.Random = rand.Reader
	}

	if err := app.initConfig(initParams); err != nil {
		return nil, err
	}
	if err := app.initLogger(); err != nil {
		return nil, err
	}

	app.Logger.Debug("app: initialized",
		"config-dir", app.ConfigDir,
		"env", app.Environment,
		"log-dir", app.Config.LogDir)

	return app, nil
}

// Read and parse the configuration file, then override it with
// CLI options
func (app *App) initConfig(initParams *AppInitParams) error {

	cfg, err := config.Load(
		initParams.Viper,
		app.Fs,
		app.ConfigDir,
		string(app.Environment))
	if err != nil {
		return err
	}

	if initParams.Debug {
		cfg.Debug = true
	}
	if initParams.DebugSecrets {
		cfg.DebugSecrets = true
	}
	if initParams.LogDir != "" {
		cfg.LogDir = initParams.LogDir
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	app.Config = cfg
	return nil
}

// Creates a new file and STDOUT logger. If the debug flag is set,
// the logger is initialized in debug mode, executing all Debug
// statements.
func (app *App) initLogger() error {
	level := slog.LevelInfo
	if app.Config.Debug {
		level = slog.LevelDebug
	}
	f, err := app.InitLogFile()
	if err != nil {
		return err
	}
	app.logFile = f
	app.Logger = logging.NewLogger(level, f)
	return nil
}

// Opens the log file in append mode, creating the log directory
// if it doesn't exist.
func (app *App) InitLogFile() (afero.File, error) {
	if err := app.Fs.MkdirAll(app.Config.LogDir, 0755); err != nil {
		return nil, err
	}
	logFile := fmt.Sprintf("%s/%s.log", app.Config.LogDir, Name)
	mode := os.FileMode(0644)
	if app.Config.Debug {
		mode = 0666
	}
	return app.Fs.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, mode)
}

// Closes the log file
func (app *App) Close() error {
	if app.logFile == nil {
		return nil
	}
	err := app.logFile.Close()
	app.logFile = nil
	return err
}

// Loads the configured word lists once. Subsequent calls return
// the same immutable lists.
func (app *App) LoadWordLists() (*wordlist.WordLists, error) {

	if app.Config == nil {
		return nil, ErrNotInitialized
	}
	if app.WordLists != nil {
		return app.WordLists, nil
	}

	var loader *wordlist.Loader
	if app.Config.WordList.Backend == wordlist.BackendAferoFS.String() {
		loader = wordlist.NewLoader(app.Logger, app.Fs)
	} else {
		l, err := wordlist.NewLoaderFromConfig(app.Logger, app.Config.WordList)
		if err != nil {
			app.Logger.Error(err)
			return nil, err
		}
		loader = l
	}

	lists, err := loader.LoadConfig(app.Config.WordList)
	if err != nil {
		return nil, err
	}
	app.WordLists = lists
	return lists, nil
}

// Returns a password generator using the configured parameters
func (app *App) Generator() (*generator.Generator, error) {
	if app.Config == nil {
		return nil, ErrNotInitialized
	}
	params, err := app.Config.Generator.Params()
	if err != nil {
		return nil, err
	}
	return generator.CreateGenerator(app.Random, params)
}

// Returns an Argon2id hasher using the configured parameters
func (app *App) Hasher() (argon2.Argon2, error) {
	if app.Config == nil {
		return nil, ErrNotInitialized
	}
	return argon2.CreateArgon2(app.Random, app.Config.Argon2)
}

// Returns a classifier backed by the configured word lists
func (app *App) Classifier() (*strength.Classifier, error) {
	lists, err := app.LoadWordLists()
	if err != nil {
		return nil, err
	}
	return strength.CreateClassifier(lists, app.Config.Strength.TargetBits)
}

// Returns a strength estimator using the configured attacker model.
// When classify is true, reports include the word list
// classification.
func (app *App) Estimator(classify bool) (*strength.Estimator, error) {
	if app.Config == nil {
		return nil, ErrNotInitialized
	}
	var classifier *strength.Classifier
	if classify {
		c, err := app.Classifier()
		if err != nil {
			return nil, err
		}
		classifier = c
	}
	return strength.CreateEstimator(app.Config.Strength, classifier)
}

// Logs a failed password verification as a security event
func (app *App) LogVerificationFailure(encodedHash string) {
	entry := logging.SecurityLogEntry{
		Severity:    logging.SeverityMedium,
		Category:    logging.CategoryAuthentication,
		Description: "password verification failed",
		Source:      logging.SourceAuthentication,
	}
	if app.Config != nil && app.Config.DebugSecrets {
		entry.Details = encodedHash
	}
	app.Logger.Security(entry)
}
