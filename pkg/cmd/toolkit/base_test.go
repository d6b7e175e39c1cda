package toolkit

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/jeremyhahn/go-password-toolkit/pkg/app"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// Fast hashing parameters so tests don't spend time in the KDF
const testConfig = `
argon2:
  memory: 8192
  iterations: 1
  parallelism: 1
  saltLen: 16
  keyLen: 16
`

func executeCommand(cmd *cobra.Command, args []string) string {

	b := new(bytes.Buffer)

	cmd.SetOut(b)
	cmd.SetErr(b)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		slog.Error(err.Error())
		return err.Error()
	}

	response := string(b.Bytes())
	fmt.Println(response)

	return response
}

func initTestApp(t *testing.T) {

	fs := afero.NewMemMapFs()
	assert.Nil(t, afero.WriteFile(fs, "/etc/password-toolkit/config.yaml", []byte(testConfig), 0644))

	InitParams = &app.AppInitParams{
		ConfigDir: "/etc/password-toolkit",
		LogDir:    "/var/log/password-toolkit",
		Fs:        fs,
		Viper:     viper.New(),
	}
	a, err := app.NewApp().Init(InitParams)
	assert.Nil(t, err)
	App = a
	Format = FORMAT_TEXT
	color.NoColor = true

	resetFlags()
}

// Flag variables outlive a single execution
func resetFlags() {
	genLength, genClasses, genInclude, genExclude, genCount = 0, nil, "", "", 1
	hashPassword = ""
	verifyHash, verifyPassword = "", ""
	strengthPassword, strengthSpeed, strengthAlgorithm = "", "", ""
	strengthTargetBits, strengthNoClassify = 0, false
	crackLength, crackCharsetSize, crackSpeed, crackAlgorithm = 0, 0, "", ""
	speedsPassword = ""
}
