package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {

	logger := NewLogger(slog.LevelDebug, nil)

	logger.Info("info test")
	logger.Warn("warn test")
	logger.Debug("debug test")
}

func TestError(t *testing.T) {

	var logfile, stdout bytes.Buffer
	logger := newLogger(slog.LevelInfo, &logfile, &stdout)

	err := errors.New("an error occurred")
	logger.Error(err, "component", "hasher")

	var record map[string]any
	assert.Nil(t, json.Unmarshal(logfile.Bytes(), &record))
	assert.Equal(t, "an error occurred", record["msg"])
	assert.Equal(t, "hasher", record["component"])

	group, ok := record["error"].(map[string]any)
	assert.True(t, ok)
	assert.True(t, strings.Contains(group["msg"].(string), "an error occurred"))
	assert.NotNil(t, group["trace"])

	// stdout only receives records at debug level
	assert.Equal(t, 0, stdout.Len())
}

func TestDebugFanout(t *testing.T) {

	var logfile, stdout bytes.Buffer
	logger := newLogger(slog.LevelDebug, &logfile, &stdout)

	logger.Debugf("generated %d passwords", 3)

	assert.True(t, strings.Contains(logfile.String(), "generated 3 passwords"))
	assert.True(t, strings.Contains(stdout.String(), "generated 3 passwords"))
}

func TestSecurity(t *testing.T) {

	var logfile, stdout bytes.Buffer
	logger := newLogger(slog.LevelInfo, &logfile, &stdout)

	logger.Security(SecurityLogEntry{
		Severity:    SeverityMedium,
		Category:    CategoryAuthentication,
		Description: "password verification failed",
		Source:      SourceAuthentication,
	})

	var record map[string]any
	assert.Nil(t, json.Unmarshal(logfile.Bytes(), &record))
	assert.Equal(t, "SECURITY", record["level"])
	assert.Equal(t, "security_log", record["msg"])
	assert.Equal(t, CategoryAuthentication, record["category"])
	assert.NotEmpty(t, record["timestamp"])
}

func TestLogFile(t *testing.T) {

	fs := afero.NewMemMapFs()
	file, err := fs.Create("/log/password-toolkit.log")
	assert.Nil(t, err)

	logger := NewLogger(slog.LevelWarn, file)
	logger.Info("filtered")
	logger.Warnf("rehash needed for %s", "user")
	assert.Nil(t, file.Close())

	data, err := afero.ReadFile(fs, "/log/password-toolkit.log")
	assert.Nil(t, err)
	assert.False(t, strings.Contains(string(data), "filtered"))
	assert.True(t, strings.Contains(string(data), "rehash needed for user"))
}
