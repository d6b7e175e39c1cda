package toolkit

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jeremyhahn/go-password-toolkit/pkg/strength"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func Test_Generate(t *testing.T) {

	initTestApp(t)
	defer App.Close()

	response := executeCommand(GenerateCmd, []string{"--length", "24", "--count", "3"})
	lines := strings.Split(strings.TrimSpace(response), "\n")
	assert.Equal(t, 3, len(lines))
	for _, line := range lines {
		assert.Equal(t, 24, len(line))
	}
}

func Test_GenerateJSON(t *testing.T) {

	initTestApp(t)
	defer App.Close()
	Format = "json"

	response := executeCommand(GenerateCmd, []string{"--classes", "lower,digits", "--exclude", "0123456789abcdefghijklm"})

	// every digit is excluded
	assert.True(t, strings.Contains(response, "generator: "), response)

	resetFlags()
	response = executeCommand(GenerateCmd, []string{"--classes", "digits", "--count", "2"})
	var generated GenerateResponse
	assert.Nil(t, json.Unmarshal([]byte(response), &generated))
	assert.Equal(t, "0123456789", generated.Charset)
	assert.Equal(t, 2, len(generated.Passwords))
}

func Test_GenerateInvalidLength(t *testing.T) {

	initTestApp(t)
	defer App.Close()

	response := executeCommand(GenerateCmd, []string{"--length", "8"})
	assert.True(t, strings.Contains(response, "generator: length must be between 16 and 4096"), response)
}

func Test_HashAndVerify(t *testing.T) {

	initTestApp(t)
	defer App.Close()

	response := executeCommand(HashCmd, []string{"--password", "correct horse battery staple"})
	encoded := strings.TrimSpace(response)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=8192,t=1,p=1$"), encoded)

	response = executeCommand(VerifyCmd, []string{"--hash", encoded, "--password", "correct horse battery staple"})
	assert.Equal(t, "valid", strings.TrimSpace(response))

	response = executeCommand(VerifyCmd, []string{"--hash", encoded, "--password", "wrong"})
	assert.Equal(t, ErrVerificationFailed.Error(), response)
}

func Test_VerifyNeedsRehash(t *testing.T) {

	initTestApp(t)
	defer App.Close()
	Format = "yaml"

	// hashed with more iterations than configured
	encoded := "$argon2id$v=19$m=8192,t=2,p=1$c2FsdHNhbHRzYWx0c2FsdA==$ZGlnZXN0ZGlnZXN0ZGlnZQ=="
	response := executeCommand(VerifyCmd, []string{"--hash", encoded, "--password", "secret"})
	assert.Equal(t, ErrVerificationFailed.Error(), response)

	resetFlags()
	hash := strings.TrimSpace(executeCommand(HashCmd, []string{"--password", "secret"}))
	var hashed HashResponse
	assert.Nil(t, yaml.Unmarshal([]byte(hash), &hashed))

	resetFlags()
	response = executeCommand(VerifyCmd, []string{"--hash", hashed.Hash, "--password", "secret"})
	var verified VerifyResponse
	assert.Nil(t, yaml.Unmarshal([]byte(response), &verified))
	assert.True(t, verified.Valid)
	assert.False(t, verified.NeedsRehash)

	// raising the configured cost flags existing hashes
	App.Config.Argon2.Iterations = 2
	resetFlags()
	response = executeCommand(VerifyCmd, []string{"--hash", hashed.Hash, "--password", "secret"})
	verified = VerifyResponse{}
	assert.Nil(t, yaml.Unmarshal([]byte(response), &verified))
	assert.True(t, verified.Valid)
	assert.True(t, verified.NeedsRehash)
}

func Test_Strength(t *testing.T) {

	initTestApp(t)
	defer App.Close()
	Format = "json"

	response := executeCommand(StrengthCmd, []string{"--password", "letmein"})
	var report strength.Report
	assert.Nil(t, json.Unmarshal([]byte(response), &report))
	assert.Equal(t, strength.MSG_COMMON_PASSWORD, report.Classification)
	assert.Equal(t, 26, report.CharsetSize)
	assert.Equal(t, "medium", report.CrackSpeed)

	resetFlags()
	response = executeCommand(StrengthCmd, []string{
		"--password", "Tr0ub4dor&3xyz!Q", "--speed", "insane", "--algorithm", "argon2id-512mb-t4"})
	report = strength.Report{}
	assert.Nil(t, json.Unmarshal([]byte(response), &report))
	assert.Equal(t, 94, report.CharsetSize)
	assert.Equal(t, "insane", report.CrackSpeed)
	assert.Equal(t, "argon2id-512mb-t4", report.HashAlgorithm)
	assert.NotEmpty(t, report.Classification)

	resetFlags()
	response = executeCommand(StrengthCmd, []string{"--password", "abc", "--speed", "warp"})
	assert.True(t, strings.Contains(response, "unknown crack speed"), response)
}

func Test_StrengthTargetBits(t *testing.T) {

	initTestApp(t)
	defer App.Close()
	Format = "json"

	// 26^8 is about 37.6 bits
	response := executeCommand(StrengthCmd, []string{"--password", "zqxjvkwp"})
	var report strength.Report
	assert.Nil(t, json.Unmarshal([]byte(response), &report))
	assert.Equal(t, "Bad", report.Classification)
	assert.Equal(t, "Bad", strength.ClassifyStrength(report.Strength))

	resetFlags()
	response = executeCommand(StrengthCmd, []string{"--password", "zqxjvkwp", "--target-bits", "40"})
	report = strength.Report{}
	assert.Nil(t, json.Unmarshal([]byte(response), &report))
	assert.Equal(t, "Ultra Safe", report.Classification)
	assert.Equal(t, "Ultra Safe", strength.ClassifyStrength(report.Strength))
}

func Test_StrengthText(t *testing.T) {

	initTestApp(t)
	defer App.Close()

	response := executeCommand(StrengthCmd, []string{"--password", "abc", "--no-classify"})
	assert.True(t, strings.Contains(response, "Charset Size:    26"), response)
	assert.True(t, strings.Contains(response, "Time To Crack:   0.878 seconds"), response)
	assert.False(t, strings.Contains(response, "Classification"), response)
}

func Test_CrackTime(t *testing.T) {

	initTestApp(t)
	defer App.Close()
	Format = "json"

	response := executeCommand(CrackTimeCmd, []string{
		"--length", "1", "--charset-size", "2", "--speed", "very-slow"})
	var crackTime CrackTimeResponse
	assert.Nil(t, json.Unmarshal([]byte(response), &crackTime))
	assert.Equal(t, "2", crackTime.Combinations)
	assert.Equal(t, "1 second", crackTime.TimeToCrack)

	resetFlags()
	response = executeCommand(CrackTimeCmd, []string{"--length", "0", "--charset-size", "2"})
	assert.Equal(t, ErrInvalidKeyspace.Error(), response)
}

func Test_Speeds(t *testing.T) {

	initTestApp(t)
	defer App.Close()
	Format = "json"

	response := executeCommand(SpeedsCmd, []string{"--password", "abc"})
	var times []strength.CrackTime
	assert.Nil(t, json.Unmarshal([]byte(response), &times))
	assert.Equal(t, len(strength.CrackSpeeds())*len(strength.HashAlgorithms()), len(times))

	resetFlags()
	Format = "text"
	response = executeCommand(SpeedsCmd, []string{"--password", "abc"})
	assert.True(t, strings.Contains(response, "TIME TO CRACK"), response)
	assert.True(t, strings.Contains(response, "argon2id-512mb-t4"), response)
}

func Test_Version(t *testing.T) {

	initTestApp(t)
	defer App.Close()

	response := executeCommand(VersionCmd, []string{})
	assert.True(t, strings.Contains(response, "password-toolkit"), response)
}

func Test_InvalidFormat(t *testing.T) {

	initTestApp(t)
	defer App.Close()
	Format = "xml"

	response := executeCommand(VersionCmd, []string{})
	assert.Equal(t, "serializer: invalid serializer type", response)
}
