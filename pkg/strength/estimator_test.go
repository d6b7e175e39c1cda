package strength

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimatorDefaults(t *testing.T) {

	estimator := NewEstimator()
	assert.Equal(t, Medium, estimator.CrackSpeed())
	assert.Equal(t, RawHash, estimator.HashAlgorithm())
	assert.Equal(t, DefaultTargetBits, estimator.TargetBits())

	report, err := estimator.Report("abc")
	assert.Nil(t, err)
	assert.Equal(t, 3, report.Length)
	assert.Equal(t, 26, report.CharsetSize)
	assert.Equal(t, 3, report.DistinctChars)
	assert.Equal(t, "17.58 Thousand", report.Combinations)
	assert.Equal(t, "medium", report.CrackSpeed)
	assert.Equal(t, "raw", report.HashAlgorithm)
	assert.Equal(t, "0.878 seconds", report.TimeToCrack)
	assert.Empty(t, report.Classification)
}

func TestCreateEstimator(t *testing.T) {

	classifier, err := NewClassifier(newTestWordLists())
	assert.Nil(t, err)

	estimator, err := CreateEstimator(Config{
		TargetBits:    64,
		CrackSpeed:    "very-slow",
		HashAlgorithm: "bcrypt-12",
	}, classifier)
	assert.Nil(t, err)
	assert.Equal(t, VerySlow, estimator.CrackSpeed())
	assert.Equal(t, Bcrypt12, estimator.HashAlgorithm())

	report, err := estimator.Report("password")
	assert.Nil(t, err)
	assert.Equal(t, MSG_COMMON_PASSWORD, report.Classification)
	assert.Equal(t, "very-slow", report.CrackSpeed)
}

func TestCreateEstimatorInvalid(t *testing.T) {

	_, err := CreateEstimator(Config{
		TargetBits:    0,
		CrackSpeed:    "warp",
		HashAlgorithm: "md4",
	}, nil)
	assert.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTargetBits))
	assert.True(t, errors.Is(err, ErrUnknownCrackSpeed))
	assert.True(t, errors.Is(err, ErrUnknownHashAlgorithm))

	assert.Nil(t, DefaultConfig().Validate())
}

func TestCrackTimes(t *testing.T) {

	times := CrackTimes(PossibleCombinations(8, 62))
	assert.Equal(t, len(CrackSpeeds())*len(HashAlgorithms()), len(times))
	assert.Equal(t, VerySlow.Name, times[0].CrackSpeed)
	assert.Equal(t, RawHash.Name, times[0].HashAlgorithm)
	assert.Equal(t, uint64(1), times[0].Rate)

	last := times[len(times)-1]
	assert.Equal(t, Insane.Name, last.CrackSpeed)
	assert.Equal(t, Argon2id512MBT4.Name, last.HashAlgorithm)
	assert.Equal(t, uint64(5_000_000), last.Rate)
	for _, cell := range times {
		assert.NotEmpty(t, cell.TimeToCrack)
	}
}
