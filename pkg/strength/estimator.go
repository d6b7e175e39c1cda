package strength

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/jeremyhahn/go-password-toolkit/pkg/charset"
)

var (
	ErrInvalidTargetBits = errors.New("strength: target bits must be positive")
)

type Config struct {
	TargetBits    float64 `yaml:"target-bits" json:"target_bits" mapstructure:"target-bits"`
	CrackSpeed    string  `yaml:"crack-speed" json:"crack_speed" mapstructure:"crack-speed"`
	HashAlgorithm string  `yaml:"hash-algorithm" json:"hash_algorithm" mapstructure:"hash-algorithm"`
}

func DefaultConfig() Config {
	return Config{
		TargetBits:    DefaultTargetBits,
		CrackSpeed:    Medium.Name,
		HashAlgorithm: RawHash.Name,
	}
}

// Returns every invalid field joined into a single error
func (c Config) Validate() error {
	var errs []error
	if c.TargetBits <= 0 {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidTargetBits, c.TargetBits))
	}
	if _, err := ParseCrackSpeed(c.CrackSpeed); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseHashAlgorithm(c.HashAlgorithm); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Serializable summary of a password's strength
type Report struct {
	Length         int     `yaml:"length" json:"length"`
	CharsetSize    int     `yaml:"charset-size" json:"charset_size"`
	DistinctChars  int     `yaml:"distinct-chars" json:"distinct_chars"`
	Combinations   string  `yaml:"combinations" json:"combinations"`
	Bits           float64 `yaml:"bits" json:"bits"`
	Strength       float64 `yaml:"strength" json:"strength"`
	Classification string  `yaml:"classification,omitempty" json:"classification,omitempty"`
	CrackSpeed     string  `yaml:"crack-speed" json:"crack_speed"`
	HashAlgorithm  string  `yaml:"hash-algorithm" json:"hash_algorithm"`
	TimeToCrack    string  `yaml:"time-to-crack" json:"time_to_crack"`
}

// One cell of the crack time matrix
type CrackTime struct {
	CrackSpeed    string `yaml:"crack-speed" json:"crack_speed"`
	HashAlgorithm string `yaml:"hash-algorithm" json:"hash_algorithm"`
	Rate          uint64 `yaml:"rate" json:"rate"`
	TimeToCrack   string `yaml:"time-to-crack" json:"time_to_crack"`
}

// Bundles the attacker model and scoring target used to
// build reports
type Estimator struct {
	speed      CrackSpeed
	algorithm  HashAlgorithm
	targetBits float64
	classifier *Classifier
}

// Creates an estimator using a Medium speed attacker against
// raw hashes, scored against DefaultTargetBits
func NewEstimator() *Estimator {
	return &Estimator{
		speed:      Medium,
		algorithm:  RawHash,
		targetBits: DefaultTargetBits,
	}
}

// Creates an estimator from configuration. The classifier is
// optional; reports omit the classification without one.
func CreateEstimator(config Config, classifier *Classifier) (*Estimator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	speed, _ := ParseCrackSpeed(config.CrackSpeed)
	algorithm, _ := ParseHashAlgorithm(config.HashAlgorithm)
	return &Estimator{
		speed:      speed,
		algorithm:  algorithm,
		targetBits: config.TargetBits,
		classifier: classifier,
	}, nil
}

func (e *Estimator) CrackSpeed() CrackSpeed {
	return e.speed
}

func (e *Estimator) HashAlgorithm() HashAlgorithm {
	return e.algorithm
}

func (e *Estimator) TargetBits() float64 {
	return e.targetBits
}

func (e *Estimator) SetClassifier(classifier *Classifier) *Estimator {
	e.classifier = classifier
	return e
}

// Returns the time required to crack the combinations using
// the estimator's attacker model
func (e *Estimator) TimeToCrack(combinations *big.Int) string {
	return RequiredTimeToCrack(combinations, e.speed, e.algorithm)
}

// Builds a report for the password
func (e *Estimator) Report(password string) (*Report, error) {

	combinations := PossibleCombinationsFor(password)

	report := &Report{
		Length:        utf8.RuneCountInString(password),
		CharsetSize:   charset.Length(password),
		DistinctChars: DistinctChars(password),
		Combinations:  FormattedValue(combinations),
		Bits:          Bits(combinations),
		Strength:      Strength(combinations, e.targetBits),
		CrackSpeed:    e.speed.Name,
		HashAlgorithm: e.algorithm.Name,
		TimeToCrack:   e.TimeToCrack(combinations),
	}

	if e.classifier != nil {
		classification, err := e.classifier.Classify(password)
		if err != nil {
			return nil, err
		}
		report.Classification = classification
	}

	return report, nil
}

// Returns the time to crack the combinations for every crack
// speed and hash algorithm, ordered by speed then algorithm
func CrackTimes(combinations *big.Int) []CrackTime {
	speeds := CrackSpeeds()
	algorithms := HashAlgorithms()
	times := make([]CrackTime, 0, len(speeds)*len(algorithms))
	for _, speed := range speeds {
		for _, algorithm := range algorithms {
			times = append(times, CrackTime{
				CrackSpeed:    speed.Name,
				HashAlgorithm: algorithm.Name,
				Rate:          EffectiveRate(speed, algorithm),
				TimeToCrack:   RequiredTimeToCrack(combinations, speed, algorithm),
			})
		}
	}
	return times
}
