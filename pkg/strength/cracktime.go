package strength

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	SECONDS_PER_MINUTE = 60
	SECONDS_PER_HOUR   = 60 * SECONDS_PER_MINUTE
	SECONDS_PER_DAY    = 24 * SECONDS_PER_HOUR
	SECONDS_PER_YEAR   = 365 * SECONDS_PER_DAY
)

var (
	one         = big.NewInt(1)
	thousand    = big.NewInt(1000)
	secsPerYear = big.NewInt(SECONDS_PER_YEAR)

	// short scale suffixes, each 1000 times the previous
	shortScale = []struct {
		divisor *big.Int
		suffix  string
	}{
		{big.NewInt(1_000), "Thousand"},
		{big.NewInt(1_000_000), "Million"},
		{big.NewInt(1_000_000_000), "Billion"},
		{big.NewInt(1_000_000_000_000), "Trillion"},
	}
	scientificThreshold = big.NewInt(1_000_000_000_000_000)
)

// Returns a human readable estimate of the time required to find a
// password among the combinations, assuming on average half of the
// keyspace is searched before the password is found.
func RequiredTimeToCrack(combinations *big.Int, speed CrackSpeed, algorithm HashAlgorithm) string {

	if combinations == nil || combinations.Sign() <= 0 {
		return "0 seconds"
	}

	// ceil(combinations / 2)
	attempts := new(big.Int).Add(combinations, one)
	attempts.Rsh(attempts, 1)

	rate := new(big.Int).SetUint64(EffectiveRate(speed, algorithm))

	totalSeconds, remainder := new(big.Int).QuoRem(attempts, rate, new(big.Int))

	var millis int64
	if remainder.Sign() > 0 {
		remainder.Mul(remainder, thousand)
		millis = remainder.Quo(remainder, rate).Int64()
	}

	years, rem := new(big.Int).QuoRem(totalSeconds, secsPerYear, new(big.Int))

	// rem is less than one year so it fits
	secs := rem.Int64()
	days := secs / SECONDS_PER_DAY
	secs %= SECONDS_PER_DAY
	hours := secs / SECONDS_PER_HOUR
	secs %= SECONDS_PER_HOUR
	minutes := secs / SECONDS_PER_MINUTE
	seconds := secs % SECONDS_PER_MINUTE

	secsFormatted := strconv.FormatInt(seconds, 10)
	if millis > 0 {
		secsFormatted = strings.TrimRight(fmt.Sprintf("%d.%03d", seconds, millis), "0")
	}

	parts := make([]string, 0, 5)
	if years.Sign() > 0 {
		parts = append(parts, FormattedValue(years)+" year"+plural(years.Cmp(one) != 0))
	}
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d day%s", days, plural(days != 1)))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", hours, plural(hours != 1)))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minute%s", minutes, plural(minutes != 1)))
	}

	if len(parts) == 0 {
		if totalSeconds.Sign() == 0 && millis == 0 {
			return "less than 1 millisecond"
		}
		parts = append(parts, secsFormatted+" second"+plural(secsFormatted != "1"))
	} else if seconds > 0 || millis > 0 {
		parts = append(parts, secsFormatted+" second"+plural(secsFormatted != "1"))
	}

	return strings.Join(parts, ", ")
}

// Formats a count using short scale suffixes. Values below one
// thousand are returned as is, values up to one quadrillion are
// divided by the matching power of 1000 and rounded to at most two
// decimals, larger values use scientific notation with up to three
// fractional digits.
//
//	999 -> 999
//	1500 -> 1.5 Thousand
//	2000000 -> 2 Million
//	1234567890123456 -> 1.235E+15
func FormattedValue(value *big.Int) string {

	if value.Cmp(thousand) < 0 {
		return value.String()
	}
	if value.Cmp(scientificThreshold) >= 0 {
		return scientific(value)
	}

	scale := shortScale[0]
	for _, s := range shortScale {
		if value.Cmp(s.divisor) >= 0 {
			scale = s
		}
	}

	// round half away from zero to two decimals
	hundredths := new(big.Int).Mul(value, big.NewInt(100))
	quotient, remainder := new(big.Int).QuoRem(hundredths, scale.divisor, new(big.Int))
	remainder.Mul(remainder, big.NewInt(2))
	if remainder.Cmp(scale.divisor) >= 0 {
		quotient.Add(quotient, one)
	}

	whole, frac := new(big.Int).QuoRem(quotient, big.NewInt(100), new(big.Int))
	number := whole.String()
	if frac.Sign() > 0 {
		number = strings.TrimRight(fmt.Sprintf("%s.%02d", number, frac.Int64()), "0")
	}
	return number + " " + scale.suffix
}

func scientific(value *big.Int) string {

	digits := value.String()
	exponent := len(digits) - 1

	// four significant digits, rounded half away from zero on the fifth
	mantissa, _ := strconv.Atoi(digits[:4])
	if len(digits) > 4 && digits[4] >= '5' {
		mantissa++
	}
	if mantissa == 10_000 {
		mantissa = 1_000
		exponent++
	}

	number := strconv.Itoa(mantissa / 1000)
	if frac := mantissa % 1000; frac > 0 {
		number = strings.TrimRight(fmt.Sprintf("%s.%03d", number, frac), "0")
	}
	return fmt.Sprintf("%sE+%d", number, exponent)
}

func plural(many bool) string {
	if many {
		return "s"
	}
	return ""
}
