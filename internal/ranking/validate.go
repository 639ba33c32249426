package ranking

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"github.com/osse101/LoveSim_Go/internal/domain"
)

// newValidator returns a validator with the nickname rule registered
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagNickname, validateNickname)
	return v
}

// validateNickname accepts Hangul syllables, ASCII letters and digits,
// underscore and whitespace.
func validateNickname(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isNicknameRune(r) {
			return false
		}
	}
	return true
}

func isNicknameRune(r rune) bool {
	switch {
	case r >= '가' && r <= '힣':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	default:
		return unicode.IsSpace(r)
	}
}

// normalizeNickname composes decomposed Hangul jamo into syllables and
// trims surrounding whitespace.
func normalizeNickname(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// coerceScore converts the raw JSON score into an integer.
// Accepted: JSON integers, JSON numbers (truncated toward zero) and strings
// holding a decimal integer. Values too large for any valid score yield
// domain.ErrScoreOutOfRange; every other shape yields domain.ErrInvalidDataFormat.
func coerceScore(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, domain.ErrMissingRankingFields
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, domain.ErrInvalidDataFormat
		}
		return parseIntString(strings.TrimSpace(s))
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return parseNumber(string(raw))
	default:
		// true, false, null, objects and arrays
		return 0, domain.ErrInvalidDataFormat
	}
}

func parseIntString(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, domain.ErrScoreOutOfRange
		}
		return 0, domain.ErrInvalidDataFormat
	}
	return n, nil
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, domain.ErrScoreOutOfRange
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, domain.ErrScoreOutOfRange
		}
		return 0, domain.ErrInvalidDataFormat
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, domain.ErrInvalidDataFormat
	}
	t := math.Trunc(f)
	if t < math.MinInt32 || t > math.MaxInt32 {
		return 0, domain.ErrScoreOutOfRange
	}
	return int(t), nil
}
