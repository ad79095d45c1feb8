package schema

import (
	"fmt"
	"regexp"
)

// Rule is a single validation constraint applied to a supplied value after
// its declared type has been checked.
type Rule interface {
	// Check returns a non-nil error describing the violation, or nil.
	Check(value any) error
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc func(value any) error

func (f RuleFunc) Check(value any) error { return f(value) }

// MinLen requires a string value of at least n characters.
func MinLen(n int) Rule {
	return RuleFunc(func(value any) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("min length applies to strings, got %T", value)
		}
		if len(s) < n {
			return fmt.Errorf("must be at least %d characters, got %d", n, len(s))
		}
		return nil
	})
}

// MaxLen requires a string value of at most n characters.
func MaxLen(n int) Rule {
	return RuleFunc(func(value any) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("max length applies to strings, got %T", value)
		}
		if len(s) > n {
			return fmt.Errorf("must be at most %d characters, got %d", n, len(s))
		}
		return nil
	})
}

// OneOf requires the value to equal one of the allowed candidates.
func OneOf(allowed ...any) Rule {
	return RuleFunc(func(value any) error {
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return fmt.Errorf("value %v is not one of the allowed values %v", value, allowed)
	})
}

// Matches requires a string value matching the given regular expression.
// Invalid patterns panic at configuration time, not at validation time.
func Matches(pattern string) Rule {
	re := regexp.MustCompile(pattern)
	return RuleFunc(func(value any) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("pattern applies to strings, got %T", value)
		}
		if !re.MatchString(s) {
			return fmt.Errorf("must match pattern %q", pattern)
		}
		return nil
	})
}

// Range requires a numeric value within [min, max].
func Range(min, max float64) Rule {
	return RuleFunc(func(value any) error {
		var n float64
		switch v := value.(type) {
		case int:
			n = float64(v)
		case int64:
			n = float64(v)
		case float32:
			n = float64(v)
		case float64:
			n = v
		default:
			return fmt.Errorf("range applies to numbers, got %T", value)
		}
		if n < min || n > max {
			return fmt.Errorf("must be between %v and %v, got %v", min, max, n)
		}
		return nil
	})
}
