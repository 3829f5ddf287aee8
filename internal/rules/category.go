package rules

// Category classifies how a field may be removed.
type Category uint8

const (
	// Required fields are never removed regardless of value.
	Required Category = iota
	// OptionalAmount fields are removed when the value is exactly zero.
	OptionalAmount
	// OptionalCode fields are removed when the value equals the documented sentinel.
	OptionalCode
	// OptionalIdentifier fields are removed when every digit is zero.
	OptionalIdentifier
)

func (c Category) String() string {
	switch c {
	case Required:
		return "required"
	case OptionalAmount:
		return "optional-amount"
	case OptionalCode:
		return "optional-code"
	case OptionalIdentifier:
		return "optional-identifier"
	}
	return "unknown"
}

// ParseCategory maps a rule-pack string to a Category.
func ParseCategory(s string) (Category, bool) {
	switch s {
	case "required":
		return Required, true
	case "optional-amount":
		return OptionalAmount, true
	case "optional-code":
		return OptionalCode, true
	case "optional-identifier":
		return OptionalIdentifier, true
	}
	return Required, false
}
