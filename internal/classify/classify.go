// Package classify decides what happens to a single field value under
// a rule. It is pure: one rule and one raw value in, one decision out.
package classify

import (
	"fmt"
	"strconv"
	"strings"

	"t4fix/internal/rules"
)

// Decision is the outcome for one field value.
type Decision uint8

const (
	// Keep leaves the field untouched.
	Keep Decision = iota
	// Remove detaches the field from its parent.
	Remove
	// FlagNegative keeps the field but surfaces a warning: the CRA
	// schema rejects negative amounts, and dropping one silently would
	// hide real money.
	FlagNegative
	// KeepMalformed keeps the field and surfaces a warning about a
	// value that does not parse under the rule's expected shape.
	KeepMalformed
)

func (d Decision) String() string {
	switch d {
	case Keep:
		return "keep"
	case Remove:
		return "remove"
	case FlagNegative:
		return "flag-negative"
	case KeepMalformed:
		return "keep-malformed"
	}
	return "unknown"
}

// Result pairs a decision with a human-readable reason. Reasons are
// what ends up in the change report, so they are written for the
// person re-filing the return.
type Result struct {
	Decision Decision
	Reason   string
}

// PensionAdjustmentField is the slip field whose negative values have
// a dedicated filing path (a T10 Pension Adjustment Reversal).
const PensionAdjustmentField = "padj_amt"

// Classify applies a rule to a raw field value. Unknown fields never
// reach this function: the caller treats a table miss as Required.
func Classify(rule rules.Rule, raw string) Result {
	value := strings.TrimSpace(raw)

	switch rule.Category {
	case rules.Required:
		return Result{Decision: Keep}
	case rules.OptionalAmount:
		return classifyAmount(rule, value)
	case rules.OptionalCode:
		return classifyCode(rule, value)
	case rules.OptionalIdentifier:
		return classifyIdentifier(value)
	}
	return Result{Decision: Keep}
}

func classifyAmount(rule rules.Rule, value string) Result {
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Result{
			Decision: KeepMalformed,
			Reason:   fmt.Sprintf("value %q is not a valid amount", value),
		}
	}
	// Sign check first: "-0.00" parses to negative zero but is zero,
	// never a negative amount.
	if amount < 0 {
		reason := "negative amounts are not accepted by the CRA schema"
		if rule.Name == PensionAdjustmentField {
			reason = "negative pension adjustment belongs on a T10 (PAR) slip, not a T4"
		}
		return Result{Decision: FlagNegative, Reason: reason}
	}
	if amount == 0 {
		return Result{
			Decision: Remove,
			Reason:   "optional amount is zero",
		}
	}
	return Result{Decision: Keep}
}

func classifyCode(rule rules.Rule, value string) Result {
	if value == rule.Sentinel {
		return Result{
			Decision: Remove,
			Reason:   fmt.Sprintf("code %q is the documented no-value placeholder", value),
		}
	}
	// Out-of-range codes are reported, never corrected: guessing a
	// replacement code is not this tool's call.
	if rule.ValidMin != 0 || rule.ValidMax != 0 {
		code, err := strconv.Atoi(value)
		if err != nil || code < rule.ValidMin || code > rule.ValidMax {
			return Result{
				Decision: KeepMalformed,
				Reason:   fmt.Sprintf("code %q is outside the valid range %d-%d", value, rule.ValidMin, rule.ValidMax),
			}
		}
	}
	return Result{Decision: Keep}
}

func classifyIdentifier(value string) Result {
	if value == "" {
		return Result{Decision: Keep}
	}
	for _, r := range value {
		if r != '0' {
			return Result{Decision: Keep}
		}
	}
	return Result{
		Decision: Remove,
		Reason:   "identifier is all zeros",
	}
}
