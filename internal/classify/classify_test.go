package classify

import (
	"testing"

	"t4fix/internal/rules"
)

func amountRule(name string) rules.Rule {
	return rules.Rule{Name: name, Category: rules.OptionalAmount}
}

func TestRequiredAlwaysKept(t *testing.T) {
	rule := rules.Rule{Name: "ei_insu_ern_amt", Category: rules.Required}

	for _, value := range []string{"0.00", "", "-5.00", "garbage", "12345.67"} {
		res := Classify(rule, value)
		if res.Decision != Keep {
			t.Fatalf("required field with %q: expected keep, got %s", value, res.Decision)
		}
	}
}

func TestAmountZeroForms(t *testing.T) {
	rule := amountRule("cppe_cntrb_amt")

	for _, value := range []string{"0", "0.00", "0.0000", "-0.00", " 0.00 ", "+0"} {
		res := Classify(rule, value)
		if res.Decision != Remove {
			t.Fatalf("zero amount %q: expected remove, got %s", value, res.Decision)
		}
	}
}

func TestAmountNonZeroKept(t *testing.T) {
	rule := amountRule("unn_dues_amt")

	for _, value := range []string{"0.01", "61344.05", "100"} {
		res := Classify(rule, value)
		if res.Decision != Keep {
			t.Fatalf("non-zero amount %q: expected keep, got %s", value, res.Decision)
		}
	}
}

func TestAmountNegativeFlagged(t *testing.T) {
	rule := amountRule("chrty_dons_amt")

	res := Classify(rule, "-12.50")
	if res.Decision != FlagNegative {
		t.Fatalf("expected flag-negative, got %s", res.Decision)
	}
	if res.Reason == "" {
		t.Fatalf("expected an explanatory reason")
	}
}

func TestNegativePensionAdjustmentReason(t *testing.T) {
	rule := amountRule("padj_amt")

	res := Classify(rule, "-622.88")
	if res.Decision != FlagNegative {
		t.Fatalf("expected flag-negative, got %s", res.Decision)
	}
	if res.Reason != "negative pension adjustment belongs on a T10 (PAR) slip, not a T4" {
		t.Fatalf("unexpected reason: %q", res.Reason)
	}
}

func TestAmountMalformedKept(t *testing.T) {
	rule := amountRule("padj_amt")

	for _, value := range []string{"", "12,50", "abc", "1.2.3"} {
		res := Classify(rule, value)
		if res.Decision != KeepMalformed {
			t.Fatalf("malformed amount %q: expected keep-malformed, got %s", value, res.Decision)
		}
	}
}

func TestCodeSentinelRemoved(t *testing.T) {
	rule := rules.Rule{Name: "empt_cd", Category: rules.OptionalCode, Sentinel: "00", ValidMin: 11, ValidMax: 17}

	if res := Classify(rule, "00"); res.Decision != Remove {
		t.Fatalf("sentinel code: expected remove, got %s", res.Decision)
	}
	if res := Classify(rule, "12"); res.Decision != Keep {
		t.Fatalf("valid code: expected keep, got %s", res.Decision)
	}
}

func TestCodeOutOfRangeReported(t *testing.T) {
	rule := rules.Rule{Name: "empt_cd", Category: rules.OptionalCode, Sentinel: "00", ValidMin: 11, ValidMax: 17}

	for _, value := range []string{"10", "18", "7", "xx"} {
		res := Classify(rule, value)
		if res.Decision != KeepMalformed {
			t.Fatalf("out-of-range code %q: expected keep-malformed, got %s", value, res.Decision)
		}
	}
}

func TestIdentifierAllZerosRemoved(t *testing.T) {
	rule := rules.Rule{Name: "rpp_dpsp_rgst_nbr", Category: rules.OptionalIdentifier}

	if res := Classify(rule, "0000000"); res.Decision != Remove {
		t.Fatalf("all-zero identifier: expected remove, got %s", res.Decision)
	}
	for _, value := range []string{"0010000", "000000x", "1000000", ""} {
		res := Classify(rule, value)
		if res.Decision != Keep {
			t.Fatalf("identifier %q: expected keep, got %s", value, res.Decision)
		}
	}
}
