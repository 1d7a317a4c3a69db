package account

import (
	"strings"
	"testing"
)

func TestNormalizeDescription(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Invoice #42 (March)", "Invoice 42 March"},
		{"Transfer to A2", "Transfer to A2"},
		{"ref-2026.08", "ref-2026.08"},
		{"café", "caf"},
		{"###", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeDescription(tc.in); got != tc.want {
			t.Fatalf("normalize %q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestNormalizeDescriptionTruncates(t *testing.T) {
	long := strings.Repeat("a", 60)
	got := NormalizeDescription(long)
	if len(got) != maxDescriptionLen {
		t.Fatalf("expected %d chars, got %d", maxDescriptionLen, len(got))
	}
}

func TestDepositNormalizesDescription(t *testing.T) {
	a, _ := New("A1", "Alice", "pw1", 0)

	if err := a.Deposit(100, "Invoice #42 (March)"); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	history := a.History(0)
	if got := history[len(history)-1].Description; got != "Invoice 42 March" {
		t.Fatalf("description not normalized: %q", got)
	}

	// A description that normalizes to nothing falls back to the default.
	if err := a.Deposit(100, "###"); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	history = a.History(0)
	if got := history[len(history)-1].Description; got != "Deposit" {
		t.Fatalf("expected default description, got %q", got)
	}
}

func TestWithdrawNormalizesDescription(t *testing.T) {
	a, _ := New("A1", "Alice", "pw1", 500)

	if err := a.Withdraw(100, strings.Repeat("x", 60)); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	history := a.History(0)
	if got := history[len(history)-1].Description; got != strings.Repeat("x", maxDescriptionLen) {
		t.Fatalf("description not truncated: %q", got)
	}
}
