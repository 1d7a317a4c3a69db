package account

import (
	"errors"
	"testing"
)

// checkInvariant verifies balance equals the sum of credits minus debits
// over the full history.
func checkInvariant(t *testing.T, a *Account) {
	t.Helper()
	var sum int64
	for _, tx := range a.History(0) {
		if tx.Amount <= 0 {
			t.Fatalf("non-positive transaction amount %d", tx.Amount)
		}
		switch tx.Kind {
		case KindCredit:
			sum += tx.Amount
		case KindDebit:
			sum -= tx.Amount
		default:
			t.Fatalf("unknown kind %q", tx.Kind)
		}
	}
	if sum != a.Balance() {
		t.Fatalf("history sums to %d but balance is %d", sum, a.Balance())
	}
	if a.Balance() < 0 {
		t.Fatalf("balance went negative: %d", a.Balance())
	}
}

func TestNewWithOpeningBalance(t *testing.T) {
	a, err := New("A1", "Alice", "pw1", 1000)
	if err != nil {
		t.Fatalf("new account: %v", err)
	}

	if a.Balance() != 1000 {
		t.Fatalf("expected balance 1000, got %d", a.Balance())
	}
	history := a.History(0)
	if len(history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(history))
	}
	if history[0].Kind != KindCredit || history[0].Amount != 1000 {
		t.Fatalf("unexpected opening entry: %+v", history[0])
	}
	if history[0].Description != "Initial Deposit" {
		t.Fatalf("unexpected description %q", history[0].Description)
	}
	if history[0].ID == "" {
		t.Fatalf("expected transaction id")
	}
	checkInvariant(t, a)
}

func TestNewZeroBalanceHasNoHistory(t *testing.T) {
	a, err := New("A1", "Alice", "pw1", 0)
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	if len(a.History(0)) != 0 {
		t.Fatalf("expected empty history")
	}
}

func TestNewRejectsNegativeBalance(t *testing.T) {
	if _, err := New("A1", "Alice", "pw1", -1); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestNewRejectsEmptyIdentity(t *testing.T) {
	if _, err := New("", "Alice", "pw1", 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for empty id, got %v", err)
	}
	if _, err := New("A1", "", "pw1", 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for empty holder, got %v", err)
	}
}

func TestDepositThenWithdrawRestoresBalance(t *testing.T) {
	a, err := New("A1", "Alice", "pw1", 500)
	if err != nil {
		t.Fatalf("new account: %v", err)
	}

	if err := a.Deposit(250, ""); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if err := a.Withdraw(250, ""); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	if a.Balance() != 500 {
		t.Fatalf("expected balance 500, got %d", a.Balance())
	}
	history := a.History(0)
	if len(history) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(history))
	}
	if history[1].Description != "Deposit" || history[2].Description != "Withdrawal" {
		t.Fatalf("default descriptions not applied: %+v", history[1:])
	}
	checkInvariant(t, a)
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	a, _ := New("A1", "Alice", "pw1", 100)
	for _, amount := range []int64{0, -5} {
		if err := a.Deposit(amount, ""); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("deposit %d: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
	if a.Balance() != 100 || len(a.History(0)) != 1 {
		t.Fatalf("failed deposit mutated account")
	}
}

func TestWithdrawRejectsOverdraft(t *testing.T) {
	a, _ := New("A1", "Alice", "pw1", 100)

	if err := a.Withdraw(101, ""); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	if err := a.Withdraw(0, ""); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	if a.Balance() != 100 || len(a.History(0)) != 1 {
		t.Fatalf("failed withdraw mutated account")
	}
	checkInvariant(t, a)
}

func TestHistoryLimitAndIsolation(t *testing.T) {
	a, _ := New("A1", "Alice", "pw1", 0)
	for i := int64(1); i <= 5; i++ {
		if err := a.Deposit(i, ""); err != nil {
			t.Fatalf("deposit %d: %v", i, err)
		}
	}

	last2 := a.History(2)
	if len(last2) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(last2))
	}
	if last2[0].Amount != 4 || last2[1].Amount != 5 {
		t.Fatalf("expected chronological tail [4 5], got [%d %d]", last2[0].Amount, last2[1].Amount)
	}

	if got := len(a.History(10)); got != 5 {
		t.Fatalf("limit larger than history: expected 5, got %d", got)
	}

	// Mutating the returned slice must not touch the account.
	full := a.History(0)
	full[0].Amount = 999
	if a.History(0)[0].Amount == 999 {
		t.Fatalf("history copy leaked internal state")
	}
}

func TestVerifyPassword(t *testing.T) {
	a, err := New("A1", "Alice", "secret", 0)
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	if !a.VerifyPassword("secret") {
		t.Fatalf("correct password rejected")
	}
	if a.VerifyPassword("wrong") {
		t.Fatalf("wrong password accepted")
	}
	if a.VerifyPassword("") {
		t.Fatalf("empty password accepted")
	}
}

func TestRestoreStateRewindsMutations(t *testing.T) {
	a, _ := New("A1", "Alice", "pw1", 300)

	saved := a.CaptureState()
	if err := a.Withdraw(200, "Transfer to A2"); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	a.RestoreState(saved)

	if a.Balance() != 300 {
		t.Fatalf("expected balance 300 after restore, got %d", a.Balance())
	}
	if len(a.History(0)) != 1 {
		t.Fatalf("expected history rewound to 1 entry, got %d", len(a.History(0)))
	}
	checkInvariant(t, a)
}
