// Package account implements the per-account side of the ledger: balance
// arithmetic, the append-only transaction history and credential
// verification. Cross-account rules live in the ledger package.
package account

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidAmount rejects non-positive amounts and negative opening
	// balances.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientBalance rejects withdrawals exceeding the balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidArgument rejects empty identifiers or holder names.
	ErrInvalidArgument = errors.New("invalid argument")
)

// New constructs an account, digesting the password and recording the
// opening balance as an "Initial Deposit" credit when positive.
func New(id, holderName, password string, initialBalance int64) (*Account, error) {
	if id == "" || holderName == "" {
		return nil, ErrInvalidArgument
	}
	if initialBalance < 0 {
		return nil, ErrInvalidAmount
	}

	digest, err := DigestPassword(password)
	if err != nil {
		return nil, fmt.Errorf("digest password: %w", err)
	}

	a := &Account{
		id:               id,
		holderName:       holderName,
		credentialDigest: digest,
		createdAt:        time.Now().UTC(),
	}
	if initialBalance > 0 {
		a.apply("Initial Deposit", initialBalance, KindCredit)
	}
	return a, nil
}

// VerifyPassword reports whether password matches the stored digest.
// No side effects.
func (a *Account) VerifyPassword(password string) bool {
	return verifyDigest(a.credentialDigest, password)
}

// Deposit credits amount to the balance and appends a history entry.
// Nothing changes when amount is not positive. The description is
// normalized to the payment-reference charset; empty input gets the
// default "Deposit".
func (a *Account) Deposit(amount int64, description string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	description = NormalizeDescription(description)
	if description == "" {
		description = "Deposit"
	}
	a.apply(description, amount, KindCredit)
	return nil
}

// Withdraw debits amount from the balance and appends a history entry.
// Nothing changes when amount is not positive or exceeds the balance.
func (a *Account) Withdraw(amount int64, description string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > a.balance {
		return ErrInsufficientBalance
	}
	description = NormalizeDescription(description)
	if description == "" {
		description = "Withdrawal"
	}
	a.apply(description, amount, KindDebit)
	return nil
}

// History returns a copy of the most recent limit entries in chronological
// order, or the full history when limit is not positive. Mutating the
// returned slice does not affect the account.
func (a *Account) History(limit int) []Transaction {
	entries := a.history
	if limit > 0 && limit < len(entries) {
		entries = entries[len(entries)-limit:]
	}
	out := make([]Transaction, len(entries))
	copy(out, entries)
	return out
}

func (a *Account) apply(description string, amount int64, kind string) {
	if kind == KindCredit {
		a.balance += amount
	} else {
		a.balance -= amount
	}
	a.history = append(a.history, Transaction{
		ID:           uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Description:  description,
		Amount:       amount,
		Kind:         kind,
		BalanceAfter: a.balance,
	})
}

// State captures balance and history length for rollback. Restoring is
// exact because history is append-only: truncating to the recorded length
// discards precisely the entries applied since the capture.
type State struct {
	balance int64
	entries int
}

// CaptureState records the current balance and history length.
func (a *Account) CaptureState() State {
	return State{balance: a.balance, entries: len(a.history)}
}

// RestoreState rewinds the account to a previously captured state.
func (a *Account) RestoreState(s State) {
	a.balance = s.balance
	a.history = a.history[:s.entries]
}
