package account

import "time"

// Kind tags a transaction as moving money into or out of an account.
const (
	KindCredit = "credit"
	KindDebit  = "debit"
)

// Transaction is one immutable history entry. BalanceAfter snapshots the
// owning account's balance immediately after the entry was applied.
type Transaction struct {
	ID           string
	Timestamp    time.Time
	Description  string
	Amount       int64
	Kind         string
	BalanceAfter int64
}

// Account holds one holder's identity, credential digest, balance and
// append-only transaction history. Amounts are int64 minor currency units.
//
// An Account is owned by its ledger and is not safe for use from multiple
// goroutines; the ledger serializes access.
type Account struct {
	id               string
	holderName       string
	credentialDigest string
	balance          int64
	history          []Transaction
	createdAt        time.Time
}

// ID returns the immutable account identifier.
func (a *Account) ID() string { return a.id }

// HolderName returns the display name captured at creation.
func (a *Account) HolderName() string { return a.holderName }

// Balance returns the current balance in minor units.
func (a *Account) Balance() int64 { return a.balance }

// CreatedAt returns the creation timestamp.
func (a *Account) CreatedAt() time.Time { return a.createdAt }
