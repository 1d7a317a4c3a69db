package account

import (
	"errors"
	"fmt"

	"github.com/kwacha-bank/kwacha/internal/store"
)

// ErrCorruptRecord indicates a snapshot record is missing required fields
// or carries values no account could have produced.
var ErrCorruptRecord = errors.New("corrupt account record")

// Record converts the account into its serialized form. The conversion is
// lossless: Record followed by FromRecord reproduces the account exactly.
func (a *Account) Record() store.AccountRecord {
	history := make([]store.TransactionRecord, len(a.history))
	for i, tx := range a.history {
		history[i] = store.TransactionRecord{
			ID:           tx.ID,
			Timestamp:    tx.Timestamp,
			Description:  tx.Description,
			Amount:       tx.Amount,
			Kind:         tx.Kind,
			BalanceAfter: tx.BalanceAfter,
		}
	}
	return store.AccountRecord{
		ID:               a.id,
		HolderName:       a.holderName,
		CredentialDigest: a.credentialDigest,
		Balance:          a.balance,
		History:          history,
		CreatedAt:        a.createdAt,
	}
}

// FromRecord rebuilds an account from a snapshot record. The record is
// trusted state, so invariants are not re-validated, but structurally
// broken records fail with ErrCorruptRecord.
func FromRecord(rec store.AccountRecord) (*Account, error) {
	if rec.ID == "" || rec.HolderName == "" || rec.CredentialDigest == "" {
		return nil, fmt.Errorf("%w: missing required field", ErrCorruptRecord)
	}

	a := &Account{
		id:               rec.ID,
		holderName:       rec.HolderName,
		credentialDigest: rec.CredentialDigest,
		balance:          rec.Balance,
		createdAt:        rec.CreatedAt,
	}
	for _, tr := range rec.History {
		if tr.Kind != KindCredit && tr.Kind != KindDebit {
			return nil, fmt.Errorf("%w: unknown transaction kind %q", ErrCorruptRecord, tr.Kind)
		}
		a.history = append(a.history, Transaction{
			ID:           tr.ID,
			Timestamp:    tr.Timestamp,
			Description:  tr.Description,
			Amount:       tr.Amount,
			Kind:         tr.Kind,
			BalanceAfter: tr.BalanceAfter,
		})
	}
	return a, nil
}
