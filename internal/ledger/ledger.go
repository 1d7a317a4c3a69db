// Package ledger implements the aggregate owning all accounts: uniqueness,
// authentication, atomic transfers and the snapshot persistence contract.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/kwacha-bank/kwacha/internal/account"
	"github.com/kwacha-bank/kwacha/internal/notification"
	"github.com/kwacha-bank/kwacha/internal/store"
)

var (
	// ErrAccountExists rejects creation under an identifier already in use.
	ErrAccountExists = errors.New("account already exists")

	// ErrAuthenticationFailed covers both an unknown account and a wrong
	// password. The two are deliberately indistinguishable to the caller.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrDestinationNotFound rejects transfers to an unknown account.
	ErrDestinationNotFound = errors.New("destination account not found")

	// ErrInvalidAmount and ErrInsufficientBalance mirror the account-level
	// conditions for callers that only import this package.
	ErrInvalidAmount       = account.ErrInvalidAmount
	ErrInsufficientBalance = account.ErrInsufficientBalance
)

// Summary is the read-only projection exposed by List. No credentials, no
// history.
type Summary struct {
	ID         string
	HolderName string
	Balance    int64
}

// Ledger owns the account collection and the snapshot store. Every
// successful mutation through CreateAccount or Transfer persists the full
// snapshot before returning; callers mutating accounts directly must call
// Save themselves.
type Ledger struct {
	mu       sync.Mutex
	accounts map[string]*account.Account
	order    []string
	store    store.Store
	logger   *slog.Logger
	notifier notification.Notifier
}

// Open builds a ledger against the given store, loading the previous
// snapshot if one exists. A missing snapshot yields an empty ledger. A
// corrupt snapshot is discarded with a warning and the ledger starts
// empty; the store keeps the corrupt content aside for inspection. Any
// other load failure is returned and should be treated as fatal.
func Open(ctx context.Context, st store.Store, logger *slog.Logger, notifier notification.Notifier) (*Ledger, error) {
	if logger == nil {
		logger = slog.Default()
	}

	l := &Ledger{
		accounts: make(map[string]*account.Account),
		store:    st,
		logger:   logger,
		notifier: notifier,
	}

	snap, err := st.Load(ctx)
	switch {
	case errors.Is(err, store.ErrNotExist):
		return l, nil
	case errors.Is(err, store.ErrCorruptSnapshot):
		logger.Warn("snapshot corrupt, starting with empty ledger", "error", err)
		l.quarantine(ctx)
		return l, nil
	case err != nil:
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	for _, rec := range snap.Accounts {
		acct, err := account.FromRecord(rec)
		if err != nil {
			// One bad record poisons the whole snapshot. Nothing in a
			// corrupt document is trusted.
			logger.Warn("snapshot record corrupt, starting with empty ledger", "account_id", rec.ID, "error", err)
			l.accounts = make(map[string]*account.Account)
			l.order = nil
			l.quarantine(ctx)
			return l, nil
		}
		l.accounts[acct.ID()] = acct
		l.order = append(l.order, acct.ID())
	}
	return l, nil
}

// quarantine sets the corrupt snapshot aside so the next Save does not
// destroy the only copy of the prior data.
func (l *Ledger) quarantine(ctx context.Context) {
	if err := l.store.Quarantine(ctx); err != nil {
		l.logger.Warn("snapshot quarantine failed", "error", err)
	}
}

// CreateAccount registers a new account and persists the snapshot. When the
// snapshot write fails, the in-memory insert is rolled back so memory and
// disk never diverge.
func (l *Ledger) CreateAccount(ctx context.Context, id, holderName, password string, initialBalance int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.accounts[id]; exists {
		return ErrAccountExists
	}

	acct, err := account.New(id, holderName, password, initialBalance)
	if err != nil {
		return err
	}

	l.accounts[id] = acct
	l.order = append(l.order, id)

	if err := l.persist(ctx); err != nil {
		delete(l.accounts, id)
		l.order = l.order[:len(l.order)-1]
		return fmt.Errorf("persist account creation: %w", err)
	}

	l.logger.Info("account created", "account_id", id, "initial_balance", initialBalance)
	return nil
}

// Authenticate returns the account only when id is known and the password
// matches. Unknown account and wrong password collapse into the same
// ErrAuthenticationFailed.
func (l *Ledger) Authenticate(_ context.Context, id, password string) (*account.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acct, ok := l.accounts[id]
	if !ok || !acct.VerifyPassword(password) {
		return nil, ErrAuthenticationFailed
	}
	return acct, nil
}

// Account looks up an account without authentication. Used for transfer
// destination validation and administrative listing; holders of the
// returned reference still need the password to authenticate mutations.
func (l *Ledger) Account(id string) (*account.Account, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	acct, ok := l.accounts[id]
	return acct, ok
}

// Transfer moves amount from fromID to toID. Checks run in a fixed order
// and the first failure wins with no mutation: authentication, destination
// existence, amount validity, balance sufficiency. Only when all pass are
// the debit and credit applied and the snapshot persisted; a failed
// persist rolls both accounts back.
//
// A self-transfer is not special-cased: it debits and credits the same
// account, leaving the balance unchanged and two history entries behind.
func (l *Ledger) Transfer(ctx context.Context, fromID, toID string, amount int64, password string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	src, ok := l.accounts[fromID]
	if !ok || !src.VerifyPassword(password) {
		return ErrAuthenticationFailed
	}
	dst, ok := l.accounts[toID]
	if !ok {
		return ErrDestinationNotFound
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if src.Balance() < amount {
		return ErrInsufficientBalance
	}

	srcState := src.CaptureState()
	dstState := dst.CaptureState()

	if err := src.Withdraw(amount, "Transfer to "+toID); err != nil {
		return err
	}
	if err := dst.Deposit(amount, "Transfer from "+fromID); err != nil {
		src.RestoreState(srcState)
		return err
	}

	if err := l.persist(ctx); err != nil {
		src.RestoreState(srcState)
		dst.RestoreState(dstState)
		return fmt.Errorf("persist transfer: %w", err)
	}

	l.logger.Info("transfer completed", "from", fromID, "to", toID, "amount", amount)

	if l.notifier != nil {
		_ = l.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindTransfer,
			Destination: toID,
			Body:        fmt.Sprintf("Received %d from account %s", amount, fromID),
		})
	}
	return nil
}

// List returns a summary of every account in insertion order.
func (l *Ledger) List() []Summary {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Summary, 0, len(l.order))
	for _, id := range l.order {
		acct := l.accounts[id]
		out = append(out, Summary{ID: acct.ID(), HolderName: acct.HolderName(), Balance: acct.Balance()})
	}
	return out
}

// Save persists the current snapshot. Callers that mutate an account
// obtained from Authenticate directly (deposit, withdraw) must call Save
// afterwards; only CreateAccount and Transfer persist on their own.
func (l *Ledger) Save(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.persist(ctx)
}

func (l *Ledger) persist(ctx context.Context) error {
	snap := store.Snapshot{Accounts: make([]store.AccountRecord, 0, len(l.order))}
	for _, id := range l.order {
		snap.Accounts = append(snap.Accounts, l.accounts[id].Record())
	}
	if err := l.store.Save(ctx, snap); err != nil {
		l.logger.Error("snapshot write failed", "error", err)
		return err
	}
	return nil
}
