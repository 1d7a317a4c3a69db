package store

import "time"

// SnapshotVersion is the current schema version written by Save.
const SnapshotVersion = 1

// TransactionRecord is the serialized form of one history entry.
type TransactionRecord struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Description  string    `json:"description"`
	Amount       int64     `json:"amount"`
	Kind         string    `json:"kind"`
	BalanceAfter int64     `json:"balance_after"`
}

// AccountRecord is the serialized form of one account, including its full
// transaction history. Balances are in minor currency units.
type AccountRecord struct {
	ID               string              `json:"id"`
	HolderName       string              `json:"holder_name"`
	CredentialDigest string              `json:"credential_digest"`
	Balance          int64               `json:"balance"`
	History          []TransactionRecord `json:"history"`
	CreatedAt        time.Time           `json:"created_at"`
}

// Snapshot is the complete persisted ledger state. The version field leaves
// room for schema migration without guessing at the document shape.
type Snapshot struct {
	Version  int             `json:"version"`
	SavedAt  time.Time       `json:"saved_at"`
	Accounts []AccountRecord `json:"accounts"`
}
