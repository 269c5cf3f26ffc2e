package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createArtworkTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE artworks (
		id TEXT PRIMARY KEY,
		artist_id TEXT NOT NULL,
		title TEXT NOT NULL,
		kind TEXT NOT NULL,
		ai_generated BOOLEAN NOT NULL DEFAULT 0,
		requires_creator_royalty BOOLEAN NOT NULL DEFAULT 0,
		unique_url TEXT UNIQUE,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createTokenTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE tokens (
		id TEXT PRIMARY KEY,
		artwork_id TEXT,
		symbol TEXT NOT NULL,
		contract_address TEXT,
		owner_address TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createRoyaltyConfigTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE royalty_configs (
		artwork_id TEXT PRIMARY KEY,
		creator_royalty_percent REAL NOT NULL,
		artist_royalty_percent REAL NOT NULL,
		total_percent REAL NOT NULL,
		creator_wallet_address TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createContractConfigTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE contract_configs (
		id TEXT PRIMARY KEY,
		nft_contract_address TEXT NOT NULL,
		chain_id TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		actor_id TEXT NOT NULL,
		type TEXT NOT NULL,
		currency_type TEXT NOT NULL,
		amount REAL NOT NULL,
		token_id TEXT,
		wallet_address TEXT,
		status TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		created_at DATETIME
	);`)
}

func createAuditEntryTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE audit_entries (
		id TEXT PRIMARY KEY,
		event_type TEXT NOT NULL,
		status TEXT NOT NULL,
		actor_id TEXT,
		subject_type TEXT,
		source_address TEXT,
		created_at DATETIME
	);`)
}
