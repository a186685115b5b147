// Package store persists synced fills and settlements in a local SQLite
// database, so P&L reports can be recomputed offline and resyncs are
// idempotent.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dkeller/kalshipnl"
	"github.com/dkeller/kalshipnl/kalshi"
	_ "github.com/mattn/go-sqlite3"
)

// Store provides SQLite-based persistence for exchange records.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and migrates the
// schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS fills (
		trade_id TEXT PRIMARY KEY,
		ticker TEXT NOT NULL,
		side TEXT NOT NULL,
		action TEXT NOT NULL,
		count INTEGER NOT NULL,
		price INTEGER NOT NULL,
		created_time DATETIME NOT NULL,
		seq INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_fills_ticker ON fills(ticker);
	CREATE INDEX IF NOT EXISTS idx_fills_created ON fills(created_time);

	CREATE TABLE IF NOT EXISTS settlements (
		ticker TEXT NOT NULL,
		market_result TEXT NOT NULL,
		value INTEGER NOT NULL,
		fee_cost TEXT NOT NULL,
		settled_time DATETIME NOT NULL,
		PRIMARY KEY (ticker, settled_time)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// UpsertFills writes fills from the exchange, replacing rows with the same
// trade id. The seq column preserves the API response order, which is the
// FIFO tiebreak for fills sharing a timestamp.
func (s *Store) UpsertFills(fills []kalshi.Fill) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO fills (trade_id, ticker, side, action, count, price, created_time, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for seq, fill := range fills {
		if _, err := stmt.Exec(fill.TradeID, fill.Ticker, fill.Side, fill.Action,
			fill.Count, fill.Price, fill.CreatedTime.UTC(), seq); err != nil {
			return fmt.Errorf("insert fill %s: %w", fill.TradeID, err)
		}
	}
	return tx.Commit()
}

// UpsertSettlements writes settlement records, replacing rows with the same
// (ticker, settled time).
func (s *Store) UpsertSettlements(settlements []kalshi.Settlement) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO settlements (ticker, market_result, value, fee_cost, settled_time)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, settlement := range settlements {
		feeCost := settlement.FeeCost
		if feeCost == "" {
			feeCost = "0"
		}
		if _, err := stmt.Exec(settlement.Ticker, settlement.MarketResult,
			settlement.SettledValue, feeCost, settlement.SettledTime.UTC()); err != nil {
			return fmt.Errorf("insert settlement %s: %w", settlement.Ticker, err)
		}
	}
	return tx.Commit()
}

// Fills returns all synced fills as validated trades, ordered by execution
// time with the original API order preserved for ties.
func (s *Store) Fills() ([]kalshipnl.EffectiveTrade, error) {
	rows, err := s.db.Query(`
		SELECT ticker, side, action, count, price, created_time
		FROM fills ORDER BY created_time, seq`)
	if err != nil {
		return nil, fmt.Errorf("query fills: %w", err)
	}
	defer rows.Close()

	var trades []kalshipnl.EffectiveTrade
	for rows.Next() {
		var ticker, sideStr, actionStr string
		var count, price int64
		var createdTime time.Time
		if err := rows.Scan(&ticker, &sideStr, &actionStr, &count, &price, &createdTime); err != nil {
			return nil, fmt.Errorf("scan fill: %w", err)
		}

		side, err := kalshipnl.ParseSide(sideStr)
		if err != nil {
			return nil, fmt.Errorf("fill for %s: %w", ticker, err)
		}
		action, err := kalshipnl.ParseAction(actionStr)
		if err != nil {
			return nil, fmt.Errorf("fill for %s: %w", ticker, err)
		}
		trade, err := kalshipnl.NewEffectiveTrade(ticker, side, action, count, kalshipnl.Cents(price), 0, createdTime)
		if err != nil {
			return nil, fmt.Errorf("fill for %s: %w", ticker, err)
		}
		trades = append(trades, trade)
	}
	return trades, rows.Err()
}

// Settlements returns all synced settlement records as validated core
// settlements.
func (s *Store) Settlements() ([]kalshipnl.Settlement, error) {
	rows, err := s.db.Query(`
		SELECT ticker, market_result, value, fee_cost, settled_time
		FROM settlements ORDER BY settled_time`)
	if err != nil {
		return nil, fmt.Errorf("query settlements: %w", err)
	}
	defer rows.Close()

	var settlements []kalshipnl.Settlement
	for rows.Next() {
		var ticker, result, feeCost string
		var value int64
		var settledTime time.Time
		if err := rows.Scan(&ticker, &result, &value, &feeCost, &settledTime); err != nil {
			return nil, fmt.Errorf("scan settlement: %w", err)
		}

		feeDollars, err := decimal.NewFromString(feeCost)
		if err != nil {
			return nil, fmt.Errorf("settlement for %s: fee %q: %w", ticker, feeCost, err)
		}
		settlement, err := kalshipnl.NewSettlement(ticker, kalshipnl.MarketResult(result),
			kalshipnl.Cents(value), feeDollars, settledTime)
		if err != nil {
			return nil, fmt.Errorf("settlement for %s: %w", ticker, err)
		}
		settlements = append(settlements, settlement)
	}
	return settlements, rows.Err()
}
