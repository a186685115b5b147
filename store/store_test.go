package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dkeller/kalshipnl"
	"github.com/dkeller/kalshipnl/kalshi"
)

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "kpr.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_FillsRoundTripOrderedWithTiebreak(t *testing.T) {
	s := openTestStore(t)
	ts := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	// Two fills share a timestamp; the API order (t2 before t3) must hold.
	err := s.UpsertFills([]kalshi.Fill{
		{TradeID: "t2", Ticker: "TICK", Side: "yes", Action: "buy", Count: 5, Price: 50, CreatedTime: ts.Add(time.Minute)},
		{TradeID: "t3", Ticker: "TICK", Side: "yes", Action: "sell", Count: 5, Price: 60, CreatedTime: ts.Add(time.Minute)},
		{TradeID: "t1", Ticker: "TICK", Side: "yes", Action: "buy", Count: 10, Price: 40, CreatedTime: ts},
	})
	if err != nil {
		t.Fatalf("UpsertFills() error = %v", err)
	}

	trades, err := s.Fills()
	if err != nil {
		t.Fatalf("Fills() error = %v", err)
	}
	if len(trades) != 3 {
		t.Fatalf("expected 3 trades, got %d", len(trades))
	}
	if trades[0].PriceCents != 40 {
		t.Errorf("earliest fill must come first, got %+v", trades[0])
	}
	if trades[1].Action != kalshipnl.Buy || trades[2].Action != kalshipnl.Sell {
		t.Errorf("tied fills must keep API order, got %v then %v", trades[1].Action, trades[2].Action)
	}
}

func TestStore_UpsertFillsIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	fill := kalshi.Fill{TradeID: "t1", Ticker: "TICK", Side: "yes", Action: "buy",
		Count: 10, Price: 40, CreatedTime: time.Now().UTC()}

	if err := s.UpsertFills([]kalshi.Fill{fill}); err != nil {
		t.Fatalf("UpsertFills() error = %v", err)
	}
	if err := s.UpsertFills([]kalshi.Fill{fill}); err != nil {
		t.Fatalf("UpsertFills() resync error = %v", err)
	}

	trades, err := s.Fills()
	if err != nil {
		t.Fatalf("Fills() error = %v", err)
	}
	if len(trades) != 1 {
		t.Errorf("resync must not duplicate fills, got %d", len(trades))
	}
}

func TestStore_SettlementsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ts := time.Date(2025, time.March, 2, 9, 0, 0, 0, time.UTC)

	err := s.UpsertSettlements([]kalshi.Settlement{
		{Ticker: "TICK", MarketResult: "scalar", SettledValue: 65, FeeCost: "1.25", SettledTime: ts},
		{Ticker: "OTHER", MarketResult: "yes", FeeCost: "", SettledTime: ts},
	})
	if err != nil {
		t.Fatalf("UpsertSettlements() error = %v", err)
	}

	settlements, err := s.Settlements()
	if err != nil {
		t.Fatalf("Settlements() error = %v", err)
	}
	if len(settlements) != 2 {
		t.Fatalf("expected 2 settlements, got %d", len(settlements))
	}
	for _, settlement := range settlements {
		switch settlement.Ticker {
		case "TICK":
			if settlement.Result != kalshipnl.ResultScalar || settlement.ValueCents != 65 {
				t.Errorf("TICK settlement = %+v", settlement)
			}
			if !settlement.FeeCostDollars.Equal(mustDec(t, "1.25")) {
				t.Errorf("TICK fee = %s, want 1.25", settlement.FeeCostDollars)
			}
		case "OTHER":
			if !settlement.FeeCostDollars.IsZero() {
				t.Errorf("empty fee must load as zero, got %s", settlement.FeeCostDollars)
			}
		default:
			t.Errorf("unexpected ticker %s", settlement.Ticker)
		}
	}
}

func TestStore_MalformedFillRowFailsLoad(t *testing.T) {
	s := openTestStore(t)
	err := s.UpsertFills([]kalshi.Fill{
		{TradeID: "bad", Ticker: "TICK", Side: "maybe", Action: "buy", Count: 1, Price: 40, CreatedTime: time.Now().UTC()},
	})
	if err != nil {
		t.Fatalf("UpsertFills() error = %v", err)
	}

	if _, err := s.Fills(); err == nil {
		t.Error("expected load error for unknown side")
	}
}

func TestOpen_BadPathFails(t *testing.T) {
	// The directory does not exist, so the first statement against the
	// lazily-opened connection fails.
	if _, err := Open(filepath.Join(t.TempDir(), "missing", "kpr.db")); err == nil {
		t.Fatal("expected error opening database in a missing directory")
	}
}
