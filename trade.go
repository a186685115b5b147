package kalshipnl

import (
	"fmt"
	"time"
)

// EffectiveTrade is the single trade shape the FIFO engine consumes. Real
// fills from the exchange and synthetic closing fills fabricated at
// settlement are both expressed as EffectiveTrades, so every cent of
// realized P&L flows through one code path.
type EffectiveTrade struct {
	Ticker     string
	Side       Side
	Action     Action
	Quantity   int64
	PriceCents Cents // per-contract price, 0..100
	FeeCents   Cents // informational; fees are reconciled from settlements
	ExecutedAt time.Time

	synthetic bool
}

// NewEffectiveTrade validates and builds a trade from a real fill.
// Malformed values are rejected here, at the ingestion boundary, so the
// FIFO engine never has to defend against them.
func NewEffectiveTrade(ticker string, side Side, action Action, quantity int64, priceCents, feeCents Cents, executedAt time.Time) (EffectiveTrade, error) {
	if ticker == "" {
		return EffectiveTrade{}, fmt.Errorf("trade has no ticker")
	}
	switch side {
	case Yes, No:
	default:
		return EffectiveTrade{}, fmt.Errorf("unknown trade side %q for %s", side, ticker)
	}
	switch action {
	case Buy, Sell:
	default:
		return EffectiveTrade{}, fmt.Errorf("unknown trade action %q for %s", action, ticker)
	}
	if quantity <= 0 {
		return EffectiveTrade{}, fmt.Errorf("trade quantity must be positive, got %d", quantity)
	}
	if priceCents < 0 || priceCents > 100 {
		return EffectiveTrade{}, fmt.Errorf("trade price %d¢ outside 0..100 for %s", priceCents, ticker)
	}
	if feeCents < 0 {
		return EffectiveTrade{}, fmt.Errorf("trade fee must not be negative, got %d for %s", feeCents, ticker)
	}
	return EffectiveTrade{
		Ticker:     ticker,
		Side:       side,
		Action:     action,
		Quantity:   quantity,
		PriceCents: priceCents,
		FeeCents:   feeCents,
		ExecutedAt: executedAt,
	}, nil
}

// newSyntheticSell fabricates the closing trade a settlement implies for
// contracts still open on one side of a market. Synthetic trades carry no
// fee: the exchange reports trading fees only on settlement records, and
// the fee reconciler applies those once per ticker.
func newSyntheticSell(ticker string, side Side, quantity int64, priceCents Cents, settledAt time.Time) EffectiveTrade {
	return EffectiveTrade{
		Ticker:     ticker,
		Side:       side,
		Action:     Sell,
		Quantity:   quantity,
		PriceCents: priceCents,
		ExecutedAt: settledAt,
		synthetic:  true,
	}
}

// Synthetic reports whether the trade was fabricated from a settlement
// rather than executed on the exchange.
func (t EffectiveTrade) Synthetic() bool { return t.synthetic }

// TotalCostCents is the notional value of the trade (price times quantity).
func (t EffectiveTrade) TotalCostCents() Cents {
	return t.PriceCents * Cents(t.Quantity)
}
