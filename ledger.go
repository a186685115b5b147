package kalshipnl

import (
	"fmt"
	"sort"
	"time"
)

// lotKey identifies one FIFO queue: contracts on one side of one market.
type lotKey struct {
	Ticker string
	Side   Side
}

// LotBook holds the open-lot state for every (ticker, side) while a stream
// of trades is replayed. It is transient: built inside one P&L computation
// and discarded afterward.
type LotBook struct {
	queues map[lotKey]lots
}

// NewLotBook returns an empty lot book.
func NewLotBook() *LotBook {
	return &LotBook{queues: make(map[lotKey]lots)}
}

// OpenQuantity returns the total open contracts for a (ticker, side).
func (b *LotBook) OpenQuantity(ticker string, side Side) int64 {
	return b.queues[lotKey{Ticker: ticker, Side: side}].open()
}

// ClosedPnLEvent records one transition of contracts from open to closed,
// either by a real sell or by a settlement-synthesized one. Each unit of
// closed quantity appears in exactly one event.
type ClosedPnLEvent struct {
	Ticker          string
	Side            Side
	Quantity        int64
	EntryPriceCents Cents
	ExitPriceCents  Cents
	RealizedCents   Cents
	ClosedAt        time.Time
	Synthetic       bool
}

// ProcessTrades replays a chronological stream of trades against the book.
// Buys push new lots onto the tail of their queue; sells consume from the
// head (FIFO) and emit one ClosedPnLEvent per consumed lot portion, with
// realized = (exit - entry) * quantity.
//
// Trades must already be sorted by execution time; ProcessTrades preserves
// the given order for equal timestamps. A sell exceeding the open quantity
// for its (ticker, side) aborts with *InsufficientLotsError: fabricating
// negative inventory would silently corrupt every later number.
func (b *LotBook) ProcessTrades(trades []EffectiveTrade) ([]ClosedPnLEvent, error) {
	var events []ClosedPnLEvent

	for _, trade := range trades {
		key := lotKey{Ticker: trade.Ticker, Side: trade.Side}
		queue := b.queues[key]

		switch trade.Action {
		case Buy:
			b.queues[key] = append(queue, lot{
				AcquiredAt:        trade.ExecutedAt,
				QuantityRemaining: trade.Quantity,
				UnitCostCents:     trade.PriceCents,
			})
		case Sell:
			if available := queue.open(); trade.Quantity > available {
				return nil, &InsufficientLotsError{
					Ticker:    trade.Ticker,
					Side:      trade.Side,
					Requested: trade.Quantity,
					Available: available,
				}
			}
			portions, remaining := queue.consume(trade.Quantity)
			b.queues[key] = remaining
			for _, portion := range portions {
				events = append(events, ClosedPnLEvent{
					Ticker:          trade.Ticker,
					Side:            trade.Side,
					Quantity:        portion.Quantity,
					EntryPriceCents: portion.UnitCostCents,
					ExitPriceCents:  trade.PriceCents,
					RealizedCents:   (trade.PriceCents - portion.UnitCostCents) * Cents(portion.Quantity),
					ClosedAt:        trade.ExecutedAt,
					Synthetic:       trade.Synthetic(),
				})
			}
		default:
			return nil, fmt.Errorf("unknown trade action %q for %s", trade.Action, trade.Ticker)
		}
	}
	return events, nil
}

// sortTradesChronologically orders trades by execution time ascending.
// The sort is stable: fills sharing a timestamp keep their original
// API-response order, which is the documented FIFO tiebreak.
func sortTradesChronologically(trades []EffectiveTrade) {
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].ExecutedAt.Before(trades[j].ExecutedAt)
	})
}
