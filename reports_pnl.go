package kalshipnl

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TickerPnL holds the realized results for a single market.
type TickerPnL struct {
	Ticker        string
	RealizedCents Cents // net of fees
	FeeCents      Cents
	WinCount      int
	LossCount     int
	OpenQuantity  int64 // contracts left open (void settlements, unsettled markets)
}

// PnLReport aggregates every ClosedPnLEvent, real and synthetic, into the
// numbers the trader reconciles against the exchange. It is a derived view:
// computed fresh from fills and settlements on each invocation, never
// persisted, and bit-identical for identical inputs.
type PnLReport struct {
	TotalRealizedCents Cents // net of fees
	TotalFeeCents      Cents
	WinCount           int
	LossCount          int
	AvgWinCents        Cents
	AvgLossCents       Cents // absolute value
	Tickers            []TickerPnL
	Events             []ClosedPnLEvent
	Warnings           []Warning
}

// NewPnLReport computes realized P&L from a full fill history and the
// settlement records for the account.
//
// Fills are replayed chronologically through the FIFO lot book (ties on
// executed time keep their input order), settlements then synthesize
// closing trades for anything still open, and settlement-reported fees are
// subtracted once per ticker. An *InsufficientLotsError aborts the whole
// report; unusable settlements are returned as warnings on a complete
// report for the remaining tickers.
func NewPnLReport(fills []EffectiveTrade, settlements []Settlement) (*PnLReport, error) {
	trades := make([]EffectiveTrade, len(fills))
	copy(trades, fills)
	sortTradesChronologically(trades)

	book := NewLotBook()
	events, err := book.ProcessTrades(trades)
	if err != nil {
		return nil, err
	}

	// Settlement synthesis runs strictly after the full real-fill pass.
	synthetic, warnings := synthesizeSettlements(book, settlements)
	syntheticEvents, err := book.ProcessTrades(synthetic)
	if err != nil {
		return nil, err
	}
	events = append(events, syntheticEvents...)

	fees := feeTotalsCents(settlements)

	report := &PnLReport{Events: events, Warnings: warnings}

	perTicker := make(map[string]*TickerPnL)
	tickerEntry := func(ticker string) *TickerPnL {
		entry, ok := perTicker[ticker]
		if !ok {
			entry = &TickerPnL{Ticker: ticker}
			perTicker[ticker] = entry
		}
		return entry
	}

	var winSum, lossSum Cents
	for _, event := range events {
		entry := tickerEntry(event.Ticker)
		entry.RealizedCents += event.RealizedCents
		report.TotalRealizedCents += event.RealizedCents

		switch {
		case event.RealizedCents > 0:
			entry.WinCount++
			report.WinCount++
			winSum += event.RealizedCents
		case event.RealizedCents < 0:
			entry.LossCount++
			report.LossCount++
			lossSum += -event.RealizedCents
		}
	}

	for ticker, feeCents := range fees {
		entry := tickerEntry(ticker)
		entry.FeeCents = feeCents
		entry.RealizedCents -= feeCents
		report.TotalFeeCents += feeCents
		report.TotalRealizedCents -= feeCents
	}

	for key, queue := range book.queues {
		if open := queue.open(); open > 0 {
			tickerEntry(key.Ticker).OpenQuantity += open
		}
	}

	report.AvgWinCents = averageCents(winSum, report.WinCount)
	report.AvgLossCents = averageCents(lossSum, report.LossCount)

	report.Tickers = make([]TickerPnL, 0, len(perTicker))
	for _, entry := range perTicker {
		report.Tickers = append(report.Tickers, *entry)
	}
	sort.Slice(report.Tickers, func(i, j int) bool {
		return report.Tickers[i].Ticker < report.Tickers[j].Ticker
	})

	return report, nil
}

// ForTicker returns the breakdown for one ticker, if present.
func (r *PnLReport) ForTicker(ticker string) (TickerPnL, bool) {
	for _, entry := range r.Tickers {
		if entry.Ticker == ticker {
			return entry, true
		}
	}
	return TickerPnL{}, false
}

// averageCents divides sum by count rounding half-up. Integer floor
// division would bias every average downward, which matters when
// reconciling against the exchange's reported figures.
func averageCents(sum Cents, count int) Cents {
	if count == 0 {
		return 0
	}
	avg := sum.Decimal().DivRound(decimal.NewFromInt(int64(count)), 0)
	return Cents(avg.IntPart())
}
