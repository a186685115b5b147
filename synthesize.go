package kalshipnl

import "encoding/json"

// Warning records a settlement the reconciliation could not use. The
// summary is still produced, but it is incomplete for the named ticker.
// Partial failure is part of the return value rather than hidden in
// control flow.
type Warning struct {
	Ticker string
	Err    error
}

func (w Warning) String() string { return w.Err.Error() }

// MarshalJSON flattens the wrapped error into a message string.
func (w Warning) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Ticker  string `json:"ticker"`
		Message string `json:"message"`
	}{Ticker: w.Ticker, Message: w.Err.Error()})
}

// synthesizeSettlements fabricates the closing trades each settlement
// implies for contracts still open in the book, implementing the exchange
// rule that settlement acts as a sell at the settlement price.
//
// It must run once, strictly after the full real-fill pass: a settlement
// cannot precede the position it closes, and running it against the
// post-fills book is what makes partial-exit-then-hold positions come out
// right. Void settlements are refunds and synthesize nothing; unknown
// results synthesize nothing and are reported as warnings.
func synthesizeSettlements(book *LotBook, settlements []Settlement) ([]EffectiveTrade, []Warning) {
	var synthetic []EffectiveTrade
	var warnings []Warning

	// A ticker can carry several settlement rows. The first usable row
	// closes the open quantity, so later rows must see it as spent or they
	// would fabricate a second full-size close.
	remaining := make(map[lotKey]int64)
	open := func(ticker string, side Side) int64 {
		key := lotKey{Ticker: ticker, Side: side}
		qty, seen := remaining[key]
		if !seen {
			qty = book.OpenQuantity(ticker, side)
			remaining[key] = qty
		}
		return qty
	}
	spend := func(ticker string, side Side) {
		remaining[lotKey{Ticker: ticker, Side: side}] = 0
	}

	for _, settlement := range settlements {
		if settlement.Result == ResultVoid {
			continue
		}
		yesPrice, noPrice, ok := settlement.prices()
		if !ok {
			warnings = append(warnings, Warning{
				Ticker: settlement.Ticker,
				Err:    &UnknownSettlementResultError{Ticker: settlement.Ticker, Result: settlement.Result},
			})
			continue
		}

		if qty := open(settlement.Ticker, Yes); qty > 0 {
			synthetic = append(synthetic, newSyntheticSell(settlement.Ticker, Yes, qty, yesPrice, settlement.SettledAt))
			spend(settlement.Ticker, Yes)
		}
		if qty := open(settlement.Ticker, No); qty > 0 {
			synthetic = append(synthetic, newSyntheticSell(settlement.Ticker, No, qty, noPrice, settlement.SettledAt))
			spend(settlement.Ticker, No)
		}
	}
	return synthetic, warnings
}
