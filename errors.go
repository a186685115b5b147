package kalshipnl

import "fmt"

// InsufficientLotsError reports a sell that would consume more contracts
// than are on record as open for its (ticker, side). It signals corrupted or
// incomplete fill history: clamping it away would yield a plausible-looking
// but wrong P&L number, so the whole computation is aborted instead.
type InsufficientLotsError struct {
	Ticker    string
	Side      Side
	Requested int64
	Available int64
}

func (e *InsufficientLotsError) Error() string {
	return fmt.Sprintf("insufficient open lots for %s %s: selling %d with only %d open",
		e.Ticker, e.Side, e.Requested, e.Available)
}

// UnknownSettlementResultError reports a settlement whose market result is
// not one of yes/no/scalar/void. The settlement is skipped but the summary
// is incomplete for that ticker, so callers surface it as a warning.
type UnknownSettlementResultError struct {
	Ticker string
	Result MarketResult
}

func (e *UnknownSettlementResultError) Error() string {
	return fmt.Sprintf("settlement for %s has unknown market result %q", e.Ticker, e.Result)
}
