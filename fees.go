package kalshipnl

import "github.com/shopspring/decimal"

// feeTotalsCents sums settlement-reported trading fees per ticker,
// converting dollars to cents with half-up rounding. A ticker can carry
// several settlement rows; their fees are summed in dollars first so cent
// rounding happens once per ticker.
//
// Settlement records are the only place the exchange reports trading fees
// (buys and sells combined), so this single per-ticker figure is
// authoritative and is subtracted exactly once, after FIFO closing. It is
// never prorated across sides or lots.
func feeTotalsCents(settlements []Settlement) map[string]Cents {
	dollars := make(map[string]decimal.Decimal)
	for _, settlement := range settlements {
		dollars[settlement.Ticker] = dollars[settlement.Ticker].Add(settlement.FeeCostDollars)
	}

	cents := make(map[string]Cents, len(dollars))
	for ticker, total := range dollars {
		cents[ticker] = CentsFromDollars(total)
	}
	return cents
}
