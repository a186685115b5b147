package kalshipnl

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Settlement is the exchange's final resolution of a market, as synced from
// the portfolio-settlements endpoint. It is consumed read-only.
//
// FeeCostDollars is the cumulative trading fee for all of the ticker's
// activity, buys and sells combined. It is not a settlement-specific charge,
// which is why fees are reconciled once per ticker rather than prorated
// across fills.
type Settlement struct {
	Ticker         string
	Result         MarketResult
	ValueCents     Cents // YES payout, meaningful only for scalar results
	FeeCostDollars decimal.Decimal
	SettledAt      time.Time
}

// NewSettlement validates and builds a settlement record.
func NewSettlement(ticker string, result MarketResult, valueCents Cents, feeCostDollars decimal.Decimal, settledAt time.Time) (Settlement, error) {
	if ticker == "" {
		return Settlement{}, fmt.Errorf("settlement has no ticker")
	}
	if feeCostDollars.IsNegative() {
		return Settlement{}, fmt.Errorf("settlement fee for %s must not be negative, got %s", ticker, feeCostDollars)
	}
	return Settlement{
		Ticker:         ticker,
		Result:         result,
		ValueCents:     valueCents,
		FeeCostDollars: feeCostDollars,
		SettledAt:      settledAt,
	}, nil
}

// prices resolves the per-side closing prices the settlement implies.
// A settled market pays holders of the winning side 100¢ per contract and
// the losing side nothing; a scalar market pays the settlement value on the
// YES side and its complement on the NO side.
//
// ok is false for void results (refunds, no synthetic close) and for
// unknown results (the caller records a warning).
func (s Settlement) prices() (yesPrice, noPrice Cents, ok bool) {
	switch s.Result {
	case ResultYes:
		return 100, 0, true
	case ResultNo:
		return 0, 100, true
	case ResultScalar:
		v := s.ValueCents
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		return v, 100 - v, true
	default:
		return 0, 0, false
	}
}
