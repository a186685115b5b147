package kalshipnl

import (
	"time"

	"github.com/shopspring/decimal"
)

// t0 is an arbitrary fixed base time; tests offset from it so results are
// reproducible.
var t0 = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

// at returns t0 shifted by n minutes.
func at(n int) time.Time { return t0.Add(time.Duration(n) * time.Minute) }

// trade is a helper to build a valid EffectiveTrade from consts.
func trade(ticker string, side Side, action Action, qty int64, price Cents, n int) EffectiveTrade {
	t, err := NewEffectiveTrade(ticker, side, action, qty, price, 0, at(n))
	if err != nil {
		panic(err)
	}
	return t
}

// mustDecimal parses a decimal literal, panicking on malformed input.
func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// settled is a helper to build a valid Settlement from consts.
func settled(ticker string, result MarketResult, value Cents, feeDollars float64, n int) Settlement {
	s, err := NewSettlement(ticker, result, value, decimal.NewFromFloat(feeDollars), at(n))
	if err != nil {
		panic(err)
	}
	return s
}
