package kalshipnl

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Cents is an exact monetary amount in integer US cents. All contract
// prices and realized amounts are kept in cents so that FIFO matching is
// free of floating point drift.
type Cents int64

// CentsFromDollars converts a dollar amount (as reported by the exchange,
// e.g. settlement fee_cost) to cents, rounding half-up.
func CentsFromDollars(d decimal.Decimal) Cents {
	return Cents(d.Shift(2).Round(0).IntPart())
}

// Decimal returns the amount as a decimal number of cents.
func (c Cents) Decimal() decimal.Decimal { return decimal.NewFromInt(int64(c)) }

// String formats the amount as US dollars, e.g. "$1.25", "-$0.40".
func (c Cents) String() string {
	return money.New(int64(c), money.USD).Display()
}

// SignedString renders the amount with an explicit sign; zero renders as "-".
func (c Cents) SignedString() string {
	if c == 0 {
		return "-"
	}
	if c > 0 {
		return "+" + c.String()
	}
	return c.String()
}
