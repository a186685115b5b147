package kalshipnl

// MarketResult is the exchange's final resolution of a market.
type MarketResult string

const (
	ResultYes    MarketResult = "yes"
	ResultNo     MarketResult = "no"
	ResultScalar MarketResult = "scalar"
	// ResultVoid marks an annulled market: open contracts are refunded at
	// cost, so a void settlement never produces realized P&L.
	ResultVoid MarketResult = "void"
)

// Known reports whether the result is one the reconciliation understands.
// Settlements with unknown results are skipped with a warning rather than
// guessed at.
func (r MarketResult) Known() bool {
	switch r {
	case ResultYes, ResultNo, ResultScalar, ResultVoid:
		return true
	default:
		return false
	}
}

func (r MarketResult) String() string { return string(r) }
