package kalshipnl

import "fmt"

// Side identifies which half of a binary market a contract belongs to.
type Side string

const (
	Yes Side = "yes"
	No  Side = "no"
)

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "yes":
		return Yes, nil
	case "no":
		return No, nil
	default:
		return "", fmt.Errorf("unknown side: %q", s)
	}
}

// Action is the direction of a trade.
type Action string

const (
	Buy  Action = "buy"
	Sell Action = "sell"
)

// ParseAction parses a string into an Action.
func ParseAction(s string) (Action, error) {
	switch s {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown action: %q", s)
	}
}
