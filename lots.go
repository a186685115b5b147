package kalshipnl

import "time"

// lot represents one unconsumed acquisition of contracts, used for FIFO
// cost basis. A lot with zero remaining quantity is consumed and removed
// from its queue.
type lot struct {
	AcquiredAt        time.Time
	QuantityRemaining int64
	UnitCostCents     Cents // per-contract price paid at acquisition
}

// lots is a FIFO queue of open lots for one (ticker, side), oldest first.
type lots []lot

// open returns the total open quantity across the queue.
func (l lots) open() int64 {
	var total int64
	for _, currentLot := range l {
		total += currentLot.QuantityRemaining
	}
	return total
}

// closedPortion is one slice of a sell matched against a single lot.
type closedPortion struct {
	Quantity      int64
	UnitCostCents Cents
}

// consume matches a sell quantity against the queue in FIFO order,
// following standard cost-basis accounting: the earliest-acquired lot is
// deemed sold first. It returns the consumed portions and the remaining
// queue. The caller must ensure quantity <= l.open(); consume assumes
// inventory is sufficient.
func (l lots) consume(quantity int64) ([]closedPortion, lots) {
	var portions []closedPortion
	var remaining lots

	for _, currentLot := range l {
		if quantity == 0 {
			remaining = append(remaining, currentLot)
			continue
		}

		if currentLot.QuantityRemaining > quantity {
			// Partial sale from this lot.
			portions = append(portions, closedPortion{Quantity: quantity, UnitCostCents: currentLot.UnitCostCents})
			currentLot.QuantityRemaining -= quantity
			quantity = 0
			remaining = append(remaining, currentLot)
		} else {
			// Full sale of this lot.
			portions = append(portions, closedPortion{Quantity: currentLot.QuantityRemaining, UnitCostCents: currentLot.UnitCostCents})
			quantity -= currentLot.QuantityRemaining
		}
	}
	return portions, remaining
}
