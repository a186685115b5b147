package kalshi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// Fill is one executed trade from the portfolio-fills endpoint. Prices are
// integer cents. Fills carry no reliable per-trade fee; trading fees are
// reported on settlement records instead.
type Fill struct {
	TradeID     string    `json:"trade_id"`
	OrderID     string    `json:"order_id"`
	Ticker      string    `json:"ticker"`
	Side        string    `json:"side"`   // "yes" or "no"
	Action      string    `json:"action"` // "buy" or "sell"
	Count       int64     `json:"count"`
	Price       int64     `json:"price"` // cents paid per contract for Side
	YesPrice    int64     `json:"yes_price"`
	NoPrice     int64     `json:"no_price"`
	IsTaker     bool      `json:"is_taker"`
	CreatedTime time.Time `json:"created_time"`
}

// Settlement is one row from the portfolio-settlements endpoint.
// MarketResult is "yes", "no", "scalar", or "void"; SettledValue is the YES
// payout in cents for scalar results. FeeCost is the cumulative trading fee
// for the ticker, in dollars, as a decimal string.
type Settlement struct {
	Ticker       string    `json:"ticker"`
	MarketResult string    `json:"market_result"`
	SettledValue int64     `json:"value"`
	YesCount     int64     `json:"yes_count"`
	NoCount      int64     `json:"no_count"`
	Revenue      int64     `json:"revenue"`
	FeeCost      string    `json:"fee_cost"`
	SettledTime  time.Time `json:"settled_time"`
}

const pageLimit = 200

// GetFills returns the complete fill history for the account, following
// the cursor until the API reports no further pages. Fills come back in
// the API's trade order, which downstream FIFO processing relies on as
// the tiebreak for equal execution times.
func (c *Client) GetFills(ctx context.Context) ([]Fill, error) {
	var fills []Fill
	cursor := ""
	for {
		params := url.Values{}
		params.Set("limit", fmt.Sprint(pageLimit))
		if cursor != "" {
			params.Set("cursor", cursor)
		}

		body, err := c.get(ctx, "/portfolio/fills?"+params.Encode())
		if err != nil {
			return nil, fmt.Errorf("get fills: %w", err)
		}

		var resp struct {
			Fills  []Fill `json:"fills"`
			Cursor string `json:"cursor"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("decode fills: %w", err)
		}

		fills = append(fills, resp.Fills...)
		if resp.Cursor == "" || len(resp.Fills) == 0 {
			return fills, nil
		}
		cursor = resp.Cursor
	}
}

// GetSettlements returns all settlement records for the account, following
// the cursor until exhausted.
func (c *Client) GetSettlements(ctx context.Context) ([]Settlement, error) {
	var settlements []Settlement
	cursor := ""
	for {
		params := url.Values{}
		params.Set("limit", fmt.Sprint(pageLimit))
		if cursor != "" {
			params.Set("cursor", cursor)
		}

		body, err := c.get(ctx, "/portfolio/settlements?"+params.Encode())
		if err != nil {
			return nil, fmt.Errorf("get settlements: %w", err)
		}

		var resp struct {
			Settlements []Settlement `json:"settlements"`
			Cursor      string       `json:"cursor"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("decode settlements: %w", err)
		}

		settlements = append(settlements, resp.Settlements...)
		if resp.Cursor == "" || len(resp.Settlements) == 0 {
			return settlements, nil
		}
		cursor = resp.Cursor
	}
}
