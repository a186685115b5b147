package kalshipnl

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSettlement_Prices(t *testing.T) {
	cases := []struct {
		name    string
		result  MarketResult
		value   Cents
		wantYes Cents
		wantNo  Cents
		wantOK  bool
	}{
		{"yes", ResultYes, 0, 100, 0, true},
		{"no", ResultNo, 0, 0, 100, true},
		{"scalar mid", ResultScalar, 65, 65, 35, true},
		{"scalar clamped high", ResultScalar, 130, 100, 0, true},
		{"scalar clamped low", ResultScalar, -5, 0, 100, true},
		{"void", ResultVoid, 0, 0, 0, false},
		{"unknown", MarketResult("mystery"), 0, 0, 0, false},
	}
	for _, tc := range cases {
		s := settled("TICK", tc.result, tc.value, 0, 0)
		yes, no, ok := s.prices()
		if ok != tc.wantOK {
			t.Errorf("%s: ok = %v, want %v", tc.name, ok, tc.wantOK)
			continue
		}
		if ok && (yes != tc.wantYes || no != tc.wantNo) {
			t.Errorf("%s: prices = (%d, %d), want (%d, %d)", tc.name, yes, no, tc.wantYes, tc.wantNo)
		}
	}
}

func TestNewSettlement_RejectsMalformedInputs(t *testing.T) {
	if _, err := NewSettlement("", ResultYes, 0, decimal.Zero, at(0)); err == nil {
		t.Error("expected error for empty ticker")
	}
	if _, err := NewSettlement("TICK", ResultYes, 0, decimal.NewFromFloat(-0.5), at(0)); err == nil {
		t.Error("expected error for negative fee")
	}
}
