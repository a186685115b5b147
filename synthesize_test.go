package kalshipnl

import "testing"

func settleBook(t *testing.T, trades []EffectiveTrade) *LotBook {
	t.Helper()
	book := NewLotBook()
	if _, err := book.ProcessTrades(trades); err != nil {
		t.Fatalf("ProcessTrades() error = %v", err)
	}
	return book
}

func TestSynthesize_BinaryYesClosesAt100(t *testing.T) {
	book := settleBook(t, []EffectiveTrade{trade("TICK", Yes, Buy, 100, 40, 0)})

	synthetic, warnings := synthesizeSettlements(book, []Settlement{
		settled("TICK", ResultYes, 0, 0, 10),
	})

	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(synthetic) != 1 {
		t.Fatalf("expected 1 synthetic trade, got %d", len(synthetic))
	}
	s := synthetic[0]
	if s.Action != Sell || s.Side != Yes || s.Quantity != 100 || s.PriceCents != 100 {
		t.Errorf("synthetic trade = %+v, want sell 100 yes @100¢", s)
	}
	if !s.Synthetic() {
		t.Error("trade must be marked synthetic")
	}
	if s.FeeCents != 0 {
		t.Errorf("synthetic trade fee = %d, want 0", s.FeeCents)
	}
	if !s.ExecutedAt.Equal(at(10)) {
		t.Errorf("synthetic trade executed at %v, want settlement time %v", s.ExecutedAt, at(10))
	}
}

func TestSynthesize_BinaryNoClosesYesAtZeroAndNoAt100(t *testing.T) {
	book := settleBook(t, []EffectiveTrade{
		trade("TICK", Yes, Buy, 100, 40, 0),
		trade("TICK", No, Buy, 20, 60, 1),
	})

	synthetic, _ := synthesizeSettlements(book, []Settlement{
		settled("TICK", ResultNo, 0, 0, 10),
	})

	if len(synthetic) != 2 {
		t.Fatalf("expected 2 synthetic trades, got %d", len(synthetic))
	}
	if synthetic[0].Side != Yes || synthetic[0].PriceCents != 0 {
		t.Errorf("yes side must close at 0¢, got %+v", synthetic[0])
	}
	if synthetic[1].Side != No || synthetic[1].PriceCents != 100 {
		t.Errorf("no side must close at 100¢, got %+v", synthetic[1])
	}
}

func TestSynthesize_ScalarUsesValueAndComplement(t *testing.T) {
	book := settleBook(t, []EffectiveTrade{
		trade("TICK", Yes, Buy, 50, 30, 0),
		trade("TICK", No, Buy, 10, 20, 1),
	})

	synthetic, _ := synthesizeSettlements(book, []Settlement{
		settled("TICK", ResultScalar, 65, 0, 10),
	})

	if len(synthetic) != 2 {
		t.Fatalf("expected 2 synthetic trades, got %d", len(synthetic))
	}
	if synthetic[0].PriceCents != 65 {
		t.Errorf("yes side scalar close = %d¢, want 65¢", synthetic[0].PriceCents)
	}
	if synthetic[1].PriceCents != 35 {
		t.Errorf("no side scalar close = %d¢, want 35¢", synthetic[1].PriceCents)
	}
}

func TestSynthesize_ScalarValueClamped(t *testing.T) {
	book := settleBook(t, []EffectiveTrade{trade("TICK", Yes, Buy, 1, 30, 0)})

	synthetic, _ := synthesizeSettlements(book, []Settlement{
		settled("TICK", ResultScalar, 140, 0, 10),
	})

	if len(synthetic) != 1 || synthetic[0].PriceCents != 100 {
		t.Fatalf("scalar value above 100 must clamp to 100¢, got %+v", synthetic)
	}
}

func TestSynthesize_VoidProducesNothing(t *testing.T) {
	book := settleBook(t, []EffectiveTrade{trade("TICK", Yes, Buy, 10, 40, 0)})

	synthetic, warnings := synthesizeSettlements(book, []Settlement{
		settled("TICK", ResultVoid, 0, 0, 10),
	})

	if len(synthetic) != 0 {
		t.Errorf("void settlement must synthesize nothing, got %v", synthetic)
	}
	if len(warnings) != 0 {
		t.Errorf("void settlement is not a warning, got %v", warnings)
	}
}

func TestSynthesize_UnknownResultWarns(t *testing.T) {
	book := settleBook(t, []EffectiveTrade{trade("TICK", Yes, Buy, 10, 40, 0)})

	synthetic, warnings := synthesizeSettlements(book, []Settlement{
		settled("TICK", MarketResult("mystery"), 0, 0, 10),
	})

	if len(synthetic) != 0 {
		t.Errorf("unknown result must synthesize nothing, got %v", synthetic)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].Ticker != "TICK" {
		t.Errorf("warning must name the ticker, got %q", warnings[0].Ticker)
	}
}

func TestSynthesize_RepeatedSettlementRowsCloseOnce(t *testing.T) {
	book := settleBook(t, []EffectiveTrade{trade("TICK", Yes, Buy, 10, 40, 0)})

	synthetic, warnings := synthesizeSettlements(book, []Settlement{
		settled("TICK", ResultYes, 0, 0.50, 10),
		settled("TICK", ResultYes, 0, 0.25, 11),
	})

	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(synthetic) != 1 {
		t.Fatalf("expected 1 synthetic trade, got %d", len(synthetic))
	}
	if synthetic[0].Quantity != 10 || !synthetic[0].ExecutedAt.Equal(at(10)) {
		t.Errorf("synthetic trade = %+v, want 10 contracts closed by the first row", synthetic[0])
	}
}

func TestSynthesize_FullyClosedTickerSynthesizesNothing(t *testing.T) {
	book := settleBook(t, []EffectiveTrade{
		trade("TICK", Yes, Buy, 10, 40, 0),
		trade("TICK", Yes, Sell, 10, 55, 1),
	})

	synthetic, _ := synthesizeSettlements(book, []Settlement{
		settled("TICK", ResultYes, 0, 0, 10),
	})

	if len(synthetic) != 0 {
		t.Errorf("no open lots means no synthetic close, got %v", synthetic)
	}
}
