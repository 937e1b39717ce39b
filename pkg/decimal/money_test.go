package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}

	if got := NewMoneyFromInt(42).String(); got != "42.00" {
		t.Fatalf("NewMoneyFromInt display mismatch: got %s", got)
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestRounding(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
		{"-2.345", "-2.35"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		got := m.Round().String()
		if got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := NewMoney(10.10)
	b := NewMoney(5.05)
	if got := a.Add(b).String(); got != "15.15" {
		t.Fatalf("Add got %s", got)
	}
	if got := a.Sub(b).String(); got != "5.05" {
		t.Fatalf("Sub got %s", got)
	}

	factor := stddec.NewFromFloat(2.5)
	if got := a.Mul(factor).String(); got != "25.25" {
		t.Fatalf("Mul got %s", got)
	}
	if got := a.Div(stddec.NewFromFloat(2)).String(); got != "5.05" {
		t.Fatalf("Div got %s", got)
	}
}

func TestDivisionPrecision(t *testing.T) {
	// One third compounded back out should not drift at cent scale.
	third := NewMoney(1).Div(stddec.NewFromInt(3))
	back := third.Mul(stddec.NewFromInt(3))
	diff := NewMoney(1).Sub(back)
	tolerance, _ := NewMoneyFromString("0.0000000000000000000000000000000001")
	if diff.Decimal.Abs().GreaterThan(tolerance.Decimal) {
		t.Fatalf("division precision too coarse: 1 - (1/3)*3 = %s", diff.Decimal)
	}
}

func TestPercentOf(t *testing.T) {
	salary := NewMoney(120000)
	if got := salary.PercentOf(stddec.NewFromFloat(3.5)).String(); got != "4200.00" {
		t.Fatalf("PercentOf got %s want 4200.00", got)
	}
	if got := salary.PercentOf(stddec.Zero).String(); got != "0.00" {
		t.Fatalf("PercentOf zero got %s", got)
	}
}

func TestGrowth(t *testing.T) {
	balance := NewMoney(1000)
	rate := stddec.NewFromFloat(0.07)

	grown := balance.Grow(rate)
	if got := grown.String(); got != "1070.00" {
		t.Fatalf("Grow got %s want 1070.00", got)
	}

	shrunk := balance.Grow(stddec.NewFromFloat(-0.5))
	if got := shrunk.String(); got != "500.00" {
		t.Fatalf("Grow with negative rate got %s want 500.00", got)
	}

	compounded := balance.CompoundGrowth(rate, 3)
	byHand := balance.Grow(rate).Grow(rate).Grow(rate)
	if !compounded.Round().Equal(byHand.Round()) {
		t.Fatalf("CompoundGrowth mismatch: got %s want %s", compounded, byHand)
	}
	if !balance.CompoundGrowth(rate, 0).Equal(balance) {
		t.Fatalf("CompoundGrowth with zero periods should be identity")
	}
}

func TestClampMin(t *testing.T) {
	if got := NewMoney(-250).ClampMin(Zero()); !got.IsZero() {
		t.Fatalf("ClampMin got %s want 0", got)
	}
	if got := NewMoney(250).ClampMin(Zero()); !got.Equal(NewMoney(250)) {
		t.Fatalf("ClampMin should not alter values above the floor: got %s", got)
	}
}

func TestComparisonsAndUtils(t *testing.T) {
	a := NewMoney(10)
	b := NewMoney(20)

	if !b.GreaterThan(a) || !b.GreaterThanOrEqual(a) {
		t.Fatalf("GreaterThan/GreaterThanOrEqual logic failure")
	}
	if !a.LessThan(b) || !a.LessThanOrEqual(b) {
		t.Fatalf("LessThan/LessThanOrEqual logic failure")
	}
	if !a.Equal(NewMoney(10)) || b.Equal(a) {
		t.Fatalf("Equal logic failure")
	}

	if !Zero().IsZero() {
		t.Fatalf("Zero should be zero")
	}
	if !b.IsPositive() || NewMoney(-1).IsPositive() {
		t.Fatalf("IsPositive logic failure")
	}
	if !NewMoney(-0.01).IsNegative() || a.IsNegative() {
		t.Fatalf("IsNegative logic failure")
	}

	if !Min(a, b).Equal(a) {
		t.Fatalf("Min failed")
	}
	if !Max(a, b).Equal(b) {
		t.Fatalf("Max failed")
	}
}

func TestStringAndFormat(t *testing.T) {
	m := NewMoney(1234.5)
	if got := m.String(); got != "1234.50" {
		t.Fatalf("String got %s", got)
	}
	if got := m.Format(); got != "$1234.50" {
		t.Fatalf("Format got %s", got)
	}
}
