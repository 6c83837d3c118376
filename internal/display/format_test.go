package display

import (
	"math"
	"testing"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234.5, "R$ 1.234,50"},
		{0, "R$ 0,00"},
		{89.9, "R$ 89,90"},
		{1000000, "R$ 1.000.000,00"},
		{-12.3, "-R$ 12,30"},
		{math.NaN(), "R$ 0,00"},
		{math.Inf(1), "R$ 0,00"},
	}
	for _, tc := range cases {
		if got := Currency(tc.in); got != tc.want {
			t.Errorf("Currency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDiscountPercent(t *testing.T) {
	if got := DiscountPercent(100, 80); got != 20 {
		t.Fatalf("want 20, got %d", got)
	}
	if got := DiscountPercent(0, 80); got != 0 {
		t.Fatalf("list=0 must not divide by zero; got %d", got)
	}
	if got := DiscountPercent(math.NaN(), 50); got != 0 {
		t.Fatalf("NaN list: want 0, got %d", got)
	}
	// sale >= list yields a non-positive value the caller must not show as a deal
	if got := DiscountPercent(80, 100); got > 0 {
		t.Fatalf("sale above list must not be positive; got %d", got)
	}
	if got := DiscountPercent(299.9, 199.9); got != 33 {
		t.Fatalf("want rounded 33, got %d", got)
	}
}

func TestSavingsAmount(t *testing.T) {
	if got := SavingsAmount(100, 80); got != 20 {
		t.Fatalf("want 20, got %v", got)
	}
	if got := SavingsAmount(80, 100); got != 0 {
		t.Fatalf("negative saving must clamp to 0; got %v", got)
	}
}

func TestAbbreviateName(t *testing.T) {
	if got := AbbreviateName("Tinta Acrílica Premium Fosca 18L Branco Neve", 4); got != "Tinta Acrílica Premium Fosca" {
		t.Fatalf("got %q", got)
	}
	if got := AbbreviateName("Joelho PVC", 4); got != "Joelho PVC" {
		t.Fatalf("short names pass through; got %q", got)
	}
	if got := AbbreviateName("Um Dois Três Quatro Cinco", 0); got != "Um Dois Três Quatro" {
		t.Fatalf("maxWords<=0 defaults to 4; got %q", got)
	}
}
