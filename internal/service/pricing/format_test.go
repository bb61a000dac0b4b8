package pricing

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount   float64
		currency string
		want     string
	}{
		{5200, "USD", "$5,200"},
		{41000, "HKD", "HK$41,000"},
		{880000, "JPY", "¥880,000"},
		{5950, "EUR", "€5,950"},
		{1234.6, "CHF", "1235"},
	}

	for _, c := range cases {
		if got := FormatAmount(c.amount, c.currency); got != c.want {
			t.Fatalf("FormatAmount(%v, %s) = %q, want %q", c.amount, c.currency, got, c.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	cfg := DefaultConfig()
	want := map[string]string{
		"US":        "Base currency",
		"Hong Kong": "1 USD = 7.85 HKD",
		"Japan":     "1 USD = 150.0 JPY",
		"France":    "1 EUR = 1.0870 USD",
	}
	rates := map[string]float64{"USD": 1, "HKD": 7.85, "JPY": 150, "EUR": 0.92}

	for _, r := range cfg.Regions {
		if got := FormatRate(r, rates[r.Currency]); got != want[r.Name] {
			t.Fatalf("%s: got %q, want %q", r.Name, got, want[r.Name])
		}
	}
}
