package pricing

import "testing"

func TestHomeRegionFromURL(t *testing.T) {
	cfg := DefaultConfig()
	cases := map[string]string{
		"https://www.chanel.com/ja_JP/fashion/p/A01112/":        "Japan",
		"https://www.chanel.com/fr/mode/p/A01112/":              "France",
		"https://www.hermes.com/hk/en/product/kelly-25/":        "Hong Kong",
		"https://www.louisvuitton.com/zh_HK/products/neverfull": "Hong Kong",
		"https://www.harrywinston.com/en/products/ribbon":       "US",
		"Chanel classic flap /ja/":                              "US",
	}
	for url, want := range cases {
		if got := cfg.HomeRegion(url).Name; got != want {
			t.Fatalf("HomeRegion(%q) = %s, want %s", url, got, want)
		}
	}
}

func TestWithFallbackRatesOverridesCaseInsensitively(t *testing.T) {
	cfg := DefaultConfig().WithFallbackRates(map[string]float64{"jpy": 155, "EUR": -1, "USD": 2})

	jp, _ := cfg.Region("Japan")
	if jp.FallbackRate != 155 {
		t.Fatalf("expected JPY fallback 155, got %v", jp.FallbackRate)
	}
	fr, _ := cfg.Region("france")
	if fr.FallbackRate != 0.92 {
		t.Fatalf("non-positive override must be ignored, got %v", fr.FallbackRate)
	}
	us, _ := cfg.Region("US")
	if us.FallbackRate != 1 {
		t.Fatalf("base currency must stay 1, got %v", us.FallbackRate)
	}

	orig, _ := DefaultConfig().Region("Japan")
	if orig.FallbackRate != 150 {
		t.Fatalf("default config mutated")
	}
}

func TestResolveRatesFallsBackPerCurrency(t *testing.T) {
	snap := ResolveRates(DefaultConfig(), map[string]float64{"HKD": 7.8, "JPY": 0})

	if snap.Rates["HKD"] != 7.8 || snap.Rates["JPY"] != 150 || snap.Rates["EUR"] != 0.92 || snap.Rates["USD"] != 1 {
		t.Fatalf("unexpected rates %v", snap.Rates)
	}
	if len(snap.Fallbacks) != 2 || snap.Fallbacks[0] != "EUR" || snap.Fallbacks[1] != "JPY" {
		t.Fatalf("unexpected fallbacks %v", snap.Fallbacks)
	}
}
