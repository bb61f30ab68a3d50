package capedge

import "testing"

func TestFormatMarketCap(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"unknown", 0, "-"},
		{"negative", -5, "-"},
		{"billions", 1.25e9, "$1.25B"},
		{"trillions still in billions", 2.89e12, "$2,890.00B"},
		{"millions", 3.5e8, "$350.00M"},
		{"below a million groups digits", 123456, "$123,456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMarketCap(tt.value); got != tt.want {
				t.Errorf("FormatMarketCap(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(187.43); got != "$187.43" {
		t.Errorf("FormatPrice(187.43) = %q, want %q", got, "$187.43")
	}
	if got := FormatPrice(0); got != "-" {
		t.Errorf("FormatPrice(0) = %q, want %q", got, "-")
	}
}
