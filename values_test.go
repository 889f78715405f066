package tenk

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"$416,161", 416161, false},
		{"(1,234)", -1234, false},
		{"1234.56", 1234.56, false},
		{"$ 391,035", 391035, false},
		{"($2,500)", -2500, false},
		{"0", 0, false},
		{"—", 0, true},
		{"N/A", 0, true},
		{"", 0, true},
		{"12a34", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseNumber(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseNumber(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseNumber(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveValueOffsets(t *testing.T) {
	tests := []struct {
		name    string
		cells   []string
		yearCol int
		want    float64
		wantOK  bool
	}{
		{
			name:    "value in next column",
			cells:   []string{"Net sales", "", "391,035"},
			yearCol: 1,
			want:    391035,
			wantOK:  true,
		},
		{
			name:    "currency symbol column interleaved",
			cells:   []string{"Net sales", "", "$", "391,035"},
			yearCol: 1,
			want:    391035,
			wantOK:  true,
		},
		{
			name:    "blank and currency columns before value",
			cells:   []string{"Net sales", "", "", "$", "391,035"},
			yearCol: 1,
			want:    391035,
			wantOK:  true,
		},
		{
			name:    "fallback to the year column itself",
			cells:   []string{"Total assets", "364,980"},
			yearCol: 1,
			want:    364980,
			wantOK:  true,
		},
		{
			name:    "no numeric cell",
			cells:   []string{"Operating activities:", "", ""},
			yearCol: 1,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok := resolveValue(tt.cells, tt.yearCol, nil, StatementBalance)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveValueSkipsOtherYearColumns(t *testing.T) {
	// Header ["", "2024", "2023"]: year values sit directly under their
	// year labels. The c+1 probe from column 1 must not read 2023's cell.
	cells := []string{"Net sales", "$391,035", "$383,285"}
	yearCols := map[int]bool{1: true, 2: true}

	got, _, ok := resolveValue(cells, 1, yearCols, StatementIncome)
	if !ok {
		t.Fatal("expected a resolved value for column 1")
	}
	if got != 391035 {
		t.Errorf("column 1 value = %v, want 391035", got)
	}

	got, _, ok = resolveValue(cells, 2, yearCols, StatementIncome)
	if !ok {
		t.Fatal("expected a resolved value for column 2")
	}
	if got != 383285 {
		t.Errorf("column 2 value = %v, want 383285", got)
	}
}

func TestResolveValueIncomeFloor(t *testing.T) {
	// Footnote markers parse as small integers; income rows reject them and
	// keep probing.
	cells := []string{"Net sales", "", "(1)", "94,930"}

	got, _, ok := resolveValue(cells, 1, nil, StatementIncome)
	if !ok {
		t.Fatal("expected a resolved value")
	}
	if got != 94930 {
		t.Errorf("value = %v, want 94930 (footnote marker skipped)", got)
	}

	// Balance rows have no floor; the small value is legitimate.
	got, _, ok = resolveValue(cells, 1, nil, StatementBalance)
	if !ok {
		t.Fatal("expected a resolved value")
	}
	if got != -1 {
		t.Errorf("value = %v, want -1", got)
	}
}

func TestResolveValueCountsParseFailures(t *testing.T) {
	cells := []string{"Revenue", "", "n/m", "abc", "1,500"}
	got, failures, ok := resolveValue(cells, 1, nil, StatementIncome)
	if !ok || got != 1500 {
		t.Fatalf("value = %v ok = %v, want 1500 true", got, ok)
	}
	if failures != 2 {
		t.Errorf("failures = %d, want 2", failures)
	}
}

func TestUnitMultiplier(t *testing.T) {
	tests := []struct {
		header string
		want   float64
	}{
		{"(in millions, except per share data)", multiplierMillions},
		{"$ in millions", multiplierMillions},
		{"(in thousands)", multiplierThousands},
		{"", multiplierThousands}, // implicit SEC convention
	}
	for _, tt := range tests {
		if got := unitMultiplier(tt.header); math.Abs(got-tt.want) > 0 {
			t.Errorf("unitMultiplier(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}
