package core

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"12.34", 12.34, false},
		{"12,34", 12.34, false},
		{"12.345", 12.34, false}, // rounds down
		{"12.346", 12.35, false}, // rounds up
		{"275", 275, false},
		{".50", 0.5, false},
		{"", 0, true},
		{"-5", 0, true},
		{"+5", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
		{"0", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseAmount(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSignedAmount(t *testing.T) {
	if got := SignedAmount(Income, 100); got != 100 {
		t.Fatalf("income: got %v", got)
	}
	if got := SignedAmount(Expense, 100); got != -100 {
		t.Fatalf("expense: got %v", got)
	}
	// Magnitude is normalized even if a caller passes a negative value
	if got := SignedAmount(Income, -100); got != 100 {
		t.Fatalf("income with negative input: got %v", got)
	}
}

func TestAbs(t *testing.T) {
	if Abs(-890) != 890 || Abs(890) != 890 {
		t.Fatal("abs mismatch")
	}
}
