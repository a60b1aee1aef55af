package strfmt

import "testing"

func TestToLowerToUpper(t *testing.T) {
	cases := []struct {
		in        string
		wantLower string
		wantUpper string
	}{
		{"", "", ""},
		{"abc", "abc", "ABC"},
		{"ABC", "abc", "ABC"},
		{"MiXeD", "mixed", "MIXED"},
		{"a1-B2_c3", "a1-b2_c3", "A1-B2_C3"},
		{"\t !@#", "\t !@#", "\t !@#"},
		{"caf\xe9", "caf\xe9", "CAF\xe9"}, // bytes >= 0x80 are never alphabetic
	}
	for _, tc := range cases {
		if got := ToLower(tc.in); got != tc.wantLower {
			t.Fatalf("ToLower(%q) = %q, want %q", tc.in, got, tc.wantLower)
		}
		if got := ToUpper(tc.in); got != tc.wantUpper {
			t.Fatalf("ToUpper(%q) = %q, want %q", tc.in, got, tc.wantUpper)
		}
	}
}

func TestLowercaseInPlace(t *testing.T) {
	b := []byte("Hello, WORLD 123")
	Lowercase(b)
	if string(b) != "hello, world 123" {
		t.Fatalf("Lowercase = %q", b)
	}
	Uppercase(b)
	if string(b) != "HELLO, WORLD 123" {
		t.Fatalf("Uppercase = %q", b)
	}
}

func TestCaseRoundTrip(t *testing.T) {
	inputs := []string{"", "abc", "ABC", "The Quick Brown Fox", "zZzZ"}
	for _, in := range inputs {
		if got, want := ToUpper(ToLower(in)), ToUpper(in); got != want {
			t.Fatalf("ToUpper(ToLower(%q)) = %q, want %q", in, got, want)
		}
		if got, want := ToLower(ToUpper(in)), ToLower(in); got != want {
			t.Fatalf("ToLower(ToUpper(%q)) = %q, want %q", in, got, want)
		}
	}
}

func TestIsLowercasedIsUppercased(t *testing.T) {
	cases := []struct {
		in         string
		lowered    bool
		uppercased bool
	}{
		{"", true, true}, // vacuously true
		{"abc", true, false},
		{"ABC", false, true},
		{"aBc", false, false},
		{"abc1", false, false}, // digits satisfy neither class
		{"a b", false, false},  // nor does whitespace
	}
	for _, tc := range cases {
		if got := IsLowercased(tc.in); got != tc.lowered {
			t.Fatalf("IsLowercased(%q) = %v, want %v", tc.in, got, tc.lowered)
		}
		if got := IsUppercased(tc.in); got != tc.uppercased {
			t.Fatalf("IsUppercased(%q) = %v, want %v", tc.in, got, tc.uppercased)
		}
	}
}
