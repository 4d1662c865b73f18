package payments

import "testing"

func TestSanitizeZIP(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "12345", want: "12345"},
		{in: "12345-6789", want: "12345"},
		{in: " 9 8 1 0 9 ", want: "98109"},
		{in: "abc123", want: "123"},
		{in: "no digits", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := SanitizeZIP(tt.in); got != tt.want {
			t.Fatalf("SanitizeZIP(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
