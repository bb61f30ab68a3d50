package auth

import (
	"errors"
	"testing"
)

func TestParseCookieString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr error
	}{
		{
			name:    "two cookies",
			input:   "sessionId=abc123; theme=dark",
			wantLen: 2,
		},
		{
			name:    "value containing equals",
			input:   "__Secure-authjs.callback-url=https%3A%2F%2Fcapedge.com; token=a=b=c",
			wantLen: 2,
		},
		{
			name:    "skips items without equals",
			input:   "sessionId=abc; garbage; theme=dark",
			wantLen: 2,
		},
		{
			name:    "extra whitespace",
			input:   "  sessionId=abc ;  theme=dark  ",
			wantLen: 2,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: ErrEmptyCookieString,
		},
		{
			name:    "only garbage",
			input:   "no-pairs-here; still-none",
			wantErr: ErrEmptyCookieString,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := ParseCookieString(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCookieString() error = %v", err)
			}
			if set.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", set.Len(), tt.wantLen)
			}
		})
	}
}

func TestCookieSetHeader(t *testing.T) {
	set, err := ParseCookieString("a=1; b=2; c=x=y")
	if err != nil {
		t.Fatalf("ParseCookieString() error = %v", err)
	}

	want := "a=1; b=2; c=x=y"
	if got := set.Header(); got != want {
		t.Errorf("Header() = %q, want %q", got, want)
	}
}

func TestCookieSetGet(t *testing.T) {
	set, err := ParseCookieString("sessionId=abc123; theme=dark")
	if err != nil {
		t.Fatalf("ParseCookieString() error = %v", err)
	}

	if v, ok := set.Get("sessionId"); !ok || v != "abc123" {
		t.Errorf("Get(sessionId) = %q, %v, want %q, true", v, ok, "abc123")
	}
	if _, ok := set.Get("missing"); ok {
		t.Error("Get(missing) = true, want false")
	}
}

func TestFingerprint(t *testing.T) {
	set1, _ := ParseCookieString("sessionId=abc")
	set2, _ := ParseCookieString("sessionId=xyz")

	f1, f2 := set1.Fingerprint(), set2.Fingerprint()
	if len(f1) != 12 {
		t.Errorf("Fingerprint() length = %d, want 12", len(f1))
	}
	if f1 == f2 {
		t.Error("different cookies produced the same fingerprint")
	}
	if f1 != set1.Fingerprint() {
		t.Error("Fingerprint() is not deterministic")
	}
}
