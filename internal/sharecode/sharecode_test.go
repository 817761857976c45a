package sharecode

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec, err := New("test-salt")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	businessID := uuid.NewString()
	code, err := codec.Encode(businessID)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if code == businessID {
		t.Error("code should not expose the raw id")
	}

	decoded, err := codec.Decode(code)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded != businessID {
		t.Errorf("round trip: got %q, want %q", decoded, businessID)
	}
}

func TestEncodeRejectsBadID(t *testing.T) {
	codec, err := New("test-salt")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := codec.Encode("not-a-uuid"); err == nil {
		t.Error("expected error for a non-uuid id")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	codec, err := New("test-salt")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := codec.Decode("!!!"); err == nil {
		t.Error("expected error for a malformed code")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Joe's Cafe", want: "joe-s-cafe"},
		{name: "diacritics folded", in: "Café Crème", want: "cafe-creme"},
		{name: "extra separators collapsed", in: "  Best -- Bakery  ", want: "best-bakery"},
		{name: "nothing left", in: "!!!", want: "business"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.in); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestShareURL(t *testing.T) {
	codec, err := New("test-salt")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	url := codec.ShareURL("https://bizlist.app/", "Joe's Cafe", "abc123")
	if url != "https://bizlist.app/b/joe-s-cafe/abc123" {
		t.Errorf("ShareURL = %q", url)
	}

	// The base URL's trailing slash must not leak a double slash into the
	// path. Strip the scheme first so its "//" does not trip the check.
	path := strings.SplitN(url, "://", 2)[1]
	if strings.Contains(path, "//") {
		t.Errorf("double slash in path of %q", url)
	}
}
