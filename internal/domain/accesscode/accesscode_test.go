package accesscode_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/rcarvalho-pb/admission_payments-go/internal/domain/accesscode"
)

var codePattern = regexp.MustCompile(`^G10-[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{6}$`)

func TestNew_ShouldMatchCodeFormat(t *testing.T) {
	code := accesscode.New()

	if !codePattern.MatchString(code) {
		t.Fatalf("code %q does not match expected format", code)
	}
}

func TestNew_ShouldNeverUseAmbiguousCharacters(t *testing.T) {
	for i := 0; i < 10000; i++ {
		code := accesscode.New()

		body := strings.TrimPrefix(code, accesscode.Prefix)
		if len(body) != 6 {
			t.Fatalf("expected 6 code characters, got %q", code)
		}

		for _, ch := range body {
			if !strings.ContainsRune(accesscode.Alphabet, ch) {
				t.Fatalf("code %q contains character %q outside the alphabet", code, ch)
			}
		}
	}
}

func TestNew_ShouldVaryAcrossCalls(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		seen[accesscode.New()] = struct{}{}
	}

	// 100 draws from 32^6 combinations repeating would mean a broken
	// random source, not bad luck.
	if len(seen) < 95 {
		t.Fatalf("expected distinct codes, got %d unique of 100", len(seen))
	}
}
