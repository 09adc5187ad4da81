package domain

import (
	"testing"
	"time"
)

func TestTokenCan(t *testing.T) {
	cases := []struct {
		name      string
		abilities []string
		ability   string
		want      bool
	}{
		{"wildcard grants anything", []string{AbilityAll}, "store", true},
		{"named ability matches", []string{"store", "update"}, "update", true},
		{"missing ability", []string{"store"}, "update", false},
		{"no abilities", nil, "store", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token := &Token{Abilities: tc.abilities}
			if got := token.Can(tc.ability); got != tc.want {
				t.Fatalf("Can(%q) = %v, want %v", tc.ability, got, tc.want)
			}
		})
	}
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	token := &Token{}
	if token.Expired(now) {
		t.Fatal("zero expiry must never expire")
	}

	token.ExpiresAt = now.Add(time.Minute)
	if token.Expired(now) {
		t.Fatal("token expired before its deadline")
	}

	token.ExpiresAt = now.Add(-time.Minute)
	if !token.Expired(now) {
		t.Fatal("token not expired after its deadline")
	}
}
