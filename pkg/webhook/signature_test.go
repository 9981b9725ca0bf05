// Copyright (C) 2025 DomainGrid Project
//
// This file is part of domaingrid-go.
//
// domaingrid-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// domaingrid-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with domaingrid-go.  If not, see <https://www.gnu.org/licenses/>.

package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Sign matches a published HMAC-SHA256 test vector
func TestSign_KnownVector(t *testing.T) {
	payload := []byte("The quick brown fox jumps over the lazy dog")

	got := Sign(payload, "key")

	assert.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8", got)
}

// Test a signature produced by Sign always verifies
func TestVerifySignature_RoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		secret  string
	}{
		{"json payload", `{"event":"domain.verified","domain_id":"dom_1"}`, "whsec_abc"},
		{"empty payload", "", "whsec_abc"},
		{"binary-ish payload", "\x00\x01\x02\xff", "s"},
		{"long secret", "payload", "a-very-long-shared-secret-value-0123456789"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sig := Sign([]byte(tc.payload), tc.secret)
			assert.True(t, VerifySignature([]byte(tc.payload), sig, tc.secret))
		})
	}
}

// Test flipping any character of a valid signature fails verification
func TestVerifySignature_FlippedCharacter(t *testing.T) {
	payload := []byte(`{"event":"domain.verified"}`)
	secret := "whsec_abc"
	sig := Sign(payload, secret)
	require.Len(t, sig, 64)

	for i := range sig {
		flipped := []byte(sig)
		if flipped[i] == 'a' {
			flipped[i] = 'b'
		} else {
			flipped[i] = 'a'
		}
		assert.False(t, VerifySignature(payload, string(flipped), secret),
			"flipped position %d should not verify", i)
	}
}

// Test verification is sensitive to payload byte layout
func TestVerifySignature_PayloadByteSensitivity(t *testing.T) {
	secret := "whsec_abc"
	original := []byte(`{"a":1,"b":2}`)
	sig := Sign(original, secret)

	// Semantically identical JSON with reordered keys is a different byte
	// sequence and must not verify.
	reordered := []byte(`{"b":2,"a":1}`)
	assert.False(t, VerifySignature(reordered, sig, secret))

	// Even one extra byte breaks it.
	padded := []byte(`{"a":1,"b":2} `)
	assert.False(t, VerifySignature(padded, sig, secret))
}

// Test the wrong secret never verifies
func TestVerifySignature_WrongSecret(t *testing.T) {
	payload := []byte(`{"event":"domain.verified"}`)
	sig := Sign(payload, "whsec_abc")

	assert.False(t, VerifySignature(payload, sig, "whsec_xyz"))
}

// Test the comparison is an exact string match, so uppercase hex is rejected
func TestVerifySignature_UppercaseHex(t *testing.T) {
	payload := []byte("payload")
	secret := "whsec_abc"
	sig := Sign(payload, secret)

	upper := make([]byte, len(sig))
	for i := 0; i < len(sig); i++ {
		ch := sig[i]
		if ch >= 'a' && ch <= 'f' {
			ch -= 'a' - 'A'
		}
		upper[i] = ch
	}
	if string(upper) == sig {
		t.Skip("digest happens to contain no hex letters")
	}

	assert.False(t, VerifySignature(payload, string(upper), secret))
}

// Test empty and truncated signatures are rejected
func TestVerifySignature_Malformed(t *testing.T) {
	payload := []byte("payload")
	secret := "whsec_abc"
	sig := Sign(payload, secret)

	assert.False(t, VerifySignature(payload, "", secret))
	assert.False(t, VerifySignature(payload, sig[:63], secret))
	assert.False(t, VerifySignature(payload, sig+"00", secret))
}
