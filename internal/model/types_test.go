package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidatePayload_Empty verifies that an empty string is rejected
// with ErrEmptyPayload.
func TestValidatePayload_Empty(t *testing.T) {
	err := ValidatePayload("")
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

// TestValidatePayload_WhitespaceOnly verifies that a whitespace-only string
// is rejected the same way as an empty one. Whitespace carries no usable
// payload content.
func TestValidatePayload_WhitespaceOnly(t *testing.T) {
	err := ValidatePayload("   ")
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

// TestValidatePayload_TooLong verifies the 2953-character ceiling.
// 2953 characters is exactly at the limit and must pass; one more must fail.
func TestValidatePayload_TooLong(t *testing.T) {
	atLimit := strings.Repeat("a", MaxPayloadLength)
	assert.NoError(t, ValidatePayload(atLimit), "payload at the limit should be valid")

	overLimit := strings.Repeat("a", MaxPayloadLength+1)
	assert.ErrorIs(t, ValidatePayload(overLimit), ErrPayloadTooLong)
}

// TestValidatePayload_CountsBytes verifies that the length limit is applied
// to bytes, not runes: a multibyte payload under the rune count but over the
// byte count is rejected, matching the encoder's byte-mode capacity.
func TestValidatePayload_CountsBytes(t *testing.T) {
	// 1000 three-byte runes: 1000 runes, 3000 bytes.
	multibyte := strings.Repeat("日", 1000)
	require.Greater(t, len(multibyte), MaxPayloadLength)

	assert.ErrorIs(t, ValidatePayload(multibyte), ErrPayloadTooLong)
}

// TestValidatePayload_Valid verifies that ordinary text passes validation.
func TestValidatePayload_Valid(t *testing.T) {
	assert.NoError(t, ValidatePayload("hello"))
}

// TestParseOutputFormat verifies case-insensitive parsing of the three
// supported formats and rejection of unknown values.
func TestParseOutputFormat(t *testing.T) {
	for _, input := range []string{"png", "PNG", "svg", "SVG", "both", "Both"} {
		format, err := ParseOutputFormat(input)
		require.NoError(t, err, "format %q should parse", input)
		assert.True(t, format.IsValid())
	}

	_, err := ParseOutputFormat("jpeg")
	assert.Error(t, err, "unsupported format should be rejected")
}

// TestParseSecurity_Canonicalizes verifies that parsing is case-insensitive
// but always returns the canonical wire spelling, so encoded payloads use
// "WPA", "WEP" and "nopass" exactly.
func TestParseSecurity_Canonicalizes(t *testing.T) {
	sec, err := ParseSecurity("wpa")
	require.NoError(t, err)
	assert.Equal(t, SecurityWPA, sec)

	sec, err = ParseSecurity("NOPASS")
	require.NoError(t, err)
	assert.Equal(t, SecurityNone, sec)
	assert.Equal(t, "nopass", sec.String(), "nopass keeps its lowercase wire spelling")

	_, err = ParseSecurity("wpa3-enterprise")
	assert.Error(t, err)
}

// TestWifiCredentials_Defaults verifies the documented defaults: an unset
// security type becomes WPA and hidden defaults to false.
func TestWifiCredentials_Defaults(t *testing.T) {
	creds := WifiCredentials{SSID: "HomeNet", Password: "secret123"}
	require.NoError(t, creds.Validate())

	assert.Equal(t, SecurityWPA, creds.Security, "security should default to WPA")
	assert.False(t, creds.Hidden, "hidden should default to false")
}

// TestWifiCredentials_EmptySSID verifies that credentials without an SSID
// are rejected.
func TestWifiCredentials_EmptySSID(t *testing.T) {
	creds := WifiCredentials{Password: "secret123"}
	assert.Error(t, creds.Validate())
}

// TestCLIError_Unwrap verifies that CLIError supports errors.Is through
// its wrapped error, which the CLI layer relies on when mapping domain
// errors to exit codes.
func TestCLIError_Unwrap(t *testing.T) {
	wrapped := WrapCLIError(ExitInvalidInput, "validation failed", ErrEmptyPayload)

	assert.True(t, errors.Is(wrapped, ErrEmptyPayload))
	assert.Equal(t, ExitInvalidInput, wrapped.Code)
	assert.Contains(t, wrapped.Error(), "validation failed")
}
