package model

import (
	"errors"
	"fmt"
	"strings"
)

// MaxPayloadLength is the maximum number of characters accepted for a QR
// payload. 2953 is the byte-mode capacity of a version 40 QR code at the
// lowest error correction level; anything longer cannot be encoded.
const MaxPayloadLength = 2953

// Payload validation errors. These are sentinel errors so callers can
// distinguish the two invalid-input cases with errors.Is.
var (
	// ErrEmptyPayload is returned when the payload is empty or contains
	// only whitespace.
	ErrEmptyPayload = errors.New("payload must not be empty")

	// ErrPayloadTooLong is returned when the payload exceeds MaxPayloadLength.
	ErrPayloadTooLong = fmt.Errorf("payload exceeds %d characters", MaxPayloadLength)
)

// ValidatePayload checks whether text is acceptable as a QR payload.
// A valid payload is non-empty after trimming whitespace and no longer
// than MaxPayloadLength.
//
// The length check intentionally uses the raw (untrimmed) length: trimming
// is only used to reject effectively-empty input, not to alter what gets
// encoded.
//
// Length is counted in bytes, not runes. Byte-mode capacity is what the
// encoder actually has, so a multibyte payload over 2953 bytes is rejected
// here even when its rune count is under the limit.
func ValidatePayload(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyPayload
	}
	if len(text) > MaxPayloadLength {
		return ErrPayloadTooLong
	}
	return nil
}

// OutputFormat selects which artifact(s) a generation call produces.
type OutputFormat string

const (
	// FormatPNG produces a raster PNG artifact.
	FormatPNG OutputFormat = "png"

	// FormatSVG produces a vector SVG artifact.
	FormatSVG OutputFormat = "svg"

	// FormatBoth produces both a PNG and an SVG artifact. A failure writing
	// either one aborts the call as a whole — partial success is reported
	// as failure.
	FormatBoth OutputFormat = "both"
)

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks whether the OutputFormat is one of the supported values.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatPNG, FormatSVG, FormatBoth:
		return true
	default:
		return false
	}
}

// ParseOutputFormat converts a string to an OutputFormat.
// Matching is case-insensitive. Returns an error for unknown formats.
func ParseOutputFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(s))
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format: %q (valid: png, svg, both)", s)
	}
	return format, nil
}

// Security is the WiFi security type embedded in the WIFI: payload.
// The canonical spellings (WPA, WEP, nopass) follow the QR-WiFi convention,
// including the lowercase "nopass".
type Security string

const (
	// SecurityWPA covers WPA/WPA2 personal networks. This is the default
	// when no security type is specified.
	SecurityWPA Security = "WPA"

	// SecurityWEP covers legacy WEP networks.
	SecurityWEP Security = "WEP"

	// SecurityNone ("nopass") marks an open network with no password.
	SecurityNone Security = "nopass"
)

// String returns the canonical wire spelling of the security type.
func (s Security) String() string {
	return string(s)
}

// IsValid checks whether the Security value is one of the supported types.
func (s Security) IsValid() bool {
	switch s {
	case SecurityWPA, SecurityWEP, SecurityNone:
		return true
	default:
		return false
	}
}

// ParseSecurity converts a string to a Security value. Matching is
// case-insensitive, but the returned value always uses the canonical
// spelling so encoded payloads are uniform.
func ParseSecurity(s string) (Security, error) {
	switch strings.ToLower(s) {
	case "wpa":
		return SecurityWPA, nil
	case "wep":
		return SecurityWEP, nil
	case "nopass":
		return SecurityNone, nil
	default:
		return "", fmt.Errorf("invalid security type: %q (valid: WPA, WEP, nopass)", s)
	}
}

// WifiCredentials holds the fields of a WiFi network shared via QR code.
//
// Known limitation, carried over deliberately: SSIDs and passwords containing
// ';' or ':' are embedded verbatim in the WIFI: payload without escaping,
// producing a payload that will parse incorrectly. This matches common
// QR-WiFi convention.
type WifiCredentials struct {
	// SSID is the network name. Must not be empty.
	SSID string `json:"ssid"`

	// Password is the network passphrase. May be empty for open networks.
	Password string `json:"password"`

	// Security is the network security type. Defaults to WPA when left
	// unset (see Normalize).
	Security Security `json:"security"`

	// Hidden marks the network as not broadcasting its SSID.
	// Defaults to false.
	Hidden bool `json:"hidden"`
}

// Normalize applies the documented defaults in place: an unset security
// type becomes WPA. Hidden already zero-values to false.
func (c *WifiCredentials) Normalize() {
	if c.Security == "" {
		c.Security = SecurityWPA
	}
}

// Validate checks the credentials for basic well-formedness.
// It normalizes defaults first, so a zero Security is valid.
func (c *WifiCredentials) Validate() error {
	c.Normalize()
	if c.SSID == "" {
		return fmt.Errorf("wifi credentials: SSID must not be empty")
	}
	if !c.Security.IsValid() {
		return fmt.Errorf("wifi credentials: invalid security type %q", c.Security)
	}
	return nil
}

// PayloadKind classifies a decoded QR payload by its literal prefix.
type PayloadKind string

const (
	// KindWifi is a WIFI: network credential payload.
	KindWifi PayloadKind = "wifi"

	// KindURL is a payload starting with "http". The match is a plain
	// prefix check, not a scheme parse — "httpfoo" classifies as a URL.
	// This loose matching is preserved deliberately.
	KindURL PayloadKind = "url"

	// KindPhone is a tel: payload.
	KindPhone PayloadKind = "phone"

	// KindEmail is a mailto: payload.
	KindEmail PayloadKind = "email"

	// KindText is any payload that matches no known prefix.
	KindText PayloadKind = "text"
)

// String returns the string representation of the PayloadKind.
func (k PayloadKind) String() string {
	return string(k)
}

// ExitCode defines standard CLI exit codes. These codes allow scripts and
// CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidInput indicates the payload or flags failed validation
	// (empty text, oversized text, unknown format or security type).
	ExitInvalidInput ExitCode = 2

	// ExitFileNotFound indicates a decode target file does not exist.
	ExitFileNotFound ExitCode = 3

	// ExitNoQRFound indicates the decoder found zero QR codes in the image.
	ExitNoQRFound ExitCode = 4

	// ExitEncodeFailure indicates the QR encoding library failed, or an
	// artifact could not be written.
	ExitEncodeFailure ExitCode = 5

	// ExitDecodeFailure indicates the image could not be read or decoded.
	ExitDecodeFailure ExitCode = 6

	// ExitUserCancelled indicates the user cancelled an interactive prompt.
	ExitUserCancelled ExitCode = 7
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
