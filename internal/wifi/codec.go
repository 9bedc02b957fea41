package wifi

import (
	"fmt"
	"strings"

	"github.com/mmr-tortoise/qrpro/internal/model"
)

// Prefix is the literal marker that identifies a WiFi credential payload.
// Classification elsewhere in the CLI checks for this exact prefix.
const Prefix = "WIFI:"

// Field keys used inside the WIFI: payload. Each key is paired with its
// value by a ':' and terminated by a ';'.
const (
	// KeySSID is the network name field ("S").
	KeySSID = "S"

	// KeyPassword is the passphrase field ("P").
	KeyPassword = "P"

	// KeySecurity is the security type field ("T").
	KeySecurity = "T"

	// KeyHidden is the hidden-network flag field ("H").
	KeyHidden = "H"
)

// Encode builds the WIFI: payload string from credentials.
//
// Field order (T, S, P, H) and the trailing ";;" match the widely-used
// convention byte for byte, so payloads round-trip through phone cameras
// and through Decode.
//
// The SSID and password are embedded verbatim: values containing ';' or ':'
// produce a payload that Decode (and real scanners) will mis-parse. Callers
// that care should reject such values up front.
func Encode(creds model.WifiCredentials) string {
	creds.Normalize()

	hidden := "false"
	if creds.Hidden {
		hidden = "true"
	}

	return fmt.Sprintf("%sT:%s;S:%s;P:%s;H:%s;;",
		Prefix, creds.Security, creds.SSID, creds.Password, hidden)
}

// Decode parses a WIFI: payload into its key/value fields.
//
// It strips the leading WIFI: prefix, splits the remainder on ';', and for
// each non-empty segment containing a ':' splits on the FIRST ':' into key
// and value. Segments without a ':' are silently ignored, as is anything
// after the terminating ";;".
//
// Only the keys actually present in the payload appear in the result.
// Display-time defaults ("N/A" for missing fields, "false" for H) are the
// caller's concern — the codec reports just what it found.
func Decode(payload string) map[string]string {
	body := strings.TrimPrefix(payload, Prefix)

	fields := make(map[string]string)
	for _, segment := range strings.Split(body, ";") {
		if segment == "" {
			continue
		}
		key, value, ok := strings.Cut(segment, ":")
		if !ok {
			continue
		}
		fields[key] = value
	}

	return fields
}

// Credentials converts decoded payload fields back into a WifiCredentials
// value, applying the same defaults the encoder uses: missing security
// becomes WPA, missing or non-"true" hidden becomes false.
//
// The security field is taken verbatim even if it is not one of the known
// types — a scanner displaying a foreign payload should show what the
// payload says rather than reject it.
func Credentials(fields map[string]string) model.WifiCredentials {
	creds := model.WifiCredentials{
		SSID:     fields[KeySSID],
		Password: fields[KeyPassword],
		Security: model.Security(fields[KeySecurity]),
		Hidden:   fields[KeyHidden] == "true",
	}
	creds.Normalize()
	return creds
}
