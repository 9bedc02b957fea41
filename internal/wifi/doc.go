// Package wifi implements the WIFI: QR payload micro-format.
//
// The micro-format is the semicolon-delimited text convention used by phone
// cameras to join a network from a QR code:
//
//	WIFI:T:<security>;S:<ssid>;P:<password>;H:<true|false>;;
//
// Encode and Decode are deliberately symmetrical: Decode(Encode(c)) recovers
// every field exactly, provided the SSID and password contain none of the
// delimiter characters (';' and ':'). No escaping is performed — that is a
// documented limitation of the convention, not a bug to fix here.
package wifi
