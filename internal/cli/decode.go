// Package cli — decode.go implements the "qrpro decode" command.
//
// The decode command reads a PNG or JPEG image, finds the first QR code in
// it, and reports the payload together with a prefix-based classification
// (wifi, url, phone, email, or text). WiFi payloads are additionally broken
// out into their credential fields, with display defaults for fields the
// payload omits.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/qrpro/internal/model"
	"github.com/mmr-tortoise/qrpro/internal/qr"
	"github.com/mmr-tortoise/qrpro/internal/wifi"
)

// NewDecodeCommand creates the "decode" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <image>",
		Short: "Decode a QR code from an image file",
		Long: `Decode the first QR code found in a PNG or JPEG image and classify
its payload by prefix.

Exit codes distinguish the failure modes: 3 when the file does not exist,
4 when the image contains no QR code, 6 when the image or code cannot
be decoded.

Examples:
  qrpro decode qrcodes/homepage.png
  qrpro decode --json photo.jpg`,

		// Exactly one positional argument (the image path) is required.
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0])
		},
	}

	return cmd
}

// runDecode is the main logic function for the decode command.
func runDecode(path string) error {
	VerboseLog("Decoding %s", path)

	result, err := qr.DecodeFile(path)
	if err != nil {
		return err
	}

	printDecodeResult(path, result)
	return nil
}

// wifiDisplay applies the report-level defaults to decoded WiFi fields:
// fields the payload omits display as "N/A", except hidden, which displays
// as "false". The raw field map keeps only what the payload carried; the
// defaults exist solely for presentation.
func wifiDisplay(fields map[string]string) map[string]string {
	display := map[string]string{
		"ssid":     "N/A",
		"password": "N/A",
		"security": "N/A",
		"hidden":   "false",
	}
	if v, ok := fields[wifi.KeySSID]; ok {
		display["ssid"] = v
	}
	if v, ok := fields[wifi.KeyPassword]; ok {
		display["password"] = v
	}
	if v, ok := fields[wifi.KeySecurity]; ok {
		display["security"] = v
	}
	if v, ok := fields[wifi.KeyHidden]; ok {
		display["hidden"] = v
	}
	return display
}

// printDecodeResult outputs the decode result in text or JSON format,
// depending on the global --json flag.
func printDecodeResult(path string, result *qr.DecodeResult) {
	if IsJSONOutput() {
		printDecodeResultJSON(path, result)
	} else {
		printDecodeResultText(path, result)
	}
}

// printDecodeResultJSON outputs the decode result as structured JSON.
func printDecodeResultJSON(path string, result *qr.DecodeResult) {
	out := map[string]interface{}{
		"file":    path,
		"kind":    result.Kind.String(),
		"content": result.Content,
	}
	if result.Kind == model.KindWifi {
		// Two views of the same fields: "wifi" carries the display strings
		// (N/A placeholders included), "credentials" the normalized typed
		// values with encoder defaults applied.
		out["wifi"] = wifiDisplay(result.WifiFields)
		out["credentials"] = wifi.Credentials(result.WifiFields)
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(data))
}

// printDecodeResultText outputs the decode result as human-readable text.
func printDecodeResultText(path string, result *qr.DecodeResult) {
	fmt.Printf("Decoded %s\n", path)
	fmt.Printf("  Kind:    %s\n", result.Kind)
	fmt.Printf("  Content: %s\n", result.Content)

	if result.Kind == model.KindWifi {
		display := wifiDisplay(result.WifiFields)
		fmt.Println("\nWiFi network:")
		fmt.Printf("  SSID:     %s\n", display["ssid"])
		fmt.Printf("  Password: %s\n", display["password"])
		fmt.Printf("  Security: %s\n", display["security"])
		fmt.Printf("  Hidden:   %s\n", display["hidden"])
	}
}
