// Package cli — wifi.go implements the "qrpro wifi" command.
//
// The wifi command builds a WIFI: network payload from an SSID, password,
// security type, and hidden flag, then generates a QR code for it. Scanning
// the code with a phone camera joins the network directly.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/qrpro/internal/model"
	"github.com/mmr-tortoise/qrpro/internal/qr"
	"github.com/mmr-tortoise/qrpro/internal/render"
	"github.com/mmr-tortoise/qrpro/internal/wifi"
)

// wifiFlags holds the flag values for the wifi command.
type wifiFlags struct {
	// password is the network passphrase. May be empty for open networks.
	password string

	// security is the network security type: WPA, WEP, or nopass.
	security string

	// hidden marks the network as not broadcasting its SSID.
	hidden bool

	// name, format, foreground, background, and quiet mirror the
	// generate command's output flags.
	name       string
	format     string
	foreground string
	background string
	quiet      bool
}

// NewWifiCommand creates the "wifi" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewWifiCommand() *cobra.Command {
	flags := &wifiFlags{}

	cmd := &cobra.Command{
		Use:   "wifi <ssid>",
		Short: "Generate a WiFi network QR code",
		Long: `Generate a QR code encoding WiFi network credentials. Scanning the
code joins the network without typing the password.

The security type is case-insensitive and defaults to WPA. Use "nopass"
for open networks.

Note: SSIDs and passwords containing ';' or ':' are embedded without
escaping and will not scan correctly.

Examples:
  qrpro wifi HomeNet --password secret123
  qrpro wifi GuestNet --security nopass
  qrpro wifi HiddenNet --password s3cret --hidden --format both`,

		// Exactly one positional argument (the SSID) is required.
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runWifi(args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.password, "password", "p", "", "Network password")
	cmd.Flags().StringVarP(&flags.security, "security", "s", "WPA", "Security type: WPA, WEP, nopass")
	cmd.Flags().BoolVar(&flags.hidden, "hidden", false, "Network does not broadcast its SSID")
	cmd.Flags().StringVarP(&flags.name, "name", "n", "", "Artifact base name (default: wifi_<ssid>_<timestamp>)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format: png, svg, both")
	cmd.Flags().StringVar(&flags.foreground, "fg", "", "Module color name for PNG output")
	cmd.Flags().StringVar(&flags.background, "bg", "", "Background color name for PNG output")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress the terminal preview")

	return cmd
}

// runWifi is the main logic function for the wifi command.
// It validates the credentials, encodes the WIFI: payload, and delegates
// artifact writing to the generator.
func runWifi(ssid string, flags *wifiFlags) error {
	cfg, err := loadDefaults()
	if err != nil {
		return err
	}

	security, err := model.ParseSecurity(flags.security)
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidInput, "invalid --security", err)
	}

	creds := model.WifiCredentials{
		SSID:     ssid,
		Password: flags.password,
		Security: security,
		Hidden:   flags.hidden,
	}
	if err := creds.Validate(); err != nil {
		return model.WrapCLIError(model.ExitInvalidInput, "invalid credentials", err)
	}

	payload := wifi.Encode(creds)
	VerboseLog("Encoded WiFi payload: %s", payload)

	format := cfg.Format
	if flags.format != "" {
		format, err = model.ParseOutputFormat(flags.format)
		if err != nil {
			return model.WrapCLIError(model.ExitInvalidInput, "invalid --format", err)
		}
	}

	fg, bg := resolveColorNames(flags.foreground, flags.background, cfg.Foreground, cfg.Background)

	name := flags.name
	if name == "" {
		name = qr.WifiBaseName(creds.SSID, time.Now())
	}

	generator := qr.NewGenerator(cfg.OutputDir)
	generator.Scale = cfg.Scale

	artifacts, err := generator.Generate(payload, name, format, fg, bg)
	if err != nil {
		return err
	}

	if !flags.quiet && !IsJSONOutput() {
		render.Terminal(os.Stdout, payload)
	}

	printWifiResult(creds, name, artifacts)
	return nil
}

// printWifiResult outputs the wifi generation result in text or JSON format.
func printWifiResult(creds model.WifiCredentials, name string, artifacts []qr.Artifact) {
	if IsJSONOutput() {
		result := map[string]interface{}{
			"name":      name,
			"ssid":      creds.SSID,
			"security":  creds.Security.String(),
			"hidden":    creds.Hidden,
			"artifacts": artifacts,
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Generated WiFi QR code %q for network %q (%s)\n",
		name, creds.SSID, creds.Security)
	for _, a := range artifacts {
		fmt.Printf("  %s: %s\n", a.Format, a.Path)
	}
}
