package qr

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"

	"github.com/mmr-tortoise/qrpro/internal/model"
	"github.com/mmr-tortoise/qrpro/internal/wifi"
)

// DecodeResult is the outcome of decoding and classifying a QR image.
type DecodeResult struct {
	// Content is the decoded UTF-8 payload of the first QR code found.
	// If the image contains multiple codes, only the first is reported.
	Content string `json:"content"`

	// Kind is the prefix-based classification of the payload.
	Kind model.PayloadKind `json:"kind"`

	// WifiFields holds the parsed WIFI: payload fields, keyed S/P/T/H.
	// Only the keys present in the payload appear; display defaults are
	// applied by the report layer. Nil unless Kind is KindWifi.
	WifiFields map[string]string `json:"wifiFields,omitempty"`
}

// DecodeFile loads an image file, decodes the first QR code in it, and
// classifies the payload.
//
// Failure cases map to distinct exit codes: a missing file is
// ExitFileNotFound, an unreadable image is ExitDecodeFailure, and an image
// containing zero QR codes is ExitNoQRFound. None of these panic or abort
// the process directly — the CLI boundary decides what to do with them.
func DecodeFile(path string) (*DecodeResult, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, model.WrapCLIError(model.ExitFileNotFound,
			fmt.Sprintf("file not found: %s", path), err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitDecodeFailure,
			fmt.Sprintf("failed to open %s", path), err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitDecodeFailure,
			fmt.Sprintf("failed to decode image %s", path), err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitDecodeFailure,
			"failed to prepare image for QR detection", err)
	}

	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		// The reader reports "nothing detected" as a NotFoundException;
		// anything else (format/checksum damage) is a decode failure.
		if _, notFound := err.(gozxing.NotFoundException); notFound {
			return nil, model.WrapCLIError(model.ExitNoQRFound,
				fmt.Sprintf("no QR code found in %s", path), err)
		}
		return nil, model.WrapCLIError(model.ExitDecodeFailure,
			fmt.Sprintf("failed to decode QR code in %s", path), err)
	}

	content := result.GetText()
	res := &DecodeResult{
		Content: content,
		Kind:    Classify(content),
	}
	if res.Kind == model.KindWifi {
		res.WifiFields = wifi.Decode(content)
	}

	return res, nil
}

// Classify tags a payload by literal string prefix, checked in a fixed
// order. The prefixes are disjoint in practice, so at most one tag matches.
//
// The http check is a plain prefix match, not a scheme parse: "httpfoo"
// classifies as a URL. This loose matching is preserved deliberately from
// the behavior this tool replaces.
func Classify(content string) model.PayloadKind {
	switch {
	case strings.HasPrefix(content, wifi.Prefix):
		return model.KindWifi
	case strings.HasPrefix(content, "http"):
		return model.KindURL
	case strings.HasPrefix(content, "tel:"):
		return model.KindPhone
	case strings.HasPrefix(content, "mailto:"):
		return model.KindEmail
	default:
		return model.KindText
	}
}
