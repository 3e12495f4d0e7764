package secrets

import (
	"strings"

	masker "github.com/goliatone/go-masker"
)

const maskRule = "preserveEnds(2,2)"

var defaultSecretFields = []string{
	"key", "api_key", "apikey", "apiKey",
	"google_maps_api_key", "signature",
}

func init() {
	for _, field := range defaultSecretFields {
		masker.Default.RegisterMaskField(field, maskRule)
	}
}

// MaskString returns a copy of value safe for logging. Empty input stays empty.
func MaskString(value string) string {
	if value == "" {
		return ""
	}
	if masked, err := masker.Default.String(maskRule, value); err == nil && masked != value {
		return masked
	}
	runes := []rune(value)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:2]) + strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-2:])
}

// MaskURLKey replaces the value of the key query parameter in rawURL with its
// masked form. URLs without a key parameter are returned unchanged.
func MaskURLKey(rawURL, apiKey string) string {
	if apiKey == "" || !strings.Contains(rawURL, "key="+apiKey) {
		return rawURL
	}
	return strings.ReplaceAll(rawURL, "key="+apiKey, "key="+MaskString(apiKey))
}
