package dialogflow

import (
	"strconv"
	"strings"
)

// loanDetailsContext marks the output context that carries loan parameters
// across turns on the platform side.
const loanDetailsContext = "awaiting-loan-details"

// Params is a merged, flattened view of the parameters for one turn.
type Params map[string]any

// MergedParams combines parameters remembered on the loan-details output
// context with the current turn's parameters. Current-turn values win, so
// the newest information (e.g. an age just provided) takes precedence.
func MergedParams(qr QueryResult) Params {
	merged := make(Params)

	for _, ctx := range qr.OutputContexts {
		if !strings.Contains(ctx.Name, loanDetailsContext) {
			continue
		}
		for k, v := range ctx.Parameters {
			merged[k] = v
		}
	}

	for k, v := range qr.Parameters {
		merged[k] = v
	}

	return merged
}

// String returns the named parameter as a non-empty string, trying fallback
// names in order. Single-element lists are unwrapped.
func (p Params) String(name string, fallbacks ...string) (string, bool) {
	names := append([]string{name}, fallbacks...)
	for _, n := range names {
		v, ok := p[n]
		if !ok {
			continue
		}
		if s, ok := coerceString(v); ok {
			return s, true
		}
	}
	return "", false
}

// Number returns the named parameter as a float64, trying fallback names in
// order. The platform sends numbers in several shapes: plain float64,
// numeric strings, {"amount": N, "currency": "INR"} objects for
// @sys.unit-currency, and single-element lists from multi-select entities.
func (p Params) Number(name string, fallbacks ...string) (float64, bool) {
	names := append([]string{name}, fallbacks...)
	for _, n := range names {
		v, ok := p[n]
		if !ok {
			continue
		}
		if f, ok := coerceNumber(v); ok {
			return f, true
		}
	}
	return 0, false
}

func coerceString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		trimmed := strings.TrimSpace(val)
		return trimmed, trimmed != ""
	case []any:
		if len(val) > 0 {
			return coerceString(val[0])
		}
	}
	return "", false
}

func coerceNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case map[string]any:
		if amount, ok := val["amount"]; ok {
			return coerceNumber(amount)
		}
	case []any:
		if len(val) > 0 {
			return coerceNumber(val[0])
		}
	}
	return 0, false
}
