package accessgrid

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ProvisionResult is the outcome of AccessCards.Provision: either a *Card or
// a *UnifiedAccessPass. Use a type switch to tell them apart.
type ProvisionResult interface {
	provisionResult()
}

func (*Card) provisionResult()              {}
func (*UnifiedAccessPass) provisionResult() {}

// resolveProvisionResult decodes a provision response. The API carries no
// type tag: a top-level "details" field holding a JSON array marks a unified
// access pass, anything else (an object, another value, or no details at
// all) is a single card.
func resolveProvisionResult(op string, body []byte) (ProvisionResult, error) {
	if isEmptyJSON(body) {
		return nil, &Error{
			Op:   op,
			Body: string(body),
			Err:  fmt.Errorf("failed to decode response: empty response body"),
		}
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, &Error{
			Op:   op,
			Body: string(body),
			Err:  fmt.Errorf("failed to decode response: %w", err),
		}
	}

	if isJSONArray(probe["details"]) {
		var pass UnifiedAccessPass
		if err := decode(op, body, &pass); err != nil {
			return nil, err
		}
		return &pass, nil
	}

	var card Card
	if err := decode(op, body, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
