package accessgrid

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const nfcKeysPath = "/nfc-keys"

// AccessCards groups card operations. Obtain one with Client.AccessCards.
type AccessCards struct {
	client *Client
}

// idPayload is the signed payload of requests that address a single
// resource without sending a body of their own.
type idPayload struct {
	ID string `json:"id"`
}

func requireID(op, name, id string) error {
	if err := validation.Validate(id, validation.Required); err != nil {
		return &Error{Op: op, Err: fmt.Errorf("%s %w", name, err)}
	}
	return nil
}

// Provision issues a new card. The result is a *UnifiedAccessPass when the
// request targets a template pair and a *Card otherwise.
func (a AccessCards) Provision(ctx context.Context, req *ProvisionCardRequest) (ProvisionResult, error) {
	const op = "provision card"

	if req == nil {
		return nil, &Error{Op: op, Err: fmt.Errorf("request is required")}
	}

	body, err := a.client.call(ctx, op, http.MethodPost, nfcKeysPath, req, nil)
	if err != nil {
		return nil, err
	}

	return resolveProvisionResult(op, body)
}

// Get retrieves a card by id.
func (a AccessCards) Get(ctx context.Context, cardID string) (*Card, error) {
	const op = "get card"

	if err := requireID(op, "card id", cardID); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s", nfcKeysPath, url.PathEscape(cardID))
	body, err := a.client.call(ctx, op, http.MethodGet, path, idPayload{ID: cardID}, nil)
	if err != nil {
		return nil, err
	}

	var card Card
	if err := decode(op, body, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// Update changes the holder details of the card named by req.CardID.
func (a AccessCards) Update(ctx context.Context, req *UpdateCardRequest) (*Card, error) {
	const op = "update card"

	if req == nil {
		return nil, &Error{Op: op, Err: fmt.Errorf("request is required")}
	}
	if err := requireID(op, "card id", req.CardID); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s", nfcKeysPath, url.PathEscape(req.CardID))
	body, err := a.client.call(ctx, op, http.MethodPatch, path, req, nil)
	if err != nil {
		return nil, err
	}

	var card Card
	if err := decode(op, body, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// List returns the cards matching filters. A nil filters lists every card
// visible to the account.
func (a AccessCards) List(ctx context.Context, filters *ListCardsFilters) ([]Card, error) {
	const op = "list cards"

	if filters == nil {
		filters = &ListCardsFilters{}
	}

	query := url.Values{}
	if filters.TemplateID != "" {
		query.Set("template_id", filters.TemplateID)
	}
	if filters.State != "" {
		query.Set("state", filters.State)
	}

	body, err := a.client.call(ctx, op, http.MethodGet, nfcKeysPath, filters, query)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Keys []Card `json:"keys"`
	}
	if err := decode(op, body, &resp); err != nil {
		return nil, err
	}
	return resp.Keys, nil
}

// Suspend temporarily disables a card.
func (a AccessCards) Suspend(ctx context.Context, cardID string) (*Card, error) {
	return a.manage(ctx, "suspend", cardID)
}

// Resume re-enables a suspended card.
func (a AccessCards) Resume(ctx context.Context, cardID string) (*Card, error) {
	return a.manage(ctx, "resume", cardID)
}

// Unlink detaches a card from the device it is installed on.
func (a AccessCards) Unlink(ctx context.Context, cardID string) (*Card, error) {
	return a.manage(ctx, "unlink", cardID)
}

// Delete permanently revokes a card.
func (a AccessCards) Delete(ctx context.Context, cardID string) (*Card, error) {
	return a.manage(ctx, "delete", cardID)
}

// manage posts a lifecycle action to /nfc-keys/{id}/{action}.
func (a AccessCards) manage(ctx context.Context, action, cardID string) (*Card, error) {
	op := action + " card"

	if err := requireID(op, "card id", cardID); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s/%s", nfcKeysPath, url.PathEscape(cardID), action)
	body, err := a.client.call(ctx, op, http.MethodPost, path, idPayload{ID: cardID}, nil)
	if err != nil {
		return nil, err
	}

	var card Card
	if err := decode(op, body, &card); err != nil {
		return nil, err
	}
	return &card, nil
}
