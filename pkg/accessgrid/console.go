package accessgrid

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const templatesPath = "/enterprise/templates"

// Console groups template and event log operations. Obtain one with
// Client.Console.
type Console struct {
	client *Client
}

// CreateTemplate creates a new card template.
func (c Console) CreateTemplate(ctx context.Context, req *CreateTemplateRequest) (*Template, error) {
	const op = "create template"

	if req == nil {
		return nil, &Error{Op: op, Err: fmt.Errorf("request is required")}
	}

	body, err := c.client.call(ctx, op, http.MethodPost, templatesPath, req, nil)
	if err != nil {
		return nil, err
	}

	var tmpl Template
	if err := decode(op, body, &tmpl); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// ReadTemplate retrieves a template by id.
func (c Console) ReadTemplate(ctx context.Context, templateID string) (*Template, error) {
	const op = "read template"

	if err := requireID(op, "template id", templateID); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s", templatesPath, url.PathEscape(templateID))
	body, err := c.client.call(ctx, op, http.MethodGet, path, idPayload{ID: templateID}, nil)
	if err != nil {
		return nil, err
	}

	var tmpl Template
	if err := decode(op, body, &tmpl); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// UpdateTemplate changes the template named by req.CardTemplateID.
func (c Console) UpdateTemplate(ctx context.Context, req *UpdateTemplateRequest) (*Template, error) {
	const op = "update template"

	if req == nil {
		return nil, &Error{Op: op, Err: fmt.Errorf("request is required")}
	}
	if err := requireID(op, "template id", req.CardTemplateID); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s", templatesPath, url.PathEscape(req.CardTemplateID))
	body, err := c.client.call(ctx, op, http.MethodPut, path, req, nil)
	if err != nil {
		return nil, err
	}

	var tmpl Template
	if err := decode(op, body, &tmpl); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// EventLog returns the audit events recorded for a template. filters may be
// nil.
func (c Console) EventLog(ctx context.Context, templateID string, filters *EventLogFilters) ([]Event, error) {
	const op = "read event log"

	if err := requireID(op, "template id", templateID); err != nil {
		return nil, err
	}

	query := url.Values{}
	if filters != nil {
		if err := filters.Validate(); err != nil {
			return nil, &Error{Op: op, Err: fmt.Errorf("invalid filters: %w", err)}
		}
		if filters.Device != "" {
			query.Set("device", filters.Device)
		}
		if !filters.StartDate.IsZero() {
			query.Set("start_date", filters.StartDate.UTC().Format(time.RFC3339))
		}
		if !filters.EndDate.IsZero() {
			query.Set("end_date", filters.EndDate.UTC().Format(time.RFC3339))
		}
		if filters.EventType != "" {
			query.Set("event_type", filters.EventType)
		}
	}

	path := fmt.Sprintf("%s/%s/logs", templatesPath, url.PathEscape(templateID))
	body, err := c.client.call(ctx, op, http.MethodGet, path, idPayload{ID: templateID}, query)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Logs []Event `json:"logs"`
	}
	if err := decode(op, body, &resp); err != nil {
		return nil, err
	}
	return resp.Logs, nil
}
