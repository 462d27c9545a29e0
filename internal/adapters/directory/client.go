package directory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-hospitalization/internal/domain/hospitalizations"
	"pet-hospitalization/internal/platform/httpclient"
)

// Client consulta el directorio de pacientes y staff de la clínica (solo lectura).
// Implementa hospitalizations.Directory.
type Client struct {
	http   *httpclient.Client
	apiKey string
}

func New(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("directory: base url required")
	}
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("directory: %w", err)
	}
	return &Client{http: hc, apiKey: strings.TrimSpace(apiKey)}, nil
}

type petDTO struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
}

type staffDTO struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
}

func (c *Client) CheckPet(ctx context.Context, petID, clientID string) error {
	var out petDTO
	if err := c.get(ctx, "/pets/"+url.PathEscape(petID), &out); err != nil {
		return err
	}
	if out.ClientID != clientID {
		return fmt.Errorf("%w: pet %s does not belong to client %s", hospitalizations.ErrUnknownReference, petID, clientID)
	}
	return nil
}

func (c *Client) CheckStaff(ctx context.Context, staffID string) error {
	var out staffDTO
	if err := c.get(ctx, "/staff/"+url.PathEscape(staffID), &out); err != nil {
		return err
	}
	if !out.Active {
		return fmt.Errorf("%w: staff %s inactive", hospitalizations.ErrUnknownReference, staffID)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	headers := map[string]string{}
	if c.apiKey != "" {
		headers["X-Api-Key"] = c.apiKey
	}

	err := c.http.DoJSON(ctx, http.MethodGet, path, headers, nil, out)
	if httpclient.IsStatus(err, http.StatusNotFound) {
		return fmt.Errorf("%w: %s", hospitalizations.ErrUnknownReference, path)
	}
	return err
}
