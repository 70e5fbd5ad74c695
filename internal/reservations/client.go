package reservations

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrNotFound = errors.New("reservation not found")

// APIError is a non-2xx answer from the reservation API.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("reservation api: %d %s", e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("reservation api: %d %s", e.Code, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// Client talks to the reservation REST API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Timeout time.Duration // per call; 0 leaves the caller's context alone
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
		Timeout: timeout,
	}
}

// List returns every reservation whose stay overlaps [from, to].
func (c *Client) List(ctx context.Context, from, to string) ([]Reservation, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	var out []Reservation
	if err := c.do(ctx, http.MethodGet, "/api/reservations?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Reservation{}
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id ID) (*Reservation, error) {
	var r Reservation
	if err := c.do(ctx, http.MethodGet, c.path(id, ""), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) Create(ctx context.Context, p Payload) (*Reservation, error) {
	var r Reservation
	if err := c.do(ctx, http.MethodPost, "/api/reservations", p, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Update replaces the reservation with p.
func (c *Client) Update(ctx context.Context, id ID, p Payload) (*Reservation, error) {
	var r Reservation
	if err := c.do(ctx, http.MethodPut, c.path(id, ""), p, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) Delete(ctx context.Context, id ID) error {
	return c.do(ctx, http.MethodDelete, c.path(id, ""), nil, nil)
}

func (c *Client) CheckIn(ctx context.Context, id ID) (*Reservation, error) {
	var r Reservation
	if err := c.do(ctx, http.MethodPost, c.path(id, "checkin"), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) CheckOut(ctx context.Context, id ID) (*Reservation, error) {
	var r Reservation
	if err := c.do(ctx, http.MethodPost, c.path(id, "checkout"), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) path(id ID, action string) string {
	p := "/api/reservations/" + url.PathEscape(id.String())
	if action != "" {
		p += "/" + action
	}
	return p
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&e)
		return &APIError{Code: resp.StatusCode, Message: e.Error}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
