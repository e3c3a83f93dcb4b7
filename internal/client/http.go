package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"everafter/internal/domain"
)

// HTTP talks to an everafter server.
type HTTP struct {
	Base string
	HTTP *http.Client
}

var _ domain.BookingAPI = (*HTTP)(nil)

// NewHTTP returns a client for base. A nil client uses http.DefaultClient.
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

func (c *HTTP) ListPackages(ctx context.Context) ([]domain.Package, error) {
	var out []domain.Package
	if err := c.do(ctx, http.MethodGet, "/api/packages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) CreatePaymentIntent(ctx context.Context, req domain.IntentRequest) (domain.IntentResponse, error) {
	var out domain.IntentResponse
	if err := c.do(ctx, http.MethodPost, "/api/stripe/create-payment-intent", req, &out); err != nil {
		return domain.IntentResponse{}, err
	}
	return out, nil
}

func (c *HTTP) ConfirmPayment(ctx context.Context, req domain.ConfirmRequest) (domain.ConfirmResponse, error) {
	var out domain.ConfirmResponse
	if err := c.do(ctx, http.MethodPost, "/api/stripe/payment", req, &out); err != nil {
		return domain.ConfirmResponse{}, err
	}
	return out, nil
}

func (c *HTTP) SubmitContract(ctx context.Context, sub domain.ContractSubmission) error {
	var out domain.SubmitResponse
	if err := c.do(ctx, http.MethodPost, "/api/contract/submit", sub, &out); err != nil {
		return err
	}
	if !out.Success {
		return domain.Upstream("Contract submission was not accepted.", nil)
	}
	return nil
}

func (c *HTTP) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return domain.Upstream("Could not reach the booking service.", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return statusError(method, path, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.Upstream("Unexpected response from the booking service.", fmt.Errorf("decode %s %s: %w", method, path, err))
	}
	return nil
}

func statusError(method, path string, resp *http.Response) error {
	var env struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&env)
	cause := fmt.Errorf("%s %s: %s", method, path, resp.Status)

	msg := env.Error
	if resp.StatusCode/100 == 4 {
		if msg == "" {
			msg = "The request was rejected."
		}
		return domain.Validationf(cause, "%s", msg)
	}
	if msg == "" {
		msg = "The booking service failed. Please try again."
	}
	return domain.Upstream(msg, cause)
}
