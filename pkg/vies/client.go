package vies

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/vatkit/vatkit/pkg/soap"
	"github.com/vatkit/vatkit/pkg/vat"
)

// DefaultEndpoint is the production VIES checkVat service.
const DefaultEndpoint = "https://ec.europa.eu/taxation_customs/vies/services/checkVatService"

const (
	defaultTimeout = 15 * time.Second
	userAgent      = "vatkit/1.0"

	// Registry responses are small; the limit only guards against a
	// misbehaving endpoint streaming garbage.
	maxResponseBytes = 1 << 20
)

// Result is the outcome of a single validation call.
//
// ServerValidated reports whether the registry was actually reached and
// answered. When false, the result is a presumed-valid fallback produced by
// the degradation policy without registry confirmation.
type Result struct {
	CountryCode     string `json:"country_code"`
	VATNumber       string `json:"vat_number"`
	Valid           bool   `json:"valid"`
	ServerValidated bool   `json:"server_validated"`
	Name            string `json:"name"`
	Address         string `json:"address"`
}

// Client validates VAT numbers against the VIES registry. Zero value is not
// usable; use New. A Client holds no per-call mutable state and is safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
	timeout    time.Duration
	log        *slog.Logger
	cache      ResultCache

	// degraded is the set of fault keys converted into presumed-valid
	// results. nil means every fault degrades, which matches the historical
	// behavior of the service.
	degraded map[string]struct{}
}

// New creates a registry client. Connection pooling mirrors what a
// low-volume outbound API client needs; override with WithHTTPClient.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second, // hard cap, per-call timeout is tighter
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		endpoint: DefaultEndpoint,
		timeout:  defaultTimeout,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check validates a VAT identifier against the registry.
//
// Local structural validation runs first and fails without any network call
// (errors.Is against vat.ErrInvalidCountry / vat.ErrInvalidNumber).
// Transport-level failures surface as ErrRequestFailed or ErrTimeout and are
// never degraded: no response was received to reason about. A registry fault
// inside the degraded set (default: all faults) is converted into a
// presumed-valid Result with ServerValidated=false; a fault outside the set
// returns ErrRegistryFault wrapping the translated message. A body that is
// neither a response nor a fault surfaces soap.ErrMalformedResponse.
//
// The caller-supplied context cancels the in-flight request; the client's
// configured timeout is layered on top of it per call.
func (c *Client) Check(ctx context.Context, rawID string) (Result, error) {
	id, err := vat.ParseID(rawID)
	if err != nil {
		return Result{}, err
	}

	log := c.log.With(
		slog.String("request_id", uuid.NewString()),
		slog.String("vat_id", id.String()),
	)

	if c.cache != nil {
		if res, ok := c.cache.Get(ctx, id.String()); ok {
			log.DebugContext(ctx, "cache hit")
			return res, nil
		}
	}

	body, status, err := c.post(ctx, soap.EncodeCheckVat(id.CountryCode, id.Number))
	if err != nil {
		return Result{}, err
	}

	decoded, fault, err := soap.DecodeCheckVat(body)
	if err != nil {
		if status != http.StatusOK {
			// Not even a SOAP body came back; treat as transport-level
			// breakage rather than a registry schema change.
			return Result{}, fmt.Errorf("%w: registry returned status %d", ErrRequestFailed, status)
		}
		log.ErrorContext(ctx, "malformed registry response", slog.Int("status", status))
		return Result{}, err
	}

	if fault != nil {
		msg := Translate(fault)
		if !c.degrades(fault.String) {
			log.WarnContext(ctx, "registry fault",
				slog.String("fault_code", fault.Code),
				slog.String("fault_string", fault.String),
			)
			return Result{}, fmt.Errorf("%w: %s", ErrRegistryFault, msg)
		}
		// The registry's own infrastructure failed, not the VAT number:
		// presume valid, leave the result unconfirmed.
		log.InfoContext(ctx, "registry fault degraded to unconfirmed result",
			slog.String("fault_string", fault.String),
			slog.String("message", msg),
		)
		return Result{
			CountryCode:     id.CountryCode,
			VATNumber:       id.Number,
			Valid:           true,
			ServerValidated: false,
		}, nil
	}

	res := Result{
		CountryCode:     decoded.CountryCode,
		VATNumber:       decoded.VATNumber,
		Valid:           decoded.Valid,
		ServerValidated: true,
		Name:            decoded.Name,
		Address:         decoded.Address,
	}

	// Only confirmed answers are cached; caching a degraded fallback would
	// mask registry recovery for a full TTL.
	if c.cache != nil {
		c.cache.Set(ctx, id.String(), res)
	}

	log.DebugContext(ctx, "vat number checked", slog.Bool("valid", res.Valid))
	return res, nil
}

// post sends the encoded envelope and returns the response body and status.
// Each call builds its own request and header set; nothing shared is
// mutated, notably Content-Length.
func (c *Client) post(ctx context.Context, payload []byte) ([]byte, int, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("User-Agent", userAgent)
	req.ContentLength = int64(len(payload))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if reqCtx.Err() == context.DeadlineExceeded {
			return nil, 0, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return nil, 0, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: reading response: %w", ErrRequestFailed, err)
	}
	return body, resp.StatusCode, nil
}

func (c *Client) degrades(faultKey string) bool {
	if c.degraded == nil {
		return true
	}
	_, ok := c.degraded[faultKey]
	return ok
}
