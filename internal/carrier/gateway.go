package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/auspost-shipping/internal/entities"
	"github.com/SergeyBogomolovv/auspost-shipping/pkg/utils"
)

const (
	livePrefix = "/shipping/v1/"
	testPrefix = "/test/shipping/v1/"
)

// Response is the raw outcome of one carrier call.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
	// JSON reports whether Body parsed as JSON. Other bodies, such as inline
	// PDF manifests, are kept opaque.
	JSON bool
}

func (r Response) Decode(path string, v any) error {
	if !r.JSON {
		return &entities.DecodeError{Path: path, Err: errors.New("response is not json")}
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return &entities.DecodeError{Path: path, Err: err}
	}
	return nil
}

type GatewayConfig struct {
	BaseURL       string
	AccountNumber string
	APIKey        string
	APIPassword   string
	TestMode      bool
	Timeout       time.Duration
	Retry         utils.RetryConfig
}

// Gateway sends requests to the carrier and turns reported errors into
// *entities.CarrierError. Each call owns its response.
type Gateway struct {
	logger  *slog.Logger
	http    *http.Client
	baseURL string
	cfg     GatewayConfig
}

func NewGateway(logger *slog.Logger, cfg GatewayConfig, client *http.Client) *Gateway {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	prefix := livePrefix
	if cfg.TestMode {
		prefix = testPrefix
	}
	cfg.Retry.Retryable = isTransportError

	return &Gateway{
		logger:  logger.With(slog.String("component", "carrier_gateway")),
		http:    client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/") + prefix,
		cfg:     cfg,
	}
}

type sendOptions struct {
	maxDimension int
}

type SendOption func(*sendOptions)

// WithMaxDimension attaches the largest parcel dimension of a quote to the call.
func WithMaxDimension(d int) SendOption {
	return func(o *sendOptions) {
		o.maxDimension = d
	}
}

// Send performs method on path. A nil body sends no payload.
func (g *Gateway) Send(ctx context.Context, method, path string, body any, opts ...SendOption) (Response, error) {
	var o sendOptions
	for _, opt := range opts {
		opt(&o)
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return Response{}, fmt.Errorf("failed to encode request: %w", err)
		}
	}

	endpoint := endpointLabel(path)
	attrs := []any{slog.String("method", method), slog.String("path", path)}
	if o.maxDimension > 0 {
		quoteMaxDimension.Observe(float64(o.maxDimension))
		attrs = append(attrs, slog.Int("max_dimension", o.maxDimension))
	}

	retry := g.cfg.Retry
	if !idempotent(method) {
		retry.MaxAttempts = 1
	}

	var resp Response
	start := time.Now()
	err := utils.Retry(ctx, retry, func() error {
		var err error
		resp, err = g.do(ctx, method, path, payload)
		return err
	})
	carrierRequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		carrierErrorsTotal.WithLabelValues(endpoint, "transport").Inc()
		g.logger.ErrorContext(ctx, "carrier request failed", append(attrs, slog.Any("error", err))...)
		return Response{}, err
	}

	carrierRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(resp.Status)).Inc()
	g.logger.DebugContext(ctx, "carrier request", append(attrs,
		slog.Int("status", resp.Status),
		slog.Bool("json", resp.JSON),
		slog.String("duration", time.Since(start).String()),
	)...)

	if err := checkErrors(resp); err != nil {
		carrierErrorsTotal.WithLabelValues(endpoint, "carrier").Inc()
		return Response{}, err
	}
	return resp, nil
}

func (g *Gateway) do(ctx context.Context, method, path string, payload []byte) (Response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+strings.TrimLeft(path, "/"), reader)
	if err != nil {
		return Response{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(g.cfg.APIKey, g.cfg.APIPassword)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.cfg.AccountNumber != "" {
		req.Header.Set("Account-Number", g.cfg.AccountNumber)
	}

	res, err := g.http.Do(req)
	if err != nil {
		return Response{}, &entities.TransportError{Method: method, Path: path, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return Response{}, &entities.TransportError{Method: method, Path: path, Err: err}
	}

	return Response{
		Status: res.StatusCode,
		Header: res.Header,
		Body:   body,
		JSON:   len(bytes.TrimSpace(body)) > 0 && json.Valid(body),
	}, nil
}

// checkErrors looks for an errors array at the top level or inside any
// returned shipment.
func checkErrors(resp Response) error {
	var entries []apiError
	if resp.JSON {
		var env errorEnvelope
		// Bodies of an unexpected shape carry no errors array.
		if err := json.Unmarshal(resp.Body, &env); err == nil {
			entries = append(entries, env.Errors...)
			for _, s := range env.Shipments {
				entries = append(entries, s.Errors...)
			}
		}
	}

	if len(entries) > 0 {
		return newCarrierError(resp.Status, entries)
	}
	if resp.Status >= http.StatusBadRequest {
		return &entities.CarrierError{Status: resp.Status}
	}
	return nil
}

func newCarrierError(status int, entries []apiError) *entities.CarrierError {
	e := &entities.CarrierError{Status: status, Errors: make([]entities.CarrierErrorEntry, 0, len(entries))}
	for _, it := range entries {
		e.Errors = append(e.Errors, entities.CarrierErrorEntry{
			Code:    string(it.Code),
			Name:    it.Name,
			Message: it.Message,
			Field:   it.Field,
		})
	}
	return e
}

func isTransportError(err error) bool {
	var te *entities.TransportError
	return errors.As(err, &te)
}

// Only reads and deletes are resent after a transport error.
func idempotent(method string) bool {
	return method == http.MethodGet || method == http.MethodDelete
}

func endpointLabel(path string) string {
	path = strings.TrimLeft(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}
