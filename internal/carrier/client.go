package carrier

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/SergeyBogomolovv/auspost-shipping/internal/config"
	"github.com/SergeyBogomolovv/auspost-shipping/internal/entities"
	"github.com/SergeyBogomolovv/auspost-shipping/pkg/utils"
)

type Sender interface {
	Send(ctx context.Context, method, path string, body any, opts ...SendOption) (Response, error)
}

// Client implements the carrier workflow on top of a Sender. It keeps no
// state between calls, but a single Shipment must not be shared between
// concurrent calls.
type Client struct {
	logger        *slog.Logger
	sender        Sender
	accountNumber string
	mode          entities.ReconcileMode

	quotePerProduct bool
}

type ClientOption func(*Client)

// WithQuotePerProduct prices the shipment once for every product of the
// account. Accounts without products fall back to a single request.
func WithQuotePerProduct(enabled bool) ClientOption {
	return func(c *Client) {
		c.quotePerProduct = enabled
	}
}

func NewClient(logger *slog.Logger, sender Sender, accountNumber string, mode entities.ReconcileMode, opts ...ClientOption) *Client {
	if mode == "" {
		mode = entities.ReconcileLegacy
	}
	c := &Client{
		logger:        logger.With(slog.String("component", "carrier")),
		sender:        sender,
		accountNumber: accountNumber,
		mode:          mode,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// New builds a client talking to the carrier over HTTP.
func New(logger *slog.Logger, cfg config.Carrier) *Client {
	gw := NewGateway(logger, GatewayConfig{
		BaseURL:       cfg.BaseURL,
		AccountNumber: cfg.AccountNumber,
		APIKey:        cfg.APIKey,
		APIPassword:   cfg.APIPassword,
		TestMode:      cfg.TestMode,
		Timeout:       cfg.Timeout,
		Retry:         utils.RetryConfig{MaxAttempts: cfg.RetryAttempts},
	}, &http.Client{Timeout: cfg.Timeout})

	return NewClient(logger, gw, cfg.AccountNumber, entities.ReconcileMode(cfg.ReconcileMode),
		WithQuotePerProduct(cfg.QuotePerProduct),
	)
}

func (c *Client) GetAccount(ctx context.Context) (entities.Account, error) {
	path := "accounts/" + url.PathEscape(c.accountNumber)
	resp, err := c.sender.Send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return entities.Account{}, err
	}

	var body accountResponse
	if err := resp.Decode(path, &body); err != nil {
		return entities.Account{}, err
	}

	acc := entities.Account{
		AccountNumber: body.AccountNumber,
		Name:          body.Name,
		Products:      make([]entities.Product, 0, len(body.Products)),
		Addresses:     make([]entities.AccountAddress, 0, len(body.Addresses)),
	}
	for _, p := range body.Products {
		acc.Products = append(acc.Products, entities.Product{ProductID: p.ProductID, Type: p.Type})
	}
	for _, a := range body.Addresses {
		acc.Addresses = append(acc.Addresses, entities.AccountAddress{Type: a.Type, Address: fromWireAddress(a.address)})
	}
	return acc, nil
}

// MerchantAddress looks up the merchant location registered on the account.
// The bool is false when the account has none.
func (c *Client) MerchantAddress(ctx context.Context) (entities.Address, bool, error) {
	acc, err := c.GetAccount(ctx)
	if err != nil {
		return entities.Address{}, false, err
	}
	addr, ok := acc.MerchantAddress()
	return addr, ok, nil
}

func (c *Client) warnInvalidTime(ctx context.Context, field string, t wireTime) {
	if t.Invalid() {
		c.logger.WarnContext(ctx, "unparsable carrier timestamp",
			slog.String("field", field),
			slog.String("value", t.Raw),
		)
	}
}

func toWireAddress(a *entities.Address) address {
	return address{
		Name:         a.Name,
		BusinessName: a.BusinessName,
		Lines:        a.Lines,
		Suburb:       a.Suburb,
		State:        a.State,
		Postcode:     a.Postcode,
		Country:      a.Country,
		Phone:        a.Phone,
		Email:        a.Email,
	}
}

func fromWireAddress(a address) entities.Address {
	return entities.Address{
		Name:         a.Name,
		BusinessName: a.BusinessName,
		Lines:        a.Lines,
		Suburb:       a.Suburb,
		State:        a.State,
		Postcode:     a.Postcode,
		Country:      a.Country,
		Phone:        a.Phone,
		Email:        a.Email,
	}
}

func coverFeature(value float64) *features {
	if value <= 0 {
		return nil
	}
	tc := &transitCover{}
	tc.Attributes.CoverAmount = value
	return &features{TransitCover: tc}
}
