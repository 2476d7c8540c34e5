package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const maxResponseBody = 8 << 20

// Options configures an HTTPClient. Zero values fall back to defaults.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
	Tokens    TokenSource
	Logger    logging.Logger
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

type HTTPClient struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	limiter *rate.Limiter
	tokens  TokenSource
	log     logging.Logger
}

type noToken struct{}

func (noToken) Token() string { return "" }

func NewHTTPClient(opts Options) (*HTTPClient, error) {
	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q: want http(s)://host[:port]", opts.BaseURL)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		timeout: opts.Timeout,
		http:    opts.HTTPClient,
		tokens:  opts.Tokens,
		log:     opts.Logger,
	}
	if c.timeout <= 0 {
		c.timeout = 15 * time.Second
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	if c.tokens == nil {
		c.tokens = noToken{}
	}
	if c.log == nil {
		c.log = logging.Discard()
	}

	limit, burst := rate.Limit(opts.RateLimit), opts.RateBurst
	if limit <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}
	c.limiter = rate.NewLimiter(limit, burst)

	return c, nil
}

// do sends one JSON request and decodes a 2xx body into out (if non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, in any, out any) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, transportError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	reqID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, reqID)
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, transportError(err)
	}

	c.log.Debug(ctx, "request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", reqID,
	)

	if resp.StatusCode >= 400 {
		return data, statusError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return data, &APIError{Status: resp.StatusCode, Err: common.ErrUnexpected, Cause: err}
		}
	}
	return data, nil
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *HTTPClient) Signup(ctx context.Context, username, password string) error {
	_, err := c.do(ctx, http.MethodPost, "/users", credentials{username, password}, nil)
	return err
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (models.Session, error) {
	data, err := c.do(ctx, http.MethodPost, "/users/login", credentials{username, password}, nil)
	if err != nil {
		return models.Session{}, err
	}

	// user_id arrives as a JSON number; gjson renders either form as text.
	s := models.Session{
		Token:  gjson.GetBytes(data, "token").String(),
		UserID: gjson.GetBytes(data, "user_id").String(),
	}
	if !s.Valid() {
		return models.Session{}, &APIError{Status: http.StatusOK, Err: common.ErrUnexpected, Message: "login response without token or user_id"}
	}
	return s, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/users/logout", nil, nil)
	return err
}

func (c *HTTPClient) ListItems(ctx context.Context) ([]models.Item, error) {
	var resp struct {
		Items []models.Item `json:"items"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/items", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

type createItemRequest struct {
	Name        string      `json:"name"`
	Price       json.Number `json:"price"`
	Description string      `json:"description"`
	ImageData   string      `json:"image_data,omitempty"`
}

func (c *HTTPClient) CreateItem(ctx context.Context, item models.NewItem) (*models.Item, error) {
	req := createItemRequest{
		Name:        item.Name,
		Price:       json.Number(item.Price.String()),
		Description: item.Description,
		ImageData:   item.ImageData,
	}

	var resp struct {
		Item models.Item `json:"item"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/items", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

func (c *HTTPClient) DeleteItem(ctx context.Context, itemID uint64) error {
	_, err := c.do(ctx, http.MethodDelete, "/items/"+strconv.FormatUint(itemID, 10), nil, nil)
	return err
}

func (c *HTTPClient) AddToCart(ctx context.Context, itemID uint64) error {
	req := struct {
		ItemID uint64 `json:"item_id"`
	}{itemID}
	_, err := c.do(ctx, http.MethodPost, "/carts", req, nil)
	return err
}

func (c *HTTPClient) RemoveFromCart(ctx context.Context, itemID uint64) error {
	_, err := c.do(ctx, http.MethodDelete, "/carts/items/"+strconv.FormatUint(itemID, 10), nil, nil)
	return err
}

// GetUserCart returns an empty cart when the server has none for the user
// yet (it answers 404 in that case).
func (c *HTTPClient) GetUserCart(ctx context.Context) (*models.Cart, error) {
	var resp struct {
		Cart *models.Cart `json:"cart"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/carts/user", nil, &resp); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return &models.Cart{}, nil
		}
		return nil, err
	}
	if resp.Cart == nil {
		return &models.Cart{}, nil
	}
	return resp.Cart, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, cartID *uint64) (*models.Order, error) {
	// The server insists on a JSON body even when no cart id is given.
	req := struct {
		CartID *uint64 `json:"cart_id,omitempty"`
	}{cartID}

	var resp struct {
		Order *models.Order `json:"order"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/orders", req, &resp); err != nil {
		return nil, err
	}
	if resp.Order == nil {
		return nil, &APIError{Status: http.StatusCreated, Err: common.ErrUnexpected, Message: "order response without order"}
	}
	return resp.Order, nil
}

func (c *HTTPClient) ListUserOrders(ctx context.Context) ([]models.Order, error) {
	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/orders/user", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *HTTPClient) DeleteOrder(ctx context.Context, orderID uint64) error {
	_, err := c.do(ctx, http.MethodDelete, "/orders/"+strconv.FormatUint(orderID, 10), nil, nil)
	return err
}

func (c *HTTPClient) ClearUserOrders(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/orders/user", nil, nil)
	return err
}

// Ping reports whether the server answers at all; any HTTP status counts.
func (c *HTTPClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/items", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	_ = resp.Body.Close()
	return nil
}
