// Package client talks to the finance-tracker REST API. It implements the
// persistence side of the record store.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/category"
	"github.com/frahmantamala/finance-tracker/internal/dashboard"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
)

type Config struct {
	BaseURL string
	// Timeout bounds each request. Zero leaves requests unbounded.
	Timeout time.Duration
}

type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(config Config, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(config.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", config.BaseURL)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    base.String(),
		timeout:    config.Timeout,
		httpClient: &http.Client{},
		logger:     logger,
	}, nil
}

func (c *Client) ListTransactions(ctx context.Context) ([]transaction.Transaction, error) {
	var out []transaction.Transaction
	if err := c.do(ctx, http.MethodGet, "/api/transactions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTransaction(ctx context.Context, dto transaction.CreateTransactionDTO) (*transaction.Transaction, error) {
	var out transaction.Transaction
	if err := c.do(ctx, http.MethodPost, "/api/transactions", dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/transactions/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListBudgets(ctx context.Context) ([]budget.Budget, error) {
	var out []budget.Budget
	if err := c.do(ctx, http.MethodGet, "/api/budgets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBudget(ctx context.Context, dto budget.CreateBudgetDTO) (*budget.Budget, error) {
	var out budget.Budget
	if err := c.do(ctx, http.MethodPost, "/api/budgets", dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBudget(ctx context.Context, id string, dto budget.UpdateBudgetDTO) (*budget.Budget, error) {
	var out budget.Budget
	if err := c.do(ctx, http.MethodPut, "/api/budgets/"+url.PathEscape(id), dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBudget(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/budgets/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Categories(ctx context.Context) ([]category.CategoryResponse, error) {
	var out category.CategoriesResponse
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// Dashboard fetches the server-side dashboard for month.
func (c *Client) Dashboard(ctx context.Context, month string) (*dashboard.Dashboard, error) {
	path := "/api/dashboard"
	if month != "" {
		path += "?month=" + url.QueryEscape(month)
	}
	var out dashboard.Dashboard
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one round trip. Error responses carrying the API's error
// envelope come back as that *internal.AppError; anything else is reported
// as an external error.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	ctx, cancel := internal.WithOptionalTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("request failed", "method", method, "path", path, "error", err)
		return internal.NewExternalError("request to persistence API failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(method, path, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return internal.NewExternalError("failed to decode response", err)
	}
	return nil
}

func (c *Client) decodeError(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var envelope internal.Response
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil && envelope.Error.Type != "" {
		appErr := envelope.Error
		appErr.StatusCode = resp.StatusCode
		c.logger.Warn("API returned error",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"code", appErr.Code)
		return appErr
	}

	c.logger.Error("API returned unexpected status", "method", method, "path", path, "status", resp.StatusCode)
	return internal.NewExternalError(
		fmt.Sprintf("API returned status %d", resp.StatusCode),
		fmt.Errorf("%s %s: %s", method, path, strings.TrimSpace(string(raw))),
	)
}
