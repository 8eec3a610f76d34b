package crmapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/cfg"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/e"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/jitter"
	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logger"
	"github.com/machinebox/graphql"
)

// Client — GraphQL-клиент CRM API для фоновых заданий.
type Client struct {
	gql        *graphql.Client
	maxRetries int
	logger     logger.Logger
}

// RestockedProduct — продукт, пополненный мутацией updateLowStockProducts.
type RestockedProduct struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// RestockResult — результат мутации updateLowStockProducts.
type RestockResult struct {
	Products []RestockedProduct `json:"products"`
	Message  string             `json:"message"`
}

// OrderReminder — заказ, по которому нужно отправить напоминание.
type OrderReminder struct {
	ID            string
	CustomerEmail string
}

func NewClient(cfg *cfg.ApiCfg, logger logger.Logger) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	return &Client{
		gql:        graphql.NewClient(cfg.BaseURL, graphql.WithHTTPClient(httpClient)),
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

// Hello проверяет отзывчивость GraphQL-эндпоинта.
func (c *Client) Hello(ctx context.Context) (string, error) {
	const op = "crmapi.Hello"

	var resp struct {
		Hello string `json:"hello"`
	}
	if err := c.run(ctx, graphql.NewRequest(`{ hello }`), &resp); err != nil {
		return "", e.Wrap(op, err)
	}

	return resp.Hello, nil
}

// UpdateLowStockProducts запускает пополнение low-stock продуктов через API.
func (c *Client) UpdateLowStockProducts(ctx context.Context) (*RestockResult, error) {
	const op = "crmapi.UpdateLowStockProducts"

	req := graphql.NewRequest(`
		mutation {
			updateLowStockProducts {
				products {
					id
					name
					stock
				}
				message
			}
		}
	`)

	var resp struct {
		UpdateLowStockProducts RestockResult `json:"updateLowStockProducts"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &resp.UpdateLowStockProducts, nil
}

// RecentOrders возвращает заказы, размещённые начиная с startDate.
func (c *Client) RecentOrders(ctx context.Context, startDate time.Time) ([]OrderReminder, error) {
	const op = "crmapi.RecentOrders"

	req := graphql.NewRequest(`
		query RecentOrders($startDate: DateTime!) {
			allOrders(orderDateGte: $startDate) {
				id
				customer {
					email
				}
			}
		}
	`)
	req.Var("startDate", startDate.UTC().Format(time.RFC3339))

	var resp struct {
		AllOrders []struct {
			ID       string `json:"id"`
			Customer struct {
				Email string `json:"email"`
			} `json:"customer"`
		} `json:"allOrders"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, e.Wrap(op, err)
	}

	reminders := make([]OrderReminder, 0, len(resp.AllOrders))
	for _, order := range resp.AllOrders {
		reminders = append(reminders, OrderReminder{
			ID:            order.ID,
			CustomerEmail: order.Customer.Email,
		})
	}

	return reminders, nil
}

// run выполняет запрос с retry-логикой и экспоненциальной задержкой.
func (c *Client) run(ctx context.Context, req *graphql.Request, resp any) error {
	const (
		op         = "crmapi.run"
		baseJitter = 1 * time.Second
		maxJitter  = 30 * time.Second
	)

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		lastErr = c.gql.Run(ctx, req, resp)
		if lastErr == nil {
			return nil
		}

		if attempt == c.maxRetries-1 {
			break
		}

		sleepTime := jitter.ExponentialBackoff(
			baseJitter,
			maxJitter,
			attempt,
			jitter.DefaultJitter,
		)

		c.logger.Warnf("CRM API request failed, retrying in %v (attempt %d): %v", sleepTime, attempt+1, lastErr)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return e.Wrap(op, ctx.Err())
		}
	}

	return e.Wrap(op, fmt.Errorf("all %d attempts failed: %w", c.maxRetries, lastErr))
}
