package orderservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-OrderIntakeService/internal/domain"
	"github.com/m04kA/SMC-OrderIntakeService/pkg/ptr"
)

// Client клиент для работы с OrderService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента OrderService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateOrder передает нормализованный заказ в OrderService без изменений.
// Ответ success=false возвращается вместе с ErrOrderRejected.
func (c *Client) CreateOrder(ctx context.Context, userID int64, payload domain.OrderPayload) (*domain.SubmitResult, error) {
	url := fmt.Sprintf("%s/api/v1/orders", c.baseURL)

	body, err := json.Marshal(CreateOrderRequest{Items: payload.Items})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", strconv.FormatInt(userID, 10))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("OrderService unavailable for user_id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusUnprocessableEntity, http.StatusConflict:
		// Тело ответа содержит success
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var response CreateOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	result := response.ToDomain()
	if !result.Success {
		message := ptr.Value(result.Message)
		c.log.Warn("OrderService rejected order for user_id=%d: %s", userID, message)
		return result, fmt.Errorf("%w: %s", ErrOrderRejected, message)
	}

	c.log.Info("Order created for user_id=%d, items=%d", userID, len(payload.Items))
	return result, nil
}
