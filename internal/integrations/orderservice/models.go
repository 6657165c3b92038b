package orderservice

import "github.com/m04kA/SMC-OrderIntakeService/internal/domain"

// CreateOrderRequest тело запроса POST /api/v1/orders
type CreateOrderRequest struct {
	Items []domain.OrderLine `json:"items"`
}

// CreateOrderResponse ответ OrderService; интерпретируется только success
type CreateOrderResponse struct {
	Success bool    `json:"success"`
	OrderID *string `json:"orderID,omitempty"`
	Message *string `json:"message,omitempty"`
}

// ToDomain конвертирует ответ в доменную модель
func (r *CreateOrderResponse) ToDomain() *domain.SubmitResult {
	return &domain.SubmitResult{
		Success: r.Success,
		OrderID: r.OrderID,
		Message: r.Message,
	}
}
