package domain

import "time"

// Order описывает заказ. TotalAmount фиксируется в момент создания заказа
// как сумма цен продуктов и позже не пересчитывается.
type Order struct {
	ID          int64
	CustomerID  int64
	OrderDate   time.Time
	TotalAmount int64 // Сумма хранится в центах
	CreatedAt   time.Time
}

func NewOrder(customerID int64, orderDate time.Time, totalAmount int64) *Order {
	return &Order{
		CustomerID:  customerID,
		OrderDate:   orderDate,
		TotalAmount: totalAmount,
	}
}
