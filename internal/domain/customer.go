package domain

import "time"

// Customer описывает клиента CRM
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	CreatedAt time.Time
}

func NewCustomer(name, email string, phone *string) *Customer {
	return &Customer{
		Name:  name,
		Email: email,
		Phone: phone,
	}
}
