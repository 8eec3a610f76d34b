package domain

import "time"

// Product описывает продукт
type Product struct {
	ID        int64
	Name      string
	Price     int64 // Цена хранится в центах
	Stock     int32
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewProduct(name string, price int64, stock int32) *Product {
	return &Product{
		Name:  name,
		Price: price,
		Stock: stock,
	}
}
