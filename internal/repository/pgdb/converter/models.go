package converter

import "time"

// CustomerModel представляет запись таблицы customers в PostgreSQL.
type CustomerModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     *string   `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Price     int64      `db:"price"`
	Stock     int32      `db:"stock"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID          int64     `db:"id"`
	CustomerID  int64     `db:"customer_id"`
	OrderDate   time.Time `db:"order_date"`
	TotalAmount int64     `db:"total_amount"`
	CreatedAt   time.Time `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     int64      `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
