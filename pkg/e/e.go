package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrInternalServerError  = fmt.Errorf("internal server error")

	// Ошибки валидации клиентов
	ErrCustomerNameRequired = fmt.Errorf("customer name is required")
	ErrInvalidEmail         = fmt.Errorf("invalid email format")
	ErrDuplicateEmail       = fmt.Errorf("Email already exists")
	ErrNoCustomers          = fmt.Errorf("no customers provided")

	// Ошибки валидации продуктов
	ErrProductNameRequired = fmt.Errorf("product name is required")
	ErrInvalidPrice        = fmt.Errorf("Invalid price format. Use a numeric string like '999.99'.")
	ErrPricePrecision      = fmt.Errorf("price must have at most 2 decimal places")
	ErrPriceMustBePositive = fmt.Errorf("Price must be positive")
	ErrNegativeStock       = fmt.Errorf("Stock cannot be negative")
	ErrNoProducts          = fmt.Errorf("no products provided")

	// Ошибки заказов
	ErrInvalidCustomerID = fmt.Errorf("Invalid customer ID")
	ErrInvalidProductIDs = fmt.Errorf("Invalid product IDs")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
