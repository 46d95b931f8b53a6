package entity

import "time"

// Customer representa um cliente cadastrado. CPF é a chave de negócio;
// o formato é validado pela camada de apresentação, não pelo núcleo.
type Customer struct {
	ID        string
	Name      string
	CPF       string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
