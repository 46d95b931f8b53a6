package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	// ErrStorage indica falha do armazenamento (banco inacessível ou escrita
	// rejeitada). É propagado distinto dos erros de validação para que o
	// chamador possa reconciliar estado caso uma unidade atômica não complete.
	ErrStorage = errors.New("falha de armazenamento")
)
