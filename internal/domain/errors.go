package domain

import "errors"

// Erros de domínio (sem dependências externas). A camada HTTP traduz cada um
// para um status code e uma mensagem estável; texto cru do banco nunca vaza.
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflito com o estado atual")
	ErrUnauthorized = errors.New("não autorizado")
)
