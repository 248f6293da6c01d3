package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Luan-zanardo/Insumix/internal/application/dto"
	"github.com/Luan-zanardo/Insumix/internal/domain"
)

// responderErro traduz erros de domínio para status HTTP com mensagem
// estável. msgNotFound personaliza o texto do 404; erros desconhecidos viram
// 500 genérico, sem vazar texto do banco.
func responderErro(c *fiber.Ctx, err error, msgNotFound string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.NovoErro("dados inválidos"))
	case errors.Is(err, domain.ErrNotFound):
		if msgNotFound == "" {
			msgNotFound = "registro não encontrado"
		}
		return c.Status(fiber.StatusNotFound).JSON(dto.NovoErro(msgNotFound))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.NovoErro("registro duplicado"))
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.NovoErro("conflito com o estado atual"))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.NovoErro("não autorizado"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NovoErro("erro interno do servidor"))
	}
}

func bodyInvalido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.NovoErro("corpo da requisição inválido"))
}
