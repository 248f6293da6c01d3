package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luan-zanardo/Insumix/internal/application/compras"
	"github.com/Luan-zanardo/Insumix/internal/application/dto"
)

// PedidoHandler trata as requisições HTTP de pedidos de compra.
type PedidoHandler struct {
	uc *compras.PedidoUseCase
}

// NewPedidoHandler constrói o handler.
func NewPedidoHandler(uc *compras.PedidoUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// ListarAbertos godoc
// @Summary      Listar pedidos em aberto (pendentes e enviados)
// @Tags         pedidos-compra
// @Produce      json
// @Success      200  {object}  dto.ListaResponse
// @Router       /api/pedidos-compra [get]
func (h *PedidoHandler) ListarAbertos(c *fiber.Ctx) error {
	pedidos, err := h.uc.ListarAbertos(c.Context())
	if err != nil {
		return responderErro(c, err, "")
	}
	return c.JSON(dto.NovaLista(pedidos, len(pedidos)))
}

// ListarTodos godoc
// @Summary      Listar todos os pedidos, inclusive entregues e cancelados
// @Tags         pedidos-compra
// @Produce      json
// @Success      200  {object}  dto.ListaResponse
// @Router       /api/pedidos-compra/todos [get]
func (h *PedidoHandler) ListarTodos(c *fiber.Ctx) error {
	pedidos, err := h.uc.ListarTodos(c.Context())
	if err != nil {
		return responderErro(c, err, "")
	}
	return c.JSON(dto.NovaLista(pedidos, len(pedidos)))
}

// BuscarPorID godoc
// @Summary      Buscar pedido com itens
// @Tags         pedidos-compra
// @Produce      json
// @Param        id  path  string  true  "ID do pedido"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/pedidos-compra/{id} [get]
func (h *PedidoHandler) BuscarPorID(c *fiber.Ctx) error {
	pedido, err := h.uc.BuscarPorID(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err, "pedido não encontrado")
	}
	return c.JSON(dto.NovoItem(pedido, ""))
}

// Criar godoc
// @Summary      Criar pedido de compra com itens (transacional)
// @Tags         pedidos-compra
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarPedidoRequest  true  "Pedido com ao menos um item"
// @Success      201  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErroResponse
// @Failure      409  {object}  dto.ErroResponse
// @Router       /api/pedidos-compra [post]
func (h *PedidoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyInvalido(c)
	}
	pedido, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return responderErro(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NovoItem(pedido, "pedido criado com sucesso"))
}

// AtualizarStatus godoc
// @Summary      Atualizar status do pedido
// @Tags         pedidos-compra
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do pedido"
// @Param        body  body  dto.AtualizarStatusRequest  true  "Novo status"
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErroResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/pedidos-compra/{id}/status [put]
func (h *PedidoHandler) AtualizarStatus(c *fiber.Ctx) error {
	var in dto.AtualizarStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyInvalido(c)
	}
	pedido, err := h.uc.AtualizarStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return responderErro(c, err, "pedido não encontrado")
	}
	return c.JSON(dto.NovoItem(pedido, "status atualizado com sucesso"))
}

// Cancelar godoc
// @Summary      Cancelar pedido (somente pendente ou enviado)
// @Tags         pedidos-compra
// @Produce      json
// @Param        id  path  string  true  "ID do pedido"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/pedidos-compra/{id} [delete]
func (h *PedidoHandler) Cancelar(c *fiber.Ctx) error {
	if err := h.uc.Cancelar(c.Context(), c.Params("id")); err != nil {
		return responderErro(c, err, "pedido não encontrado ou não pode ser cancelado")
	}
	return c.JSON(dto.NovoItem(nil, "pedido cancelado com sucesso"))
}
