package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luan-zanardo/Insumix/internal/application/dto"
	"github.com/Luan-zanardo/Insumix/internal/application/usecase"
)

// MateriaPrimaHandler trata as requisições HTTP de matérias-primas.
type MateriaPrimaHandler struct {
	uc *usecase.MateriaPrimaUseCase
}

// NewMateriaPrimaHandler constrói o handler.
func NewMateriaPrimaHandler(uc *usecase.MateriaPrimaUseCase) *MateriaPrimaHandler {
	return &MateriaPrimaHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar matérias-primas ativas
// @Tags         materias-primas
// @Produce      json
// @Success      200  {object}  dto.ListaResponse
// @Router       /api/materias-primas [get]
func (h *MateriaPrimaHandler) Listar(c *fiber.Ctx) error {
	materias, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderErro(c, err, "")
	}
	return c.JSON(dto.NovaLista(materias, len(materias)))
}

// BuscarPorID godoc
// @Summary      Buscar matéria-prima por ID
// @Tags         materias-primas
// @Produce      json
// @Param        id  path  string  true  "ID da matéria-prima"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/materias-primas/{id} [get]
func (h *MateriaPrimaHandler) BuscarPorID(c *fiber.Ctx) error {
	m, err := h.uc.BuscarPorID(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err, "matéria-prima não encontrada")
	}
	return c.JSON(dto.NovoItem(m, ""))
}

// Criar godoc
// @Summary      Cadastrar matéria-prima
// @Tags         materias-primas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MateriaPrimaRequest  true  "Dados da matéria-prima"
// @Success      201  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErroResponse
// @Failure      409  {object}  dto.ErroResponse
// @Router       /api/materias-primas [post]
func (h *MateriaPrimaHandler) Criar(c *fiber.Ctx) error {
	var in dto.MateriaPrimaRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyInvalido(c)
	}
	m, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return responderErro(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NovoItem(m, "matéria-prima cadastrada com sucesso"))
}

// Atualizar godoc
// @Summary      Atualizar matéria-prima
// @Tags         materias-primas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da matéria-prima"
// @Param        body  body  dto.MateriaPrimaRequest  true  "Dados a atualizar"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/materias-primas/{id} [put]
func (h *MateriaPrimaHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.MateriaPrimaRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyInvalido(c)
	}
	m, err := h.uc.Atualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err, "matéria-prima não encontrada")
	}
	return c.JSON(dto.NovoItem(m, "matéria-prima atualizada com sucesso"))
}

// AtualizarPreco godoc
// @Summary      Atualizar preço unitário
// @Tags         materias-primas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da matéria-prima"
// @Param        body  body  dto.AtualizarPrecoRequest  true  "Novo preço (positivo)"
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErroResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/materias-primas/{id}/preco [put]
func (h *MateriaPrimaHandler) AtualizarPreco(c *fiber.Ctx) error {
	var in dto.AtualizarPrecoRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyInvalido(c)
	}
	m, err := h.uc.AtualizarPreco(c.Context(), c.Params("id"), in.NovoPreco)
	if err != nil {
		return responderErro(c, err, "matéria-prima não encontrada")
	}
	return c.JSON(dto.NovoItem(m, "preço atualizado com sucesso"))
}

// Desativar godoc
// @Summary      Desativar matéria-prima (soft delete)
// @Tags         materias-primas
// @Produce      json
// @Param        id  path  string  true  "ID da matéria-prima"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/materias-primas/{id} [delete]
func (h *MateriaPrimaHandler) Desativar(c *fiber.Ctx) error {
	if err := h.uc.Desativar(c.Context(), c.Params("id")); err != nil {
		return responderErro(c, err, "matéria-prima não encontrada")
	}
	return c.JSON(dto.NovoItem(nil, "matéria-prima desativada com sucesso"))
}
