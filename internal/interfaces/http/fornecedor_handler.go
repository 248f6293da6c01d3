package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luan-zanardo/Insumix/internal/application/dto"
	"github.com/Luan-zanardo/Insumix/internal/application/usecase"
)

// FornecedorHandler trata as requisições HTTP de fornecedores.
type FornecedorHandler struct {
	uc *usecase.FornecedorUseCase
}

// NewFornecedorHandler constrói o handler.
func NewFornecedorHandler(uc *usecase.FornecedorUseCase) *FornecedorHandler {
	return &FornecedorHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar fornecedores ativos
// @Tags         fornecedores
// @Produce      json
// @Success      200  {object}  dto.ListaResponse
// @Router       /api/fornecedores [get]
func (h *FornecedorHandler) Listar(c *fiber.Ctx) error {
	fornecedores, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderErro(c, err, "")
	}
	return c.JSON(dto.NovaLista(fornecedores, len(fornecedores)))
}

// BuscarPorID godoc
// @Summary      Buscar fornecedor por ID
// @Tags         fornecedores
// @Produce      json
// @Param        id  path  string  true  "ID do fornecedor"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/fornecedores/{id} [get]
func (h *FornecedorHandler) BuscarPorID(c *fiber.Ctx) error {
	f, err := h.uc.BuscarPorID(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err, "fornecedor não encontrado")
	}
	return c.JSON(dto.NovoItem(f, ""))
}

// Criar godoc
// @Summary      Cadastrar fornecedor
// @Tags         fornecedores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FornecedorRequest  true  "Dados do fornecedor"
// @Success      201  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErroResponse
// @Failure      409  {object}  dto.ErroResponse
// @Router       /api/fornecedores [post]
func (h *FornecedorHandler) Criar(c *fiber.Ctx) error {
	var in dto.FornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyInvalido(c)
	}
	f, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return responderErro(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NovoItem(f, "fornecedor cadastrado com sucesso"))
}

// Atualizar godoc
// @Summary      Atualizar fornecedor
// @Tags         fornecedores
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do fornecedor"
// @Param        body  body  dto.FornecedorRequest  true  "Dados a atualizar"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/fornecedores/{id} [put]
func (h *FornecedorHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.FornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyInvalido(c)
	}
	f, err := h.uc.Atualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err, "fornecedor não encontrado")
	}
	return c.JSON(dto.NovoItem(f, "fornecedor atualizado com sucesso"))
}

// Desativar godoc
// @Summary      Desativar fornecedor (soft delete)
// @Tags         fornecedores
// @Produce      json
// @Param        id  path  string  true  "ID do fornecedor"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/fornecedores/{id} [delete]
func (h *FornecedorHandler) Desativar(c *fiber.Ctx) error {
	if err := h.uc.Desativar(c.Context(), c.Params("id")); err != nil {
		return responderErro(c, err, "fornecedor não encontrado")
	}
	return c.JSON(dto.NovoItem(nil, "fornecedor desativado com sucesso"))
}
