package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luan-zanardo/Insumix/internal/application/dto"
	"github.com/Luan-zanardo/Insumix/internal/application/usecase"
)

// ProdutoHandler trata as requisições HTTP de produtos e suas fórmulas.
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar produtos ativos
// @Tags         produtos
// @Produce      json
// @Success      200  {object}  dto.ListaResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) Listar(c *fiber.Ctx) error {
	produtos, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderErro(c, err, "")
	}
	return c.JSON(dto.NovaLista(produtos, len(produtos)))
}

// BuscarPorID godoc
// @Summary      Buscar produto por ID
// @Tags         produtos
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/produtos/{id} [get]
func (h *ProdutoHandler) BuscarPorID(c *fiber.Ctx) error {
	p, err := h.uc.BuscarPorID(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err, "produto não encontrado")
	}
	return c.JSON(dto.NovoItem(p, ""))
}

// Criar godoc
// @Summary      Cadastrar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProdutoRequest  true  "Dados do produto"
// @Success      201  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErroResponse
// @Failure      409  {object}  dto.ErroResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Criar(c *fiber.Ctx) error {
	var in dto.ProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyInvalido(c)
	}
	p, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return responderErro(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NovoItem(p, "produto cadastrado com sucesso"))
}

// Atualizar godoc
// @Summary      Atualizar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.ProdutoRequest  true  "Dados a atualizar"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.ProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyInvalido(c)
	}
	p, err := h.uc.Atualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err, "produto não encontrado")
	}
	return c.JSON(dto.NovoItem(p, "produto atualizado com sucesso"))
}

// Desativar godoc
// @Summary      Desativar produto (soft delete)
// @Tags         produtos
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Desativar(c *fiber.Ctx) error {
	if err := h.uc.Desativar(c.Context(), c.Params("id")); err != nil {
		return responderErro(c, err, "produto não encontrado")
	}
	return c.JSON(dto.NovoItem(nil, "produto desativado com sucesso"))
}

// ListarFormula godoc
// @Summary      Listar a fórmula (matérias-primas) do produto
// @Tags         produtos
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.ListaResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/produtos/{id}/formula [get]
func (h *ProdutoHandler) ListarFormula(c *fiber.Ctx) error {
	formula, err := h.uc.ListarFormula(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err, "produto não encontrado")
	}
	return c.JSON(dto.NovaLista(formula, len(formula)))
}

// AdicionarItemFormula godoc
// @Summary      Adicionar matéria-prima à fórmula do produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.FormulaItemRequest  true  "Item da fórmula"
// @Success      201  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErroResponse
// @Failure      404  {object}  dto.ErroResponse
// @Failure      409  {object}  dto.ErroResponse
// @Router       /api/produtos/{id}/formula [post]
func (h *ProdutoHandler) AdicionarItemFormula(c *fiber.Ctx) error {
	var in dto.FormulaItemRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyInvalido(c)
	}
	item, err := h.uc.AdicionarItemFormula(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err, "produto ou matéria-prima não encontrados")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NovoItem(item, "item adicionado à fórmula"))
}
