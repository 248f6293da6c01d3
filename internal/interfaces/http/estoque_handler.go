package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luan-zanardo/Insumix/internal/application/dto"
	"github.com/Luan-zanardo/Insumix/internal/application/estoque"
	domestoque "github.com/Luan-zanardo/Insumix/internal/domain/estoque"
)

// EstoqueHandler trata as requisições HTTP de estoque: visão geral, críticos,
// histórico, saldo e registro de movimentações.
type EstoqueHandler struct {
	movUC      *estoque.MovimentacaoUseCase
	consultaUC *estoque.ConsultaUseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(movUC *estoque.MovimentacaoUseCase, consultaUC *estoque.ConsultaUseCase) *EstoqueHandler {
	return &EstoqueHandler{movUC: movUC, consultaUC: consultaUC}
}

// Visao godoc
// @Summary      Visão de estoque com status derivado (críticos primeiro)
// @Tags         estoque
// @Produce      json
// @Param        busca      query  string  false  "Código ou descrição (sem diferenciar acentos)"
// @Param        categoria  query  string  false  "Categoria da matéria-prima"
// @Param        status     query  string  false  "NORMAL, CRÍTICO ou ZERADO"
// @Success      200  {object}  dto.ListaResponse
// @Router       /api/estoque [get]
func (h *EstoqueHandler) Visao(c *fiber.Ctx) error {
	filtro := domestoque.Filtro{
		Busca:     c.Query("busca"),
		Categoria: c.Query("categoria"),
		Status:    c.Query("status"),
	}
	itens, resumo, err := h.consultaUC.Visao(c.Context(), filtro)
	if err != nil {
		return responderErro(c, err, "")
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"data":     itens,
		"total":    resumo.Total,
		"criticos": resumo.Criticos + resumo.Zerados,
		"resumo":   resumo,
	})
}

// Critico godoc
// @Summary      Matérias-primas no limiar mínimo ou abaixo
// @Tags         estoque
// @Produce      json
// @Success      200  {object}  dto.ListaResponse
// @Router       /api/estoque/critico [get]
func (h *EstoqueHandler) Critico(c *fiber.Ctx) error {
	itens, err := h.consultaUC.Criticas(c.Context())
	if err != nil {
		return responderErro(c, err, "")
	}
	return c.JSON(dto.NovaLista(itens, len(itens)))
}

// Movimentacoes godoc
// @Summary      Histórico de movimentações
// @Tags         estoque
// @Produce      json
// @Param        id_materia_prima  query  string  false  "Filtra por matéria-prima"
// @Param        limite            query  int     false  "Máximo de linhas"  default(50)
// @Success      200  {object}  dto.ListaResponse
// @Router       /api/estoque/movimentacoes [get]
func (h *EstoqueHandler) Movimentacoes(c *fiber.Ctx) error {
	materiaID := c.Query("id_materia_prima")
	limite := c.QueryInt("limite", 0)
	movs, err := h.consultaUC.Historico(c.Context(), materiaID, limite)
	if err != nil {
		return responderErro(c, err, "")
	}
	return c.JSON(dto.NovaLista(movs, len(movs)))
}

// EstoqueTotal godoc
// @Summary      Saldo do livro de movimentações de uma matéria-prima
// @Tags         estoque
// @Produce      json
// @Param        id  path  string  true  "ID da matéria-prima"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/estoque/{id}/total [get]
func (h *EstoqueHandler) EstoqueTotal(c *fiber.Ctx) error {
	total, err := h.consultaUC.EstoqueTotal(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err, "matéria-prima não encontrada")
	}
	return c.JSON(dto.NovoItem(total, ""))
}

// RegistrarMovimentacao godoc
// @Summary      Registrar entrada ou saída de estoque
// @Tags         estoque
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovimentacaoRequest  true  "Movimentação"
// @Success      201  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErroResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/estoque/movimentacao [post]
func (h *EstoqueHandler) RegistrarMovimentacao(c *fiber.Ctx) error {
	var in dto.MovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyInvalido(c)
	}
	resp, err := h.movUC.Registrar(c.Context(), in)
	if err != nil {
		return responderErro(c, err, "matéria-prima não encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NovoItem(resp, "movimentação registrada com sucesso"))
}
