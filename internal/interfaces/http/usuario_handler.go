package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luan-zanardo/Insumix/internal/application/dto"
	"github.com/Luan-zanardo/Insumix/internal/application/usecase"
)

// UsuarioHandler trata as requisições HTTP de usuários.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler constrói o handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar usuários ativos
// @Tags         usuarios
// @Produce      json
// @Success      200  {object}  dto.ListaResponse
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) Listar(c *fiber.Ctx) error {
	usuarios, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderErro(c, err, "")
	}
	return c.JSON(dto.NovaLista(usuarios, len(usuarios)))
}

// BuscarPorID godoc
// @Summary      Buscar usuário por ID
// @Tags         usuarios
// @Produce      json
// @Param        id  path  string  true  "ID do usuário"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/usuarios/{id} [get]
func (h *UsuarioHandler) BuscarPorID(c *fiber.Ctx) error {
	u, err := h.uc.BuscarPorID(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err, "usuário não encontrado")
	}
	return c.JSON(dto.NovoItem(u, ""))
}

// Criar godoc
// @Summary      Cadastrar usuário
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarUsuarioRequest  true  "Dados do usuário"
// @Success      201  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErroResponse
// @Failure      409  {object}  dto.ErroResponse
// @Router       /api/usuarios [post]
func (h *UsuarioHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyInvalido(c)
	}
	u, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return responderErro(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NovoItem(u, "usuário cadastrado com sucesso"))
}

// Atualizar godoc
// @Summary      Atualizar usuário (nome, e-mail, tipo)
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do usuário"
// @Param        body  body  dto.AtualizarUsuarioRequest  true  "Dados a atualizar"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/usuarios/{id} [put]
func (h *UsuarioHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyInvalido(c)
	}
	u, err := h.uc.Atualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderErro(c, err, "usuário não encontrado")
	}
	return c.JSON(dto.NovoItem(u, "usuário atualizado com sucesso"))
}

// TrocarSenha godoc
// @Summary      Trocar a senha do usuário
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do usuário"
// @Param        body  body  dto.TrocarSenhaRequest  true  "Senha atual e nova"
// @Success      200  {object}  dto.ItemResponse
// @Failure      401  {object}  dto.ErroResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/usuarios/{id}/senha [put]
func (h *UsuarioHandler) TrocarSenha(c *fiber.Ctx) error {
	var in dto.TrocarSenhaRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyInvalido(c)
	}
	if err := h.uc.TrocarSenha(c.Context(), c.Params("id"), in); err != nil {
		return responderErro(c, err, "usuário não encontrado")
	}
	return c.JSON(dto.NovoItem(nil, "senha alterada com sucesso"))
}

// Desativar godoc
// @Summary      Desativar usuário (soft delete)
// @Tags         usuarios
// @Produce      json
// @Param        id  path  string  true  "ID do usuário"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/usuarios/{id} [delete]
func (h *UsuarioHandler) Desativar(c *fiber.Ctx) error {
	if err := h.uc.Desativar(c.Context(), c.Params("id")); err != nil {
		return responderErro(c, err, "usuário não encontrado")
	}
	return c.JSON(dto.NovoItem(nil, "usuário desativado com sucesso"))
}
