package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luan-zanardo/Insumix/internal/application/compras"
	"github.com/Luan-zanardo/Insumix/internal/application/estoque"
	"github.com/Luan-zanardo/Insumix/internal/application/usecase"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	MateriaPrimaUC *usecase.MateriaPrimaUseCase
	FornecedorUC   *usecase.FornecedorUseCase
	ProdutoUC      *usecase.ProdutoUseCase
	UsuarioUC      *usecase.UsuarioUseCase
	MovimentacaoUC *estoque.MovimentacaoUseCase
	ConsultaUC     *estoque.ConsultaUseCase
	PedidoUC       *compras.PedidoUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Matérias-primas
	materias := api.Group("/materias-primas")
	materiaHandler := NewMateriaPrimaHandler(deps.MateriaPrimaUC)
	materias.Get("/", materiaHandler.Listar)
	materias.Post("/", materiaHandler.Criar)
	materias.Get("/:id", materiaHandler.BuscarPorID)
	materias.Put("/:id", materiaHandler.Atualizar)
	materias.Put("/:id/preco", materiaHandler.AtualizarPreco)
	materias.Delete("/:id", materiaHandler.Desativar)

	// Estoque (rotas fixas antes da rota com :id)
	est := api.Group("/estoque")
	estoqueHandler := NewEstoqueHandler(deps.MovimentacaoUC, deps.ConsultaUC)
	est.Get("/", estoqueHandler.Visao)
	est.Get("/critico", estoqueHandler.Critico)
	est.Get("/movimentacoes", estoqueHandler.Movimentacoes)
	est.Post("/movimentacao", estoqueHandler.RegistrarMovimentacao)
	est.Get("/:id/total", estoqueHandler.EstoqueTotal)

	// Pedidos de compra
	pedidos := api.Group("/pedidos-compra")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidos.Get("/", pedidoHandler.ListarAbertos)
	pedidos.Get("/todos", pedidoHandler.ListarTodos)
	pedidos.Post("/", pedidoHandler.Criar)
	pedidos.Get("/:id", pedidoHandler.BuscarPorID)
	pedidos.Put("/:id/status", pedidoHandler.AtualizarStatus)
	pedidos.Delete("/:id", pedidoHandler.Cancelar)

	// Fornecedores
	fornecedores := api.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Get("/", fornecedorHandler.Listar)
	fornecedores.Post("/", fornecedorHandler.Criar)
	fornecedores.Get("/:id", fornecedorHandler.BuscarPorID)
	fornecedores.Put("/:id", fornecedorHandler.Atualizar)
	fornecedores.Delete("/:id", fornecedorHandler.Desativar)

	// Produtos e fórmulas
	produtos := api.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Get("/", produtoHandler.Listar)
	produtos.Post("/", produtoHandler.Criar)
	produtos.Get("/:id", produtoHandler.BuscarPorID)
	produtos.Put("/:id", produtoHandler.Atualizar)
	produtos.Delete("/:id", produtoHandler.Desativar)
	produtos.Get("/:id/formula", produtoHandler.ListarFormula)
	produtos.Post("/:id/formula", produtoHandler.AdicionarItemFormula)

	// Usuários
	usuarios := api.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.Listar)
	usuarios.Post("/", usuarioHandler.Criar)
	usuarios.Get("/:id", usuarioHandler.BuscarPorID)
	usuarios.Put("/:id", usuarioHandler.Atualizar)
	usuarios.Put("/:id/senha", usuarioHandler.TrocarSenha)
	usuarios.Delete("/:id", usuarioHandler.Desativar)
}
