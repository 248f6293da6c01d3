package estoque

import (
	"context"

	"github.com/Luan-zanardo/Insumix/internal/domain/repository"
)

// TxRunner executa o callback dentro de uma transação de banco, passando
// repositórios atados a essa tx. Garante que o insert no livro e o ajuste de
// estoque sejam visíveis juntos ou não sejam visíveis.
type TxRunner interface {
	RunMovimentacao(ctx context.Context, fn func(
		movRepo repository.MovimentacaoEstoqueRepository,
		materiaRepo repository.MateriaPrimaRepository,
	) error) error
}
