package dto

// CriarUsuarioRequest body para POST /usuarios. Senha em texto; o hash
// acontece no use case, antes de qualquer persistência.
type CriarUsuarioRequest struct {
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Senha       string `json:"senha"`
	TipoUsuario string `json:"tipo_usuario"`
}

// AtualizarUsuarioRequest body para PUT /usuarios/:id (não altera a senha).
type AtualizarUsuarioRequest struct {
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	TipoUsuario string `json:"tipo_usuario"`
}

// TrocarSenhaRequest body para PUT /usuarios/:id/senha.
type TrocarSenhaRequest struct {
	SenhaAtual string `json:"senha_atual"`
	NovaSenha  string `json:"nova_senha"`
}
