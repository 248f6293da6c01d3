package entity

import "time"

// Tipos de usuário do sistema.
const (
	UsuarioOperador      = "operador"
	UsuarioAdministrador = "administrador"
)

// Usuario usuário do sistema. SenhaHash guarda o hash bcrypt; a senha em
// texto nunca é persistida nem retornada pela API.
type Usuario struct {
	ID           string    `json:"id_usuario"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"` // único
	SenhaHash    string    `json:"-"`
	TipoUsuario  string    `json:"tipo_usuario"`
	DataCadastro time.Time `json:"data_cadastro"`
	Ativo        bool      `json:"ativo"`
}
