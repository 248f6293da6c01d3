package dto

// Envelope padrão da API: listas levam total; erros levam success=false e uma
// mensagem estável (nunca o texto cru do banco).

// ListaResponse corpo de respostas de listagem.
type ListaResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Total   int    `json:"total"`
	Message string `json:"message,omitempty"`
}

// ItemResponse corpo de respostas de item único.
type ItemResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErroResponse corpo de erro HTTP.
type ErroResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NovaLista monta o envelope de listagem.
func NovaLista(data any, total int) ListaResponse {
	return ListaResponse{Success: true, Data: data, Total: total}
}

// NovoItem monta o envelope de item com mensagem opcional.
func NovoItem(data any, message string) ItemResponse {
	return ItemResponse{Success: true, Data: data, Message: message}
}

// NovoErro monta o envelope de erro.
func NovoErro(message string) ErroResponse {
	return ErroResponse{Success: false, Message: message}
}
