package utils

import (
	"encoding/json"
	"net/http"
)

// ErroResponse é o corpo padrão de erro da API.
type ErroResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RespondErro escreve um corpo JSON {error, message} com o status informado.
func RespondErro(w http.ResponseWriter, status int, erro, mensagem string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErroResponse{Error: erro, Message: mensagem})
}

// RespondJSON escreve qualquer payload como JSON com o status informado.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
