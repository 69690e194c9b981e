package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MemberTruck/api-membertruck/internal/utils"
	"gorm.io/gorm"
)

// Handler expõe o fluxo de refresh e logout de tokens.
type Handler struct {
	DB      *gorm.DB
	Service *Service
}

func NewHandler(db *gorm.DB, service *Service) *Handler {
	return &Handler{DB: db, Service: service}
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// Refresh troca um refresh token válido por um novo access token.
// O refresh token atual continua válido até expirar ou ser revogado.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Refresh == "" {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "Informe o refresh token")
		return
	}

	claims, err := h.Service.ParseAndValidate(req.Refresh, TipoRefresh)
	if err != nil {
		utils.RespondErro(w, http.StatusUnauthorized, "token_invalido", "Refresh token inválido ou expirado")
		return
	}
	revogado, err := EstaRevogado(h.DB, claims.ID)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao verificar token")
		return
	}
	if revogado {
		utils.RespondErro(w, http.StatusUnauthorized, "token_invalido", "Refresh token revogado")
		return
	}

	access, err := h.Service.GerarTokenAcesso(claims.UserID)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao gerar token")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"access": access})
}

// Logout revoga o refresh token informado.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Refresh == "" {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "Informe o refresh token")
		return
	}

	claims, err := h.Service.ParseAndValidate(req.Refresh, TipoRefresh)
	if err != nil {
		utils.RespondErro(w, http.StatusUnauthorized, "token_invalido", "Refresh token inválido ou expirado")
		return
	}
	if err := Revogar(h.DB, claims); err != nil {
		// jti repetido significa logout duplicado, tratado como sucesso
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao revogar token")
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
