package login

import (
	"encoding/json"
	"net/http"

	"github.com/MemberTruck/api-membertruck/internal/auth"
	"github.com/MemberTruck/api-membertruck/internal/pessoa"
	"github.com/MemberTruck/api-membertruck/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	DB      *gorm.DB
	Service *auth.Service
	Pessoas pessoa.Repository
}

func NewHandler(db *gorm.DB, service *auth.Service) *Handler {
	return &Handler{DB: db, Service: service, Pessoas: pessoa.NewRepository()}
}

type loginRequest struct {
	Usuario string `json:"usuario"`
	Senha   string `json:"senha"`
}

// UserInfo enriquece a resposta de login com a classificação do papel.
type UserInfo struct {
	ID          uint    `json:"id"`
	Nome        string  `json:"nome"`
	Usuario     string  `json:"usuario"`
	Email       *string `json:"email"`
	IsStaff     bool    `json:"is_staff"`
	IsSuperuser bool    `json:"is_superuser"`
	Classificacao
}

type loginResponse struct {
	Access   string   `json:"access"`
	Refresh  string   `json:"refresh"`
	UserInfo UserInfo `json:"user_info"`
}

// Login verifica a credencial e emite o par de tokens. A mensagem de
// falha nunca diz qual parte da credencial estava errada.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Usuario == "" || req.Senha == "" {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "Informe usuário e senha")
		return
	}

	user, err := h.Pessoas.BuscarPorUsuario(h.DB, req.Usuario)
	if err != nil {
		utils.RespondErro(w, http.StatusUnauthorized, "credenciais_invalidas", "Credenciais inválidas")
		return
	}
	if !user.IsActive || !utils.VerificarSenha(user.Senha, req.Senha) {
		utils.RespondErro(w, http.StatusUnauthorized, "credenciais_invalidas", "Credenciais inválidas")
		return
	}

	access, err := h.Service.GerarTokenAcesso(user.ID)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao gerar token")
		return
	}
	refresh, err := h.Service.GerarTokenRefresh(user.ID)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao gerar token")
		return
	}

	// falha ao gravar o último login não impede o login
	_ = h.Pessoas.RegistrarLogin(h.DB, user.ID)

	resp := loginResponse{
		Access:  access,
		Refresh: refresh,
		UserInfo: UserInfo{
			ID:            user.ID,
			Nome:          user.Nome,
			Usuario:       user.Usuario,
			Email:         user.Email,
			IsStaff:       user.IsStaff,
			IsSuperuser:   user.IsSuperuser,
			Classificacao: Classificar(h.DB, user.ID),
		},
	}
	utils.RespondJSON(w, http.StatusOK, resp)
}
