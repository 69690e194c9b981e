package pessoa

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MemberTruck/api-membertruck/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	validate   *validator.Validate
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		validate:   validator.New(),
	}
}

// POST /pessoas/create (aberto, cria uma pessoa sem perfil)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarPessoaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "JSON inválido")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", err.Error())
		return
	}
	nascimento, err := ParseData(req.Nascimento)
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", "Nascimento deve estar no formato AAAA-MM-DD")
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao processar senha")
		return
	}

	p := Pessoa{
		Nome:       req.Nome,
		Telefone:   req.Telefone,
		Documento:  req.Documento,
		Nascimento: nascimento,
		Email:      req.Email,
		Usuario:    req.Usuario,
		Senha:      hash,
		IsActive:   true,
		EnderecoID: req.EnderecoID,
	}
	if err := h.Repository.Salvar(h.DB, &p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondErro(w, http.StatusBadRequest, "validacao", "Usuário, documento ou e-mail já cadastrado")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao salvar pessoa")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, p)
}

// GET /pessoas
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao listar pessoas")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

// GET /pessoas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Pessoa não encontrada")
		return
	}
	utils.RespondJSON(w, http.StatusOK, p)
}

// PUT /pessoas/{id}. Usuario é imutável; senha é re-hasheada quando enviada.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Pessoa não encontrada")
		return
	}

	var req AtualizarPessoaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "JSON inválido")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", err.Error())
		return
	}

	if req.Nome != nil {
		existente.Nome = *req.Nome
	}
	if req.Telefone != nil {
		existente.Telefone = *req.Telefone
	}
	if req.Documento != nil {
		existente.Documento = req.Documento
	}
	if req.Nascimento != nil {
		nascimento, err := ParseData(req.Nascimento)
		if err != nil {
			utils.RespondErro(w, http.StatusBadRequest, "validacao", "Nascimento deve estar no formato AAAA-MM-DD")
			return
		}
		existente.Nascimento = nascimento
	}
	if req.Email != nil {
		existente.Email = req.Email
	}
	if req.IsActive != nil {
		existente.IsActive = *req.IsActive
	}
	if req.EnderecoID != nil {
		existente.EnderecoID = req.EnderecoID
	}
	if req.Senha != nil && *req.Senha != "" {
		hash, err := utils.HashSenha(*req.Senha)
		if err != nil {
			utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao processar senha")
			return
		}
		existente.Senha = hash
	}

	if err := h.Repository.Atualizar(h.DB, existente); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondErro(w, http.StatusBadRequest, "validacao", "Documento ou e-mail já cadastrado")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao atualizar pessoa")
		return
	}
	utils.RespondJSON(w, http.StatusOK, existente)
}

// DELETE /pessoas/{id}. Perfis vinculados caem em cascata.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao excluir pessoa")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
