package endereco

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MemberTruck/api-membertruck/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// POST /enderecos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var e Endereco
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "JSON inválido")
		return
	}
	if err := h.Repository.Salvar(h.DB, &e); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao salvar endereço")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, e)
}

// GET /enderecos
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao listar endereços")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

// GET /enderecos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	e, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Endereço não encontrado")
		return
	}
	utils.RespondJSON(w, http.StatusOK, e)
}

// PUT /enderecos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Endereço não encontrado")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao buscar endereço")
		return
	}
	var e Endereco
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "JSON inválido")
		return
	}
	e.ID = uint(id)
	if err := h.Repository.Atualizar(h.DB, &e); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao atualizar endereço")
		return
	}
	utils.RespondJSON(w, http.StatusOK, e)
}

// DELETE /enderecos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao excluir endereço")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
