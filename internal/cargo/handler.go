package cargo

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

// POST /cargos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var d Cargo
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "JSON inválido")
		return
	}
	if d.Nome == "" {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", "Nome é obrigatório")
		return
	}
	if err := h.Repository.Salvar(h.DB, &d); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondErro(w, http.StatusBadRequest, "validacao", "Já existe cargo com esse nome")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao salvar cargo")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, d)
}

// GET /cargos
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao listar cargos")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

// GET /cargos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	d, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Cargo não encontrado")
		return
	}
	utils.RespondJSON(w, http.StatusOK, d)
}

// PUT /cargos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Cargo não encontrado")
		return
	}
	var d Cargo
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "JSON inválido")
		return
	}
	d.ID = uint(id)
	if err := h.Repository.Atualizar(h.DB, &d); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondErro(w, http.StatusBadRequest, "validacao", "Já existe cargo com esse nome")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao atualizar cargo")
		return
	}
	utils.RespondJSON(w, http.StatusOK, d)
}

// DELETE /cargos/{id}; funcionários vinculados ficam com o campo nulo
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao excluir cargo")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
