package departamento

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

// POST /departamentos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var d Departamento
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
			utils.RespondErro(w, http.StatusBadRequest, "validacao", "Já existe departamento com esse nome")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao salvar departamento")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, d)
}

// GET /departamentos
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao listar departamentos")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

// GET /departamentos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	d, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Departamento não encontrado")
		return
	}
	utils.RespondJSON(w, http.StatusOK, d)
}

// PUT /departamentos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Departamento não encontrado")
		return
	}
	var d Departamento
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "JSON inválido")
		return
	}
	d.ID = uint(id)
	if err := h.Repository.Atualizar(h.DB, &d); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondErro(w, http.StatusBadRequest, "validacao", "Já existe departamento com esse nome")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao atualizar departamento")
		return
	}
	utils.RespondJSON(w, http.StatusOK, d)
}

// DELETE /departamentos/{id}; funcionários vinculados ficam com o campo nulo
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao excluir departamento")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
