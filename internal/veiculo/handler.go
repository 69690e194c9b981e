package veiculo

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
	v := validator.New()
	RegistrarValidacaoPlaca(v)
	return &Handler{DB: db, Repository: NewRepository(), validate: v}
}

type criarVeiculoRequest struct {
	Nome        string `json:"nome" validate:"required"`
	Ano         *int   `json:"ano"`
	Placa       string `json:"placa" validate:"required,placa"`
	AssociadoID uint   `json:"associadoId" validate:"required"`
}

type atualizarVeiculoRequest struct {
	Nome  *string `json:"nome"`
	Ano   *int    `json:"ano"`
	Placa *string `json:"placa" validate:"omitempty,placa"`
}

func (h *Handler) associadoExiste(id uint) bool {
	var count int64
	h.DB.Table("associados").Where("id = ?", id).Count(&count)
	return count > 0
}

// POST /veiculos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarVeiculoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "JSON inválido")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", "Formato de placa inválido ou campos obrigatórios ausentes")
		return
	}
	if !h.associadoExiste(req.AssociadoID) {
		utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Associado não encontrado")
		return
	}

	placa, _ := NormalizarPlaca(req.Placa)
	v := Veiculo{
		Nome:        req.Nome,
		Ano:         req.Ano,
		Placa:       placa,
		AssociadoID: req.AssociadoID,
	}
	if err := h.Repository.Salvar(h.DB, &v); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondErro(w, http.StatusBadRequest, "validacao", "Placa já cadastrada")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao salvar veículo")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, v)
}

// GET /veiculos
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao listar veículos")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

// GET /veiculos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	v, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Veículo não encontrado")
		return
	}
	utils.RespondJSON(w, http.StatusOK, v)
}

// PUT /veiculos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Veículo não encontrado")
		return
	}

	var req atualizarVeiculoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "JSON inválido")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", "Formato de placa inválido")
		return
	}
	if req.Nome != nil {
		existente.Nome = *req.Nome
	}
	if req.Ano != nil {
		existente.Ano = req.Ano
	}
	if req.Placa != nil {
		placa, _ := NormalizarPlaca(*req.Placa)
		existente.Placa = placa
	}

	if err := h.Repository.Atualizar(h.DB, existente); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondErro(w, http.StatusBadRequest, "validacao", "Placa já cadastrada")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao atualizar veículo")
		return
	}
	utils.RespondJSON(w, http.StatusOK, existente)
}

// DELETE /veiculos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao excluir veículo")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /associados/{id}/veiculos
func (h *Handler) ListarPorAssociado(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	list, err := h.Repository.ListarPorAssociado(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao listar veículos do associado")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}
