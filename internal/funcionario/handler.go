package funcionario

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MemberTruck/api-membertruck/internal/pessoa"
	"github.com/MemberTruck/api-membertruck/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Pessoas    pessoa.Repository
	validate   *validator.Validate
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Pessoas:    pessoa.NewRepository(),
		validate:   validator.New(),
	}
}

// POST /funcionarios (pessoa já existente)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarFuncionarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "JSON inválido")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", err.Error())
		return
	}
	dataAdmissao, err := pessoa.ParseData(req.DataAdmissao)
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", "DataAdmissao deve estar no formato AAAA-MM-DD")
		return
	}
	if _, err := h.Pessoas.BuscarPorID(h.DB, req.PessoaID); err != nil {
		utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Pessoa não encontrada")
		return
	}

	f := Funcionario{
		PessoaID:       req.PessoaID,
		Salario:        req.Salario,
		Comissao:       req.Comissao,
		DataAdmissao:   dataAdmissao,
		DepartamentoID: req.DepartamentoID,
		CargoID:        req.CargoID,
		GestorID:       req.GestorID,
		IsGestor:       req.IsGestor,
	}
	if err := h.Repository.Salvar(h.DB, &f); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondErro(w, http.StatusBadRequest, "validacao", "Pessoa já possui perfil de funcionário")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao salvar funcionário")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, f)
}

// POST /funcionarios/completo: fluxo de provisionamento em transação única
func (h *Handler) CriarCompleto(w http.ResponseWriter, r *http.Request) {
	var req CriarCompletoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "JSON inválido")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", err.Error())
		return
	}
	nascimento, err := pessoa.ParseData(req.Nascimento)
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", "Nascimento deve estar no formato AAAA-MM-DD")
		return
	}
	dataAdmissao, err := pessoa.ParseData(req.DataAdmissao)
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", "DataAdmissao deve estar no formato AAAA-MM-DD")
		return
	}

	// Checagem antecipada apenas para resposta amigável; a constraint
	// de unicidade decide de verdade dentro da transação.
	if _, err := h.Pessoas.BuscarPorUsuario(h.DB, req.Usuario); err == nil {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", "Usuário já cadastrado")
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao processar senha")
		return
	}

	p := pessoa.Pessoa{
		Nome:       req.Nome,
		Telefone:   req.Telefone,
		Documento:  req.Documento,
		Nascimento: nascimento,
		Email:      req.Email,
		Usuario:    req.Usuario,
		Senha:      hash,
		IsStaff:    true,
		IsActive:   true,
	}
	f := Funcionario{
		Salario:        req.Salario,
		Comissao:       req.Comissao,
		DataAdmissao:   dataAdmissao,
		DepartamentoID: req.DepartamentoID,
		CargoID:        req.CargoID,
		GestorID:       req.GestorID,
		IsGestor:       req.IsGestor,
	}
	if err := h.Repository.CriarCompleto(h.DB, &p, &f); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondErro(w, http.StatusBadRequest, "validacao", "Usuário, documento ou e-mail já cadastrado")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao criar funcionário")
		return
	}
	f.Pessoa = p
	utils.RespondJSON(w, http.StatusCreated, f)
}

// GET /funcionarios
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao listar funcionários")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

// GET /funcionarios/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	f, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Funcionário não encontrado")
		return
	}
	utils.RespondJSON(w, http.StatusOK, f)
}

// PUT /funcionarios/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Funcionário não encontrado")
		return
	}

	var req AtualizarFuncionarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "JSON inválido")
		return
	}
	if req.Salario != nil {
		existente.Salario = req.Salario
	}
	if req.Comissao != nil {
		existente.Comissao = req.Comissao
	}
	if req.DataAdmissao != nil {
		dataAdmissao, err := pessoa.ParseData(req.DataAdmissao)
		if err != nil {
			utils.RespondErro(w, http.StatusBadRequest, "validacao", "DataAdmissao deve estar no formato AAAA-MM-DD")
			return
		}
		existente.DataAdmissao = dataAdmissao
	}
	if req.DepartamentoID != nil {
		existente.DepartamentoID = req.DepartamentoID
	}
	if req.CargoID != nil {
		existente.CargoID = req.CargoID
	}
	if req.GestorID != nil {
		existente.GestorID = req.GestorID
	}
	if req.IsGestor != nil {
		existente.IsGestor = *req.IsGestor
	}

	if err := h.Repository.Atualizar(h.DB, existente); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao atualizar funcionário")
		return
	}
	utils.RespondJSON(w, http.StatusOK, existente)
}

// DELETE /funcionarios/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao excluir funcionário")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /gestores
func (h *Handler) ListarGestores(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarGestores(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao listar gestores")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

// GET /gestores/{id}/consultores
func (h *Handler) ListarConsultores(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	list, err := h.Repository.ListarConsultoresDoGestor(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao listar consultores")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}
