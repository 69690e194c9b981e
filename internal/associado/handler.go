package associado

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/MemberTruck/api-membertruck/internal/funcionario"
	"github.com/MemberTruck/api-membertruck/internal/pessoa"
	"github.com/MemberTruck/api-membertruck/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB           *gorm.DB
	Repository   Repository
	Pessoas      pessoa.Repository
	Funcionarios funcionario.Repository
	validate     *validator.Validate
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:           db,
		Repository:   NewRepository(),
		Pessoas:      pessoa.NewRepository(),
		Funcionarios: funcionario.NewRepository(),
		validate:     validator.New(),
	}
}

// A indicação deveria partir de um consultor, não de um gestor; o
// modelo original não impõe isso no banco, então só registramos.
func (h *Handler) avisarSeGestor(consultorID *uint) {
	if consultorID == nil {
		return
	}
	f, err := h.Funcionarios.BuscarPorID(h.DB, *consultorID)
	if err == nil && f.IsGestor {
		log.Printf("Aviso: associado indicado por gestor (funcionário %d)", *consultorID)
	}
}

// POST /associados (pessoa já existente)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarAssociadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "JSON inválido")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", err.Error())
		return
	}
	dataAtivacao, err := pessoa.ParseData(req.DataAtivacao)
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", "DataAtivacao deve estar no formato AAAA-MM-DD")
		return
	}
	dataPagamento, err := pessoa.ParseData(req.DataPagamento)
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", "DataPagamento deve estar no formato AAAA-MM-DD")
		return
	}
	if _, err := h.Pessoas.BuscarPorID(h.DB, req.PessoaID); err != nil {
		utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Pessoa não encontrada")
		return
	}
	h.avisarSeGestor(req.ConsultorID)

	a := Associado{
		PessoaID:      req.PessoaID,
		DataAtivacao:  dataAtivacao,
		DataPagamento: dataPagamento,
		PlanoID:       req.PlanoID,
		ConsultorID:   req.ConsultorID,
	}
	if err := h.Repository.Salvar(h.DB, &a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondErro(w, http.StatusBadRequest, "validacao", "Pessoa já possui perfil de associado")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao salvar associado")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, a)
}

// POST /associados/completo: provisionamento em transação única
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
	dataAtivacao, err := pessoa.ParseData(req.DataAtivacao)
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", "DataAtivacao deve estar no formato AAAA-MM-DD")
		return
	}
	dataPagamento, err := pessoa.ParseData(req.DataPagamento)
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", "DataPagamento deve estar no formato AAAA-MM-DD")
		return
	}

	// Resposta amigável; a unicidade real é decidida pela constraint.
	if _, err := h.Pessoas.BuscarPorUsuario(h.DB, req.Usuario); err == nil {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", "Usuário já cadastrado")
		return
	}
	h.avisarSeGestor(req.ConsultorID)

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
		IsStaff:    false,
		IsActive:   true,
	}
	a := Associado{
		DataAtivacao:  dataAtivacao,
		DataPagamento: dataPagamento,
		PlanoID:       req.PlanoID,
		ConsultorID:   req.ConsultorID,
	}
	if err := h.Repository.CriarCompleto(h.DB, &p, &a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondErro(w, http.StatusBadRequest, "validacao", "Usuário, documento ou e-mail já cadastrado")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao criar associado")
		return
	}
	a.Pessoa = p
	utils.RespondJSON(w, http.StatusCreated, a)
}

// GET /associados
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao listar associados")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

// GET /associados/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	a, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Associado não encontrado")
		return
	}
	utils.RespondJSON(w, http.StatusOK, a)
}

// PUT /associados/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Associado não encontrado")
		return
	}

	var req AtualizarAssociadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "JSON inválido")
		return
	}
	if req.DataAtivacao != nil {
		dataAtivacao, err := pessoa.ParseData(req.DataAtivacao)
		if err != nil {
			utils.RespondErro(w, http.StatusBadRequest, "validacao", "DataAtivacao deve estar no formato AAAA-MM-DD")
			return
		}
		existente.DataAtivacao = dataAtivacao
	}
	if req.DataPagamento != nil {
		dataPagamento, err := pessoa.ParseData(req.DataPagamento)
		if err != nil {
			utils.RespondErro(w, http.StatusBadRequest, "validacao", "DataPagamento deve estar no formato AAAA-MM-DD")
			return
		}
		existente.DataPagamento = dataPagamento
	}
	if req.PlanoID != nil {
		existente.PlanoID = req.PlanoID
	}
	if req.ConsultorID != nil {
		h.avisarSeGestor(req.ConsultorID)
		existente.ConsultorID = req.ConsultorID
	}

	if err := h.Repository.Atualizar(h.DB, existente); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao atualizar associado")
		return
	}
	utils.RespondJSON(w, http.StatusOK, existente)
}

// DELETE /associados/{id}: veículos e mensagens caem em cascata
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao excluir associado")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /consultores/{id}/associados
func (h *Handler) ListarPorConsultor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	list, err := h.Repository.ListarPorConsultor(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao listar associados do consultor")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}
