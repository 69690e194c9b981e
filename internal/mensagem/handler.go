package mensagem

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/MemberTruck/api-membertruck/internal/associado"
	"github.com/MemberTruck/api-membertruck/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Enviador é a capacidade opaca de disparo; em produção é o client do
// gateway de WhatsApp.
type Enviador interface {
	Enviar(telefone, conteudo string) error
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Associados associado.Repository
	Enviador   Enviador
}

func NewHandler(db *gorm.DB, enviador Enviador) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Associados: associado.NewRepository(),
		Enviador:   enviador,
	}
}

type criarMensagemRequest struct {
	AssociadoID uint   `json:"associadoId"`
	Tipo        string `json:"tipo"`
	Conteudo    string `json:"conteudo"`
}

func (h *Handler) validarRequest(w http.ResponseWriter, req *criarMensagemRequest) *associado.Associado {
	if req.AssociadoID == 0 || req.Conteudo == "" {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", "associadoId e conteudo são obrigatórios")
		return nil
	}
	if !TipoValido(req.Tipo) {
		utils.RespondErro(w, http.StatusBadRequest, "validacao", "Tipo deve ser cobranca, comemorativa ou promocional")
		return nil
	}
	a, err := h.Associados.BuscarPorID(h.DB, req.AssociadoID)
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "nao_encontrado", "Associado não encontrado")
		return nil
	}
	return a
}

// POST /mensagens: registra a mensagem sem tentar o envio
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarMensagemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "JSON inválido")
		return
	}
	if h.validarRequest(w, &req) == nil {
		return
	}

	m := Mensagem{
		AssociadoID: req.AssociadoID,
		Tipo:        req.Tipo,
		Conteudo:    req.Conteudo,
		Status:      StatusPendente,
	}
	if err := h.Repository.Salvar(h.DB, &m); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao salvar mensagem")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, m)
}

// marcarStatus grava o desfecho do disparo; a falha fica no log porque
// a resposta ao cliente já reflete o resultado do gateway.
func (h *Handler) marcarStatus(id uint, status string) {
	if err := h.Repository.MarcarStatus(h.DB, id, status); err != nil {
		log.Printf("Erro ao gravar status %q da mensagem %d: %v", status, id, err)
	}
}

// POST /mensagens/enviar: registra e dispara pelo gateway. O envio é
// otimista: marcada como enviada assim que o gateway aceita.
func (h *Handler) Enviar(w http.ResponseWriter, r *http.Request) {
	var req criarMensagemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload_invalido", "JSON inválido")
		return
	}
	a := h.validarRequest(w, &req)
	if a == nil {
		return
	}

	m := Mensagem{
		AssociadoID: req.AssociadoID,
		Tipo:        req.Tipo,
		Conteudo:    req.Conteudo,
		Status:      StatusPendente,
	}
	if err := h.Repository.Salvar(h.DB, &m); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao salvar mensagem")
		return
	}

	if a.Pessoa.Telefone == "" {
		h.marcarStatus(m.ID, StatusErro)
		m.Status = StatusErro
		utils.RespondErro(w, http.StatusBadRequest, "sem_telefone", "Associado não possui telefone cadastrado")
		return
	}

	if err := h.Enviador.Enviar(a.Pessoa.Telefone, req.Conteudo); err != nil {
		log.Printf("Erro ao enviar WhatsApp para associado %d: %v", a.ID, err)
		h.marcarStatus(m.ID, StatusErro)
		m.Status = StatusErro
		utils.RespondErro(w, http.StatusBadRequest, "falha_envio", "Falha ao entregar a mensagem ao gateway")
		return
	}

	h.marcarStatus(m.ID, StatusEnviada)
	m.Status = StatusEnviada
	utils.RespondJSON(w, http.StatusCreated, m)
}

// GET /mensagens
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao listar mensagens")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

// GET /associados/{id}/mensagens
func (h *Handler) ListarPorAssociado(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "id_invalido", "ID inválido")
		return
	}
	list, err := h.Repository.ListarPorAssociado(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao listar mensagens do associado")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}
