package dashboard

import (
	"net/http"

	"github.com/MemberTruck/api-membertruck/internal/associado"
	"github.com/MemberTruck/api-membertruck/internal/funcionario"
	"github.com/MemberTruck/api-membertruck/internal/mensagem"
	"github.com/MemberTruck/api-membertruck/internal/pessoa"
	"github.com/MemberTruck/api-membertruck/internal/utils"
	"github.com/MemberTruck/api-membertruck/internal/veiculo"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

type resumo struct {
	Pessoas      int64 `json:"pessoas"`
	Funcionarios int64 `json:"funcionarios"`
	Gestores     int64 `json:"gestores"`
	Associados   int64 `json:"associados"`
	Veiculos     int64 `json:"veiculos"`
	Mensagens    int64 `json:"mensagens"`
}

// GET /dashboard
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	var res resumo
	consultas := []error{
		h.DB.Model(&pessoa.Pessoa{}).Count(&res.Pessoas).Error,
		h.DB.Model(&funcionario.Funcionario{}).Count(&res.Funcionarios).Error,
		h.DB.Model(&funcionario.Funcionario{}).Where("is_gestor = ?", true).Count(&res.Gestores).Error,
		h.DB.Model(&associado.Associado{}).Count(&res.Associados).Error,
		h.DB.Model(&veiculo.Veiculo{}).Count(&res.Veiculos).Error,
		h.DB.Model(&mensagem.Mensagem{}).Count(&res.Mensagens).Error,
	}
	for _, err := range consultas {
		if err != nil {
			utils.RespondErro(w, http.StatusInternalServerError, "erro_interno", "Erro ao montar o resumo")
			return
		}
	}
	utils.RespondJSON(w, http.StatusOK, res)
}
