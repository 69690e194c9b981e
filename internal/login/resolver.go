package login

import (
	"github.com/MemberTruck/api-membertruck/internal/associado"
	"github.com/MemberTruck/api-membertruck/internal/funcionario"
	"gorm.io/gorm"
)

// Tipos de usuário na ordem de prioridade da classificação.
const (
	TipoFuncionario = "funcionario"
	TipoAssociado   = "associado"
	TipoAdmin       = "admin"
)

// Classificacao é a variante etiquetada devolvida no login.
type Classificacao struct {
	Tipo          string `json:"tipo_usuario"`
	FuncionarioID *uint  `json:"funcionario_id,omitempty"`
	IsGestor      *bool  `json:"is_gestor,omitempty"`
	AssociadoID   *uint  `json:"associado_id,omitempty"`
}

// Classificar decide o papel da pessoa com no máximo duas consultas
// indexadas. A prioridade é funcionario > associado > admin: uma
// pessoa com os dois perfis é sempre reportada como funcionário.
func Classificar(db *gorm.DB, pessoaID uint) Classificacao {
	if f, err := funcionario.NewRepository().BuscarPorPessoa(db, pessoaID); err == nil {
		return Classificacao{
			Tipo:          TipoFuncionario,
			FuncionarioID: &f.ID,
			IsGestor:      &f.IsGestor,
		}
	}
	if a, err := associado.NewRepository().BuscarPorPessoa(db, pessoaID); err == nil {
		return Classificacao{
			Tipo:        TipoAssociado,
			AssociadoID: &a.ID,
		}
	}
	return Classificacao{Tipo: TipoAdmin}
}
