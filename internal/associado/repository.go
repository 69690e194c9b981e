package associado

import (
	"github.com/MemberTruck/api-membertruck/internal/pessoa"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Salvar(db *gorm.DB, a *Associado) error
	CriarCompleto(db *gorm.DB, p *pessoa.Pessoa, a *Associado) error
	BuscarPorID(db *gorm.DB, id uint) (*Associado, error)
	BuscarPorPessoa(db *gorm.DB, pessoaID uint) (*Associado, error)
	ListarTodos(db *gorm.DB) ([]Associado, error)
	ListarPorConsultor(db *gorm.DB, consultorID uint) ([]Associado, error)
	Atualizar(db *gorm.DB, a *Associado) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, a *Associado) error {
	return db.Omit(clause.Associations).Create(a).Error
}

// CriarCompleto grava a Pessoa e o Associado em uma transação só; as
// constraints de unicidade do banco são o árbitro final contra corridas.
func (r *repositoryImpl) CriarCompleto(db *gorm.DB, p *pessoa.Pessoa, a *Associado) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		a.PessoaID = p.ID
		return tx.Omit(clause.Associations).Create(a).Error
	})
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Associado, error) {
	var a Associado
	err := db.Preload("Pessoa").
		Preload("Plano").
		Preload("Consultor.Pessoa").
		Preload("Veiculos").
		First(&a, id).Error
	return &a, err
}

func (r *repositoryImpl) BuscarPorPessoa(db *gorm.DB, pessoaID uint) (*Associado, error) {
	var a Associado
	err := db.Where("pessoa_id = ?", pessoaID).First(&a).Error
	return &a, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Associado, error) {
	var list []Associado
	err := db.Preload("Pessoa").
		Preload("Plano").
		Preload("Consultor.Pessoa").
		Preload("Veiculos").
		Find(&list).Error
	return list, err
}

// ListarPorConsultor retorna os associados indicados pelo consultor.
func (r *repositoryImpl) ListarPorConsultor(db *gorm.DB, consultorID uint) ([]Associado, error) {
	var list []Associado
	err := db.Where("consultor_id = ?", consultorID).
		Preload("Pessoa").
		Preload("Plano").
		Preload("Veiculos").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, a *Associado) error {
	return db.Omit(clause.Associations).Save(a).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Associado{}, id).Error
}
