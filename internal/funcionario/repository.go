package funcionario

import (
	"github.com/MemberTruck/api-membertruck/internal/pessoa"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Salvar(db *gorm.DB, f *Funcionario) error
	CriarCompleto(db *gorm.DB, p *pessoa.Pessoa, f *Funcionario) error
	BuscarPorID(db *gorm.DB, id uint) (*Funcionario, error)
	BuscarPorPessoa(db *gorm.DB, pessoaID uint) (*Funcionario, error)
	ListarTodos(db *gorm.DB) ([]Funcionario, error)
	ListarGestores(db *gorm.DB) ([]Funcionario, error)
	ListarConsultoresDoGestor(db *gorm.DB, gestorID uint) ([]Funcionario, error)
	Atualizar(db *gorm.DB, f *Funcionario) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Escritas de perfil omitem associações pré-carregadas; relações são
// sempre gravadas por id.
func (r *repositoryImpl) Salvar(db *gorm.DB, f *Funcionario) error {
	return db.Omit(clause.Associations).Create(f).Error
}

// CriarCompleto grava a Pessoa e o Funcionario em uma transação só:
// ou as duas linhas existem ao final, ou nenhuma. As constraints de
// unicidade do banco são o árbitro final contra corridas.
func (r *repositoryImpl) CriarCompleto(db *gorm.DB, p *pessoa.Pessoa, f *Funcionario) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		f.PessoaID = p.ID
		return tx.Omit(clause.Associations).Create(f).Error
	})
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Funcionario, error) {
	var f Funcionario
	err := db.Preload("Pessoa").
		Preload("Departamento").
		Preload("Cargo").
		Preload("Gestor.Pessoa").
		First(&f, id).Error
	return &f, err
}

func (r *repositoryImpl) BuscarPorPessoa(db *gorm.DB, pessoaID uint) (*Funcionario, error) {
	var f Funcionario
	err := db.Where("pessoa_id = ?", pessoaID).First(&f).Error
	return &f, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Funcionario, error) {
	var list []Funcionario
	err := db.Preload("Pessoa").
		Preload("Departamento").
		Preload("Cargo").
		Preload("Gestor.Pessoa").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarGestores(db *gorm.DB) ([]Funcionario, error) {
	var list []Funcionario
	err := db.Where("is_gestor = ?", true).
		Preload("Pessoa").
		Preload("Departamento").
		Preload("Cargo").
		Find(&list).Error
	return list, err
}

// ListarConsultoresDoGestor retorna os funcionários não-gestores que
// respondem ao gestor informado.
func (r *repositoryImpl) ListarConsultoresDoGestor(db *gorm.DB, gestorID uint) ([]Funcionario, error) {
	var list []Funcionario
	err := db.Where("gestor_id = ? AND is_gestor = ?", gestorID, false).
		Preload("Pessoa").
		Preload("Departamento").
		Preload("Cargo").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, f *Funcionario) error {
	return db.Omit(clause.Associations).Save(f).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Funcionario{}, id).Error
}
