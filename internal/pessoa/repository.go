package pessoa

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, p *Pessoa) error
	BuscarPorID(db *gorm.DB, id uint) (*Pessoa, error)
	BuscarPorUsuario(db *gorm.DB, usuario string) (*Pessoa, error)
	ListarTodos(db *gorm.DB) ([]Pessoa, error)
	Atualizar(db *gorm.DB, p *Pessoa) error
	Deletar(db *gorm.DB, id uint) error
	RegistrarLogin(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Pessoa) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Pessoa, error) {
	var p Pessoa
	err := db.Preload("Endereco").First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) BuscarPorUsuario(db *gorm.DB, usuario string) (*Pessoa, error) {
	var p Pessoa
	err := db.Where("usuario = ?", usuario).First(&p).Error
	return &p, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Pessoa, error) {
	var list []Pessoa
	err := db.Preload("Endereco").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, p *Pessoa) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Pessoa{}, id).Error
}

// RegistrarLogin grava o instante do último login bem-sucedido.
func (r *repositoryImpl) RegistrarLogin(db *gorm.DB, id uint) error {
	now := time.Now()
	return db.Model(&Pessoa{}).Where("id = ?", id).Update("ultimo_login", &now).Error
}
