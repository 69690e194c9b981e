package endereco

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, e *Endereco) error
	BuscarPorID(db *gorm.DB, id uint) (*Endereco, error)
	ListarTodos(db *gorm.DB) ([]Endereco, error)
	Atualizar(db *gorm.DB, e *Endereco) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, e *Endereco) error {
	return db.Create(e).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Endereco, error) {
	var e Endereco
	err := db.First(&e, id).Error
	return &e, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Endereco, error) {
	var list []Endereco
	err := db.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, e *Endereco) error {
	return db.Save(e).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Endereco{}, id).Error
}
