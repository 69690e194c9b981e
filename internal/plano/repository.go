package plano

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, d *Plano) error
	BuscarPorID(db *gorm.DB, id uint) (*Plano, error)
	ListarTodos(db *gorm.DB) ([]Plano, error)
	Atualizar(db *gorm.DB, d *Plano) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, d *Plano) error {
	return db.Create(d).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Plano, error) {
	var d Plano
	err := db.First(&d, id).Error
	return &d, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Plano, error) {
	var list []Plano
	err := db.Order("nome").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, d *Plano) error {
	return db.Save(d).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Plano{}, id).Error
}
