package departamento

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, d *Departamento) error
	BuscarPorID(db *gorm.DB, id uint) (*Departamento, error)
	ListarTodos(db *gorm.DB) ([]Departamento, error)
	Atualizar(db *gorm.DB, d *Departamento) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, d *Departamento) error {
	return db.Create(d).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Departamento, error) {
	var d Departamento
	err := db.First(&d, id).Error
	return &d, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Departamento, error) {
	var list []Departamento
	err := db.Order("nome").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, d *Departamento) error {
	return db.Save(d).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Departamento{}, id).Error
}
