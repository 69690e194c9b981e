package cargo

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, d *Cargo) error
	BuscarPorID(db *gorm.DB, id uint) (*Cargo, error)
	ListarTodos(db *gorm.DB) ([]Cargo, error)
	Atualizar(db *gorm.DB, d *Cargo) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, d *Cargo) error {
	return db.Create(d).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Cargo, error) {
	var d Cargo
	err := db.First(&d, id).Error
	return &d, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Cargo, error) {
	var list []Cargo
	err := db.Order("nome").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, d *Cargo) error {
	return db.Save(d).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Cargo{}, id).Error
}
