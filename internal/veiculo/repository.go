package veiculo

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, v *Veiculo) error
	BuscarPorID(db *gorm.DB, id uint) (*Veiculo, error)
	ListarTodos(db *gorm.DB) ([]Veiculo, error)
	ListarPorAssociado(db *gorm.DB, associadoID uint) ([]Veiculo, error)
	Atualizar(db *gorm.DB, v *Veiculo) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, v *Veiculo) error {
	return db.Create(v).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Veiculo, error) {
	var v Veiculo
	err := db.First(&v, id).Error
	return &v, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Veiculo, error) {
	var list []Veiculo
	err := db.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorAssociado(db *gorm.DB, associadoID uint) ([]Veiculo, error) {
	var list []Veiculo
	err := db.Where("associado_id = ?", associadoID).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, v *Veiculo) error {
	return db.Save(v).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Veiculo{}, id).Error
}
