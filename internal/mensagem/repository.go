package mensagem

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Salvar(db *gorm.DB, m *Mensagem) error
	BuscarPorID(db *gorm.DB, id uint) (*Mensagem, error)
	ListarTodos(db *gorm.DB) ([]Mensagem, error)
	ListarPorAssociado(db *gorm.DB, associadoID uint) ([]Mensagem, error)
	MarcarStatus(db *gorm.DB, id uint, status string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, m *Mensagem) error {
	return db.Omit(clause.Associations).Create(m).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Mensagem, error) {
	var m Mensagem
	err := db.First(&m, id).Error
	return &m, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Mensagem, error) {
	var list []Mensagem
	err := db.Order("data_envio desc").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorAssociado(db *gorm.DB, associadoID uint) ([]Mensagem, error) {
	var list []Mensagem
	err := db.Where("associado_id = ?", associadoID).Order("data_envio desc").Find(&list).Error
	return list, err
}

// MarcarStatus promove uma mensagem pendente para enviada ou erro.
// Mensagens já resolvidas não mudam de status.
func (r *repositoryImpl) MarcarStatus(db *gorm.DB, id uint, status string) error {
	return db.Model(&Mensagem{}).
		Where("id = ? AND status = ?", id, StatusPendente).
		Update("status", status).Error
}
