package repository

import (
	"context"

	"compracerta/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RubricaRepository interface {
	Create(ctx context.Context, rb *model.Rubrica) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Rubrica, error)
	List(ctx context.Context) ([]model.Rubrica, error)
	ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Rubrica, error)
	Update(ctx context.Context, rb *model.Rubrica) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type rubricaRepo struct{ db *gorm.DB }

func NewRubricaRepository(db *gorm.DB) RubricaRepository { return &rubricaRepo{db: db} }

func (r *rubricaRepo) Create(ctx context.Context, rb *model.Rubrica) error {
	return r.db.WithContext(ctx).Create(rb).Error
}

func (r *rubricaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Rubrica, error) {
	var rb model.Rubrica
	err := r.db.WithContext(ctx).Preload("Cliente").First(&rb, id).Error
	return &rb, err
}

func (r *rubricaRepo) List(ctx context.Context) ([]model.Rubrica, error) {
	var rubricas []model.Rubrica
	err := r.db.WithContext(ctx).Preload("Cliente").Order("nome ASC").Find(&rubricas).Error
	return rubricas, err
}

func (r *rubricaRepo) ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Rubrica, error) {
	var rubricas []model.Rubrica
	err := r.db.WithContext(ctx).Where("cliente_id = ?", clienteID).Order("nome ASC").Find(&rubricas).Error
	return rubricas, err
}

func (r *rubricaRepo) Update(ctx context.Context, rb *model.Rubrica) error {
	return r.db.WithContext(ctx).Save(rb).Error
}

func (r *rubricaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Rubrica{}, id).Error
}
