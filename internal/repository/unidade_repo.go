package repository

import (
	"context"

	"compracerta/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UnidadeRepository interface {
	Create(ctx context.Context, u *model.Unidade) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Unidade, error)
	List(ctx context.Context) ([]model.Unidade, error)
	ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Unidade, error)
	Update(ctx context.Context, u *model.Unidade) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type unidadeRepo struct{ db *gorm.DB }

func NewUnidadeRepository(db *gorm.DB) UnidadeRepository { return &unidadeRepo{db: db} }

func (r *unidadeRepo) Create(ctx context.Context, u *model.Unidade) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *unidadeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Unidade, error) {
	var u model.Unidade
	err := r.db.WithContext(ctx).Preload("Cliente").First(&u, id).Error
	return &u, err
}

func (r *unidadeRepo) List(ctx context.Context) ([]model.Unidade, error) {
	var unidades []model.Unidade
	err := r.db.WithContext(ctx).Preload("Cliente").Order("nome ASC").Find(&unidades).Error
	return unidades, err
}

func (r *unidadeRepo) ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Unidade, error) {
	var unidades []model.Unidade
	err := r.db.WithContext(ctx).Where("cliente_id = ?", clienteID).Order("nome ASC").Find(&unidades).Error
	return unidades, err
}

func (r *unidadeRepo) Update(ctx context.Context, u *model.Unidade) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *unidadeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Unidade{}, id).Error
}
