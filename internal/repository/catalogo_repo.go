package repository

import (
	"context"

	"compracerta/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogoRepository covers the three master-data tables behind the item
// catalog: item groups, measure units and items.
type CatalogoRepository interface {
	CreateGrupo(ctx context.Context, g *model.GrupoItem) error
	ListGrupos(ctx context.Context) ([]model.GrupoItem, error)
	UpdateGrupo(ctx context.Context, g *model.GrupoItem) error
	DeleteGrupo(ctx context.Context, id uuid.UUID) error

	CreateUnidadeMedida(ctx context.Context, um *model.UnidadeMedida) error
	ListUnidadesMedida(ctx context.Context) ([]model.UnidadeMedida, error)
	UpdateUnidadeMedida(ctx context.Context, um *model.UnidadeMedida) error
	DeleteUnidadeMedida(ctx context.Context, id uuid.UUID) error

	CreateItem(ctx context.Context, i *model.Item) error
	FindItemByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	ListItens(ctx context.Context) ([]model.Item, error)
	UpdateItem(ctx context.Context, i *model.Item) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) CreateGrupo(ctx context.Context, g *model.GrupoItem) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *catalogoRepo) ListGrupos(ctx context.Context) ([]model.GrupoItem, error) {
	var grupos []model.GrupoItem
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&grupos).Error
	return grupos, err
}

func (r *catalogoRepo) UpdateGrupo(ctx context.Context, g *model.GrupoItem) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *catalogoRepo) DeleteGrupo(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.GrupoItem{}, id).Error
}

func (r *catalogoRepo) CreateUnidadeMedida(ctx context.Context, um *model.UnidadeMedida) error {
	return r.db.WithContext(ctx).Create(um).Error
}

func (r *catalogoRepo) ListUnidadesMedida(ctx context.Context) ([]model.UnidadeMedida, error) {
	var ums []model.UnidadeMedida
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&ums).Error
	return ums, err
}

func (r *catalogoRepo) UpdateUnidadeMedida(ctx context.Context, um *model.UnidadeMedida) error {
	return r.db.WithContext(ctx).Save(um).Error
}

func (r *catalogoRepo) DeleteUnidadeMedida(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.UnidadeMedida{}, id).Error
}

func (r *catalogoRepo) CreateItem(ctx context.Context, i *model.Item) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *catalogoRepo) FindItemByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	var i model.Item
	err := r.db.WithContext(ctx).Preload("Grupo").Preload("UnidadeMedida").First(&i, id).Error
	return &i, err
}

func (r *catalogoRepo) ListItens(ctx context.Context) ([]model.Item, error) {
	var itens []model.Item
	err := r.db.WithContext(ctx).Preload("Grupo").Preload("UnidadeMedida").Order("nome ASC").Find(&itens).Error
	return itens, err
}

func (r *catalogoRepo) UpdateItem(ctx context.Context, i *model.Item) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *catalogoRepo) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Item{}, id).Error
}
