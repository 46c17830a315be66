package repository

import (
	"context"
	"time"

	"compracerta/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SolicitacaoQuery carries the already-parsed dashboard filters. A nil/zero
// field means "no filter". Limit == 0 disables pagination (board view).
type SolicitacaoQuery struct {
	IDContem      string
	Status        model.Status
	Prioridade    string
	SolicitanteID *uuid.UUID
	CriadaDe      *time.Time
	CriadaAte     *time.Time
	Page          int
	Limit         int
}

type SolicitacaoRepository interface {
	Create(ctx context.Context, s *model.Solicitacao) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Solicitacao, error)
	List(ctx context.Context, q SolicitacaoQuery) ([]model.Solicitacao, int64, error)
	Update(ctx context.Context, s *model.Solicitacao) error
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateStatusWithHistory writes the new status (and rejection reason,
	// when non-nil) and appends the history row in ONE transaction, so a
	// request is never visible with a changed status but no matching entry.
	UpdateStatusWithHistory(ctx context.Context, id uuid.UUID, status model.Status, motivo *string, atorID uuid.UUID) error

	ListHistorico(ctx context.Context, solicitacaoID uuid.UUID) ([]model.HistoricoStatus, error)
}

type solicitacaoRepo struct{ db *gorm.DB }

func NewSolicitacaoRepository(db *gorm.DB) SolicitacaoRepository { return &solicitacaoRepo{db: db} }

func (r *solicitacaoRepo) Create(ctx context.Context, s *model.Solicitacao) error {
	// Itens ride along via the association; history starts empty.
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *solicitacaoRepo) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Unidade").
		Preload("Rubrica").
		Preload("Solicitante").
		Preload("Itens.Item.Grupo").
		Preload("Itens.Item.UnidadeMedida").
		Preload("Historico", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Historico.Ator")
}

func (r *solicitacaoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Solicitacao, error) {
	var s model.Solicitacao
	err := r.preloaded(ctx).First(&s, id).Error
	return &s, err
}

func (r *solicitacaoRepo) List(ctx context.Context, q SolicitacaoQuery) ([]model.Solicitacao, int64, error) {
	var solicitacoes []model.Solicitacao
	var total int64

	apply := func(db *gorm.DB) *gorm.DB {
		if q.IDContem != "" {
			db = db.Where("CAST(id AS TEXT) ILIKE ?", "%"+q.IDContem+"%")
		}
		if q.Status != "" {
			db = db.Where("status = ?", q.Status)
		}
		if q.Prioridade != "" {
			db = db.Where("prioridade = ?", q.Prioridade)
		}
		if q.SolicitanteID != nil {
			db = db.Where("solicitante_id = ?", *q.SolicitanteID)
		}
		if q.CriadaDe != nil {
			db = db.Where("created_at >= ?", *q.CriadaDe)
		}
		if q.CriadaAte != nil {
			db = db.Where("created_at <= ?", *q.CriadaAte)
		}
		return db
	}

	if err := apply(r.db.WithContext(ctx).Model(&model.Solicitacao{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := apply(r.preloaded(ctx)).Order("created_at DESC, id DESC")
	if q.Limit > 0 {
		query = query.Limit(q.Limit).Offset((q.Page - 1) * q.Limit)
	}
	err := query.Find(&solicitacoes).Error
	return solicitacoes, total, err
}

func (r *solicitacaoRepo) Update(ctx context.Context, s *model.Solicitacao) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Full-record replace: item lines are rewritten, history untouched.
		if err := tx.Where("solicitacao_id = ?", s.ID).Delete(&model.SolicitacaoItem{}).Error; err != nil {
			return err
		}
		for i := range s.Itens {
			s.Itens[i].ID = uuid.Nil
			s.Itens[i].SolicitacaoID = s.ID
		}
		return tx.Omit("Historico", "Cliente", "Unidade", "Rubrica", "Solicitante").Save(s).Error
	})
}

func (r *solicitacaoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("solicitacao_id = ?", id).Delete(&model.SolicitacaoItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("solicitacao_id = ?", id).Delete(&model.HistoricoStatus{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Solicitacao{}, id).Error
	})
}

func (r *solicitacaoRepo) UpdateStatusWithHistory(ctx context.Context, id uuid.UUID, status model.Status, motivo *string, atorID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": status}
		if motivo != nil {
			updates["motivo_rejeicao"] = *motivo
		}
		res := tx.Model(&model.Solicitacao{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(&model.HistoricoStatus{
			SolicitacaoID: id,
			Status:        status,
			AtorID:        atorID,
		}).Error
	})
}

func (r *solicitacaoRepo) ListHistorico(ctx context.Context, solicitacaoID uuid.UUID) ([]model.HistoricoStatus, error) {
	var historico []model.HistoricoStatus
	err := r.db.WithContext(ctx).
		Preload("Ator").
		Where("solicitacao_id = ?", solicitacaoID).
		Order("created_at DESC").
		Find(&historico).Error
	return historico, err
}
