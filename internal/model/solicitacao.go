package model

import (
	"time"

	"github.com/google/uuid"
)

// Solicitacao is a purchase/quotation/service request tracked through the
// fixed status lifecycle. Tipo: "direct-purchase" | "quotation" | "service".
// Prioridade: "moderate" | "urgent" | "emergency".
type Solicitacao struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID     uuid.UUID `gorm:"type:uuid;index;not null"`
	UnidadeID     uuid.UUID `gorm:"type:uuid;not null"`
	RubricaID     uuid.UUID `gorm:"type:uuid;not null"`
	Tipo          string    `gorm:"type:varchar(30);not null"`
	Justificativa string    `gorm:"type:text;not null"`
	Prioridade    string    `gorm:"type:varchar(20);not null;index"`
	Status        Status    `gorm:"type:varchar(30);not null;default:'awaiting-release';index"`
	// MotivoRejeicao is set once, together with the transition to rejected.
	MotivoRejeicao *string   `gorm:"type:text"`
	SolicitanteID  uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time

	Cliente     *Cliente          `gorm:"foreignKey:ClienteID"`
	Unidade     *Unidade          `gorm:"foreignKey:UnidadeID"`
	Rubrica     *Rubrica          `gorm:"foreignKey:RubricaID"`
	Solicitante *Usuario          `gorm:"foreignKey:SolicitanteID"`
	Itens       []SolicitacaoItem `gorm:"foreignKey:SolicitacaoID"`
	Historico   []HistoricoStatus `gorm:"foreignKey:SolicitacaoID"`
}

// SolicitacaoItem is one catalog item line inside a request.
type SolicitacaoItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SolicitacaoID uuid.UUID `gorm:"type:uuid;index;not null"`
	ItemID        uuid.UUID `gorm:"type:uuid;not null"`
	Quantidade    int       `gorm:"not null"`

	Item *Item `gorm:"foreignKey:ItemID"`
}

// HistoricoStatus is the append-only audit trail of status transitions.
// Rows are only ever inserted, in the same transaction as the status write.
type HistoricoStatus struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SolicitacaoID uuid.UUID `gorm:"type:uuid;index;not null"`
	Status        Status    `gorm:"type:varchar(30);not null"`
	AtorID        uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt     time.Time

	Ator *Usuario `gorm:"foreignKey:AtorID"`
}

const (
	TipoCompraDireta = "direct-purchase"
	TipoCotacao      = "quotation"
	TipoServico      = "service"

	PrioridadeModerada    = "moderate"
	PrioridadeUrgente     = "urgent"
	PrioridadeEmergencial = "emergency"
)
