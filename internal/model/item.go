package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GrupoItem categorizes catalog items (e.g. "Limpeza", "Escritório").
type GrupoItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UnidadeMedida is a measurement unit with a short display abbreviation.
type UnidadeMedida struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome       string    `gorm:"uniqueIndex;not null"`
	Abreviacao string    `gorm:"type:varchar(10);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Item is a catalog entry referenced by quantity inside a Solicitacao.
// PrecoMedio feeds the estimated total shown on request detail screens.
type Item struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome            string          `gorm:"index;not null"`
	GrupoID         uuid.UUID       `gorm:"type:uuid;index;not null"`
	UnidadeMedidaID uuid.UUID       `gorm:"type:uuid;not null"`
	PrecoMedio      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Grupo         *GrupoItem     `gorm:"foreignKey:GrupoID"`
	UnidadeMedida *UnidadeMedida `gorm:"foreignKey:UnidadeMedidaID"`
}
