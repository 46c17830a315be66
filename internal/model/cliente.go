package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cliente is the top of the organizational hierarchy. Unidades and Rubricas
// always belong to exactly one Cliente.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"index;not null"`
	Municipio string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Unidade is an operational unit of a Cliente.
type Unidade struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"not null"`
	ClienteID uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}

// Rubrica is a named monthly spending allocation tied to a Cliente.
type Rubrica struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome         string          `gorm:"not null"`
	ClienteID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	ValorMensal  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}
