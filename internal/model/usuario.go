package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores system users with role-based access.
// Papel: "admin" | "normal"
type Usuario struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Nome      string    `gorm:"not null"`
	Sobrenome string
	Whatsapp  string
	Setor     string
	// PasswordHash holds a bcrypt digest. Rows imported from the legacy base
	// may still carry plaintext; they are upgraded in place on first login.
	PasswordHash string `gorm:"not null"`
	Papel        string `gorm:"type:varchar(20);not null;default:'normal'"`
	Ativo        bool   `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const (
	PapelAdmin  = "admin"
	PapelNormal = "normal"
)
