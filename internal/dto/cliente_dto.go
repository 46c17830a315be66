package dto

import "github.com/shopspring/decimal"

// ─── Cliente ────────────────────────────────────────────────────────────────

type ClienteRequest struct {
	Nome      string `json:"nome"      validate:"required"`
	Municipio string `json:"municipio" validate:"required"`
}

type ClienteResponse struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Municipio string `json:"municipio"`
}

// ─── Unidade ────────────────────────────────────────────────────────────────

type UnidadeRequest struct {
	Nome      string `json:"nome"       validate:"required"`
	ClienteID string `json:"cliente_id" validate:"required,uuid"`
}

type UnidadeResponse struct {
	ID          string `json:"id"`
	Nome        string `json:"nome"`
	ClienteID   string `json:"cliente_id"`
	ClienteNome string `json:"cliente_nome"`
}

// ─── Rubrica ────────────────────────────────────────────────────────────────

type RubricaRequest struct {
	Nome        string          `json:"nome"         validate:"required"`
	ClienteID   string          `json:"cliente_id"   validate:"required,uuid"`
	ValorMensal decimal.Decimal `json:"valor_mensal" validate:"min=0"`
}

type RubricaResponse struct {
	ID          string          `json:"id"`
	Nome        string          `json:"nome"`
	ClienteID   string          `json:"cliente_id"`
	ClienteNome string          `json:"cliente_nome"`
	ValorMensal decimal.Decimal `json:"valor_mensal"`
}
