package dto

import "github.com/shopspring/decimal"

// ─── Grupo de item ──────────────────────────────────────────────────────────

type GrupoItemRequest struct {
	Nome string `json:"nome" validate:"required"`
}

type GrupoItemResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// ─── Unidade de medida ──────────────────────────────────────────────────────

type UnidadeMedidaRequest struct {
	Nome       string `json:"nome"       validate:"required"`
	Abreviacao string `json:"abreviacao" validate:"required,max=10"`
}

type UnidadeMedidaResponse struct {
	ID         string `json:"id"`
	Nome       string `json:"nome"`
	Abreviacao string `json:"abreviacao"`
}

// ─── Item ───────────────────────────────────────────────────────────────────

type ItemRequest struct {
	Nome            string          `json:"nome"              validate:"required"`
	GrupoID         string          `json:"grupo_id"          validate:"required,uuid"`
	UnidadeMedidaID string          `json:"unidade_medida_id" validate:"required,uuid"`
	PrecoMedio      decimal.Decimal `json:"preco_medio"       validate:"min=0"`
}

type ItemResponse struct {
	ID            string                `json:"id"`
	Nome          string                `json:"nome"`
	Grupo         GrupoItemResponse     `json:"grupo"`
	UnidadeMedida UnidadeMedidaResponse `json:"unidade_medida"`
	PrecoMedio    decimal.Decimal       `json:"preco_medio"`
}
