package dto

import "github.com/shopspring/decimal"

// ─── Filter / list ──────────────────────────────────────────────────────────

// SolicitacaoFilter is bound from the query string of GET /v1/solicitacoes.
// IDContem and SolicitanteID are honored only for admins; the service forces
// SolicitanteID to the caller for normal users regardless of what was sent.
type SolicitacaoFilter struct {
	IDContem      string `form:"id"`
	Status        string `form:"status"`
	Prioridade    string `form:"prioridade"`
	SolicitanteID string `form:"solicitante_id"`
	// Inclusive date bounds, YYYY-MM-DD
	CriadaDe  string `form:"criada_de"`
	CriadaAte string `form:"criada_ate"`
	// Page and Limit are filled by pagination.Parse, not bound directly.
	Page  int `form:"-"`
	Limit int `form:"-"`
}

type SolicitacaoListResponse struct {
	Data       []SolicitacaoResponse `json:"data"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"total_pages"`
}

// BoardLane groups filtered requests under one of the seven fixed statuses.
type BoardLane struct {
	Status      string                `json:"status"`
	StatusLabel string                `json:"status_label"`
	Emoji       string                `json:"emoji"`
	Color       string                `json:"color"`
	Cards       []SolicitacaoResponse `json:"cards"`
}

type BoardResponse struct {
	Lanes []BoardLane `json:"lanes"`
}

// ─── Request DTOs ───────────────────────────────────────────────────────────

type ItemSolicitacaoRequest struct {
	ItemID     string `json:"item_id"    validate:"required,uuid"`
	Quantidade int    `json:"quantidade" validate:"required,gt=0"`
}

type CriarSolicitacaoRequest struct {
	ClienteID     string                   `json:"cliente_id"    validate:"required,uuid"`
	UnidadeID     string                   `json:"unidade_id"    validate:"required,uuid"`
	RubricaID     string                   `json:"rubrica_id"    validate:"required,uuid"`
	Tipo          string                   `json:"tipo"          validate:"required,oneof=direct-purchase quotation service"`
	Justificativa string                   `json:"justificativa" validate:"required"`
	Prioridade    string                   `json:"prioridade"    validate:"required,oneof=moderate urgent emergency"`
	Itens         []ItemSolicitacaoRequest `json:"itens"         validate:"required,min=1,dive"`
}

// AtualizarSolicitacaoRequest is a full-record replace of the editable
// fields; status is never touched here (see TransicaoStatusRequest).
type AtualizarSolicitacaoRequest struct {
	ClienteID     string                   `json:"cliente_id"    validate:"required,uuid"`
	UnidadeID     string                   `json:"unidade_id"    validate:"required,uuid"`
	RubricaID     string                   `json:"rubrica_id"    validate:"required,uuid"`
	Tipo          string                   `json:"tipo"          validate:"required,oneof=direct-purchase quotation service"`
	Justificativa string                   `json:"justificativa" validate:"required"`
	Prioridade    string                   `json:"prioridade"    validate:"required,oneof=moderate urgent emergency"`
	Itens         []ItemSolicitacaoRequest `json:"itens"         validate:"required,min=1,dive"`
}

// TransicaoStatusRequest moves a request to a new lifecycle state.
// Motivo is required when Status is "rejected".
type TransicaoStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Motivo string `json:"motivo"`
}

// ─── Response DTOs ──────────────────────────────────────────────────────────

type ItemSolicitacaoResponse struct {
	ItemID        string          `json:"item_id"`
	Nome          string          `json:"nome"`
	UnidadeMedida string          `json:"unidade_medida"`
	Quantidade    int             `json:"quantidade"`
	PrecoMedio    decimal.Decimal `json:"preco_medio"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type HistoricoStatusResponse struct {
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	AtorID      string `json:"ator_id"`
	AtorNome    string `json:"ator_nome"`
	CreatedAt   string `json:"created_at"`
}

type SolicitacaoResponse struct {
	ID              string                    `json:"id"`
	ClienteID       string                    `json:"cliente_id"`
	ClienteNome     string                    `json:"cliente_nome"`
	UnidadeID       string                    `json:"unidade_id"`
	UnidadeNome     string                    `json:"unidade_nome"`
	RubricaID       string                    `json:"rubrica_id"`
	RubricaNome     string                    `json:"rubrica_nome"`
	Tipo            string                    `json:"tipo"`
	TipoLabel       string                    `json:"tipo_label"`
	Justificativa   string                    `json:"justificativa"`
	Prioridade      string                    `json:"prioridade"`
	PrioridadeLabel string                    `json:"prioridade_label"`
	PrioridadeEmoji string                    `json:"prioridade_emoji"`
	PrioridadeColor string                    `json:"prioridade_color"`
	Status          string                    `json:"status"`
	StatusLabel     string                    `json:"status_label"`
	StatusEmoji     string                    `json:"status_emoji"`
	StatusColor     string                    `json:"status_color"`
	MotivoRejeicao  *string                   `json:"motivo_rejeicao,omitempty"`
	SolicitanteID   string                    `json:"solicitante_id"`
	SolicitanteNome string                    `json:"solicitante_nome"`
	Itens           []ItemSolicitacaoResponse `json:"itens"`
	TotalEstimado   decimal.Decimal           `json:"total_estimado"`
	TotalFormatado  string                    `json:"total_formatado"`
	Historico       []HistoricoStatusResponse `json:"historico,omitempty"`
	CreatedAt       string                    `json:"created_at"`
}
