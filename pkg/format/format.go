// Package format maps lifecycle enum values to their pt-BR display strings,
// emoji and color tokens, and formats money and dates the way the dashboard
// expects them. Everything here is pure and table-driven.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"compracerta/internal/model"
)

type statusMeta struct {
	Label string
	Emoji string
	Color string
}

var statusTable = map[model.Status]statusMeta{
	model.StatusAguardandoLiberacao: {"Aguardando Liberação", "⏳", "yellow"},
	model.StatusCotando:             {"Cotando", "🔍", "blue"},
	model.StatusAguardandoPagamento: {"Aguardando Pagamento", "💳", "orange"},
	model.StatusPagamentoRealizado:  {"Pagamento Realizado", "✅", "teal"},
	model.StatusAguardandoEntrega:   {"Aguardando Entrega", "🚚", "purple"},
	model.StatusEntregue:            {"Entregue", "📦", "green"},
	model.StatusRejeitada:           {"Rejeitada", "❌", "red"},
}

var prioridadeTable = map[string]statusMeta{
	model.PrioridadeModerada:    {"Moderada", "🟢", "green"},
	model.PrioridadeUrgente:     {"Urgente", "🟡", "yellow"},
	model.PrioridadeEmergencial: {"Emergencial", "🔴", "red"},
}

var tipoTable = map[string]string{
	model.TipoCompraDireta: "Compra Direta",
	model.TipoCotacao:      "Cotação",
	model.TipoServico:      "Serviço",
}

const naoEncontrado = "Não encontrado"

// StatusLabel returns the pt-BR label for a status, or a placeholder for
// unknown values.
func StatusLabel(s model.Status) string {
	if m, ok := statusTable[s]; ok {
		return m.Label
	}
	return naoEncontrado
}

// StatusEmoji returns the emoji shown on board cards.
func StatusEmoji(s model.Status) string {
	if m, ok := statusTable[s]; ok {
		return m.Emoji
	}
	return ""
}

// StatusColor returns the color token consumed by the front-end theme.
func StatusColor(s model.Status) string {
	if m, ok := statusTable[s]; ok {
		return m.Color
	}
	return "gray"
}

// PrioridadeLabel returns the pt-BR label for a priority value.
func PrioridadeLabel(p string) string {
	if m, ok := prioridadeTable[p]; ok {
		return m.Label
	}
	return naoEncontrado
}

// PrioridadeEmoji returns the emoji shown beside the priority label.
func PrioridadeEmoji(p string) string {
	if m, ok := prioridadeTable[p]; ok {
		return m.Emoji
	}
	return ""
}

// PrioridadeColor returns the color token for a priority value.
func PrioridadeColor(p string) string {
	if m, ok := prioridadeTable[p]; ok {
		return m.Color
	}
	return "gray"
}

// TipoLabel returns the pt-BR label for a request type.
func TipoLabel(t string) string {
	if l, ok := tipoTable[t]; ok {
		return l
	}
	return naoEncontrado
}

// Moeda formats a decimal as Brazilian currency: R$ 1.234,56.
func Moeda(v decimal.Decimal) string {
	s := v.StringFixed(2) // e.g. -1234.56
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	inteiro, frac := parts[0], parts[1]

	// Group thousands with dots
	var grouped []string
	for len(inteiro) > 3 {
		grouped = append([]string{inteiro[len(inteiro)-3:]}, grouped...)
		inteiro = inteiro[:len(inteiro)-3]
	}
	grouped = append([]string{inteiro}, grouped...)

	out := fmt.Sprintf("R$ %s,%s", strings.Join(grouped, "."), frac)
	if neg {
		out = "-" + out
	}
	return out
}

// Data formats a timestamp as dd/mm/aaaa.
func Data(t time.Time) string {
	return t.Format("02/01/2006")
}

// DataHora formats a timestamp as dd/mm/aaaa hh:mm.
func DataHora(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
