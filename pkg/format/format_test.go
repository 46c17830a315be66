package format

import (
	"testing"
	"time"

	"compracerta/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoeda(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"0", "R$ 0,00"},
		{"9.9", "R$ 9,90"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"1000", "R$ 1.000,00"},
		{"-1234.56", "-R$ 1.234,56"},
	}
	for _, tc := range cases {
		v, err := decimal.NewFromString(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, tc.out, Moeda(v), "entrada %s", tc.in)
	}
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Aguardando Liberação", StatusLabel(model.StatusAguardandoLiberacao))
	assert.Equal(t, "Rejeitada", StatusLabel(model.StatusRejeitada))
	assert.Equal(t, "Não encontrado", StatusLabel(model.Status("archived")))

	// Toda lane tem label, emoji e cor.
	for _, s := range model.TodosStatus {
		assert.NotEmpty(t, StatusLabel(s))
		assert.NotEmpty(t, StatusEmoji(s))
		assert.NotEmpty(t, StatusColor(s))
	}
}

func TestPrioridadeETipoLabels(t *testing.T) {
	assert.Equal(t, "Emergencial", PrioridadeLabel(model.PrioridadeEmergencial))
	assert.Equal(t, "🔴", PrioridadeEmoji(model.PrioridadeEmergencial))
	assert.Equal(t, "green", PrioridadeColor(model.PrioridadeModerada))
	assert.Equal(t, "Não encontrado", PrioridadeLabel("x"))

	assert.Equal(t, "Compra Direta", TipoLabel(model.TipoCompraDireta))
	assert.Equal(t, "Cotação", TipoLabel(model.TipoCotacao))
	assert.Equal(t, "Serviço", TipoLabel(model.TipoServico))
	assert.Equal(t, "Não encontrado", TipoLabel("rental"))
}

func TestDatas(t *testing.T) {
	ts := time.Date(2026, 3, 7, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "07/03/2026", Data(ts))
	assert.Equal(t, "07/03/2026 14:05", DataHora(ts))
}
