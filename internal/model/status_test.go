package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range TodosStatus {
		assert.True(t, s.Valid(), "esperado válido: %s", s)
	}
	assert.False(t, Status("").Valid())
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("Rejected").Valid(), "comparação é case-sensitive")
}

func TestStatusInicial(t *testing.T) {
	assert.Equal(t, StatusAguardandoLiberacao, StatusInicial)
}

func TestTodosStatusOrdemDasLanes(t *testing.T) {
	// A ordem do slice define a ordem das colunas do board.
	esperado := []Status{
		StatusAguardandoLiberacao,
		StatusCotando,
		StatusAguardandoPagamento,
		StatusPagamentoRealizado,
		StatusAguardandoEntrega,
		StatusEntregue,
		StatusRejeitada,
	}
	assert.Equal(t, esperado, TodosStatus)
}

func TestPodeTransicionar(t *testing.T) {
	// Qualquer movimento entre estados distintos é permitido, para frente ou
	// para trás, exceto sair de rejeitada.
	assert.True(t, StatusAguardandoLiberacao.PodeTransicionar(StatusCotando))
	assert.True(t, StatusEntregue.PodeTransicionar(StatusAguardandoLiberacao))
	assert.True(t, StatusCotando.PodeTransicionar(StatusRejeitada))
	assert.True(t, StatusEntregue.PodeTransicionar(StatusRejeitada))

	// Rejeitada é terminal.
	for _, alvo := range TodosStatus {
		assert.False(t, StatusRejeitada.PodeTransicionar(alvo), "rejeitada → %s deveria ser bloqueado", alvo)
	}

	// Mesmo estado nunca é uma transição.
	for _, s := range TodosStatus {
		assert.False(t, s.PodeTransicionar(s))
	}

	// Alvo inválido.
	assert.False(t, StatusCotando.PodeTransicionar(Status("archived")))
}
