package service

import (
	"context"
	"testing"

	"compracerta/internal/dto"
	"compracerta/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rubricaFixture struct {
	repo      *stubRubricaRepo
	clientes  *stubClienteRepo
	svc       RubricaService
	clienteID uuid.UUID
}

func newRubricaFixture(t *testing.T) *rubricaFixture {
	t.Helper()

	clientes := newStubClienteRepo()
	cliente := &model.Cliente{ID: uuid.New(), Nome: "Prefeitura de Sorriso", Municipio: "Sorriso"}
	clientes.clientes[cliente.ID] = cliente

	repo := &stubRubricaRepo{
		rubricas: make(map[uuid.UUID]*model.Rubrica),
		clientes: clientes.clientes,
	}
	return &rubricaFixture{
		repo:      repo,
		clientes:  clientes,
		svc:       NewRubricaService(repo, clientes),
		clienteID: cliente.ID,
	}
}

func TestCriarRubrica(t *testing.T) {
	f := newRubricaFixture(t)

	resp, err := f.svc.Criar(context.Background(), dto.RubricaRequest{
		Nome:        "Material Médico",
		ClienteID:   f.clienteID.String(),
		ValorMensal: decimal.NewFromInt(50000),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Prefeitura de Sorriso", resp.ClienteNome)
	assert.True(t, resp.ValorMensal.Equal(decimal.NewFromInt(50000)))
}

func TestCriarRubricaClienteInvalido(t *testing.T) {
	f := newRubricaFixture(t)

	_, err := f.svc.Criar(context.Background(), dto.RubricaRequest{Nome: "X", ClienteID: "abc"})
	assert.EqualError(t, err, "cliente_id inválido")

	_, err = f.svc.Criar(context.Background(), dto.RubricaRequest{Nome: "X", ClienteID: uuid.NewString()})
	assert.EqualError(t, err, "cliente não encontrado")

	assert.Empty(t, f.repo.rubricas)
}

func TestListarRubricasPorCliente(t *testing.T) {
	f := newRubricaFixture(t)
	outro := &model.Cliente{ID: uuid.New(), Nome: "Outro", Municipio: "Outro"}
	f.clientes.clientes[outro.ID] = outro

	for _, par := range []struct {
		nome    string
		cliente uuid.UUID
	}{
		{"Material Médico", f.clienteID},
		{"Limpeza", f.clienteID},
		{"Combustível", outro.ID},
	} {
		_, err := f.svc.Criar(context.Background(), dto.RubricaRequest{
			Nome: par.nome, ClienteID: par.cliente.String(), ValorMensal: decimal.NewFromInt(1000),
		})
		require.NoError(t, err)
	}

	filtradas, err := f.svc.Listar(context.Background(), f.clienteID.String())
	require.NoError(t, err)
	require.Len(t, filtradas, 2)
	for _, r := range filtradas {
		assert.Equal(t, f.clienteID.String(), r.ClienteID)
	}

	todas, err := f.svc.Listar(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, todas, 3)
}

func TestAtualizarRubrica(t *testing.T) {
	f := newRubricaFixture(t)
	criada, err := f.svc.Criar(context.Background(), dto.RubricaRequest{
		Nome: "Material Médico", ClienteID: f.clienteID.String(), ValorMensal: decimal.NewFromInt(50000),
	})
	require.NoError(t, err)
	id := uuid.MustParse(criada.ID)

	resp, err := f.svc.Atualizar(context.Background(), id, dto.RubricaRequest{
		Nome: "Material Hospitalar", ClienteID: f.clienteID.String(), ValorMensal: decimal.NewFromInt(75000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Material Hospitalar", resp.Nome)
	assert.True(t, resp.ValorMensal.Equal(decimal.NewFromInt(75000)))

	_, err = f.svc.Atualizar(context.Background(), id, dto.RubricaRequest{
		Nome: "X", ClienteID: uuid.NewString(), ValorMensal: decimal.Zero,
	})
	assert.EqualError(t, err, "cliente não encontrado")

	_, err = f.svc.Atualizar(context.Background(), uuid.New(), dto.RubricaRequest{
		Nome: "X", ClienteID: f.clienteID.String(),
	})
	assert.EqualError(t, err, "rubrica não encontrada")
}

func TestExcluirRubrica(t *testing.T) {
	f := newRubricaFixture(t)
	criada, err := f.svc.Criar(context.Background(), dto.RubricaRequest{
		Nome: "Material Médico", ClienteID: f.clienteID.String(), ValorMensal: decimal.NewFromInt(50000),
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Excluir(context.Background(), uuid.MustParse(criada.ID)))
	assert.Empty(t, f.repo.rubricas)

	assert.EqualError(t, f.svc.Excluir(context.Background(), uuid.New()), "rubrica não encontrada")
}
