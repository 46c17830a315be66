package service

import (
	"context"
	"testing"

	"compracerta/internal/dto"
	"compracerta/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unidadeFixture struct {
	repo      *stubUnidadeRepo
	clientes  *stubClienteRepo
	svc       UnidadeService
	clienteID uuid.UUID
}

func newUnidadeFixture(t *testing.T) *unidadeFixture {
	t.Helper()

	clientes := newStubClienteRepo()
	cliente := &model.Cliente{ID: uuid.New(), Nome: "Prefeitura de Sorriso", Municipio: "Sorriso"}
	clientes.clientes[cliente.ID] = cliente

	repo := &stubUnidadeRepo{
		unidades: make(map[uuid.UUID]*model.Unidade),
		clientes: clientes.clientes,
	}
	return &unidadeFixture{
		repo:      repo,
		clientes:  clientes,
		svc:       NewUnidadeService(repo, clientes),
		clienteID: cliente.ID,
	}
}

func TestCriarUnidade(t *testing.T) {
	f := newUnidadeFixture(t)

	resp, err := f.svc.Criar(context.Background(), dto.UnidadeRequest{
		Nome:      "Hospital Regional",
		ClienteID: f.clienteID.String(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, f.clienteID.String(), resp.ClienteID)
	// A resposta embute o nome do cliente dono.
	assert.Equal(t, "Prefeitura de Sorriso", resp.ClienteNome)
}

func TestCriarUnidadeClienteInvalido(t *testing.T) {
	f := newUnidadeFixture(t)

	// cliente_id não é um UUID.
	_, err := f.svc.Criar(context.Background(), dto.UnidadeRequest{Nome: "X", ClienteID: "abc"})
	assert.EqualError(t, err, "cliente_id inválido")

	// UUID válido, mas nenhum cliente com esse id.
	_, err = f.svc.Criar(context.Background(), dto.UnidadeRequest{Nome: "X", ClienteID: uuid.NewString()})
	assert.EqualError(t, err, "cliente não encontrado")

	assert.Empty(t, f.repo.unidades)
}

func TestListarUnidadesPorCliente(t *testing.T) {
	f := newUnidadeFixture(t)
	outroCliente := &model.Cliente{ID: uuid.New(), Nome: "Outro", Municipio: "Outro"}
	f.clientes.clientes[outroCliente.ID] = outroCliente

	for _, par := range []struct {
		nome    string
		cliente uuid.UUID
	}{
		{"UPA Norte", f.clienteID},
		{"UPA Sul", f.clienteID},
		{"Almoxarifado", outroCliente.ID},
	} {
		_, err := f.svc.Criar(context.Background(), dto.UnidadeRequest{Nome: par.nome, ClienteID: par.cliente.String()})
		require.NoError(t, err)
	}

	todas, err := f.svc.Listar(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, todas, 3)

	filtradas, err := f.svc.Listar(context.Background(), f.clienteID.String())
	require.NoError(t, err)
	require.Len(t, filtradas, 2)
	for _, u := range filtradas {
		assert.Equal(t, f.clienteID.String(), u.ClienteID)
	}

	_, err = f.svc.Listar(context.Background(), "nao-uuid")
	assert.EqualError(t, err, "cliente_id inválido")
}

func TestAtualizarUnidade(t *testing.T) {
	f := newUnidadeFixture(t)
	criada, err := f.svc.Criar(context.Background(), dto.UnidadeRequest{Nome: "UPA Norte", ClienteID: f.clienteID.String()})
	require.NoError(t, err)
	id := uuid.MustParse(criada.ID)

	resp, err := f.svc.Atualizar(context.Background(), id, dto.UnidadeRequest{Nome: "UPA Central", ClienteID: f.clienteID.String()})
	require.NoError(t, err)
	assert.Equal(t, "UPA Central", resp.Nome)

	// Realocar para um cliente inexistente é rejeitado.
	_, err = f.svc.Atualizar(context.Background(), id, dto.UnidadeRequest{Nome: "UPA Central", ClienteID: uuid.NewString()})
	assert.EqualError(t, err, "cliente não encontrado")

	_, err = f.svc.Atualizar(context.Background(), uuid.New(), dto.UnidadeRequest{Nome: "X", ClienteID: f.clienteID.String()})
	assert.EqualError(t, err, "unidade não encontrada")
}

func TestExcluirUnidade(t *testing.T) {
	f := newUnidadeFixture(t)
	criada, err := f.svc.Criar(context.Background(), dto.UnidadeRequest{Nome: "UPA Norte", ClienteID: f.clienteID.String()})
	require.NoError(t, err)

	require.NoError(t, f.svc.Excluir(context.Background(), uuid.MustParse(criada.ID)))
	assert.Empty(t, f.repo.unidades)

	assert.EqualError(t, f.svc.Excluir(context.Background(), uuid.New()), "unidade não encontrada")
}

func TestUnidadeClienteRemovidoDegrada(t *testing.T) {
	f := newUnidadeFixture(t)
	criada, err := f.svc.Criar(context.Background(), dto.UnidadeRequest{Nome: "UPA Norte", ClienteID: f.clienteID.String()})
	require.NoError(t, err)

	// Cliente apagado depois: a unidade segue listável, com placeholder.
	delete(f.clientes.clientes, f.clienteID)

	lista, err := f.svc.Listar(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, criada.ID, lista[0].ID)
	assert.Equal(t, "Não encontrado", lista[0].ClienteNome)
}
