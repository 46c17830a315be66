package service

import (
	"context"
	"testing"

	"compracerta/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogoFixture struct {
	repo *stubCatalogoRepo
	svc  CatalogoService
}

func newCatalogoFixture() *catalogoFixture {
	repo := newStubCatalogoRepo(nil)
	return &catalogoFixture{repo: repo, svc: NewCatalogoService(repo)}
}

func (f *catalogoFixture) seedGrupoUM(t *testing.T) (dto.GrupoItemResponse, dto.UnidadeMedidaResponse) {
	t.Helper()
	grupo, err := f.svc.CriarGrupo(context.Background(), dto.GrupoItemRequest{Nome: "Medicamentos"})
	require.NoError(t, err)
	um, err := f.svc.CriarUnidadeMedida(context.Background(), dto.UnidadeMedidaRequest{Nome: "Caixa", Abreviacao: "cx"})
	require.NoError(t, err)
	return grupo, um
}

func TestGruposCRUD(t *testing.T) {
	f := newCatalogoFixture()
	ctx := context.Background()

	grupo, err := f.svc.CriarGrupo(ctx, dto.GrupoItemRequest{Nome: "Medicamentos"})
	require.NoError(t, err)

	lista, err := f.svc.ListarGrupos(ctx)
	require.NoError(t, err)
	require.Len(t, lista, 1)

	id := uuid.MustParse(grupo.ID)
	atualizado, err := f.svc.AtualizarGrupo(ctx, id, dto.GrupoItemRequest{Nome: "Insumos"})
	require.NoError(t, err)
	assert.Equal(t, "Insumos", atualizado.Nome)

	require.NoError(t, f.svc.ExcluirGrupo(ctx, id))
	lista, err = f.svc.ListarGrupos(ctx)
	require.NoError(t, err)
	assert.Empty(t, lista)
}

func TestUnidadesMedidaCRUD(t *testing.T) {
	f := newCatalogoFixture()
	ctx := context.Background()

	um, err := f.svc.CriarUnidadeMedida(ctx, dto.UnidadeMedidaRequest{Nome: "Quilograma", Abreviacao: "kg"})
	require.NoError(t, err)
	assert.Equal(t, "kg", um.Abreviacao)

	id := uuid.MustParse(um.ID)
	atualizado, err := f.svc.AtualizarUnidadeMedida(ctx, id, dto.UnidadeMedidaRequest{Nome: "Grama", Abreviacao: "g"})
	require.NoError(t, err)
	assert.Equal(t, "g", atualizado.Abreviacao)

	require.NoError(t, f.svc.ExcluirUnidadeMedida(ctx, id))
	lista, err := f.svc.ListarUnidadesMedida(ctx)
	require.NoError(t, err)
	assert.Empty(t, lista)
}

func TestCriarItemEmbuteReferencias(t *testing.T) {
	f := newCatalogoFixture()
	grupo, um := f.seedGrupoUM(t)

	resp, err := f.svc.CriarItem(context.Background(), dto.ItemRequest{
		Nome:            "Dipirona 500mg",
		GrupoID:         grupo.ID,
		UnidadeMedidaID: um.ID,
		PrecoMedio:      decimal.NewFromFloat(8.90),
	})
	require.NoError(t, err)

	// A resposta embute grupo e unidade de medida completos.
	assert.Equal(t, grupo.ID, resp.Grupo.ID)
	assert.Equal(t, "Medicamentos", resp.Grupo.Nome)
	assert.Equal(t, um.ID, resp.UnidadeMedida.ID)
	assert.Equal(t, "cx", resp.UnidadeMedida.Abreviacao)
}

func TestCriarItemValidacoes(t *testing.T) {
	f := newCatalogoFixture()
	grupo, um := f.seedGrupoUM(t)

	_, err := f.svc.CriarItem(context.Background(), dto.ItemRequest{
		Nome: "X", GrupoID: "abc", UnidadeMedidaID: um.ID,
	})
	assert.EqualError(t, err, "grupo_id inválido")

	_, err = f.svc.CriarItem(context.Background(), dto.ItemRequest{
		Nome: "X", GrupoID: grupo.ID, UnidadeMedidaID: "abc",
	})
	assert.EqualError(t, err, "unidade_medida_id inválido")

	_, err = f.svc.CriarItem(context.Background(), dto.ItemRequest{
		Nome: "X", GrupoID: grupo.ID, UnidadeMedidaID: um.ID,
		PrecoMedio: decimal.NewFromInt(-1),
	})
	assert.EqualError(t, err, "preço médio não pode ser negativo")

	assert.Empty(t, f.repo.itens)
}

func TestAtualizarItem(t *testing.T) {
	f := newCatalogoFixture()
	grupo, um := f.seedGrupoUM(t)

	criado, err := f.svc.CriarItem(context.Background(), dto.ItemRequest{
		Nome: "Dipirona 500mg", GrupoID: grupo.ID, UnidadeMedidaID: um.ID,
		PrecoMedio: decimal.NewFromFloat(8.90),
	})
	require.NoError(t, err)
	id := uuid.MustParse(criado.ID)

	resp, err := f.svc.AtualizarItem(context.Background(), id, dto.ItemRequest{
		Nome: "Dipirona 1g", GrupoID: grupo.ID, UnidadeMedidaID: um.ID,
		PrecoMedio: decimal.NewFromFloat(12.00),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dipirona 1g", resp.Nome)
	assert.True(t, resp.PrecoMedio.Equal(decimal.NewFromFloat(12)))

	_, err = f.svc.AtualizarItem(context.Background(), uuid.New(), dto.ItemRequest{
		Nome: "X", GrupoID: grupo.ID, UnidadeMedidaID: um.ID,
	})
	assert.EqualError(t, err, "item não encontrado")
}

func TestItemGrupoRemovidoDegrada(t *testing.T) {
	f := newCatalogoFixture()
	grupo, um := f.seedGrupoUM(t)

	criado, err := f.svc.CriarItem(context.Background(), dto.ItemRequest{
		Nome: "Dipirona 500mg", GrupoID: grupo.ID, UnidadeMedidaID: um.ID,
		PrecoMedio: decimal.NewFromFloat(8.90),
	})
	require.NoError(t, err)

	// Grupo apagado depois: o item continua saindo na listagem, com
	// placeholder no lugar do grupo e a unidade de medida intacta.
	require.NoError(t, f.svc.ExcluirGrupo(context.Background(), uuid.MustParse(grupo.ID)))

	lista, err := f.svc.ListarItens(context.Background())
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, criado.ID, lista[0].ID)
	assert.Equal(t, "Não encontrado", lista[0].Grupo.Nome)
	assert.Equal(t, "Caixa", lista[0].UnidadeMedida.Nome)
}
