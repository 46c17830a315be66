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

func TestClienteCRUD(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	ctx := context.Background()

	criado, err := svc.Criar(ctx, dto.ClienteRequest{Nome: "Prefeitura de Sorriso", Municipio: "Sorriso"})
	require.NoError(t, err)
	assert.NotEmpty(t, criado.ID)
	assert.Equal(t, "Prefeitura de Sorriso", criado.Nome)

	lista, err := svc.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, lista, 1)

	id := uuid.MustParse(criado.ID)
	atualizado, err := svc.Atualizar(ctx, id, dto.ClienteRequest{Nome: "Prefeitura de Sinop", Municipio: "Sinop"})
	require.NoError(t, err)
	assert.Equal(t, "Prefeitura de Sinop", atualizado.Nome)
	assert.Equal(t, "Sinop", atualizado.Municipio)

	require.NoError(t, svc.Excluir(ctx, id))
	lista, err = svc.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, lista)
}

func TestClienteInexistente(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())
	ctx := context.Background()

	_, err := svc.Atualizar(ctx, uuid.New(), dto.ClienteRequest{Nome: "X", Municipio: "Y"})
	assert.EqualError(t, err, "cliente não encontrado")

	assert.EqualError(t, svc.Excluir(ctx, uuid.New()), "cliente não encontrado")
}

func TestClienteListaOrdenada(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	ctx := context.Background()

	for _, nome := range []string{"Cuiabá", "Alta Floresta", "Barra do Garças"} {
		c := &model.Cliente{ID: uuid.New(), Nome: nome, Municipio: nome}
		repo.clientes[c.ID] = c
	}

	lista, err := svc.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, lista, 3)
	assert.Equal(t, "Alta Floresta", lista[0].Nome)
	assert.Equal(t, "Cuiabá", lista[2].Nome)
}
