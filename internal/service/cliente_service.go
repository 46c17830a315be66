package service

import (
	"context"
	"errors"

	"compracerta/internal/dto"
	"compracerta/internal/model"
	"compracerta/internal/repository"

	"github.com/google/uuid"
)

// ClienteService defines business operations for clients.
type ClienteService interface {
	Criar(ctx context.Context, req dto.ClienteRequest) (dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.ClienteRequest) (dto.ClienteResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func mapCliente(c model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:        c.ID.String(),
		Nome:      c.Nome,
		Municipio: c.Municipio,
	}
}

func (s *clienteService) Criar(ctx context.Context, req dto.ClienteRequest) (dto.ClienteResponse, error) {
	c := &model.Cliente{Nome: req.Nome, Municipio: req.Municipio}
	if err := s.repo.Create(ctx, c); err != nil {
		return dto.ClienteResponse{}, err
	}
	return mapCliente(*c), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCliente(c))
	}
	return result, nil
}

func (s *clienteService) Atualizar(ctx context.Context, id uuid.UUID, req dto.ClienteRequest) (dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.ClienteResponse{}, errors.New("cliente não encontrado")
	}
	c.Nome = req.Nome
	c.Municipio = req.Municipio
	if err := s.repo.Update(ctx, c); err != nil {
		return dto.ClienteResponse{}, err
	}
	return mapCliente(*c), nil
}

func (s *clienteService) Excluir(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("cliente não encontrado")
	}
	return s.repo.Delete(ctx, id)
}
