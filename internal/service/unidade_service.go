package service

import (
	"context"
	"errors"

	"compracerta/internal/dto"
	"compracerta/internal/model"
	"compracerta/internal/repository"

	"github.com/google/uuid"
)

// UnidadeService defines business operations for organizational units.
type UnidadeService interface {
	Criar(ctx context.Context, req dto.UnidadeRequest) (dto.UnidadeResponse, error)
	Listar(ctx context.Context, clienteID string) ([]dto.UnidadeResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.UnidadeRequest) (dto.UnidadeResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type unidadeService struct {
	repo        repository.UnidadeRepository
	clienteRepo repository.ClienteRepository
}

func NewUnidadeService(repo repository.UnidadeRepository, clienteRepo repository.ClienteRepository) UnidadeService {
	return &unidadeService{repo: repo, clienteRepo: clienteRepo}
}

func mapUnidade(u model.Unidade) dto.UnidadeResponse {
	resp := dto.UnidadeResponse{
		ID:          u.ID.String(),
		Nome:        u.Nome,
		ClienteID:   u.ClienteID.String(),
		ClienteNome: "Não encontrado",
	}
	if u.Cliente != nil {
		resp.ClienteNome = u.Cliente.Nome
	}
	return resp
}

func (s *unidadeService) Criar(ctx context.Context, req dto.UnidadeRequest) (dto.UnidadeResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return dto.UnidadeResponse{}, errors.New("cliente_id inválido")
	}
	if _, err := s.clienteRepo.FindByID(ctx, clienteID); err != nil {
		return dto.UnidadeResponse{}, errors.New("cliente não encontrado")
	}
	u := &model.Unidade{Nome: req.Nome, ClienteID: clienteID}
	if err := s.repo.Create(ctx, u); err != nil {
		return dto.UnidadeResponse{}, err
	}
	criada, err := s.repo.FindByID(ctx, u.ID)
	if err != nil {
		return mapUnidade(*u), nil
	}
	return mapUnidade(*criada), nil
}

func (s *unidadeService) Listar(ctx context.Context, clienteID string) ([]dto.UnidadeResponse, error) {
	var list []model.Unidade
	var err error
	if clienteID != "" {
		cid, perr := uuid.Parse(clienteID)
		if perr != nil {
			return nil, errors.New("cliente_id inválido")
		}
		list, err = s.repo.ListByCliente(ctx, cid)
	} else {
		list, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	result := make([]dto.UnidadeResponse, 0, len(list))
	for _, u := range list {
		result = append(result, mapUnidade(u))
	}
	return result, nil
}

func (s *unidadeService) Atualizar(ctx context.Context, id uuid.UUID, req dto.UnidadeRequest) (dto.UnidadeResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.UnidadeResponse{}, errors.New("unidade não encontrada")
	}
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return dto.UnidadeResponse{}, errors.New("cliente_id inválido")
	}
	if _, err := s.clienteRepo.FindByID(ctx, clienteID); err != nil {
		return dto.UnidadeResponse{}, errors.New("cliente não encontrado")
	}
	u.Nome = req.Nome
	u.ClienteID = clienteID
	if err := s.repo.Update(ctx, u); err != nil {
		return dto.UnidadeResponse{}, err
	}
	return mapUnidade(*u), nil
}

func (s *unidadeService) Excluir(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("unidade não encontrada")
	}
	return s.repo.Delete(ctx, id)
}
