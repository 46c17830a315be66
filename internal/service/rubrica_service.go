package service

import (
	"context"
	"errors"

	"compracerta/internal/dto"
	"compracerta/internal/model"
	"compracerta/internal/repository"

	"github.com/google/uuid"
)

// RubricaService defines business operations for budget lines.
type RubricaService interface {
	Criar(ctx context.Context, req dto.RubricaRequest) (dto.RubricaResponse, error)
	Listar(ctx context.Context, clienteID string) ([]dto.RubricaResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.RubricaRequest) (dto.RubricaResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type rubricaService struct {
	repo        repository.RubricaRepository
	clienteRepo repository.ClienteRepository
}

func NewRubricaService(repo repository.RubricaRepository, clienteRepo repository.ClienteRepository) RubricaService {
	return &rubricaService{repo: repo, clienteRepo: clienteRepo}
}

func mapRubrica(r model.Rubrica) dto.RubricaResponse {
	resp := dto.RubricaResponse{
		ID:          r.ID.String(),
		Nome:        r.Nome,
		ClienteID:   r.ClienteID.String(),
		ClienteNome: "Não encontrado",
		ValorMensal: r.ValorMensal,
	}
	if r.Cliente != nil {
		resp.ClienteNome = r.Cliente.Nome
	}
	return resp
}

func (s *rubricaService) Criar(ctx context.Context, req dto.RubricaRequest) (dto.RubricaResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return dto.RubricaResponse{}, errors.New("cliente_id inválido")
	}
	if _, err := s.clienteRepo.FindByID(ctx, clienteID); err != nil {
		return dto.RubricaResponse{}, errors.New("cliente não encontrado")
	}
	r := &model.Rubrica{Nome: req.Nome, ClienteID: clienteID, ValorMensal: req.ValorMensal}
	if err := s.repo.Create(ctx, r); err != nil {
		return dto.RubricaResponse{}, err
	}
	criada, err := s.repo.FindByID(ctx, r.ID)
	if err != nil {
		return mapRubrica(*r), nil
	}
	return mapRubrica(*criada), nil
}

func (s *rubricaService) Listar(ctx context.Context, clienteID string) ([]dto.RubricaResponse, error) {
	var list []model.Rubrica
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
	result := make([]dto.RubricaResponse, 0, len(list))
	for _, r := range list {
		result = append(result, mapRubrica(r))
	}
	return result, nil
}

func (s *rubricaService) Atualizar(ctx context.Context, id uuid.UUID, req dto.RubricaRequest) (dto.RubricaResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.RubricaResponse{}, errors.New("rubrica não encontrada")
	}
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return dto.RubricaResponse{}, errors.New("cliente_id inválido")
	}
	if _, err := s.clienteRepo.FindByID(ctx, clienteID); err != nil {
		return dto.RubricaResponse{}, errors.New("cliente não encontrado")
	}
	r.Nome = req.Nome
	r.ClienteID = clienteID
	r.ValorMensal = req.ValorMensal
	if err := s.repo.Update(ctx, r); err != nil {
		return dto.RubricaResponse{}, err
	}
	return mapRubrica(*r), nil
}

func (s *rubricaService) Excluir(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("rubrica não encontrada")
	}
	return s.repo.Delete(ctx, id)
}
