package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/clientes-pro/internal/application/dto"
	"github.com/tu-usuario/clientes-pro/internal/domain"
	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
	"github.com/tu-usuario/clientes-pro/internal/domain/repository"
)

// ExecutiveUseCase casos de uso del catálogo de ejecutivos de cuenta.
type ExecutiveUseCase struct {
	repo repository.ExecutiveRepository
}

// NewExecutiveUseCase construye el caso de uso.
func NewExecutiveUseCase(repo repository.ExecutiveRepository) *ExecutiveUseCase {
	return &ExecutiveUseCase{repo: repo}
}

// Create da de alta un ejecutivo.
func (uc *ExecutiveUseCase) Create(in dto.CreateExecutiveRequest) (*dto.ExecutiveResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	exec := &entity.Executive{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(exec); err != nil {
		return nil, err
	}
	resp := dto.ToExecutiveResponse(exec)
	return &resp, nil
}

// List lista ejecutivos con paginación.
func (uc *ExecutiveUseCase) List(limit, offset int) (*dto.ExecutiveListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExecutiveResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.ToExecutiveResponse(e))
	}
	return &dto.ExecutiveListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
