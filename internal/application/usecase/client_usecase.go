package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/tu-usuario/clientes-pro/internal/application/dto"
	"github.com/tu-usuario/clientes-pro/internal/domain"
	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
	"github.com/tu-usuario/clientes-pro/internal/domain/importer"
	"github.com/tu-usuario/clientes-pro/internal/domain/repository"
)

// ClientUseCase operaciones del padrón fuera de la importación masiva:
// CRUD sobre el slot y estadísticas. Toda modificación es un ciclo
// leer-modificar-escribir bajo el mismo runner que usa la importación.
type ClientUseCase struct {
	store repository.ClientStore
	tx    repository.ClientTxRunner
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(store repository.ClientStore, tx repository.ClientTxRunner) *ClientUseCase {
	return &ClientUseCase{store: store, tx: tx}
}

// List lista clientes con paginación.
func (uc *ClientUseCase) List(ctx context.Context, limit, offset int) (*dto.ClientListResponse, error) {
	clients, err := uc.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	total := len(clients)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	items := make([]dto.ClientResponse, 0, end-offset)
	for _, c := range clients[offset:end] {
		items = append(items, dto.ToClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// GetByID obtiene un cliente por ID (nil si no existe).
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	clients, err := uc.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		if c.ID == id {
			resp := dto.ToClientResponse(c)
			return &resp, nil
		}
	}
	return nil, nil
}

// Create da de alta un cliente con el siguiente id monotónico. Aplica las
// mismas reglas estructurales que la importación: nombre y cédula
// obligatorios, tipo de persona Física/Jurídica, teléfono de 8 dígitos o vacío.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	candidate := entity.Client{
		FullName:         strings.TrimSpace(in.FullName),
		NationalID:       strings.TrimSpace(in.NationalID),
		PersonType:       strings.TrimSpace(in.PersonType),
		Representative:   in.Representative,
		Phone:            in.Phone,
		TaxIDType:        in.TaxIDType,
		AccountExecutive: in.AccountExecutive,
		IsTrademarked:    in.IsTrademarked,
		PaymentPending:   in.PaymentPending,
		TaxRegime:        in.TaxRegime,
	}
	if candidate.PersonType == "" {
		candidate.PersonType = entity.PersonTypeFisica
	}
	candidate.Phone, _ = importer.NormalizePhone(candidate.Phone)
	if len(importer.Validate(candidate, 1)) > 0 {
		return nil, domain.ErrInvalidInput
	}

	var created entity.Client
	err := uc.tx.RunClients(ctx, func(store repository.ClientStore) error {
		clients, err := store.ReadAll(ctx)
		if err != nil {
			return err
		}
		var maxID int64
		for _, c := range clients {
			if c.NationalID == candidate.NationalID {
				return domain.ErrDuplicate
			}
			if c.ID > maxID {
				maxID = c.ID
			}
		}
		candidate.ID = maxID + 1
		candidate.CreatedAt = time.Now()
		created = candidate
		return store.WriteAll(ctx, append(clients, candidate))
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToClientResponse(created)
	return &resp, nil
}

// Update actualiza campos de un cliente. Cédula, id y fecha de creación no
// cambian por esta vía.
func (uc *ClientUseCase) Update(ctx context.Context, id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	var updated *entity.Client
	err := uc.tx.RunClients(ctx, func(store repository.ClientStore) error {
		clients, err := store.ReadAll(ctx)
		if err != nil {
			return err
		}
		for i := range clients {
			if clients[i].ID != id {
				continue
			}
			c := &clients[i]
			if in.FullName != nil {
				if strings.TrimSpace(*in.FullName) == "" {
					return domain.ErrInvalidInput
				}
				c.FullName = strings.TrimSpace(*in.FullName)
			}
			if in.PersonType != nil {
				if !entity.ValidPersonType(*in.PersonType) {
					return domain.ErrInvalidInput
				}
				c.PersonType = *in.PersonType
			}
			if in.Representative != nil {
				c.Representative = *in.Representative
			}
			if in.Phone != nil {
				c.Phone, _ = importer.NormalizePhone(*in.Phone)
			}
			if in.TaxIDType != nil {
				c.TaxIDType = *in.TaxIDType
			}
			if in.AccountExecutive != nil {
				c.AccountExecutive = *in.AccountExecutive
			}
			if in.IsTrademarked != nil {
				c.IsTrademarked = *in.IsTrademarked
			}
			if in.PaymentPending != nil {
				c.PaymentPending = *in.PaymentPending
			}
			if in.TaxRegime != nil {
				c.TaxRegime = *in.TaxRegime
			}
			updated = c
			return store.WriteAll(ctx, clients)
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToClientResponse(*updated)
	return &resp, nil
}

// Delete elimina un cliente por ID. El id no se reutiliza: los nuevos
// siempre salen del máximo corriente.
func (uc *ClientUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.RunClients(ctx, func(store repository.ClientStore) error {
		clients, err := store.ReadAll(ctx)
		if err != nil {
			return err
		}
		for i := range clients {
			if clients[i].ID == id {
				return store.WriteAll(ctx, append(clients[:i], clients[i+1:]...))
			}
		}
		return domain.ErrNotFound
	})
}

// Stats calcula las estadísticas del padrón actual.
func (uc *ClientUseCase) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	clients, err := uc.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	s := importer.Summarize(clients)
	return &dto.StatsResponse{
		Total:            s.Total,
		Phone:            dto.FieldStatDTO{Count: s.Phone.Count, Percent: s.Phone.Percent},
		Representative:   dto.FieldStatDTO{Count: s.Representative.Count, Percent: s.Representative.Percent},
		TaxIDType:        dto.FieldStatDTO{Count: s.TaxIDType.Count, Percent: s.TaxIDType.Percent},
		AccountExecutive: dto.FieldStatDTO{Count: s.AccountExecutive.Count, Percent: s.AccountExecutive.Percent},
		TaxRegime:        dto.FieldStatDTO{Count: s.TaxRegime.Count, Percent: s.TaxRegime.Percent},
		Fisica:           s.Fisica,
		Juridica:         s.Juridica,
		Trademarked:      s.Trademarked,
		PaymentPending:   s.PaymentPending,
		DistinctPhones:   s.DistinctPhones,
		DuplicatePhones:  s.DuplicatePhones,
	}, nil
}
