package service

import (
	"context"

	"jobconnect-backend/internal/repository"
	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
	"jobconnect-backend/pkg/security"
)

// ClientService - response shaping and domain rules for clients.
type ClientService struct {
	repo   *repository.ClientRepo
	hasher *security.Hasher
}

func NewClientService(repo *repository.ClientRepo, hasher *security.Hasher) *ClientService {
	return &ClientService{repo: repo, hasher: hasher}
}

func toClientResponse(c *models.ClientInDB) models.ClientResponse {
	return models.ClientResponse{
		ClientID:     c.ClientID,
		Name:         c.Name,
		Surname:      c.Surname,
		Email:        c.Email,
		PhoneNumber:  c.PhoneNumber,
		LocationName: c.LocationName,
		Latitude:     c.Latitude,
		Longitude:    c.Longitude,
		IsActive:     c.IsActive,
		LastLogin:    c.LastLogin,
		CreatedAt:    c.CreatedAt,
	}
}

func (s *ClientService) GetAll(ctx context.Context) ([]models.ClientResponse, error) {
	clients, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]models.ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, toClientResponse(&clients[i]))
	}
	return responses, nil
}

func (s *ClientService) GetByID(ctx context.Context, clientID string) (*models.ClientResponse, error) {
	c, err := s.repo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NewNotFound("Client not found")
	}
	resp := toClientResponse(c)
	return &resp, nil
}

func (s *ClientService) GetByEmail(ctx context.Context, email string) (*models.ClientResponse, error) {
	c, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NewNotFound("Client not found")
	}
	resp := toClientResponse(c)
	return &resp, nil
}

func (s *ClientService) Create(ctx context.Context, data models.ClientCreate) (*models.ClientResponse, error) {
	c, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, convertRepoErr(err, "Client")
	}
	resp := toClientResponse(c)
	return &resp, nil
}

func (s *ClientService) Update(ctx context.Context, clientID string, data models.ClientUpdate) (*models.ClientResponse, error) {
	c, err := s.repo.Update(ctx, clientID, data)
	if err != nil {
		return nil, convertRepoErr(err, "Client")
	}
	if c == nil {
		return nil, apperror.NewNotFound("Client not found")
	}
	resp := toClientResponse(c)
	return &resp, nil
}

func (s *ClientService) Delete(ctx context.Context, clientID string) error {
	if err := s.repo.Delete(ctx, clientID); err != nil {
		return convertRepoErr(err, "Client")
	}
	return nil
}

func (s *ClientService) Deactivate(ctx context.Context, clientID string) error {
	if err := s.repo.Deactivate(ctx, clientID); err != nil {
		return convertRepoErr(err, "Client")
	}
	return nil
}

// Authenticate - credential check only; no session or token is issued.
func (s *ClientService) Authenticate(ctx context.Context, email, password string) (*models.ClientResponse, error) {
	c, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if c == nil || !s.hasher.Verify(password, c.PasswordHash) {
		return nil, apperror.NewInvalidCredentials()
	}
	if !c.IsActive {
		return nil, apperror.NewAccountLocked()
	}
	if err := s.repo.UpdateLastLogin(ctx, c.ClientID); err != nil {
		return nil, err
	}
	resp := toClientResponse(c)
	return &resp, nil
}
