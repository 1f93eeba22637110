package invoicing

import (
	"context"

	"github.com/google/uuid"

	"github.com/invoicegen/backend/internal/domain/invoicing"
	"github.com/invoicegen/backend/internal/domain/shared"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo  invoicing.ClientRepository
	invoiceRepo invoicing.InvoiceRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo invoicing.ClientRepository, invoiceRepo invoicing.InvoiceRepository) *ClientService {
	return &ClientService{
		clientRepo:  clientRepo,
		invoiceRepo: invoiceRepo,
	}
}

// Create creates a new client for the user
func (s *ClientService) Create(ctx context.Context, userID uuid.UUID, req CreateClientRequest) (*ClientResponse, error) {
	client, err := invoicing.NewClient(userID, req.Name, req.Email,
		req.Street, req.City, req.State, req.ZipCode, req.Country, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	resp := ToClientResponse(client)
	return &resp, nil
}

// List returns all clients owned by the user
func (s *ClientService) List(ctx context.Context, userID uuid.UUID) ([]ClientResponse, error) {
	clients, err := s.clientRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToClientResponses(clients), nil
}

// Get returns a single client by ID
func (s *ClientService) Get(ctx context.Context, userID, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := ToClientResponse(client)
	return &resp, nil
}

// Update applies a partial update to a client
func (s *ClientService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	upd := invoicing.ClientUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Country: req.Country,
		Phone:   req.Phone,
	}
	if upd.Empty() {
		return nil, shared.NewValidationError("No fields to update")
	}

	client, err := s.clientRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := client.Update(upd); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	resp := ToClientResponse(client)
	return &resp, nil
}

// Delete removes a client. Deletion is blocked while any invoice still
// references the client.
func (s *ClientService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.clientRepo.GetByID(ctx, userID, id); err != nil {
		return err
	}

	count, err := s.invoiceRepo.CountByClient(ctx, userID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError(shared.ErrCodeReferentialIntegrity,
			"Cannot delete client with existing invoices")
	}

	return s.clientRepo.Delete(ctx, userID, id)
}
