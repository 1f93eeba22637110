package invoicing

import (
	"context"

	"github.com/google/uuid"
)

// ClientRepository defines persistence operations for clients.
// Every query is scoped to the owning user.
type ClientRepository interface {
	Create(ctx context.Context, client *Client) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*Client, error)
	List(ctx context.Context, userID uuid.UUID) ([]*Client, error)
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// InvoiceRepository defines persistence operations for invoices.
// Line items travel with their invoice; updates replace the item set
// wholesale. Every query is scoped to the owning user.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *Invoice) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*Invoice, error)
	List(ctx context.Context, userID uuid.UUID, status *InvoiceStatus) ([]*Invoice, error)
	Update(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	// CountByClient reports how many invoices reference the given client.
	// Used as the referential guard before a client may be deleted.
	CountByClient(ctx context.Context, userID, clientID uuid.UUID) (int64, error)
}
