package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/invoicegen/backend/internal/domain/invoicing"
	"github.com/invoicegen/backend/internal/domain/shared"
	"github.com/invoicegen/backend/internal/infrastructure/persistence/models"
)

// GormInvoiceRepository implements invoicing.InvoiceRepository using GORM.
// Line items travel with their invoice: they are inserted on create,
// replaced wholesale on update, and removed by cascade on delete.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Create inserts a new invoice together with its line items
func (r *GormInvoiceRepository) Create(ctx context.Context, invoice *invoicing.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	return r.db.WithContext(ctx).Create(model).Error
}

// GetByID finds an invoice by ID within the owning user's scope.
// Line items are loaded in their original insertion order.
func (r *GormInvoiceRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*invoicing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_items.position ASC")
		}).
		Where("user_id = ? AND id = ?", userID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns invoices owned by the user, optionally filtered by status,
// newest first
func (r *GormInvoiceRepository) List(ctx context.Context, userID uuid.UUID, status *invoicing.InvoiceStatus) ([]*invoicing.Invoice, error) {
	query := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_items.position ASC")
		}).
		Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", status.String())
	}

	var invoiceModels []models.InvoiceModel
	if err := query.Order("created_at DESC").Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]*invoicing.Invoice, len(invoiceModels))
	for i := range invoiceModels {
		invoices[i] = invoiceModels[i].ToDomain()
	}
	return invoices, nil
}

// Update saves a modified invoice. The stored line items are replaced
// wholesale with the aggregate's current set inside one transaction.
func (r *GormInvoiceRepository) Update(ctx context.Context, invoice *invoicing.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.InvoiceModel{}).
			Where("user_id = ? AND id = ?", invoice.UserID, invoice.ID).
			Select("*").Omit("id", "user_id", "created_at", "LineItems").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		if err := tx.Delete(&models.LineItemModel{}, "invoice_id = ?", invoice.ID).Error; err != nil {
			return err
		}
		if len(model.LineItems) > 0 {
			if err := tx.Create(&model.LineItems).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes an invoice within the owning user's scope.
// Line items are removed in the same transaction.
func (r *GormInvoiceRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.InvoiceModel{}, "user_id = ? AND id = ?", userID, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Delete(&models.LineItemModel{}, "invoice_id = ?", id).Error
	})
}

// CountByClient reports how many invoices reference the given client
func (r *GormInvoiceRepository) CountByClient(ctx context.Context, userID, clientID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("user_id = ? AND client_id = ?", userID, clientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ invoicing.InvoiceRepository = (*GormInvoiceRepository)(nil)
