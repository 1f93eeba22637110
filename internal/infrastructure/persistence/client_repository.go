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

// GormClientRepository implements invoicing.ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// Create inserts a new client
func (r *GormClientRepository) Create(ctx context.Context, client *invoicing.Client) error {
	model := models.ClientModelFromDomain(client)
	return r.db.WithContext(ctx).Create(model).Error
}

// GetByID finds a client by ID within the owning user's scope
func (r *GormClientRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*invoicing.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns all clients owned by the user, newest first
func (r *GormClientRepository) List(ctx context.Context, userID uuid.UUID) ([]*invoicing.Client, error) {
	var clientModels []models.ClientModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]*invoicing.Client, len(clientModels))
	for i := range clientModels {
		clients[i] = clientModels[i].ToDomain()
	}
	return clients, nil
}

// Update saves a modified client
func (r *GormClientRepository) Update(ctx context.Context, client *invoicing.Client) error {
	model := models.ClientModelFromDomain(client)
	result := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("user_id = ? AND id = ?", client.UserID, client.ID).
		Select("*").Omit("id", "user_id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a client within the owning user's scope
func (r *GormClientRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.ClientModel{}, "user_id = ? AND id = ?", userID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormClientRepository implements ClientRepository
var _ invoicing.ClientRepository = (*GormClientRepository)(nil)
