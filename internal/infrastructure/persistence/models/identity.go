package models

import (
	"github.com/invoicegen/backend/internal/domain/identity"
)

// UserModel is the persistence model for identity.User
type UserModel struct {
	AggregateModel
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to a domain user
func (m *UserModel) ToDomain() *identity.User {
	user := &identity.User{
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
	}
	m.PopulateAggregateRoot(&user.BaseAggregateRoot)
	return user
}

// UserModelFromDomain converts a domain user to its persistence model
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	return m
}
