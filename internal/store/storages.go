package store

import "github.com/MKhiriev/go-marketplace/internal/logger"

// Storages groups the repositories the services depend on.
type Storages struct {
	UserRepository      UserRepository
	CategoryRepository  CategoryRepository
	AttributeRepository AttributeRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		CategoryRepository:  NewCategoryRepository(db, log),
		AttributeRepository: NewAttributeRepository(db, log),
	}
}
