package service

import (
	"time"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/google/uuid"
)

var (
	testUserID     = uuid.MustParse("0195f7a0-3c1e-7c3b-9d7e-2b1f4a6c8d90")
	testCategoryID = uuid.MustParse("0195f7a0-3c1e-7c3b-9d7e-2b1f4a6c8d91")
	testNewID      = uuid.MustParse("0195f7a0-3c1e-7c3b-9d7e-2b1f4a6c8d92")
)

// fixedIDs always hands out the same identifier.
type fixedIDs struct {
	id uuid.UUID
}

func (g fixedIDs) Generate() uuid.UUID {
	return g.id
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:       "test-sign-key",
		TokenIssuer:        "test-issuer",
		TokenDuration:      time.Hour,
		IdentityMode:       config.IdentityModeStore,
		PasswordHashKey:    "test-hash-key",
		ResetTokenDuration: 15 * time.Minute,
		ResetURL:           "https://shop.example/reset",
		Version:            "test",
	}
}

func strPtr(s string) *string {
	return &s
}
