package service

import (
	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/internal/utils"
)

type Services struct {
	TokenService     TokenService
	IdentityResolver IdentityResolver
	AuthService      AuthService
	UserService      UserService
	CategoryService  CategoryService
	AttributeService AttributeService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	resolver, err := NewIdentityResolver(storages.UserRepository, cfg, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()
	tokenService := NewTokenService(cfg, logger)

	return &Services{
		TokenService:     tokenService,
		IdentityResolver: resolver,
		AuthService:      NewAuthService(storages.UserRepository, tokenService, NewLogResetNotifier(logger), ids, cfg, logger),
		UserService:      NewUserService(storages.UserRepository, ids, logger),
		CategoryService:  NewCategoryService(storages.CategoryRepository, ids, logger),
		AttributeService: NewAttributeService(storages.AttributeRepository, ids, logger),
		AppInfoService:   appInfoService,
	}, nil
}
