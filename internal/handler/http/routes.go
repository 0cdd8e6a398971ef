package http

import (
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/access"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/internal/validators"
	"github.com/MKhiriev/go-marketplace/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// route policies
var (
	anyRole        = access.AllRoles()
	adminOnly      = access.BuildAccessGate(models.RoleSuperAdmin)
	catalogEditors = access.BuildAccessGate(models.RoleSuperAdmin, models.RoleSeller)
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	if len(h.cfg.CORSAllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
			ExposedHeaders: []string{"Authorization", traceIDHeader},
			MaxAge:         300,
		}))
	}

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Route("/auth", func(r chi.Router) {
			r.With(h.validate(validators.SchemaAuthRegister)).Post("/register", h.register)
			r.With(h.validate(validators.SchemaAuthLogin)).Post("/login", h.login)
			r.With(h.validate(validators.SchemaAuthForgotPassword)).Post("/forgot-password", h.forgotPassword)
			r.With(h.validate(validators.SchemaAuthResetPassword)).Post("/reset-password", h.resetPassword)
		})
		r.Get("/version/", h.getServerVersion)

		r.Route("/users", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(h.authenticate, h.authorize(anyRole))

				r.Get("/me", h.getMe)
				r.With(h.validate(validators.SchemaUserProfileUpdate)).Patch("/me", h.updateMe)
				r.With(h.validate(validators.SchemaUserChangePassword)).Put("/me/password", h.changeMyPassword)
			})
			r.Group(func(r chi.Router) {
				r.Use(h.authenticate, h.authorize(adminOnly))

				r.With(h.validate(validators.SchemaUserCreate)).Post("/", h.createUser)
				r.With(h.validate(validators.SchemaUserUpdate)).Patch("/{userID}", h.updateUser)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(h.authenticate, h.authorize(catalogEditors))

				r.With(h.validate(validators.SchemaCategoryCreate)).Post("/", h.createCategory)
				r.With(h.validate(validators.SchemaCategoryUpdate)).Patch("/{categoryID}", h.updateCategory)
			})
		})

		r.Route("/attributes", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(h.authenticate, h.authorize(catalogEditors))

				r.With(h.validate(validators.SchemaAttributeCreate)).Post("/", h.createAttribute)
				r.With(h.validate(validators.SchemaAttributeUpdate)).Patch("/{attributeID}", h.updateAttribute)
			})
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, "Not found", http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
