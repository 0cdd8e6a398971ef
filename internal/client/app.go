package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/MKhiriev/go-marketplace/internal/adapter"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/models"
	"github.com/google/uuid"
)

var (
	errNoCommand      = errors.New("no command given")
	errUnknownCommand = errors.New("unknown command")
)

type command func(ctx context.Context, fs *flag.FlagSet, args []string) (any, error)

type App struct {
	api    adapter.MarketplaceAPI
	out    io.Writer
	logger *logger.Logger

	commands map[string]command
}

func NewApp(api adapter.MarketplaceAPI, out io.Writer, logger *logger.Logger) *App {
	a := &App{api: api, out: out, logger: logger}
	a.commands = map[string]command{
		"version":          a.version,
		"register":         a.register,
		"login":            a.login,
		"me":               a.me,
		"change-password":  a.changePassword,
		"forgot-password":  a.forgotPassword,
		"reset-password":   a.resetPassword,
		"create-category":  a.createCategory,
		"create-attribute": a.createAttribute,
	}
	return a
}

// Commands lists the supported command names in alphabetical order.
func (a *App) Commands() []string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w, expected one of: %s", errNoCommand, strings.Join(a.Commands(), ", "))
	}

	name := args[0]
	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w %q", errUnknownCommand, name)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)

	a.logger.Debug().Str("command", name).Msg("running command")
	result, err := cmd(ctx, fs, args[1:])
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return a.print(result)
}

func (a *App) print(v any) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(a.out, s)
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) version(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return a.api.Version(ctx)
}

func (a *App) register(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	var req models.RegisterRequest
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	fs.StringVar(&req.FirstName, "first-name", "", "first name")
	fs.StringVar(&req.LastName, "last-name", "", "last name")
	fs.StringVar(&req.Role, "role", "CUSTOMER", "SELLER or CUSTOMER")
	company := fs.String("company", "", "company name (sellers)")
	street := fs.String("street", "", "street address (sellers)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	req.CompanyName = optional(*company)
	req.StreetAddress = optional(*street)

	return a.api.Register(ctx, req)
}

func (a *App) login(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	var req models.LoginRequest
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return a.api.Login(ctx, req)
}

func (a *App) me(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return a.api.Me(ctx)
}

func (a *App) changePassword(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	var req models.ChangePasswordRequest
	fs.StringVar(&req.CurrentPassword, "current", "", "current password")
	fs.StringVar(&req.NewPassword, "new", "", "new password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := a.api.ChangePassword(ctx, req); err != nil {
		return nil, err
	}
	return "password changed", nil
}

func (a *App) forgotPassword(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	var req models.ForgotPasswordRequest
	fs.StringVar(&req.Email, "email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := a.api.ForgotPassword(ctx, req); err != nil {
		return nil, err
	}
	return "reset requested", nil
}

func (a *App) resetPassword(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	var req models.ResetPasswordRequest
	fs.StringVar(&req.Token, "token", "", "reset token from the email link")
	fs.StringVar(&req.Password, "password", "", "new password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	req.ConfirmPassword = req.Password

	if err := a.api.ResetPassword(ctx, req); err != nil {
		return nil, err
	}
	return "password reset", nil
}

func (a *App) createCategory(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	var req models.CreateCategoryRequest
	fs.StringVar(&req.Name, "name", "", "category name")
	slug := fs.String("slug", "", "url slug, derived from the name when empty")
	parent := fs.String("parent", "", "parent category id")
	description := fs.String("description", "", "category description")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	req.Slug = optional(*slug)
	if *parent != "" {
		req.ParentID = models.Of(*parent)
	}
	if *description != "" {
		req.Description = models.Of(*description)
	}

	return a.api.CreateCategory(ctx, req)
}

func (a *App) createAttribute(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	var req models.CreateAttributeRequest
	fs.StringVar(&req.Name, "name", "", "attribute name")
	fs.StringVar(&req.Type, "type", models.AttributeTypeText, "TEXT, NUMBER, BOOLEAN, SELECT or MULTISELECT")
	category := fs.String("category", "", "category id")
	options := fs.String("options", "", "comma separated options for SELECT and MULTISELECT")
	required := fs.Bool("required", false, "attribute is required")
	filterable := fs.Bool("filterable", false, "attribute is filterable")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(*category)
	if err != nil {
		return nil, fmt.Errorf("invalid -category: %w", err)
	}
	req.CategoryID = categoryID.String()
	req.IsRequired = required
	req.IsFilterable = filterable
	if *options != "" {
		for _, opt := range strings.Split(*options, ",") {
			req.Options = append(req.Options, strings.TrimSpace(opt))
		}
	}

	return a.api.CreateAttribute(ctx, req)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
