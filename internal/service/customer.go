package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mbasit/teller-ledger/internal/access"
	"github.com/mbasit/teller-ledger/internal/idgen"
	"github.com/mbasit/teller-ledger/internal/models"
	"github.com/mbasit/teller-ledger/internal/store"
)

// CustomerService handles customer registration, profiles, and login
// principals.
type CustomerService struct {
	store  *store.Store
	ids    *idgen.Sequence
	logger *zap.Logger
}

// creates a new CustomerService
func NewCustomerService(st *store.Store, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		store:  st,
		ids:    idgen.NewCustomerSequence(),
		logger: logger,
	}
}

// Register creates a new customer with the given display name. Admin only.
func (s *CustomerService) Register(ctx context.Context, actor models.Actor, name string) (*models.Customer, error) {
	if !access.HasCapability(actor, access.ActionRegisterUser) {
		return nil, fmt.Errorf("register customer: %w", models.ErrAccessDenied)
	}
	customer, err := models.NewCustomer(s.ids.Next(), name)
	if err != nil {
		return nil, fmt.Errorf("register customer: %w", err)
	}
	s.store.AddCustomer(customer)

	s.logger.Info("customer registered",
		zap.String("customer_id", customer.ID),
		zap.String("name", customer.Name))
	return customer, nil
}

// Customer retrieves a customer by id after a format check.
func (s *CustomerService) Customer(ctx context.Context, id string) (*models.Customer, error) {
	if !idgen.ValidCustomerID(id) {
		return nil, fmt.Errorf("customer id %q: %w", id, models.ErrMalformedID)
	}
	return s.store.Customer(id)
}

// AttachProfile sets a customer's contact profile. Admins may set any
// profile; a restricted actor only their own.
func (s *CustomerService) AttachProfile(ctx context.Context, actor models.Actor, customerID, email, phone string) error {
	if !actor.Unrestricted() && actor.CustomerID != customerID {
		return fmt.Errorf("attach profile: %w", models.ErrAccessDenied)
	}
	customer, err := s.Customer(ctx, customerID)
	if err != nil {
		return fmt.Errorf("attach profile: %w", err)
	}
	customer.SetProfile(&models.Profile{Email: email, Phone: phone})

	s.logger.Info("profile attached", zap.String("customer_id", customerID))
	return nil
}

// CreateLogin issues a restricted login principal bound to a customer.
// Admin only.
func (s *CustomerService) CreateLogin(ctx context.Context, actor models.Actor, name, credential, customerID string) (*models.Principal, error) {
	if !access.HasCapability(actor, access.ActionRegisterUser) {
		return nil, fmt.Errorf("create login: %w", models.ErrAccessDenied)
	}
	if _, err := s.Customer(ctx, customerID); err != nil {
		return nil, fmt.Errorf("create login: %w", err)
	}
	principal := models.NewPrincipal(name, credential, models.CustomerActor(customerID))
	if err := s.store.AddPrincipal(principal); err != nil {
		return nil, fmt.Errorf("create login: %w", err)
	}

	s.logger.Info("login created",
		zap.String("name", name),
		zap.String("customer_id", customerID))
	return principal, nil
}

// ChangeCredential swaps the stored principal for one carrying the new
// credential. Admins may change any credential; a restricted actor only
// that of a login bound to their own customer id. The previous principal
// value is never mutated.
func (s *CustomerService) ChangeCredential(ctx context.Context, actor models.Actor, name, credential string) error {
	current, err := s.store.Principal(name)
	if err != nil {
		return fmt.Errorf("change credential: %w", err)
	}
	if !actor.Unrestricted() && current.Actor.CustomerID != actor.CustomerID {
		return fmt.Errorf("change credential: %w", models.ErrAccessDenied)
	}
	if _, err := s.store.ReplaceCredential(name, credential); err != nil {
		return fmt.Errorf("change credential: %w", err)
	}

	s.logger.Info("credential changed", zap.String("name", name))
	return nil
}

// Authenticate resolves a login to its actor. Used by the menu layer as the
// actor-resolution service.
func (s *CustomerService) Authenticate(ctx context.Context, name, credential string) (models.Actor, error) {
	principal, err := s.store.Principal(name)
	if err != nil {
		return models.Actor{}, fmt.Errorf("authenticate: %w", err)
	}
	if principal.Credential != credential {
		return models.Actor{}, fmt.Errorf("authenticate %s: %w", name, models.ErrAccessDenied)
	}
	return principal.Actor, nil
}
