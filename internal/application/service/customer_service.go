package service

import (
	"context"
	"strings"

	"github.com/totalpharma/pdv-api/internal/domain/entity"
	"github.com/totalpharma/pdv-api/internal/domain/repository"
	"github.com/totalpharma/pdv-api/pkg/apperror"
	"github.com/totalpharma/pdv-api/pkg/messaging"
	"github.com/totalpharma/pdv-api/pkg/pagination"
	"github.com/totalpharma/pdv-api/pkg/phone"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, settingsRepo repository.SettingsRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, settingsRepo: settingsRepo}
}

func (s *CustomerService) defaultAreaCode(ctx context.Context) string {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil || settings == nil {
		return "11"
	}
	return settings.DefaultAreaCode
}

// LookupCustomer finds a customer by any phone spelling. The raw input is
// normalized before lookup, so "(11) 98765-4321" and "11987654321" hit
// the same record. Returns nil without error when unknown, so the counter
// form can fall through to a blank registration.
func (s *CustomerService) LookupCustomer(ctx context.Context, rawPhone string) (*entity.Customer, error) {
	canonical := phone.Normalize(rawPhone, s.defaultAreaCode(ctx))
	if canonical == "" {
		return nil, apperror.NewBadRequestError("Phone is required")
	}
	return s.customerRepo.GetByPhone(ctx, canonical)
}

// GetCustomer retrieves a customer by phone, erroring when unknown.
func (s *CustomerService) GetCustomer(ctx context.Context, rawPhone string) (*entity.Customer, error) {
	customer, err := s.LookupCustomer(ctx, rawPhone)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with pagination and search.
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	Phone        string
	Name         *string
	Street       *string
	Number       *string
	Neighborhood *string
	Reference    *string
}

// UpdateCustomer updates a customer's registration data.
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, input.Phone)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperror.NewBadRequestError("Name cannot be empty")
		}
		customer.Name = strings.TrimSpace(*input.Name)
	}
	if input.Street != nil {
		customer.Street = strings.TrimSpace(*input.Street)
	}
	if input.Number != nil {
		customer.Number = strings.TrimSpace(*input.Number)
	}
	if input.Neighborhood != nil {
		customer.Neighborhood = strings.TrimSpace(*input.Neighborhood)
	}
	if input.Reference != nil {
		customer.Reference = strings.TrimSpace(*input.Reference)
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetAddressHistory returns a customer's past delivery addresses, most
// recent first.
func (s *CustomerService) GetAddressHistory(ctx context.Context, rawPhone string, limit int) ([]entity.AddressHistoryEntry, error) {
	customer, err := s.GetCustomer(ctx, rawPhone)
	if err != nil {
		return nil, err
	}
	return s.customerRepo.ListAddressHistory(ctx, customer.Phone, limit)
}

// ReminderMessage builds the WhatsApp nudge text for a customer and
// medication, ready for the attendant to copy or open in a chat link.
func (s *CustomerService) ReminderMessage(ctx context.Context, rawPhone, medication string) (string, error) {
	customer, err := s.GetCustomer(ctx, rawPhone)
	if err != nil {
		return "", err
	}
	return messaging.ReminderText(messaging.ReminderInfo{
		Name:       customer.Name,
		Phone:      customer.Phone,
		Medication: medication,
	}), nil
}
