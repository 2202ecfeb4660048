package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/totalpharma/pdv-api/internal/domain/entity"
	infra "github.com/totalpharma/pdv-api/internal/infrastructure/repository"
	"github.com/totalpharma/pdv-api/pkg/apperror"
	"github.com/totalpharma/pdv-api/pkg/pagination"
	"gorm.io/gorm"
)

func newCustomerService(db *gorm.DB) *CustomerService {
	return NewCustomerService(infra.NewCustomerRepository(db), infra.NewSettingsRepository(db))
}

func seedCustomer(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&entity.Customer{
		Phone:        "11987654321",
		Name:         "Maria Souza",
		Street:       "Rua das Flores",
		Number:       "100",
		Neighborhood: "Centro",
	}).Error)
}

func TestLookupCustomerNormalizesPhone(t *testing.T) {
	db := newTestDB(t)
	svc := newCustomerService(db)
	seedCustomer(t, db)
	ctx := context.Background()

	// Every spelling of the same number hits the same record
	for _, raw := range []string{"11987654321", "(11) 98765-4321", "98765-4321"} {
		customer, err := svc.LookupCustomer(ctx, raw)
		require.NoError(t, err, "raw input %q", raw)
		require.NotNil(t, customer, "raw input %q", raw)
		assert.Equal(t, "Maria Souza", customer.Name)
	}
}

func TestLookupUnknownCustomerReturnsNil(t *testing.T) {
	db := newTestDB(t)
	svc := newCustomerService(db)

	customer, err := svc.LookupCustomer(context.Background(), "11900000000")
	require.NoError(t, err)
	assert.Nil(t, customer)
}

func TestLookupCustomerRequiresPhone(t *testing.T) {
	db := newTestDB(t)
	svc := newCustomerService(db)

	_, err := svc.LookupCustomer(context.Background(), "abc")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestGetCustomerNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCustomerService(db)

	_, err := svc.GetCustomer(context.Background(), "11900000000")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestListCustomersSearch(t *testing.T) {
	db := newTestDB(t)
	svc := newCustomerService(db)
	seedCustomer(t, db)
	require.NoError(t, db.Create(&entity.Customer{Phone: "11911112222", Name: "Carlos Lima"}).Error)

	params := &pagination.PaginationParams{Page: 1, PerPage: 15}
	result, err := svc.ListCustomers(context.Background(), params, "maria")
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Maria Souza", result.Items[0].Name)
}

func TestUpdateCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := newCustomerService(db)
	seedCustomer(t, db)
	ctx := context.Background()

	newStreet := "Av. Brasil"
	updated, err := svc.UpdateCustomer(ctx, &UpdateCustomerInput{
		Phone:  "(11) 98765-4321",
		Street: &newStreet,
	})
	require.NoError(t, err)
	assert.Equal(t, "Av. Brasil", updated.Street)
	// Untouched fields stay put
	assert.Equal(t, "Maria Souza", updated.Name)

	blank := "   "
	_, err = svc.UpdateCustomer(ctx, &UpdateCustomerInput{Phone: "11987654321", Name: &blank})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCustomerReminderMessage(t *testing.T) {
	db := newTestDB(t)
	svc := newCustomerService(db)
	seedCustomer(t, db)

	msg, err := svc.ReminderMessage(context.Background(), "98765-4321", "Losartana 50mg")
	require.NoError(t, err)
	assert.Contains(t, msg, "Maria Souza")
	assert.Contains(t, msg, "Losartana 50mg")
}
