package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/totalpharma/pdv-api/internal/domain/repository"
	infra "github.com/totalpharma/pdv-api/internal/infrastructure/repository"
	"github.com/totalpharma/pdv-api/pkg/apperror"
	"github.com/totalpharma/pdv-api/pkg/pagination"
	"github.com/xuri/excelize/v2"
)

func TestListOrdersFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(infra.NewOrderRepository(db))
	ctx := context.Background()

	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	otherDay := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	seedOrder(t, db, "20240105-0001", day, "Joao", "Dinheiro", 5000, 500)
	seedOrder(t, db, "20240105-0002", day, "Pedro", "Pix", 3000, 500)
	seedOrder(t, db, "20240106-0001", otherDay, "Joao", "Pix", 9000, 500)

	t.Run("by courier", func(t *testing.T) {
		result, err := svc.ListOrders(ctx, &repository.OrderFilterParams{
			Pagination: &pagination.PaginationParams{Page: 1, PerPage: 15},
			Courier:    "Joao",
		})
		require.NoError(t, err)
		assert.Len(t, result.Items, 2)
	})

	t.Run("by date window", func(t *testing.T) {
		result, err := svc.ListOrders(ctx, &repository.OrderFilterParams{
			Pagination: &pagination.PaginationParams{Page: 1, PerPage: 15},
			StartDate:  &day,
			EndDate:    &day,
		})
		require.NoError(t, err)
		assert.Len(t, result.Items, 2)
	})
}

func TestGetOrderByReceiptNo(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(infra.NewOrderRepository(db))
	ctx := context.Background()

	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	seedOrder(t, db, "20240105-0001", day, "Joao", "Dinheiro", 5000, 500)

	order, err := svc.GetOrderByReceiptNo(ctx, "20240105-0001")
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", order.CustomerName)

	_, err = svc.GetOrderByReceiptNo(ctx, "does-not-exist")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestExportDay(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(infra.NewOrderRepository(db))

	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	seedOrder(t, db, "20240105-0001", day, "Joao", "Dinheiro", 5000, 500)
	seedOrder(t, db, "20240105-0002", day, "Pedro", "Pix", 3000, 500)

	data, filename, err := svc.ExportDay(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, "pedidos_2024-01-05.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Pedidos", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Pedido", header)

	receiptNo, err := f.GetCellValue("Pedidos", "A2")
	require.NoError(t, err)
	assert.Equal(t, "20240105-0001", receiptNo)

	rows, err := f.GetRows("Pedidos")
	require.NoError(t, err)
	assert.Len(t, rows, 3) // header + two orders
}
