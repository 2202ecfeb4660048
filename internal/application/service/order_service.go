package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/totalpharma/pdv-api/internal/domain/entity"
	"github.com/totalpharma/pdv-api/internal/domain/repository"
	"github.com/totalpharma/pdv-api/pkg/apperror"
	"github.com/totalpharma/pdv-api/pkg/pagination"
	"github.com/xuri/excelize/v2"
)

// OrderService handles order queries and export. Orders are written by
// CheckoutService only; this service is read-only.
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// GetOrderByReceiptNo retrieves an order by its receipt number
func (s *OrderService) GetOrderByReceiptNo(ctx context.Context, receiptNo string) (*entity.Order, error) {
	order, err := s.orderRepo.GetByReceiptNo(ctx, receiptNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering and pagination.
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ListCustomerOrders lists a customer's orders, newest first.
func (s *OrderService) ListCustomerOrders(ctx context.Context, phone string, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.ListByCustomer(ctx, phone, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ExportDay renders one day's orders as an XLSX workbook for the closing
// paperwork. Returns the file bytes and a suggested filename.
func (s *OrderService) ExportDay(ctx context.Context, date time.Time) ([]byte, string, error) {
	orders, err := s.orderRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Pedidos"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Pedido", "Data", "Cliente", "Telefone", "Entregador",
		"Produtos", "Taxa", "Total", "Pagamento", "Troco"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, order := range orders {
		change := ""
		if order.CashChange != nil {
			change = order.CashChange.BRL()
		}
		values := []interface{}{
			order.ReceiptNo,
			order.OrderDate.Format("02/01/2006"),
			order.CustomerName,
			order.CustomerPhone,
			order.Courier,
			order.ProductValue.Float64(),
			order.DeliveryFee.Float64(),
			order.Total.Float64(),
			order.PaymentSummary,
			change,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write export workbook: %w", err)
	}

	filename := fmt.Sprintf("pedidos_%s.xlsx", date.Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
