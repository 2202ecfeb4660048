package service

import (
	"context"
	"fmt"
	"log"

	"github.com/totalpharma/pdv-api/internal/domain/entity"
	"github.com/totalpharma/pdv-api/internal/domain/repository"
	"github.com/totalpharma/pdv-api/pkg/apperror"
	"github.com/totalpharma/pdv-api/pkg/money"
	"github.com/totalpharma/pdv-api/pkg/phone"
	"github.com/totalpharma/pdv-api/pkg/printer"
)

// PrinterService handles receipt composition and thermal printing.
type PrinterService struct {
	printer      printer.Printer
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
	printerType  string
	width        int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
	printerType string,
	width int,
) *PrinterService {
	if width != 32 && width != 48 {
		width = 48
	}
	return &PrinterService{
		printer:      p,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		printerType:  printerType,
		width:        width,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
	Width      int    `json:"width"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
		Width:      s.width,
	}
}

// widthFor resolves the receipt width at print time: the runtime setting
// wins over the boot config when it holds a valid column count.
func (s *PrinterService) widthFor(ctx context.Context) int {
	settings, err := s.settingsRepo.Get(ctx)
	if err == nil && settings != nil && (settings.ReceiptWidth == 32 || settings.ReceiptWidth == 48) {
		return settings.ReceiptWidth
	}
	return s.width
}

func (s *PrinterService) header(ctx context.Context) entity.ReceiptHeader {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil || settings == nil {
		return entity.ReceiptHeader{StoreName: "Farmacia"}
	}
	return entity.ReceiptHeader{
		StoreName: settings.StoreName,
		Address:   settings.StoreAddress,
		Phone:     settings.StorePhone,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint(ctx context.Context) (*entity.Receipt, error) {
	tendered := money.FromFloat(50)
	change := money.FromFloat(7.50)
	receipt := &entity.Receipt{
		Header:         s.header(ctx),
		ReceiptNo:      "TEST-001",
		Date:           "01/01/2006 15:04",
		Customer:       "Cliente Teste",
		Phone:          "(11) 98765-4321",
		Address:        "Rua de Teste, 100 - Centro",
		Courier:        "Entregador Teste",
		ProductValue:   money.FromFloat(38),
		DeliveryFee:    money.FromFloat(4.50),
		Total:          money.FromFloat(42.50),
		PaymentSummary: "Dinheiro",
		CashTendered:   &tendered,
		CashChange:     &change,
	}

	data := s.formatReceipt(receipt, s.widthFor(ctx))
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// ComposeOrderReceipt builds the printable receipt for a finalized order.
func (s *PrinterService) ComposeOrderReceipt(ctx context.Context, order *entity.Order) *entity.Receipt {
	receipt := &entity.Receipt{
		Header:         s.header(ctx),
		ReceiptNo:      order.ReceiptNo,
		Date:           order.CreatedAt.Format("02/01/2006 15:04"),
		Customer:       order.CustomerName,
		Phone:          phone.Format(order.CustomerPhone),
		Courier:        order.Courier,
		ProductValue:   order.ProductValue,
		DeliveryFee:    order.DeliveryFee,
		Total:          order.Total,
		PaymentSummary: order.PaymentDetail,
		CashTendered:   order.CashTendered,
		CashChange:     order.CashChange,
	}

	customer, err := s.customerRepo.GetByPhone(ctx, order.CustomerPhone)
	if err == nil && customer != nil {
		receipt.Address = customer.AddressLine()
		if customer.Reference != "" {
			receipt.Address += " (" + customer.Reference + ")"
		}
	}

	return receipt
}

// PrintOrderReceipt fetches an order and prints its delivery receipt.
func (s *PrinterService) PrintOrderReceipt(ctx context.Context, orderID uint) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	receipt := s.ComposeOrderReceipt(ctx, order)

	data := s.formatReceipt(receipt, s.widthFor(ctx))
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (order %d): %v", orderID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// PrintCourierLabel prints the short label taped to the delivery bag:
// courier, customer, address and the amount to collect.
func (s *PrinterService) PrintCourierLabel(ctx context.Context, orderID uint) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	receipt := s.ComposeOrderReceipt(ctx, order)

	doc := printer.NewDocument(s.widthFor(ctx))
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		TextF("ENTREGA %s", receipt.ReceiptNo).
		SetBold(false).
		SetAlign(printer.AlignLeft).
		Separator('-')

	if receipt.Courier != "" {
		doc.KeyValue("Entregador:", receipt.Courier)
	}
	doc.KeyValue("Cliente:", receipt.Customer).
		KeyValue("Fone:", receipt.Phone)
	if receipt.Address != "" {
		doc.TextWrapped(receipt.Address)
	}

	doc.Separator('-')
	if order.CashTendered != nil {
		doc.SetBold(true).
			KeyValue("RECEBER:", order.CashTendered.BRL()).
			SetBold(false)
		if order.CashChange != nil && *order.CashChange > 0 {
			doc.KeyValue("Levar troco:", order.CashChange.BRL())
		}
	} else {
		doc.KeyValue("Pagamento:", order.PaymentSummary)
	}

	doc.FeedLines(3).PartialCut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		log.Printf("Printer error (label %d): %v", orderID, err)
		return fmt.Errorf("failed to print courier label: %w", err)
	}
	return nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes at the configured
// boot width.
func (s *PrinterService) FormatReceipt(r *entity.Receipt) []byte {
	return s.formatReceipt(r, s.width)
}

func (s *PrinterService) formatReceipt(r *entity.Receipt, width int) []byte {
	doc := printer.NewDocument(width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.TextWrapped(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Pedido:", r.ReceiptNo).
		KeyValue("Data:", r.Date)

	if r.Customer != "" {
		doc.KeyValue("Cliente:", r.Customer)
	}
	if r.Phone != "" {
		doc.KeyValue("Fone:", r.Phone)
	}
	if r.Address != "" {
		doc.Text("Endereco:").
			TextWrapped(r.Address)
	}
	if r.Courier != "" {
		doc.KeyValue("Entregador:", r.Courier)
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Produtos:", r.ProductValue.BRL()).
		KeyValue("Taxa entrega:", r.DeliveryFee.BRL())
	doc.SetBold(true).
		KeyValue("TOTAL:", r.Total.BRL()).
		SetBold(false)

	doc.Separator('-')

	// Payment
	doc.TextWrapped("Pagamento: " + r.PaymentSummary)
	if r.CashTendered != nil {
		doc.KeyValue("Valor pago:", r.CashTendered.BRL())
		if r.CashChange != nil {
			doc.KeyValue("Troco:", r.CashChange.BRL())
		}
	}

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Obrigado pela preferencia!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
