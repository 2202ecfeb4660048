package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/totalpharma/pdv-api/internal/application/service"
	"github.com/totalpharma/pdv-api/internal/presentation/http/dto/request"
	"github.com/totalpharma/pdv-api/internal/presentation/http/dto/response"
)

// CheckoutHandler handles order finalize and quote requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	printerService  *service.PrinterService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService, printerService *service.PrinterService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		printerService:  printerService,
	}
}

func paymentInput(req *request.PaymentRequest) service.PaymentInput {
	return service.PaymentInput{
		Method:             req.Method,
		Installments:       req.Installments,
		Split:              req.Split,
		SecondMethod:       req.SecondMethod,
		SecondInstallments: req.SecondInstallments,
		FirstAmount:        req.FirstAmount,
		CashTendered:       req.CashTendered,
	}
}

// Quote previews totals, change and reminder date without persisting.
func (h *CheckoutHandler) Quote(c *gin.Context) {
	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.checkoutService.Quote(c.Request.Context(), &service.CheckoutInput{
		ProductValue: req.ProductValue,
		DeliveryFee:  req.DeliveryFee,
		Payment:      paymentInput(&req.Payment),
		DurationDays: req.DurationDays,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote computed successfully", result)
}

// Finalize settles and persists the sale. Runs behind the idempotency
// middleware: retried submissions with the same Idempotency-Key replay
// the original response instead of creating a second order.
func (h *CheckoutHandler) Finalize(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.checkoutService.Finalize(c.Request.Context(), &service.CheckoutInput{
		Phone:        req.Phone,
		Name:         req.Name,
		Street:       req.Street,
		Number:       req.Number,
		Neighborhood: req.Neighborhood,
		Reference:    req.Reference,
		Courier:      req.Courier,
		ProductValue: req.ProductValue,
		DeliveryFee:  req.DeliveryFee,
		Payment:      paymentInput(&req.Payment),
		Medication:   req.Medication,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt := h.printerService.ComposeOrderReceipt(c.Request.Context(), result.Order)

	response.Created(c, "Order finalized successfully", gin.H{
		"order":    result.Order,
		"customer": result.Customer,
		"reminder": result.Reminder,
		"receipt":  receipt,
	})
}
