package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/totalpharma/pdv-api/internal/application/service"
	"github.com/totalpharma/pdv-api/internal/presentation/http/dto/response"
	"github.com/totalpharma/pdv-api/pkg/pagination"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
	orderService    *service.OrderService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService, orderService *service.OrderService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, orderService: orderService}
}

// List handles listing customers
func (h *CustomerHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	search := c.Query("search")

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.customerService.ListCustomers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Lookup finds a customer by phone for the counter form. Unknown phones
// return 200 with found=false so the form can switch to registration
// without a console error.
func (h *CustomerHandler) Lookup(c *gin.Context) {
	customer, err := h.customerService.LookupCustomer(c.Request.Context(), c.Param("phone"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if customer == nil {
		response.OK(c, "Customer not found", gin.H{"found": false})
		return
	}

	response.OK(c, "Customer retrieved successfully", gin.H{
		"found":    true,
		"customer": customer,
	})
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customerService.GetCustomer(c.Request.Context(), c.Param("phone"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a customer's registration
func (h *CustomerHandler) Update(c *gin.Context) {
	var req struct {
		Name         *string `json:"name"`
		Street       *string `json:"street"`
		Number       *string `json:"number"`
		Neighborhood *string `json:"neighborhood"`
		Reference    *string `json:"reference"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), &service.UpdateCustomerInput{
		Phone:        c.Param("phone"),
		Name:         req.Name,
		Street:       req.Street,
		Number:       req.Number,
		Neighborhood: req.Neighborhood,
		Reference:    req.Reference,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// AddressHistory returns a customer's past delivery addresses
func (h *CustomerHandler) AddressHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := h.customerService.GetAddressHistory(c.Request.Context(), c.Param("phone"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Address history retrieved successfully", entries)
}

// Orders lists a customer's past orders
func (h *CustomerHandler) Orders(c *gin.Context) {
	customer, err := h.customerService.GetCustomer(c.Request.Context(), c.Param("phone"))
	if err != nil {
		response.Error(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.orderService.ListCustomerOrders(c.Request.Context(), customer.Phone, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}
