package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estacion-api/internal/application/credit"
	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/domain"
)

// CreditHandler maneja los débitos a crédito de clientes: registro,
// agrupaciones, saldos, historial propio y estado de cuenta en PDF.
type CreditHandler struct {
	uc *credit.CreditUseCase
}

// NewCreditHandler construye el handler de crédito.
func NewCreditHandler(uc *credit.CreditUseCase) *CreditHandler {
	return &CreditHandler{uc: uc}
}

// CreateDebit godoc
// @Summary      Registrar cargo a crédito (amount = quantity × rate, en el servidor)
// @Tags         credit
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateDebitRequest  true  "cliente, combustible, litros y precio"
// @Success      201   {object}  dto.DebitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers/debits [post]
func (h *CreditHandler) CreateDebit(c *fiber.Ctx) error {
	var in dto.CreateDebitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordDebit(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id, customer_name y fuel_type son requeridos; quantity y rate deben ser positivos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Overview godoc
// @Summary      Clientes agrupados con sus débitos y saldo total pendiente
// @Tags         credit
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CustomerOverviewResponse
// @Router       /api/customers [get]
func (h *CreditHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Balance godoc
// @Summary      Saldo pendiente de un cliente (cero si no tiene registros)
// @Tags         credit
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "customer id"
// @Success      200  {object}  dto.CustomerBalanceResponse
// @Router       /api/customers/{id}/balance [get]
func (h *CreditHandler) Balance(c *fiber.Ctx) error {
	out, err := h.uc.TotalBalance(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MyHistory godoc
// @Summary      Historial del cliente autenticado agrupado por mes
// @Tags         credit
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.TransactionHistoryResponse
// @Router       /api/customers/me/transactions [get]
func (h *CreditHandler) MyHistory(c *fiber.Ctx) error {
	out, err := h.uc.History(GetCustomerID(c))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el usuario no tiene customer_id"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DownloadStatement godoc
// @Summary      Descargar el estado de cuenta de un cliente en PDF
// @Tags         credit
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "customer id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/statement [get]
func (h *CreditHandler) DownloadStatement(c *fiber.Ctx) error {
	data, filename, err := h.uc.DownloadStatement(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el cliente no tiene débitos registrados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// MyStatement godoc
// @Summary      Descargar el estado de cuenta propio (cliente autenticado)
// @Tags         credit
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/me/statement [get]
func (h *CreditHandler) MyStatement(c *fiber.Ctx) error {
	data, filename, err := h.uc.DownloadStatement(c.Context(), GetCustomerID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay débitos registrados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
