package handlers

import (
	"net/http"

	"tripgenie/internal/http/middleware"
	"tripgenie/internal/repositories"
	"tripgenie/internal/services"

	"github.com/gin-gonic/gin"
)

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		BookingRepo: repositories.BookingRepository{},
		UserRepo:    repositories.UserRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

// GET /api/bookings/hotels/:id/invoice returns the booking invoice (inline).
func GetHotelInvoicePDF(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	auth := middleware.GetAuth(c)
	pdfBytes, filename, err := docsService(c).GenerateHotelInvoice(auth.UserID, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/bookings/hotels/:id/voucher returns the check-in voucher (inline).
func GetHotelVoucherPDF(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	auth := middleware.GetAuth(c)
	pdfBytes, filename, err := docsService(c).GenerateHotelVoucher(auth.UserID, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
