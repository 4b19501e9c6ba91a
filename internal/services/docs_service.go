package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"tripgenie/internal/domain"
	"tripgenie/internal/repositories"
	"tripgenie/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders downloadable PDFs for confirmed hotel bookings.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	UserRepo    repositories.UserRepository
	RequestID   string
}

type hotelDocData struct {
	BookingID    int64
	GuestName    string
	GuestEmail   string
	HotelName    string
	RoomName     string
	CheckinDate  string
	CheckoutDate string
	Adults       int
	Rooms        int
	Price        string
	Currency     string
	PaymentType  string
}

// GenerateHotelInvoice builds the invoice PDF for one of the tourist's own
// hotel bookings. A booking belonging to someone else reads as not found.
func (s DocsService) GenerateHotelInvoice(touristID, bookingID int64) ([]byte, string, error) {
	data, err := s.loadHotelDocData(touristID, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	return buildHotelInvoicePDF(data)
}

// GenerateHotelVoucher builds the check-in voucher for the booking.
func (s DocsService) GenerateHotelVoucher(touristID, bookingID int64) ([]byte, string, error) {
	data, err := s.loadHotelDocData(touristID, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_voucher", fmt.Sprintf("booking_id=%d", bookingID))
	return buildHotelVoucherPDF(data)
}

func (s DocsService) loadHotelDocData(touristID, bookingID int64) (hotelDocData, error) {
	var out hotelDocData

	b, err := s.BookingRepo.GetHotelByID(bookingID)
	if err != nil {
		return out, err
	}
	if b.TouristID != touristID {
		return out, domain.NotFoundError{Resource: "hotel booking"}
	}

	out.BookingID = b.ID
	out.HotelName = b.HotelName
	out.RoomName = b.RoomName
	out.CheckinDate = b.CheckinDate
	out.CheckoutDate = b.CheckoutDate
	out.Adults = b.NumberOfAdults
	out.Rooms = b.NumberOfRooms
	out.Price = b.Price.StringFixed(2)
	out.Currency = b.Currency
	out.PaymentType = b.PaymentType

	if u, err := s.UserRepo.GetByID(touristID); err == nil {
		out.GuestName = u.Username
		out.GuestEmail = u.Email
	}

	return out, nil
}

func buildHotelInvoicePDF(d hotelDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-HOTEL-%d", d.BookingID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice no : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Name   : "+docSafe(d.GuestName, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Email  : "+docSafe(d.GuestEmail, "-"))
	pdf.Ln(10)

	desc := fmt.Sprintf("%s, %s (%s to %s), %d room(s), %d adult(s)",
		docSafe(d.HotelName, "-"), docSafe(d.RoomName, "-"),
		docSafe(d.CheckinDate, "-"), docSafe(d.CheckoutDate, "-"),
		d.Rooms, d.Adults,
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)

	pdf.Cell(0, 6, "Payment method: "+docSafe(d.PaymentType, "-"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s %s", d.Price, d.Currency))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "The total shown is the amount charged, after any promotional discount.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_HOTEL_%d_%s.pdf", d.BookingID, docFilenamePart(d.HotelName))
	return buf.Bytes(), filename, nil
}

func buildHotelVoucherPDF(d hotelDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Hotel Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "HOTEL VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Guest         : %s", docSafe(d.GuestName, "-")),
		fmt.Sprintf("Hotel         : %s", docSafe(d.HotelName, "-")),
		fmt.Sprintf("Room          : %s", docSafe(d.RoomName, "-")),
		fmt.Sprintf("Check-in      : %s", docSafe(d.CheckinDate, "-")),
		fmt.Sprintf("Check-out     : %s", docSafe(d.CheckoutDate, "-")),
		fmt.Sprintf("Rooms/Adults  : %d / %d", d.Rooms, d.Adults),
		fmt.Sprintf("Booking ref   : HTL-%d", d.BookingID),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this voucher together with a valid ID at check-in.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VOUCHER_HOTEL_%d_%s.pdf", d.BookingID, docFilenamePart(d.HotelName))
	return buf.Bytes(), filename, nil
}

func docSafe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func docFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
