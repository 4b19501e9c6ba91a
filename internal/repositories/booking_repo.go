package repositories

import (
	"database/sql"
	"errors"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"

	"github.com/shopspring/decimal"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Inserts run on the confirming transaction: either the whole purchase commits
// or no booking record exists.

func (r BookingRepository) InsertFlight(q DBTX, b models.FlightBooking) (int64, error) {
	res, err := q.Exec(`
		INSERT INTO flight_bookings (tourist_id, flight_id, origin, destination, departure_date, arrival_date,
		                             price, currency, number_of_tickets, seat_type, flight_type, payment_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`, b.TouristID, b.FlightID, b.From, b.To, b.DepartureDate, b.ArrivalDate,
		b.Price.StringFixed(2), b.Currency, b.NumberOfTickets, b.SeatType, b.FlightType, b.PaymentType)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) InsertHotel(q DBTX, b models.HotelBooking) (int64, error) {
	res, err := q.Exec(`
		INSERT INTO hotel_bookings (tourist_id, hotel_id, hotel_name, checkin_date, checkout_date,
		                            room_name, number_of_adults, number_of_rooms, price, currency, payment_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`, b.TouristID, b.HotelID, b.HotelName, b.CheckinDate, b.CheckoutDate,
		b.RoomName, b.NumberOfAdults, b.NumberOfRooms, b.Price.StringFixed(2), b.Currency, b.PaymentType)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) InsertTransportation(q DBTX, b models.TransportationBooking) (int64, error) {
	res, err := q.Exec(`
		INSERT INTO transportation_bookings (tourist_id, transport_id, origin, destination, departure_date,
		                                     seats, price, currency, payment_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`, b.TouristID, b.TransportID, b.From, b.To, b.DepartureDate,
		b.Seats, b.Price.StringFixed(2), b.Currency, b.PaymentType)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) InsertItem(q DBTX, b models.ItemBooking) (int64, error) {
	res, err := q.Exec(`
		INSERT INTO item_bookings (tourist_id, item_type, item_id, quantity, booking_date, price, currency, payment_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`, b.TouristID, b.ItemType, b.ItemID, b.Quantity, b.BookingDate,
		b.Price.StringFixed(2), b.Currency, b.PaymentType)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) InsertOrder(q DBTX, o models.Order) (int64, error) {
	res, err := q.Exec(`
		INSERT INTO orders (tourist_id, total, currency, payment_type, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`, o.TouristID, o.Total.StringFixed(2), o.Currency, o.PaymentType)
	if err != nil {
		return 0, err
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	for _, item := range o.Items {
		if _, err := q.Exec(`
			INSERT INTO order_items (order_id, product_id, quantity, unit_price)
			VALUES (?, ?, ?, ?)
		`, orderID, item.ProductID, item.Quantity, item.UnitPrice.StringFixed(2)); err != nil {
			return 0, err
		}
	}
	return orderID, nil
}

func (r BookingRepository) ListHotelsByTourist(touristID int64) ([]models.HotelBooking, error) {
	rows, err := r.db().Query(`
		SELECT id, tourist_id, hotel_id, hotel_name, checkin_date, checkout_date,
		       room_name, number_of_adults, number_of_rooms, price, currency, payment_type
		FROM hotel_bookings WHERE tourist_id=? ORDER BY id DESC
	`, touristID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.HotelBooking{}
	for rows.Next() {
		var b models.HotelBooking
		if err := rows.Scan(&b.ID, &b.TouristID, &b.HotelID, &b.HotelName, &b.CheckinDate, &b.CheckoutDate,
			&b.RoomName, &b.NumberOfAdults, &b.NumberOfRooms, &b.Price, &b.Currency, &b.PaymentType); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r BookingRepository) ListFlightsByTourist(touristID int64) ([]models.FlightBooking, error) {
	rows, err := r.db().Query(`
		SELECT id, tourist_id, flight_id, origin, destination, departure_date, arrival_date,
		       price, currency, number_of_tickets, seat_type, flight_type, payment_type
		FROM flight_bookings WHERE tourist_id=? ORDER BY id DESC
	`, touristID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.FlightBooking{}
	for rows.Next() {
		var b models.FlightBooking
		if err := rows.Scan(&b.ID, &b.TouristID, &b.FlightID, &b.From, &b.To, &b.DepartureDate, &b.ArrivalDate,
			&b.Price, &b.Currency, &b.NumberOfTickets, &b.SeatType, &b.FlightType, &b.PaymentType); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r BookingRepository) ListTransportationByTourist(touristID int64) ([]models.TransportationBooking, error) {
	rows, err := r.db().Query(`
		SELECT id, tourist_id, transport_id, origin, destination, departure_date,
		       seats, price, currency, payment_type
		FROM transportation_bookings WHERE tourist_id=? ORDER BY id DESC
	`, touristID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.TransportationBooking{}
	for rows.Next() {
		var b models.TransportationBooking
		if err := rows.Scan(&b.ID, &b.TouristID, &b.TransportID, &b.From, &b.To, &b.DepartureDate,
			&b.Seats, &b.Price, &b.Currency, &b.PaymentType); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r BookingRepository) ListItemsByTourist(touristID int64) ([]models.ItemBooking, error) {
	rows, err := r.db().Query(`
		SELECT id, tourist_id, item_type, item_id, quantity, COALESCE(booking_date,''), price, currency, payment_type
		FROM item_bookings WHERE tourist_id=? ORDER BY id DESC
	`, touristID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.ItemBooking{}
	for rows.Next() {
		var b models.ItemBooking
		if err := rows.Scan(&b.ID, &b.TouristID, &b.ItemType, &b.ItemID, &b.Quantity, &b.BookingDate,
			&b.Price, &b.Currency, &b.PaymentType); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r BookingRepository) GetHotelByID(id int64) (models.HotelBooking, error) {
	var b models.HotelBooking
	err := r.db().QueryRow(`
		SELECT id, tourist_id, hotel_id, hotel_name, checkin_date, checkout_date,
		       room_name, number_of_adults, number_of_rooms, price, currency, payment_type
		FROM hotel_bookings WHERE id=?
	`, id).Scan(&b.ID, &b.TouristID, &b.HotelID, &b.HotelName, &b.CheckinDate, &b.CheckoutDate,
		&b.RoomName, &b.NumberOfAdults, &b.NumberOfRooms, &b.Price, &b.Currency, &b.PaymentType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HotelBooking{}, domain.NotFoundError{Resource: "hotel booking"}
		}
		return models.HotelBooking{}, err
	}
	return b, nil
}

func bookingTable(kind string) (string, error) {
	switch kind {
	case "hotel":
		return "hotel_bookings", nil
	case "flight":
		return "flight_bookings", nil
	case "transportation":
		return "transportation_bookings", nil
	case "item":
		return "item_bookings", nil
	}
	return "", domain.ValidationError{Field: "type", Msg: "unknown booking type"}
}

// GetPaid returns the charged price of one of the tourist's bookings.
func (r BookingRepository) GetPaid(q DBTX, kind string, id, touristID int64) (decimal.Decimal, error) {
	table, err := bookingTable(kind)
	if err != nil {
		return decimal.Zero, err
	}
	var price decimal.Decimal
	err = q.QueryRow(`SELECT price FROM `+table+` WHERE id=? AND tourist_id=?`, id, touristID).Scan(&price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, domain.NotFoundError{Resource: "booking"}
		}
		return decimal.Zero, err
	}
	return price, nil
}

// Cancel deletes a booking record; booking prices are immutable so a cancel
// never edits the row.
func (r BookingRepository) Cancel(q DBTX, kind string, id, touristID int64) error {
	table, err := bookingTable(kind)
	if err != nil {
		return err
	}
	res, err := q.Exec(`DELETE FROM `+table+` WHERE id=? AND tourist_id=?`, id, touristID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}
