package repository

import (
	"go.uber.org/zap"

	"hotel-booking/pkg/database"
)

type Repository struct {
	Room        RoomRepository
	Customer    CustomerRepository
	Regulation  RegulationRepository
	Reservation ReservationRepository
	Rental      RentalRepository
	Receipt     ReceiptRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Room:        NewRoomRepository(db, log),
		Customer:    NewCustomerRepository(db, log),
		Regulation:  NewRegulationRepository(db, log),
		Reservation: NewReservationRepository(db, log),
		Rental:      NewRentalRepository(db, log),
		Receipt:     NewReceiptRepository(db, log),
	}
}
