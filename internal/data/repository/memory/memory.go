// Package memory implements the repository interfaces on in-process
// maps. It backs unit tests and local development without Postgres;
// the atomicity guarantees of the composite pgx operations are matched
// with a single store-wide mutex.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
)

type Store struct {
	mu sync.Mutex

	rooms        map[uuid.UUID]*entity.Room
	roomTypes    map[uuid.UUID]*entity.RoomType
	customers    map[uuid.UUID]*entity.Customer
	roomRegs     map[uuid.UUID]*entity.RoomRegulation
	customerRegs map[entity.CustomerType]*entity.CustomerTypeRegulation
	reservations map[uuid.UUID]*entity.Reservation
	rentals      map[uuid.UUID]*entity.RoomRental
	receipts     map[uuid.UUID]*entity.Receipt // by rental id

	// failNext makes the next mutating call fail, for exercising
	// rollback paths in tests.
	failNext error
}

func NewStore() *Store {
	return &Store{
		rooms:        make(map[uuid.UUID]*entity.Room),
		roomTypes:    make(map[uuid.UUID]*entity.RoomType),
		customers:    make(map[uuid.UUID]*entity.Customer),
		roomRegs:     make(map[uuid.UUID]*entity.RoomRegulation),
		customerRegs: make(map[entity.CustomerType]*entity.CustomerTypeRegulation),
		reservations: make(map[uuid.UUID]*entity.Reservation),
		rentals:      make(map[uuid.UUID]*entity.RoomRental),
		receipts:     make(map[uuid.UUID]*entity.Receipt),
	}
}

// Repository bundles the in-memory implementations in the same shape
// as the Postgres-backed repository.
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		Room:        (*roomRepo)(s),
		Customer:    (*customerRepo)(s),
		Regulation:  (*regulationRepo)(s),
		Reservation: (*reservationRepo)(s),
		Rental:      (*rentalRepo)(s),
		Receipt:     (*receiptRepo)(s),
	}
}

// FailNextWrite makes the next mutating operation return err.
func (s *Store) FailNextWrite(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = err
}

func (s *Store) takeFailure() error {
	err := s.failNext
	s.failNext = nil
	return err
}

// ---------------- rooms ----------------

type roomRepo Store

func (r *roomRepo) Create(_ context.Context, room *entity.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := (*Store)(r).takeFailure(); err != nil {
		return err
	}
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *roomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, nil
	}
	cp := *room
	return &cp, nil
}

func (r *roomRepo) List(_ context.Context, limit, offset int) ([]*entity.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var rooms []*entity.Room
	for _, room := range r.rooms {
		cp := *room
		rooms = append(rooms, &cp)
	}
	if offset >= len(rooms) {
		return nil, nil
	}
	rooms = rooms[offset:]
	if limit < len(rooms) {
		rooms = rooms[:limit]
	}
	return rooms, nil
}

func (r *roomRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rooms)), nil
}

func (r *roomRepo) CreateRoomType(_ context.Context, roomType *entity.RoomType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := (*Store)(r).takeFailure(); err != nil {
		return err
	}
	cp := *roomType
	r.roomTypes[roomType.ID] = &cp
	return nil
}

func (r *roomRepo) FindRoomTypeByID(_ context.Context, id uuid.UUID) (*entity.RoomType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	roomType, ok := r.roomTypes[id]
	if !ok {
		return nil, nil
	}
	cp := *roomType
	return &cp, nil
}

// ---------------- customers ----------------

type customerRepo Store

func (r *customerRepo) Create(_ context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := (*Store)(r).takeFailure(); err != nil {
		return err
	}
	cp := *customer
	r.customers[customer.ID] = &cp
	return nil
}

func (r *customerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *customer
	return &cp, nil
}

// ---------------- regulations ----------------

type regulationRepo Store

func (r *regulationRepo) GetRoomRegulation(_ context.Context, roomTypeID uuid.UUID) (*entity.RoomRegulation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	regulation, ok := r.roomRegs[roomTypeID]
	if !ok {
		return nil, nil
	}
	cp := *regulation
	return &cp, nil
}

func (r *regulationRepo) GetCustomerTypeRegulation(_ context.Context, customerType entity.CustomerType) (*entity.CustomerTypeRegulation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	regulation, ok := r.customerRegs[customerType]
	if !ok {
		return nil, nil
	}
	cp := *regulation
	return &cp, nil
}

func (r *regulationRepo) UpsertRoomRegulation(_ context.Context, regulation *entity.RoomRegulation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := (*Store)(r).takeFailure(); err != nil {
		return err
	}
	cp := *regulation
	r.roomRegs[regulation.RoomTypeID] = &cp
	return nil
}

func (r *regulationRepo) UpsertCustomerTypeRegulation(_ context.Context, regulation *entity.CustomerTypeRegulation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := (*Store)(r).takeFailure(); err != nil {
		return err
	}
	cp := *regulation
	r.customerRegs[regulation.CustomerType] = &cp
	return nil
}

// ---------------- reservations ----------------

type reservationRepo Store

func (r *reservationRepo) Create(_ context.Context, reservation *entity.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := (*Store)(r).takeFailure(); err != nil {
		return err
	}
	cp := *reservation
	r.reservations[reservation.ID] = &cp
	return nil
}

func (r *reservationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservation, ok := r.reservations[id]
	if !ok {
		return nil, nil
	}
	cp := *reservation
	return &cp, nil
}

func (r *reservationRepo) MarkCancelled(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := (*Store)(r).takeFailure(); err != nil {
		return false, err
	}
	reservation, ok := r.reservations[id]
	if !ok || reservation.Status != entity.ReservationStatusPending {
		return false, nil
	}
	reservation.Status = entity.ReservationStatusCancelled
	reservation.UpdatedAt = time.Now()
	return true, nil
}

func (r *reservationRepo) ListOpenIntervals(_ context.Context) ([]entity.OccupiedInterval, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var intervals []entity.OccupiedInterval
	for _, reservation := range r.reservations {
		if reservation.Status == entity.ReservationStatusPending {
			intervals = append(intervals, entity.OccupiedInterval{
				RoomID:  reservation.RoomID,
				OwnerID: reservation.ID,
				Start:   reservation.Checkin,
				End:     reservation.Checkout,
			})
		}
	}
	return intervals, nil
}

// ---------------- rentals ----------------

type rentalRepo Store

func (r *rentalRepo) Create(_ context.Context, rental *entity.RoomRental) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := (*Store)(r).takeFailure(); err != nil {
		return err
	}
	cp := *rental
	r.rentals[rental.ID] = &cp
	return nil
}

func (r *rentalRepo) CreateFromReservation(_ context.Context, rental *entity.RoomRental) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := (*Store)(r).takeFailure(); err != nil {
		return false, err
	}
	reservation, ok := r.reservations[*rental.ReservationID]
	if !ok || reservation.Status != entity.ReservationStatusPending {
		return false, nil
	}
	reservation.Status = entity.ReservationStatusCheckedIn
	reservation.UpdatedAt = time.Now()

	cp := *rental
	r.rentals[rental.ID] = &cp
	return true, nil
}

func (r *rentalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RoomRental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rental, ok := r.rentals[id]
	if !ok {
		return nil, nil
	}
	cp := *rental
	return &cp, nil
}

func (r *rentalRepo) ListActiveIntervals(_ context.Context) ([]entity.OccupiedInterval, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var intervals []entity.OccupiedInterval
	for _, rental := range r.rentals {
		if !rental.IsPaid {
			intervals = append(intervals, entity.OccupiedInterval{
				RoomID:  rental.RoomID,
				OwnerID: rental.ID,
				Start:   rental.Checkin,
				End:     rental.PlannedCheckout,
			})
		}
	}
	return intervals, nil
}

// ---------------- receipts ----------------

type receiptRepo Store

func (r *receiptRepo) CreateAndSettle(_ context.Context, receipt *entity.Receipt, checkout time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := (*Store)(r).takeFailure(); err != nil {
		return false, err
	}
	rental, ok := r.rentals[receipt.RentalID]
	if !ok || rental.IsPaid {
		return false, nil
	}
	out := checkout
	rental.Checkout = &out
	rental.IsPaid = true
	rental.UpdatedAt = time.Now()

	cp := *receipt
	r.receipts[receipt.RentalID] = &cp
	return true, nil
}

func (r *receiptRepo) FindByRentalID(_ context.Context, rentalID uuid.UUID) (*entity.Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	receipt, ok := r.receipts[rentalID]
	if !ok {
		return nil, nil
	}
	cp := *receipt
	return &cp, nil
}
