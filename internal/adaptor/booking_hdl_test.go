package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository/memory"
	"hotel-booking/internal/interval"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/roomlock"
)

type apiFixture struct {
	router   *chi.Mux
	roomType uuid.UUID
	room     uuid.UUID
	customer uuid.UUID
	recept   uuid.UUID
	base     time.Time
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	repo := memory.NewStore().Repository()
	log := zap.NewNop()
	index := interval.NewIndex()
	locks := roomlock.NewKeeper(200 * time.Millisecond)
	pricing := usecase.NewPricingService(repo, log)
	booking := usecase.NewBookingService(repo, index, locks, pricing, log)

	f := &apiFixture{
		roomType: uuid.New(),
		room:     uuid.New(),
		customer: uuid.New(),
		recept:   uuid.New(),
		base:     time.Now().Add(72 * time.Hour).Truncate(time.Hour),
	}

	ctx := context.Background()
	require.NoError(t, repo.Room.CreateRoomType(ctx, &entity.RoomType{
		Base: entity.Base{ID: f.roomType},
		Name: "SINGLE",
	}))
	require.NoError(t, repo.Room.Create(ctx, &entity.Room{
		Base:       entity.Base{ID: f.room},
		Name:       "101",
		RoomTypeID: f.roomType,
	}))
	require.NoError(t, repo.Customer.Create(ctx, &entity.Customer{
		Base:         entity.Base{ID: f.customer},
		Name:         "Sari",
		CustomerType: entity.CustomerTypeDomestic,
	}))
	require.NoError(t, repo.Regulation.UpsertRoomRegulation(ctx, &entity.RoomRegulation{
		RoomTypeID:    f.roomType,
		AdminID:       uuid.New(),
		RoomQuantity:  10,
		Capacity:      3,
		Price:         3_000_000,
		SurchargeRate: 0.25,
		DepositRate:   0.3,
		Distance:      1,
	}))
	require.NoError(t, repo.Regulation.UpsertCustomerTypeRegulation(ctx, &entity.CustomerTypeRegulation{
		CustomerType: entity.CustomerTypeDomestic,
		AdminID:      uuid.New(),
		Rate:         1.0,
	}))

	handler := NewBookingHandler(booking, pricing, log)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(log))
		r.Post("/api/reservations", handler.CreateReservation)
		r.Delete("/api/reservations/{id}", handler.CancelReservation)
		r.Post("/api/reservations/{id}/checkin", handler.CheckIn)
		r.Post("/api/rentals", handler.WalkInRental)
		r.Post("/api/rentals/{id}/checkout", handler.CheckOut)
	})
	r.Post("/api/quote", handler.Quote)
	f.router = r

	return f
}

func (f *apiFixture) request(t *testing.T, method, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Receptionist-ID", f.recept.String())

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) reservationBody(startDay, endDay int) map[string]any {
	return map[string]any{
		"customer_id":    f.customer.String(),
		"room_id":        f.room.String(),
		"checkin":        f.base.AddDate(0, 0, startDay).Format(time.RFC3339),
		"checkout":       f.base.AddDate(0, 0, endDay).Format(time.RFC3339),
		"occupant_count": 2,
	}
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Status  bool           `json:"status"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestReservationEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.request(t, http.MethodPost, "/api/reservations", f.reservationBody(0, 2))
	require.Equal(t, http.StatusCreated, rec.Code)
	reservation := decodeData(t, rec)
	assert.Equal(t, "pending", reservation["status"])

	// overlapping interval is refused
	rec = f.request(t, http.MethodPost, "/api/reservations", f.reservationBody(1, 3))
	assert.Equal(t, http.StatusConflict, rec.Code)

	// check in, then the reservation cannot be cancelled anymore
	reservationID := reservation["id"].(string)
	rec = f.request(t, http.MethodPost, "/api/reservations/"+reservationID+"/checkin", map[string]any{
		"actual_checkin": f.base.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	rental := decodeData(t, rec)

	rec = f.request(t, http.MethodDelete, "/api/reservations/"+reservationID, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// settle the stay
	rentalID := rental["id"].(string)
	rec = f.request(t, http.MethodPost, "/api/rentals/"+rentalID+"/checkout", map[string]any{
		"actual_checkout": f.base.AddDate(0, 0, 2).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	receipt := decodeData(t, rec)
	assert.Equal(t, 6_000_000.0, receipt["total_price"])
	assert.Equal(t, 4_200_000.0, receipt["amount_due"])

	// second settlement is refused
	rec = f.request(t, http.MethodPost, "/api/rentals/"+rentalID+"/checkout", map[string]any{
		"actual_checkout": f.base.AddDate(0, 0, 2).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReservationBadRequests(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewBufferString("{"))
		req.Header.Set("X-Receptionist-ID", f.recept.String())
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("inverted interval", func(t *testing.T) {
		body := f.reservationBody(2, 0)
		rec := f.request(t, http.MethodPost, "/api/reservations", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown room", func(t *testing.T) {
		body := f.reservationBody(0, 2)
		body["room_id"] = uuid.New().String()
		rec := f.request(t, http.MethodPost, "/api/reservations", body)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed reservation id", func(t *testing.T) {
		rec := f.request(t, http.MethodDelete, "/api/reservations/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed rental id", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, "/api/rentals/not-a-uuid/checkout", map[string]any{
			"actual_checkout": f.base.AddDate(0, 0, 2).Format(time.RFC3339),
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing identity header", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(f.reservationBody(0, 2)))
		req := httptest.NewRequest(http.MethodPost, "/api/reservations", &buf)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestQuoteEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	body := map[string]any{
		"room_type_id":   f.roomType.String(),
		"customer_type":  "DOMESTIC",
		"checkin":        f.base.Format(time.RFC3339),
		"checkout":       f.base.AddDate(0, 0, 2).Format(time.RFC3339),
		"occupant_count": 3,
	}

	rec := f.request(t, http.MethodPost, "/api/quote", body)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	quote := decodeData(t, rec)
	assert.Equal(t, 2.0, quote["nights"])
	assert.Equal(t, 6_000_000.0, quote["subtotal"])
	assert.Equal(t, 1_800_000.0, quote["deposit"])

	t.Run("missing regulation", func(t *testing.T) {
		bad := map[string]any{}
		for k, v := range body {
			bad[k] = v
		}
		bad["room_type_id"] = uuid.New().String()
		rec := f.request(t, http.MethodPost, "/api/quote", bad)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("unknown customer type", func(t *testing.T) {
		bad := map[string]any{}
		for k, v := range body {
			bad[k] = v
		}
		bad["customer_type"] = "VIP"
		rec := f.request(t, http.MethodPost, "/api/quote", bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
