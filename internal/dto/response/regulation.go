package response

import (
	"hotel-booking/internal/data/entity"
)

type RoomRegulationResponse struct {
	RoomTypeID    string  `json:"room_type_id"`
	AdminID       string  `json:"admin_id"`
	RoomQuantity  int     `json:"room_quantity"`
	Capacity      int     `json:"capacity"`
	Price         float64 `json:"price"`
	SurchargeRate float64 `json:"surcharge_rate"`
	DepositRate   float64 `json:"deposit_rate"`
	Distance      int     `json:"distance"`
}

type CustomerTypeRegulationResponse struct {
	CustomerType string  `json:"customer_type"`
	AdminID      string  `json:"admin_id"`
	Rate         float64 `json:"rate"`
}

func RoomRegulationToResponse(r *entity.RoomRegulation) RoomRegulationResponse {
	return RoomRegulationResponse{
		RoomTypeID:    r.RoomTypeID.String(),
		AdminID:       r.AdminID.String(),
		RoomQuantity:  r.RoomQuantity,
		Capacity:      r.Capacity,
		Price:         r.Price,
		SurchargeRate: r.SurchargeRate,
		DepositRate:   r.DepositRate,
		Distance:      r.Distance,
	}
}

func CustomerTypeRegulationToResponse(r *entity.CustomerTypeRegulation) CustomerTypeRegulationResponse {
	return CustomerTypeRegulationResponse{
		CustomerType: string(r.CustomerType),
		AdminID:      r.AdminID.String(),
		Rate:         r.Rate,
	}
}
