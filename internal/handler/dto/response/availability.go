package response

import (
	"time"

	"laundromat-api/internal/domain/availability"

	"github.com/jinzhu/copier"
)

type DayResponse struct {
	Day    string `json:"day"`
	Status string `json:"status"`
}

type SlotResponse struct {
	Start           time.Time `json:"start"`
	Key             string    `json:"key"`
	Occupied        int       `json:"occupied"`
	Total           int       `json:"total"`
	PartiallyBooked bool      `json:"partiallyBooked"`
}

func FromDayViews(days []availability.DayView) ([]DayResponse, error) {
	res := make([]DayResponse, 0, len(days))
	if err := copier.Copy(&res, &days); err != nil {
		return nil, err
	}
	return res, nil
}

func FromSlotViews(slots []availability.SlotView) ([]SlotResponse, error) {
	res := make([]SlotResponse, 0, len(slots))
	if err := copier.Copy(&res, &slots); err != nil {
		return nil, err
	}
	return res, nil
}
