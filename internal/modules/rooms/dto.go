package rooms

import "github.com/iwaklele45/siperuk-admin/internal/siperuk"

type RoomForm struct {
	Name        string `form:"name" validate:"required"`
	Location    string `form:"location" validate:"required"`
	Capacity    int    `form:"capacity" validate:"required,gt=0"`
	Description string `form:"description"`
	Status      string `form:"status" validate:"omitempty,oneof=available booked maintenance"`
	Features    string `form:"features"`
}

func (f RoomForm) payload() siperuk.RoomPayload {
	roomStatus := f.Status
	if roomStatus == "" {
		roomStatus = "available"
	}
	return siperuk.RoomPayload{
		Name:        f.Name,
		Location:    f.Location,
		Capacity:    f.Capacity,
		Description: f.Description,
		Status:      roomStatus,
		Features:    splitFeatures(f.Features),
	}
}
