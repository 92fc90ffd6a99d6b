package models

// Room statuses
const (
	RoomStatusClean       = "Clean"
	RoomStatusDirty       = "Dirty"
	RoomStatusOccupied    = "Occupied"
	RoomStatusMaintenance = "Maintenance"
)

// Room types
const (
	RoomTypeStandard  = "Standard"
	RoomTypeDeluxe    = "Deluxe"
	RoomTypeSuite     = "Suite"
	RoomTypePenthouse = "Penthouse"
)

type Room struct {
	ID     string  `json:"id"`
	Number string  `json:"number"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
}

func ValidRoomType(t string) bool {
	switch t {
	case RoomTypeStandard, RoomTypeDeluxe, RoomTypeSuite, RoomTypePenthouse:
		return true
	}
	return false
}

func ValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusClean, RoomStatusDirty, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}
	return false
}
