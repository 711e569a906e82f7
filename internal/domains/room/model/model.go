package model

import "roomops/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldCategoryID = "category_id"
	FieldStatus     = "status"
)

const (
	StatusAvailable   = "available"
	StatusBooked      = "booked"
	StatusMaintenance = "maintenance"
	StatusCleaning    = "cleaning"
)

var Statuses = []string{StatusAvailable, StatusBooked, StatusMaintenance, StatusCleaning}

type Room struct {
	ID         string `db:"id"`
	RoomNumber string `db:"room_number"`
	CategoryID string `db:"category_id"`
	Status     string `db:"status"`
	model.Metadata
}
