package handlers

import (
	"flowerdecor/services/admin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// AdminService also guards the dashboard routes.
	AdminService admin.AdminService

	Booking *BookingHandler
	Contact *ContactHandler
	Content *ContentHandler
	Admin   *AdminHandler
	Storage *StorageHandler
	Health  *HealthHandler
}
