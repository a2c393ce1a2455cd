package handlers

// HandlerBundle groups the endpoint handler sets passed to route registration.
type HandlerBundle struct {
	Catalog *CatalogHandler
	Booking *BookingHandler
}
