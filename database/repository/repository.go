package repository

import (
	bookingRepo "websync/database/repository/booking"
	catalogRepo "websync/database/repository/catalog"
)

// Re-export the CatalogRepository interface and constructor.
type CatalogRepository = catalogRepo.CatalogRepository

var NewMongoCatalogRepo = catalogRepo.NewMongoCatalogRepo

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo
