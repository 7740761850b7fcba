package storage

import "airbnb-rooms-scraper/models"

// RoomStorage defines the interface for persisting normalized payloads
type RoomStorage interface {
	SaveRooms(rooms []*models.Room) error
}
