package service

import (
	"hospedaje/internal/apperrors"
	"hospedaje/internal/db"
	"hospedaje/internal/entities"
	"hospedaje/internal/repository"
)

type RoomService struct {
	Repo *repository.RoomRepository
}

func NewRoomService(repo *repository.RoomRepository) *RoomService {
	return &RoomService{Repo: repo}
}

func (s *RoomService) ListRooms(operatorID int, accommodationCode string) ([]entities.RoomInfo, error) {
	rooms, err := s.Repo.ListByProperty(operatorID, accommodationCode)
	if err != nil {
		return nil, err
	}
	infos := make([]entities.RoomInfo, 0, len(rooms))
	for i := range rooms {
		infos = append(infos, roomInfo(&rooms[i]))
	}
	return infos, nil
}

func (s *RoomService) CreateRoom(operatorID int, room *db.Room) (*entities.RoomInfo, error) {
	if err := s.Repo.CreateRoom(operatorID, room); err != nil {
		return nil, err
	}
	info := roomInfo(room)
	return &info, nil
}

func (s *RoomService) UpdateRoom(operatorID, id int, patch entities.RoomPatch) (*entities.RoomInfo, error) {
	room, err := s.Repo.UpdateRoom(operatorID, id, patch)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperrors.NotFound("room")
	}
	info := roomInfo(room)
	return &info, nil
}

func (s *RoomService) DeleteRoom(operatorID, id int) error {
	n, err := s.Repo.DeleteRoom(operatorID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NotFound("room")
	}
	return nil
}

func roomInfo(room *db.Room) entities.RoomInfo {
	return entities.RoomInfo{
		ID:                room.ID,
		AccommodationCode: room.AccommodationCode,
		RoomName:          room.RoomName,
		RoomType:          room.RoomType,
		Capacity:          room.Capacity,
		Floor:             room.Floor,
		Price:             room.Price,
	}
}
