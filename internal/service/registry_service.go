package service

import (
	"time"

	"hospedaje/internal/apperrors"
	"hospedaje/internal/db"
	"hospedaje/internal/entities"
	"hospedaje/internal/repository"
)

// GuestService and VehicleService are the per-request occupant registries.

type GuestService struct {
	Repo *repository.GuestRepository
}

func NewGuestService(repo *repository.GuestRepository) *GuestService {
	return &GuestService{Repo: repo}
}

func (s *GuestService) ListGuests(operatorID, requestID int) ([]entities.GuestInfo, error) {
	guests, err := s.Repo.ListGuests(operatorID, requestID)
	if err != nil {
		return nil, err
	}
	infos := make([]entities.GuestInfo, 0, len(guests))
	for i := range guests {
		infos = append(infos, guestInfo(&guests[i]))
	}
	return infos, nil
}

func (s *GuestService) CreateGuest(operatorID int, g *db.Guest) (*entities.GuestInfo, error) {
	if err := s.Repo.CreateGuest(operatorID, g); err != nil {
		return nil, err
	}
	info := guestInfo(g)
	return &info, nil
}

func (s *GuestService) UpdateGuest(operatorID, id int, patch entities.GuestPatch) (*entities.GuestInfo, error) {
	g, err := s.Repo.UpdateGuest(operatorID, id, patch)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperrors.NotFound("guest")
	}
	info := guestInfo(g)
	return &info, nil
}

func (s *GuestService) DeleteGuest(operatorID, id int) error {
	n, err := s.Repo.DeleteGuest(operatorID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NotFound("guest")
	}
	return nil
}

func guestInfo(g *db.Guest) entities.GuestInfo {
	info := entities.GuestInfo{
		ID:                     g.ID,
		AccommodationRequestID: g.AccommodationRequestID,
		FirstName:              g.FirstName,
		LastName:               g.LastName,
		DocumentType:           g.DocumentType,
		DocumentNumber:         g.DocumentNumber,
		Nationality:            g.Nationality,
	}
	if g.BirthDate != nil {
		formatted := g.BirthDate.Format(DateLayout)
		info.BirthDate = &formatted
	}
	return info
}

type VehicleService struct {
	Repo *repository.VehicleRepository
}

func NewVehicleService(repo *repository.VehicleRepository) *VehicleService {
	return &VehicleService{Repo: repo}
}

func (s *VehicleService) ListVehicles(operatorID, requestID int) ([]entities.VehicleInfo, error) {
	vehicles, err := s.Repo.ListVehicles(operatorID, requestID)
	if err != nil {
		return nil, err
	}
	infos := make([]entities.VehicleInfo, 0, len(vehicles))
	for i := range vehicles {
		infos = append(infos, vehicleInfo(&vehicles[i]))
	}
	return infos, nil
}

func (s *VehicleService) CreateVehicle(operatorID int, v *db.Vehicle) (*entities.VehicleInfo, error) {
	if err := s.Repo.CreateVehicle(operatorID, v); err != nil {
		return nil, err
	}
	info := vehicleInfo(v)
	return &info, nil
}

func (s *VehicleService) UpdateVehicle(operatorID, id int, patch entities.VehiclePatch) (*entities.VehicleInfo, error) {
	v, err := s.Repo.UpdateVehicle(operatorID, id, patch)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperrors.NotFound("vehicle")
	}
	info := vehicleInfo(v)
	return &info, nil
}

func (s *VehicleService) DeleteVehicle(operatorID, id int) error {
	n, err := s.Repo.DeleteVehicle(operatorID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NotFound("vehicle")
	}
	return nil
}

func vehicleInfo(v *db.Vehicle) entities.VehicleInfo {
	return entities.VehicleInfo{
		ID:                     v.ID,
		AccommodationRequestID: v.AccommodationRequestID,
		Plate:                  v.Plate,
		Model:                  v.Model,
	}
}

type LinkService struct {
	Repo *repository.LinkRepository
}

func NewLinkService(repo *repository.LinkRepository) *LinkService {
	return &LinkService{Repo: repo}
}

func (s *LinkService) ListLinks(operatorID int) ([]entities.LinkInfo, error) {
	return s.Repo.ListLinks(operatorID)
}

func (s *LinkService) CreateLink(operatorID int, l *db.AccessLink) (*entities.LinkInfo, error) {
	if l.URL == "" {
		return nil, apperrors.InvalidRange("url is required")
	}
	if err := s.Repo.CreateLink(operatorID, l); err != nil {
		return nil, err
	}
	info := linkInfo(l)
	return &info, nil
}

func (s *LinkService) UpdateLink(operatorID, id int, patch entities.LinkPatch) (*entities.LinkInfo, error) {
	l, err := s.Repo.UpdateLink(operatorID, id, patch)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, apperrors.NotFound("link")
	}
	info := linkInfo(l)
	return &info, nil
}

func (s *LinkService) DeleteLink(operatorID, id int) error {
	n, err := s.Repo.DeleteLink(operatorID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NotFound("link")
	}
	return nil
}

func linkInfo(l *db.AccessLink) entities.LinkInfo {
	info := entities.LinkInfo{
		ID:                     l.ID,
		URL:                    l.URL,
		Email:                  l.Email,
		OneUse:                 l.OneUse,
		Used:                   l.Used,
		EmailsSent:             l.EmailsSent,
		AccommodationCode:      l.AccommodationCode,
		AccommodationRequestID: l.AccommodationRequestID,
	}
	if l.ExpDate != nil {
		formatted := l.ExpDate.Format(time.RFC3339)
		info.ExpDate = &formatted
	}
	return info
}
