package service

import (
	"time"

	"hospedaje/internal/apperrors"
	"hospedaje/internal/db"
	"hospedaje/internal/entities"
	"hospedaje/internal/repository"
)

type RequestService struct {
	Repo *repository.RequestRepository
}

func NewRequestService(repo *repository.RequestRepository) *RequestService {
	return &RequestService{Repo: repo}
}

func (s *RequestService) GetRequest(operatorID, id int) (*entities.RequestInfo, error) {
	rq, err := s.Repo.GetRequest(operatorID, id)
	if err != nil {
		return nil, err
	}
	if rq == nil {
		return nil, apperrors.NotFound("accommodation request")
	}
	info := requestInfo(rq)
	return &info, nil
}

func (s *RequestService) ListRequests(operatorID int, codes []string) ([]entities.RequestInfo, error) {
	requests, err := s.Repo.ListRequests(operatorID, codes)
	if err != nil {
		return nil, err
	}
	infos := make([]entities.RequestInfo, 0, len(requests))
	for i := range requests {
		infos = append(infos, requestInfo(&requests[i]))
	}
	return infos, nil
}

func (s *RequestService) CreateRequest(operatorID int, rq *db.AccommodationRequest) (*entities.RequestInfo, error) {
	if NewStayRange(rq.CheckIn, rq.CheckOut).Inverted() {
		return nil, apperrors.InvalidRange("check_out must be greater than or equal to check_in")
	}
	if rq.Status == "" {
		rq.Status = db.StatusToCheckIn
	}
	if err := s.Repo.CreateRequest(operatorID, rq); err != nil {
		return nil, err
	}
	info := requestInfo(rq)
	return &info, nil
}

func (s *RequestService) UpdateRequest(operatorID, id int, patch entities.RequestPatch) (*entities.RequestInfo, error) {
	rq, err := s.Repo.UpdateRequest(operatorID, id, patch)
	if err != nil {
		return nil, err
	}
	if rq == nil {
		return nil, apperrors.NotFound("accommodation request")
	}
	info := requestInfo(rq)
	return &info, nil
}

func (s *RequestService) DeleteRequest(operatorID, id int) error {
	n, err := s.Repo.DeleteRequest(operatorID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NotFound("accommodation request")
	}
	return nil
}

func requestInfo(rq *db.AccommodationRequest) entities.RequestInfo {
	return entities.RequestInfo{
		ID:                rq.ID,
		EstablishmentCode: rq.EstablishmentCode,
		ContractReference: rq.ContractReference,
		CheckIn:           rq.CheckIn.Format(time.RFC3339),
		CheckOut:          rq.CheckOut.Format(time.RFC3339),
		NumGuests:         rq.NumGuests,
		NumRooms:          rq.NumRooms,
		Status:            rq.Status,
	}
}
