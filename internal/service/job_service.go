package service

import (
	"fmt"
	"log"

	"hospedaje/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// RunNightly expires stale access links and closes stays whose checkout has
// passed. Scheduled by the cron in cmd/server.
func (s *JobService) RunNightly() error {
	expired, err := s.Repo.ExpireLinks()
	if err != nil {
		return fmt.Errorf("cron job: failed to expire links: %w", err)
	}
	if expired > 0 {
		log.Printf("Cron Job: expired %d access links", expired)
	}

	closed, err := s.Repo.CloseFinishedStays()
	if err != nil {
		return fmt.Errorf("cron job: failed to close finished stays: %w", err)
	}
	if closed > 0 {
		log.Printf("Cron Job: marked %d accommodation requests as checked out", closed)
	}
	return nil
}
