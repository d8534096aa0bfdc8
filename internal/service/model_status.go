package service

import "energy_predictor/internal/predictor"

// ModelStatusService serves the load status captured at startup.
type ModelStatusService struct {
	status predictor.Status
}

func NewModelStatusService(status predictor.Status) *ModelStatusService {
	return &ModelStatusService{status: status}
}

func (s *ModelStatusService) Status() predictor.Status {
	return s.status
}
