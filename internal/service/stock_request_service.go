package service

import (
	"context"
	"fmt"
	"time"

	"tindahan/internal/dto"
	"tindahan/internal/model"
	"tindahan/internal/repository"
	"tindahan/internal/worker"

	"github.com/google/uuid"
)

// StockRequestService tracks restocking requests. A request is created
// pending and moves to approved or rejected exactly once; any further
// transition attempt fails with InvalidTransitionError and mutates nothing.
type StockRequestService interface {
	Submit(ctx context.Context, req dto.SubmitStockRequestRequest) (*dto.StockRequestResponse, error)
	Approve(ctx context.Context, id uuid.UUID) (*dto.StockRequestResponse, error)
	Reject(ctx context.Context, id uuid.UUID) (*dto.StockRequestResponse, error)
	List(ctx context.Context, filter dto.StockRequestFilter) ([]dto.StockRequestResponse, error)
}

type stockRequestService struct {
	repo       repository.StockRequestRepository
	dispatcher *worker.Dispatcher
	alertEmail string
}

func NewStockRequestService(repo repository.StockRequestRepository, dispatcher *worker.Dispatcher, alertEmail string) StockRequestService {
	return &stockRequestService{repo: repo, dispatcher: dispatcher, alertEmail: alertEmail}
}

func mapStockRequest(sr model.StockRequest) dto.StockRequestResponse {
	return dto.StockRequestResponse{
		ID:           sr.ID.String(),
		ProductName:  sr.ProductName,
		Category:     sr.Category,
		UrgencyLevel: sr.UrgencyLevel,
		RequestedBy:  sr.RequestedBy,
		Status:       sr.Status,
		CreatedAt:    sr.CreatedAt.Format(time.RFC3339),
	}
}

func (s *stockRequestService) Submit(ctx context.Context, req dto.SubmitStockRequestRequest) (*dto.StockRequestResponse, error) {
	if !model.ValidStockRequestCategory(req.Category) {
		return nil, &ValidationError{Field: "category", Reason: "unknown category " + req.Category}
	}
	urgency := req.UrgencyLevel
	if urgency == "" {
		urgency = model.UrgencyMedium
	}
	if !model.ValidUrgencyLevel(urgency) {
		return nil, &ValidationError{Field: "urgency_level", Reason: "unknown urgency level " + req.UrgencyLevel}
	}

	sr := &model.StockRequest{
		ProductName:  req.ProductName,
		Category:     req.Category,
		UrgencyLevel: urgency,
		RequestedBy:  req.RequestedBy,
		Status:       model.RequestStatusPending,
	}
	if err := s.repo.Create(ctx, sr); err != nil {
		return nil, err
	}

	// Critical requests page the configured alert address right away.
	if urgency == model.UrgencyCritical && s.dispatcher != nil && s.alertEmail != "" {
		_ = s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
			ToEmail: s.alertEmail,
			Subject: fmt.Sprintf("CRITICAL stock request: %s", sr.ProductName),
			Body: fmt.Sprintf("A critical restocking request for %q (%s) was just filed. Review it in the admin panel.",
				sr.ProductName, sr.Category),
		})
	}

	resp := mapStockRequest(*sr)
	return &resp, nil
}

// transition moves a pending request to status. The conditional UPDATE in the
// repository is the only writer, so two concurrent approvals cannot both win.
func (s *stockRequestService) transition(ctx context.Context, id uuid.UUID, status string) (*dto.StockRequestResponse, error) {
	rows, err := s.repo.UpdateStatusIfPending(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		sr, findErr := s.repo.FindByID(ctx, id)
		if findErr != nil {
			return nil, findErr
		}
		return nil, &InvalidTransitionError{ID: id.String(), Status: sr.Status}
	}
	sr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapStockRequest(*sr)
	return &resp, nil
}

func (s *stockRequestService) Approve(ctx context.Context, id uuid.UUID) (*dto.StockRequestResponse, error) {
	return s.transition(ctx, id, model.RequestStatusApproved)
}

func (s *stockRequestService) Reject(ctx context.Context, id uuid.UUID) (*dto.StockRequestResponse, error) {
	return s.transition(ctx, id, model.RequestStatusRejected)
}

func (s *stockRequestService) List(ctx context.Context, filter dto.StockRequestFilter) ([]dto.StockRequestResponse, error) {
	requests, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.StockRequestResponse, 0, len(requests))
	for _, sr := range requests {
		result = append(result, mapStockRequest(sr))
	}
	return result, nil
}
