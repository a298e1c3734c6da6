package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"petcare/internal/model"
	"petcare/internal/notify"
	"petcare/internal/repository"
)

// RequestInput is a new mate or adoption request.
type RequestInput struct {
	PetID        string
	RequestType  model.RequestType
	Message      string
	AttachedFile string
}

// RequestSender is the sender block of a request detail.
type RequestSender struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

// RequestDetail is the full view shown to sender and receiver.
type RequestDetail struct {
	ID                   string              `json:"id"`
	Sender               RequestSender       `json:"sender"`
	PetID                string              `json:"pet_id"`
	PetName              string              `json:"pet_name"`
	RequestType          model.RequestType   `json:"request_type"`
	Message              string              `json:"message"`
	AttachedFile         string              `json:"attached_file"`
	Status               model.RequestStatus `json:"status"`
	OwnerResponseMessage string              `json:"owner_response_message"`
	CreatedAt            time.Time           `json:"created_at"`
}

// RequestListItem is one inbox or sent-box row.
type RequestListItem struct {
	ID                 string              `json:"id"`
	SenderFirstName    string              `json:"sender_first_name"`
	SenderLocation     string              `json:"sender_location"`
	PetID              string              `json:"pet_id"`
	PetName            string              `json:"pet_name"`
	RequestSummaryText string              `json:"request_summary_text"`
	RequestType        model.RequestType   `json:"request_type"`
	Status             model.RequestStatus `json:"status"`
	CreatedAt          time.Time           `json:"created_at"`
}

// CreatedRequest is the response to a new request.
type CreatedRequest struct {
	Message        string         `json:"message"`
	RequestID      string         `json:"request_id"`
	RequestDetails *RequestDetail `json:"request_details"`
}

// StatusResult reports the outcome of an accept or reject.
type StatusResult struct {
	Detail                string `json:"detail"`
	PointsAwardedToSender *int   `json:"points_awarded_to_sender,omitempty"`
	SenderCurrentPoints   *int   `json:"sender_current_points,omitempty"`
}

// RequestService handles mate and adoption requests between users.
type RequestService interface {
	Create(ctx context.Context, senderID string, in RequestInput) (*CreatedRequest, error)
	Inbox(ctx context.Context, userID string) ([]RequestListItem, error)
	Sent(ctx context.Context, userID string) ([]RequestListItem, error)
	// Get is visible to the sender and the receiver only.
	Get(ctx context.Context, userID, id string) (*RequestDetail, error)
	// UpdateStatus lets the receiver accept or reject. Accepting settles the
	// pet (ownership or listing), awards the sender and clears all requests for the pet.
	UpdateStatus(ctx context.Context, userID, id string, status model.RequestStatus, response string) (*StatusResult, error)
}

// RequestDeps groups the collaborators of RequestService.
type RequestDeps struct {
	Requests  repository.RequestRepository
	Pets      repository.PetRepository
	Adoptions repository.PostRepository
	Matings   repository.PostRepository
	Tx        TxRunner
	Rewards   RewardService
	Notifier  NotificationService
}

type requestService struct {
	RequestDeps
}

func NewRequestService(d RequestDeps) RequestService {
	return &requestService{RequestDeps: d}
}

func toDetail(v *model.RequestView) *RequestDetail {
	sender := model.User{FirstName: v.SenderFirst, LastName: v.SenderLast}
	return &RequestDetail{
		ID: v.ID,
		Sender: RequestSender{
			ID:       v.SenderID,
			FullName: sender.FullName(),
			Location: v.SenderLocation,
			Phone:    v.SenderPhone,
		},
		PetID:                v.PetID,
		PetName:              v.PetName,
		RequestType:          v.RequestType,
		Message:              v.Message,
		AttachedFile:         v.AttachedFile,
		Status:               v.Status,
		OwnerResponseMessage: v.OwnerResponseMessage,
		CreatedAt:            v.CreatedAt,
	}
}

func toListItems(views []model.RequestView) []RequestListItem {
	out := make([]RequestListItem, 0, len(views))
	for _, v := range views {
		out = append(out, RequestListItem{
			ID:                 v.ID,
			SenderFirstName:    v.SenderFirst,
			SenderLocation:     v.SenderLocation,
			PetID:              v.PetID,
			PetName:            v.PetName,
			RequestSummaryText: v.Summary(),
			RequestType:        v.RequestType,
			Status:             v.Status,
			CreatedAt:          v.CreatedAt,
		})
	}
	return out
}

func (s *requestService) Create(ctx context.Context, senderID string, in RequestInput) (*CreatedRequest, error) {
	if !in.RequestType.Valid() {
		return nil, validation("request_type must be Mate or Adoption")
	}
	pet, err := s.Pets.FindByID(ctx, in.PetID)
	if err != nil {
		return nil, notFound(err, "pet")
	}
	if pet.OwnerID == senderID {
		return nil, validation("you cannot send a request for your own pet")
	}
	pending, err := s.Requests.HasPending(ctx, senderID, pet.ID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, fmt.Errorf("%w: you already have a pending request for this pet", ErrConflict)
	}

	created, err := s.Requests.Create(ctx, &model.InteractionRequest{
		SenderID:     senderID,
		ReceiverID:   pet.OwnerID,
		PetID:        pet.ID,
		RequestType:  in.RequestType,
		Message:      strings.TrimSpace(in.Message),
		AttachedFile: strings.TrimSpace(in.AttachedFile),
		Status:       model.StatusPending,
	})
	if err != nil {
		return nil, err
	}
	view, err := s.Requests.FindByID(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	detail := toDetail(view)

	s.Notifier.NotifyUser(ctx, pet.OwnerID, notify.Notification{
		Title: fmt.Sprintf("New %s Request!", in.RequestType),
		Body: fmt.Sprintf("You have a new %s request from %s for %s. Please review.",
			in.RequestType, detail.Sender.FullName, pet.PetName),
		Data: map[string]any{
			"action":     "NEW_REQUEST_CREATED",
			"request_id": created.ID,
			"type":       string(in.RequestType),
		},
	})

	return &CreatedRequest{
		Message:        "Request sent successfully.",
		RequestID:      created.ID,
		RequestDetails: detail,
	}, nil
}

func (s *requestService) Inbox(ctx context.Context, userID string) ([]RequestListItem, error) {
	views, err := s.Requests.ListInbox(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toListItems(views), nil
}

func (s *requestService) Sent(ctx context.Context, userID string) ([]RequestListItem, error) {
	views, err := s.Requests.ListSent(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toListItems(views), nil
}

func (s *requestService) Get(ctx context.Context, userID, id string) (*RequestDetail, error) {
	v, err := s.Requests.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "request")
	}
	if v.SenderID != userID && v.ReceiverID != userID {
		return nil, fmt.Errorf("%w: request not found", ErrNotFound)
	}
	return toDetail(v), nil
}

func (s *requestService) UpdateStatus(ctx context.Context, userID, id string, status model.RequestStatus, response string) (*StatusResult, error) {
	v, err := s.Requests.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "request")
	}
	if v.ReceiverID != userID {
		return nil, fmt.Errorf("%w: only the pet owner can change the request status", ErrForbidden)
	}
	if status != model.StatusAccepted && status != model.StatusRejected {
		return nil, validation("status must be Accepted or Rejected")
	}

	if status == model.StatusRejected {
		if err := s.Requests.Delete(ctx, v.ID); err != nil {
			return nil, err
		}
		s.notifySender(ctx, v, status, "Sorry, Rejected",
			fmt.Sprintf("The Owner of %s Rejected The Request!", v.PetName))
		return &StatusResult{Detail: fmt.Sprintf("Request %s rejected and deleted from your inbox.", v.ID)}, nil
	}

	var (
		award  *AwardResult
		action string
	)
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.Requests.UpdateStatus(ctx, v.ID, status, strings.TrimSpace(response)); err != nil {
			return err
		}
		activity := model.ActivityMatingApproved
		posts := s.Matings
		action = "Mating request approved, pet removed from mating list."
		if v.RequestType == model.RequestAdoption {
			if err := s.Pets.TransferOwnership(ctx, v.PetID, v.SenderID); err != nil {
				return notFound(err, "pet")
			}
			activity = model.ActivityAdoptionApproved
			posts = s.Adoptions
			action = "Ownership transferred, pet removed from adoption list."
		}
		if err := posts.DeleteByPet(ctx, v.PetID); err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		var err error
		award, err = s.Rewards.Award(ctx, v.SenderID, activity, v.ID,
			fmt.Sprintf("%s request accepted.", v.RequestType))
		if err != nil {
			return err
		}
		return s.Requests.DeleteByPet(ctx, v.PetID)
	})
	if err != nil {
		return nil, err
	}

	s.notifySender(ctx, v, status, "Congratulations, Accepted!",
		fmt.Sprintf("The Owner of %s Accepted The Request!", v.PetName))

	return &StatusResult{
		Detail:                fmt.Sprintf("Request accepted. Pet %s operation complete. %s", v.PetID, action),
		PointsAwardedToSender: &award.PointsAwarded,
		SenderCurrentPoints:   &award.NewBalance,
	}, nil
}

func (s *requestService) notifySender(ctx context.Context, v *model.RequestView, status model.RequestStatus, title, body string) {
	s.Notifier.NotifyUser(ctx, v.SenderID, notify.Notification{
		Title: title,
		Body:  body,
		Data: map[string]any{
			"action":     "REQUEST_STATUS_UPDATE",
			"request_id": v.ID,
			"status":     string(status),
			"pet_name":   v.PetName,
		},
	})
}
