package model

import "time"

// RequestType is what the sender is asking the pet owner for.
type RequestType string

const (
	RequestMate     RequestType = "Mate"
	RequestAdoption RequestType = "Adoption"
)

// Valid reports whether t is a known request type.
func (t RequestType) Valid() bool {
	return t == RequestMate || t == RequestAdoption
}

// RequestStatus tracks the owner's decision.
type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusAccepted RequestStatus = "Accepted"
	StatusRejected RequestStatus = "Rejected"
)

// InteractionRequest is a mate or adoption request sent to a pet owner.
type InteractionRequest struct {
	ID                   string        `json:"id"`
	SenderID             string        `json:"sender_id"`
	ReceiverID           string        `json:"receiver_id"`
	PetID                string        `json:"pet_id"`
	RequestType          RequestType   `json:"request_type"`
	Message              string        `json:"message"`
	AttachedFile         string        `json:"attached_file"`
	Status               RequestStatus `json:"status"`
	OwnerResponseMessage string        `json:"owner_response_message"`
	CreatedAt            time.Time     `json:"created_at"`
}

// RequestView is an InteractionRequest joined with sender and pet details.
type RequestView struct {
	InteractionRequest
	PetName        string `json:"pet_name"`
	SenderFirst    string `json:"-"`
	SenderLast     string `json:"-"`
	SenderLocation string `json:"-"`
	SenderPhone    string `json:"-"`
}

// Summary renders the one-line inbox description.
func (v RequestView) Summary() string {
	verb := "mate"
	if v.RequestType == RequestAdoption {
		verb = "adopt"
	}
	return "Requesting to " + verb + " " + v.PetName
}
