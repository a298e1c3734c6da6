package repository

import (
	"context"

	"petcare/internal/model"
)

// PetRepository defines data access for pet profiles.
// Methods taking ownerID only see that owner's pets.
type PetRepository interface {
	Create(ctx context.Context, p *model.Pet) (*model.Pet, error)
	FindByID(ctx context.Context, id string) (*model.Pet, error)
	FindOwned(ctx context.Context, id, ownerID string) (*model.Pet, error)
	FindOwnedByName(ctx context.Context, ownerID, name string) (*model.Pet, error)
	FindProfileByQRToken(ctx context.Context, token string) (*model.PetProfile, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Pet, error)
	Update(ctx context.Context, p *model.Pet) (*model.Pet, error)
	TransferOwnership(ctx context.Context, petID, newOwnerID string) error
	Delete(ctx context.Context, id, ownerID string) error
}

// PostRepository manages one marketplace (adoption or mating).
type PostRepository interface {
	Create(ctx context.Context, petID, ownerMessage string) (*model.Post, error)
	ExistsForPet(ctx context.Context, petID string) (bool, error)
	DeleteByPet(ctx context.Context, petID string) error
	// List returns listed pets, newest post first, with their vaccinations.
	List(ctx context.Context, f model.PetFilter) ([]model.MarketplacePet, error)
	GetByPet(ctx context.Context, petID string) (*model.MarketplacePet, error)
}

// RequestRepository defines data access for mate and adoption requests.
type RequestRepository interface {
	Create(ctx context.Context, r *model.InteractionRequest) (*model.InteractionRequest, error)
	FindByID(ctx context.Context, id string) (*model.RequestView, error)
	HasPending(ctx context.Context, senderID, petID string) (bool, error)
	ListInbox(ctx context.Context, receiverID string) ([]model.RequestView, error)
	ListSent(ctx context.Context, senderID string) ([]model.RequestView, error)
	UpdateStatus(ctx context.Context, id string, status model.RequestStatus, response string) error
	Delete(ctx context.Context, id string) error
	DeleteByPet(ctx context.Context, petID string) error
}
