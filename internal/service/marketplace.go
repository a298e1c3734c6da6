package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"petcare/internal/model"
	"petcare/internal/repository"
)

// DefaultListLimit is the page size of marketplace listings.
const DefaultListLimit = 20

// PostInput lists a pet. Exactly one of PetID or NewPet must be set.
type PostInput struct {
	PetID        string
	NewPet       *PetInput
	OwnerMessage string
}

// MarketplaceService manages one marketplace (adoption or mating).
type MarketplaceService interface {
	List(ctx context.Context, f model.PetFilter) ([]model.MarketplacePet, error)
	Create(ctx context.Context, ownerID string, in PostInput) (*model.MarketplacePet, error)
	Withdraw(ctx context.Context, ownerID, petID string) error
}

// MarketplaceDeps groups the collaborators of a MarketplaceService.
type MarketplaceDeps struct {
	Kind    model.PostKind
	Posts   repository.PostRepository
	Pets    repository.PetRepository
	Tx      TxRunner
	Rewards RewardService
	BaseURL string
	Log     *zap.Logger
}

type marketplaceService struct {
	MarketplaceDeps
	activity string
	now      func() time.Time
}

func NewMarketplaceService(d MarketplaceDeps) MarketplaceService {
	activity := model.ActivityAdoptionPost
	if d.Kind == model.PostMating {
		activity = model.ActivityMatingPost
	}
	d.BaseURL = strings.TrimRight(d.BaseURL, "/")
	return &marketplaceService{MarketplaceDeps: d, activity: activity, now: time.Now}
}

func (s *marketplaceService) List(ctx context.Context, f model.PetFilter) ([]model.MarketplacePet, error) {
	f = f.Normalize()
	if s.Kind == model.PostMating {
		// mating listings filter on gender only
		f = model.PetFilter{PetGender: f.PetGender, Limit: f.Limit, Offset: f.Offset}
	}
	if f.PetColor != "" && !model.ValidPetColor(f.PetColor) {
		return nil, validation("pet_color must be one of %s", strings.Join(model.PetColors, ", "))
	}
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	items, err := s.Posts.List(ctx, f)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range items {
		items[i].Age = model.Pet{PetBirthday: items[i].PetBirthday}.Age(now)
	}
	return items, nil
}

func (s *marketplaceService) Create(ctx context.Context, ownerID string, in PostInput) (*model.MarketplacePet, error) {
	hasPet, hasNew := in.PetID != "", in.NewPet != nil
	if hasPet == hasNew {
		return nil, validation("provide either pet_id or new pet details")
	}

	var post *model.Post
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		petID := in.PetID
		if hasPet {
			if _, err := s.Pets.FindOwned(ctx, petID, ownerID); err != nil {
				return notFound(err, "pet")
			}
			exists, err := s.Posts.ExistsForPet(ctx, petID)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("%w: pet is already listed for %s", ErrConflict, s.Kind)
			}
		} else {
			p, err := newPet(s.BaseURL, ownerID, *in.NewPet)
			if err != nil {
				return err
			}
			created, err := s.Pets.Create(ctx, p)
			if err != nil {
				return err
			}
			petID = created.ID
		}

		var err error
		post, err = s.Posts.Create(ctx, petID, strings.TrimSpace(in.OwnerMessage))
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.Rewards != nil {
		_, err := s.Rewards.Award(ctx, ownerID, s.activity, post.ID, fmt.Sprintf("Listed a pet for %s", s.Kind))
		if err != nil && !errors.Is(err, ErrAlreadyAwarded) {
			s.Log.Warn("marketplace reward failed", zap.String("post_id", post.ID), zap.Error(err))
		}
	}

	item, err := s.Posts.GetByPet(ctx, post.PetID)
	if err != nil {
		return nil, notFound(err, "listing")
	}
	item.Age = model.Pet{PetBirthday: item.PetBirthday}.Age(s.now())
	return item, nil
}

func (s *marketplaceService) Withdraw(ctx context.Context, ownerID, petID string) error {
	if _, err := s.Pets.FindOwned(ctx, petID, ownerID); err != nil {
		return notFound(err, "pet")
	}
	return notFound(s.Posts.DeleteByPet(ctx, petID), "listing")
}
