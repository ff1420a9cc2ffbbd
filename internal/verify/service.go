package verify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/onemapafrica/member-hub-api/internal/card"
	"github.com/onemapafrica/member-hub-api/internal/member"
	"github.com/onemapafrica/member-hub-api/internal/model"
	"github.com/onemapafrica/member-hub-api/internal/shared/logger"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

const (
	// Verification is public and read-only; results may be served up to
	// cacheTTL stale for identifiers whose card has not changed state. The
	// card service calls Invalidate on every transition, so a revoke is
	// visible on the very next scan.
	cacheTTL     = 10 * time.Second
	cacheCleanup = time.Minute
)

// VerificationService resolves an identifier to a classified card.
// Resolution is by card serial first, falling back to membership id so QR
// codes printed by older client versions keep scanning.
type VerificationService struct {
	db               *gorm.DB
	cardRepository   *card.CardRepository
	memberRepository *member.MemberRepository
	cache            *gocache.Cache
}

func NewVerificationService(db *gorm.DB, cardRepository *card.CardRepository, memberRepository *member.MemberRepository) *VerificationService {
	return &VerificationService{
		db:               db,
		cardRepository:   cardRepository,
		memberRepository: memberRepository,
		cache:            gocache.New(cacheTTL, cacheCleanup),
	}
}

// Verify classifies the card behind the identifier. NOT_FOUND is a
// classification, not an error: the response always carries a status.
func (s *VerificationService) Verify(ctx context.Context, identifier string) (*VerificationResponse, error) {
	if cached, ok := s.cache.Get(identifier); ok {
		return cached.(*VerificationResponse), nil
	}

	resolved, holder, err := s.resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	status := Classify(resolved, now)

	response := &VerificationResponse{
		IsValid: status == StatusValid,
		Status:  status,
	}
	if resolved != nil {
		response.Card = card.NewCardResponse(resolved)
	}
	if holder != nil {
		response.Member = member.NewMemberResponse(holder)
	}

	logger.FromContext(ctx).Info("card verification",
		"identifier", identifier, "status", string(status))

	s.cache.Set(identifier, response, gocache.DefaultExpiration)
	return response, nil
}

// Invalidate drops cached results for the given identifiers. Card state
// transitions call this with the card serial and the holder's membership id,
// so a cached VALID cannot outlive a revoke.
func (s *VerificationService) Invalidate(identifiers ...string) {
	for _, identifier := range identifiers {
		s.cache.Delete(identifier)
	}
}

// resolve finds the card and its holder. A nil card with nil error means the
// identifier matched nothing.
func (s *VerificationService) resolve(ctx context.Context, identifier string) (*model.Card, *model.Member, error) {
	resolved, err := s.cardRepository.FindByCardID(ctx, s.db, identifier)
	if err == nil {
		holder, err := s.memberRepository.FindByID(ctx, s.db, resolved.MemberID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("find card holder: %w", err)
		}
		return resolved, holder, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("find card by serial: %w", err)
	}

	// Legacy QR codes encode the membership id instead of the card serial.
	holder, err := s.memberRepository.FindByMembershipID(ctx, s.db, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("find member by membership id: %w", err)
	}

	resolved, err = s.cardRepository.FindByMemberID(ctx, s.db, holder.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("find card by member: %w", err)
	}

	return resolved, holder, nil
}
