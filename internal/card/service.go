package card

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/onemapafrica/member-hub-api/internal/config"
	"github.com/onemapafrica/member-hub-api/internal/member"
	"github.com/onemapafrica/member-hub-api/internal/model"
	"github.com/onemapafrica/member-hub-api/internal/qr"
	"github.com/onemapafrica/member-hub-api/internal/shared/database"
	"github.com/onemapafrica/member-hub-api/internal/shared/logger"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// VerificationCache is told which identifiers went stale after a card state
// change, so cached verification results never outlive the state they
// describe.
type VerificationCache interface {
	Invalidate(identifiers ...string)
}

// CardService owns the card state machine:
// NO_CARD -> (generate) -> ACTIVE <-> (revoke/reactivate) -> INACTIVE.
// Cards are never deleted; every transition is recorded as a CardEvent.
type CardService struct {
	db                *gorm.DB
	cardRepository    *CardRepository
	memberRepository  *member.MemberRepository
	codec             *qr.Codec
	validityYears     int
	verificationCache VerificationCache

	// group collapses concurrent duplicate submissions of the same mutating
	// operation (double-clicked generate, racing revokes) into one execution.
	group singleflight.Group
}

func NewCardService(db *gorm.DB, cfg *config.Config, cardRepository *CardRepository, memberRepository *member.MemberRepository, codec *qr.Codec, verificationCache VerificationCache) *CardService {
	return &CardService{
		db:                db,
		cardRepository:    cardRepository,
		memberRepository:  memberRepository,
		codec:             codec,
		validityYears:     cfg.Card.ValidityYears,
		verificationCache: verificationCache,
	}
}

// invalidateVerification drops verification results cached under the given
// identifiers. Called only after the owning transaction has committed.
func (s *CardService) invalidateVerification(identifiers ...string) {
	if s.verificationCache == nil || len(identifiers) == 0 {
		return
	}
	s.verificationCache.Invalidate(identifiers...)
}

// Generate issues a new card for the member. Precondition: the member exists
// and holds no card yet. The serial, expiry and QR payload are all assigned
// inside one transaction.
func (s *CardService) Generate(ctx context.Context, memberID uint32) (*CardResponse, error) {
	v, err, _ := s.group.Do(fmt.Sprintf("generate:%d", memberID), func() (interface{}, error) {
		return s.generate(ctx, memberID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*CardResponse), nil
}

func (s *CardService) generate(ctx context.Context, memberID uint32) (*CardResponse, error) {
	log := logger.FromContext(ctx)

	var response *CardResponse
	var membershipID string
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		holder, err := s.memberRepository.FindByID(ctx, tx, memberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("card generation rejected - member not found", "member_id", memberID)
				return fmt.Errorf("member %d: %w", memberID, member.ErrMemberNotFound)
			}
			return fmt.Errorf("find member: %w", err)
		}
		membershipID = holder.MembershipID

		// One card per member, ever. Revoked cards are reactivated, not reissued.
		if _, err := s.cardRepository.FindByMemberID(ctx, tx, memberID); err == nil {
			log.Warn("card generation rejected - card already exists", "member_id", memberID)
			return fmt.Errorf("member %d: %w", memberID, ErrGenerationFailed)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check existing card: %w", err)
		}

		now := time.Now().UTC()
		serial, err := s.allocateSerial(ctx, tx, now)
		if err != nil {
			return fmt.Errorf("allocate serial: %w", err)
		}

		qrDataURI, err := s.codec.EncodeDataURI(serial)
		if err != nil {
			return fmt.Errorf("render qr: %w", err)
		}

		card := &model.Card{
			CardID:     serial,
			MemberID:   memberID,
			IssueDate:  now,
			ExpiryDate: now.AddDate(s.validityYears, 0, 0),
			IsActive:   true,
			QRCodeURL:  qrDataURI,
		}
		if err := s.cardRepository.Create(ctx, tx, card); err != nil {
			return fmt.Errorf("create card: %w", err)
		}

		log.Info("card issued", "member_id", memberID, "card_id", serial,
			"expiry", card.ExpiryDate.Format(time.RFC3339))
		response = NewCardResponse(card)
		return nil
	})

	if err != nil {
		return nil, err
	}
	// A NOT_FOUND verdict cached before issuance must not mask the new card.
	s.invalidateVerification(response.CardID, membershipID)
	return response, nil
}

// allocateSerial builds the next OMA-<year>-<seq> serial inside the issuing
// transaction, so concurrent issuance cannot hand out the same serial.
func (s *CardService) allocateSerial(ctx context.Context, tx *gorm.DB, now time.Time) (string, error) {
	count, err := s.cardRepository.CountSerialsForYear(ctx, tx, now.Year())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("OMA-%d-%03d", now.Year(), count+1), nil
}

// Revoke flips an active card to inactive and records the reason. Revoking a
// card that is already inactive succeeds and returns the current state
// without writing a second event.
func (s *CardService) Revoke(ctx context.Context, cardID, reason, details string) (*CardResponse, error) {
	if err := validateReason(RevokeReasons, reason, details); err != nil {
		return nil, fmt.Errorf("revoke %s: %w", cardID, err)
	}

	v, err, _ := s.group.Do("revoke:"+cardID, func() (interface{}, error) {
		return s.transition(ctx, cardID, model.CardActionRevoke, reason, details)
	})
	if err != nil {
		return nil, err
	}
	return v.(*CardResponse), nil
}

// Reactivate flips an inactive card back to active. Reactivating an already
// active card is rejected so a reason record can never double-apply.
func (s *CardService) Reactivate(ctx context.Context, cardID, reason, details string) (*CardResponse, error) {
	if err := validateReason(ReactivateReasons, reason, details); err != nil {
		return nil, fmt.Errorf("reactivate %s: %w", cardID, err)
	}

	v, err, _ := s.group.Do("reactivate:"+cardID, func() (interface{}, error) {
		return s.transition(ctx, cardID, model.CardActionReactivate, reason, details)
	})
	if err != nil {
		return nil, err
	}
	return v.(*CardResponse), nil
}

func (s *CardService) transition(ctx context.Context, cardID, action, reason, details string) (*CardResponse, error) {
	log := logger.FromContext(ctx)

	var response *CardResponse
	var stale []string
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		card, err := s.cardRepository.FindByCardID(ctx, tx, cardID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("card transition rejected - card not found", "card_id", cardID, "action", action)
				return fmt.Errorf("card %s: %w", cardID, ErrCardNotFound)
			}
			return fmt.Errorf("find card: %w", err)
		}

		targetActive := action == model.CardActionReactivate

		if card.IsActive == targetActive {
			if targetActive {
				log.Warn("reactivate rejected - card already active", "card_id", cardID)
				return fmt.Errorf("card %s: %w", cardID, ErrCardAlreadyActive)
			}
			// Idempotent revoke: surface the current state, no duplicate event.
			log.Info("revoke no-op - card already inactive", "card_id", cardID)
			response = NewCardResponse(card)
			return nil
		}

		if err := s.cardRepository.SetActive(ctx, tx, card.ID, targetActive); err != nil {
			return fmt.Errorf("update card state: %w", err)
		}

		event := &model.CardEvent{
			CardID:  card.ID,
			Action:  action,
			Reason:  reason,
			Details: details,
		}
		if err := s.cardRepository.CreateEvent(ctx, tx, event); err != nil {
			return fmt.Errorf("record card event: %w", err)
		}

		stale = []string{card.CardID}
		holder, err := s.memberRepository.FindByID(ctx, tx, card.MemberID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("find card holder: %w", err)
		}
		if holder != nil {
			stale = append(stale, holder.MembershipID)
		}

		card.IsActive = targetActive
		log.Info("card state changed", "card_id", cardID, "action", action, "reason", reason)
		response = NewCardResponse(card)
		return nil
	})

	if err != nil {
		return nil, err
	}
	s.invalidateVerification(stale...)
	return response, nil
}

// GetByCardID returns a card by its printed serial.
func (s *CardService) GetByCardID(ctx context.Context, cardID string) (*CardResponse, error) {
	card, err := s.cardRepository.FindByCardID(ctx, s.db, cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("card %s: %w", cardID, ErrCardNotFound)
		}
		return nil, fmt.Errorf("find card: %w", err)
	}
	return NewCardResponse(card), nil
}
