package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/onemapafrica/member-hub-api/internal/model"
	"github.com/onemapafrica/member-hub-api/internal/shared/database"
	"github.com/onemapafrica/member-hub-api/internal/shared/logger"
	"gorm.io/gorm"
)

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
	}
}

func (s *MemberService) Create(ctx context.Context, request *CreateMemberRequest) (*MemberResponse, error) {
	log := logger.FromContext(ctx)

	var response *MemberResponse
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.memberRepository.IsExist(ctx, tx, request.Email)
		if err != nil {
			return fmt.Errorf("check member existence: %w", err)
		}
		if exists {
			log.Warn("member already exists", "email", logger.MaskEmail(request.Email))
			return fmt.Errorf("email taken: %w", ErrMemberAlreadyExists)
		}

		membershipID, err := s.allocateMembershipID(ctx, tx)
		if err != nil {
			return fmt.Errorf("allocate membership id: %w", err)
		}

		status := request.Status
		if status == "" {
			status = model.MemberStatusPending
		}
		role := request.Role
		if role == "" {
			role = model.RoleMember
		}

		member := &model.Member{
			MembershipID:     membershipID,
			FirstName:        request.FirstName,
			LastName:         request.LastName,
			Email:            request.Email,
			Phone:            request.Phone,
			Address:          request.Address,
			Country:          request.Country,
			Status:           status,
			Role:             role,
			PhotoURL:         request.PhotoURL,
			DateOfBirth:      request.DateOfBirth,
			Occupation:       request.Occupation,
			EmergencyContact: request.EmergencyContact,
		}
		if err := s.memberRepository.Create(ctx, tx, member); err != nil {
			return fmt.Errorf("create member: %w", err)
		}

		log.Info("member created", "membership_id", membershipID,
			"email", logger.MaskEmail(request.Email))
		response = NewMemberResponse(member)
		return nil
	})

	if err != nil {
		return nil, err
	}
	return response, nil
}

// allocateMembershipID assigns the next OMA-NNNNNN serial inside the
// registration transaction.
func (s *MemberService) allocateMembershipID(ctx context.Context, tx *gorm.DB) (string, error) {
	count, err := s.memberRepository.Count(ctx, tx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("OMA-%06d", count+1), nil
}

// Get returns the member together with the current card, if any.
func (s *MemberService) Get(ctx context.Context, memberID uint32) (*MemberDetailResponse, error) {
	member, err := s.memberRepository.FindByID(ctx, s.db, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("member %d: %w", memberID, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("find member: %w", err)
	}

	detail := &MemberDetailResponse{Member: NewMemberResponse(member)}

	card, err := s.memberRepository.FindCurrentCard(ctx, s.db, memberID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find current card: %w", err)
		}
		// No card yet - the detail view simply omits it.
		return detail, nil
	}

	detail.Card = newCardSummary(card)
	return detail, nil
}

func (s *MemberService) List(ctx context.Context, request *ListMembersRequest) (*ListMembersResponse, error) {
	offset := (request.Page - 1) * request.Limit

	members, total, err := s.memberRepository.List(ctx, s.db, request.Search, request.Status, offset, request.Limit)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	responses := make([]MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, *NewMemberResponse(&members[i]))
	}

	return &ListMembersResponse{
		Members: responses,
		Total:   total,
		Page:    request.Page,
		Limit:   request.Limit,
	}, nil
}

func (s *MemberService) Update(ctx context.Context, memberID uint32, request *UpdateMemberRequest) (*MemberResponse, error) {
	log := logger.FromContext(ctx)

	var response *MemberResponse
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.memberRepository.FindByID(ctx, tx, memberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("member %d: %w", memberID, ErrMemberNotFound)
			}
			return fmt.Errorf("find member: %w", err)
		}

		if request.Email != nil && *request.Email != member.Email {
			exists, err := s.memberRepository.IsExist(ctx, tx, *request.Email)
			if err != nil {
				return fmt.Errorf("check member existence: %w", err)
			}
			if exists {
				return fmt.Errorf("email taken: %w", ErrMemberAlreadyExists)
			}
			member.Email = *request.Email
		}

		applyUpdate(member, request)

		if err := s.memberRepository.Update(ctx, tx, member); err != nil {
			return fmt.Errorf("update member: %w", err)
		}

		log.Info("member updated", "member_id", memberID)
		response = NewMemberResponse(member)
		return nil
	})

	if err != nil {
		return nil, err
	}
	return response, nil
}

func applyUpdate(member *model.Member, request *UpdateMemberRequest) {
	if request.FirstName != nil {
		member.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		member.LastName = *request.LastName
	}
	if request.Phone != nil {
		member.Phone = *request.Phone
	}
	if request.Address != nil {
		member.Address = *request.Address
	}
	if request.Country != nil {
		member.Country = *request.Country
	}
	if request.Status != nil {
		member.Status = *request.Status
	}
	if request.Role != nil {
		member.Role = *request.Role
	}
	if request.PhotoURL != nil {
		member.PhotoURL = *request.PhotoURL
	}
	if request.DateOfBirth != nil {
		member.DateOfBirth = request.DateOfBirth
	}
	if request.Occupation != nil {
		member.Occupation = *request.Occupation
	}
	if request.EmergencyContact != nil {
		member.EmergencyContact = *request.EmergencyContact
	}
}

func (s *MemberService) Delete(ctx context.Context, memberID uint32) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.memberRepository.FindByID(ctx, tx, memberID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("member %d: %w", memberID, ErrMemberNotFound)
			}
			return fmt.Errorf("find member: %w", err)
		}

		if err := s.memberRepository.Delete(ctx, tx, memberID); err != nil {
			return fmt.Errorf("delete member: %w", err)
		}

		log.Info("member deleted", "member_id", memberID)
		return nil
	})
}
