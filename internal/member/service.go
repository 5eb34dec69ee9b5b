package member

import (
	"context"
	"errors"
	"fmt"

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

func (s *MemberService) GetProfile(ctx context.Context, memberID uint32) (*ProfileResponse, error) {
	member, err := s.memberRepository.FindByID(ctx, s.db, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("member lookup memberID=%d: %w", memberID, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("member lookup: %w", err)
	}

	return toProfileResponse(member), nil
}
