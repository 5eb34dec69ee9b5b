package member

import "github.com/ecomshop/shop-api/internal/model"

type ProfileResponse struct {
	ID        uint32 `json:"id"`
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Email     string `json:"email"`
}

func toProfileResponse(m *model.Member) *ProfileResponse {
	return &ProfileResponse{
		ID:        m.ID,
		LastName:  m.LastName,
		FirstName: m.FirstName,
		Email:     m.Email,
	}
}
