package auth

type SignupRequest struct {
	LastName  string `json:"nom" binding:"required,notblank,max=100"`
	FirstName string `json:"prenom" binding:"required,notblank,max=100"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=8,max=64"`
}

type SignupResponse struct {
	ID uint32 `json:"id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=64"`
}

type LoginResponse struct {
	MemberID     uint32 `json:"adherentId"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
