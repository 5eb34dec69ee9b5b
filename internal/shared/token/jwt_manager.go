package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ecomshop/shop-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("token: invalid token")
	ErrExpiredToken  = errors.New("token: expired token")
	ErrInvalidClaims = errors.New("token: invalid claims")
)

type Type string

const (
	Access  Type = "access"
	Refresh Type = "refresh"
)

// Role is the closed set of user kinds a token can be issued for.
type Role string

const (
	RoleAdherent Role = "ADHERENT"
)

type Claims struct {
	MemberID  uint32 `json:"member_id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	TokenType Type   `json:"token_type"`
	jwt.RegisteredClaims
}

type Pair struct {
	AccessToken  string
	RefreshToken string
}

type Manager interface {
	GeneratePair(memberID uint32, email string, role Role) (*Pair, error)
	ValidateToken(tokenString string, expected Type) (*Claims, error)
}

type JWTManager struct {
	secret        []byte
	issuer        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	now           func() time.Time
}

func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{
		secret:        []byte(cfg.JWT.Secret),
		issuer:        cfg.App.Name,
		accessExpiry:  cfg.JWT.Expiry,
		refreshExpiry: cfg.JWT.RefreshExpiry,
		now:           time.Now,
	}
}

func (m *JWTManager) GeneratePair(memberID uint32, email string, role Role) (*Pair, error) {
	access, err := m.sign(memberID, email, role, Access, m.accessExpiry)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := m.sign(memberID, email, role, Refresh, m.refreshExpiry)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func (m *JWTManager) sign(memberID uint32, email string, role Role, tokenType Type, ttl time.Duration) (string, error) {
	now := m.now()

	claims := Claims{
		MemberID:  memberID,
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(memberID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ValidateToken parses tokenString and checks that it is of the expected type.
func (m *JWTManager) ValidateToken(tokenString string, expected Type) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.MemberID == 0 || claims.TokenType != expected {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
