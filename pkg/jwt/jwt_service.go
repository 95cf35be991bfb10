package jwt

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"nutriby-backend/domain"
	"nutriby-backend/internal/utils"
)

type (
	JWTService interface {
		GenerateTokenUser(userID string, role string) string
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserIDByToken(token string) (string, string, error)
		GenerateTokenVerifyEmail(email string, duration time.Duration) (string, error)
		ValidateTokenVerifyEmail(token string) (string, error)
	}

	jwtUserClaim struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "NUTRIBY",
	}
}

func (j *jwtService) GenerateTokenUser(userID string, role string) string {
	claims := jwtUserClaim{
		userID,
		role,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return signed
}

func (j *jwtService) parseToken(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetUserIDByToken(token string) (string, string, error) {
	parsed, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := parsed.Claims.(*jwtUserClaim)
	return claims.UserID, claims.Role, nil
}

func (j *jwtService) GenerateTokenVerifyEmail(email string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(duration).Unix(),
		"iat":   time.Now().Unix(),
		"iss":   j.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) ValidateTokenVerifyEmail(token string) (string, error) {
	parsed, err := jwt.Parse(token, j.parseToken)
	if err != nil || !parsed.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrTokenInvalid
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", domain.ErrTokenInvalid
	}
	return email, nil
}
