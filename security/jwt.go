package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"chat-backend/config/common"
	"chat-backend/entity"
)

type JWT struct {
	config *common.Config
}

func NewJWT(config *common.Config) *JWT {
	return &JWT{config: config}
}

func (j *JWT) GenerateToken(user *entity.User) (string, error) {
	secretKey := j.config.GetJwtConfig()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"jti":     uuid.New().String(),
		"aud":     "chat-backend",
		"iss":     "chat-backend",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 1).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(secretKey)
}

func (j *JWT) VerifyJwtToken(token string) (jwt.MapClaims, error) {
	secretKey := j.config.GetJwtConfig()

	tokenParse, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := tokenParse.Claims.(jwt.MapClaims); ok && tokenParse.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}

func (j *JWT) GetUserIdFromToken(token string) (uint, error) {
	claims, err := j.VerifyJwtToken(token)
	if err != nil {
		return 0, err
	}

	// numeric claims decode as float64
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, jwt.ErrInvalidKey
	}

	return uint(userID), nil
}
