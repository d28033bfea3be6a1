package utils

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents JWT claims. Subject carries the user id, ID the jti
// that is persisted for revocation.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken creates a signed bearer token for the user and returns the
// token string together with its jti.
func GenerateToken(userID int64, secret []byte) (string, uuid.UUID, error) {
	jti := uuid.New()

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       jti.String(),
			Subject:  strconv.FormatInt(userID, 10),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", uuid.Nil, err
	}

	return signed, jti, nil
}

// VerifyToken parses and validates a token string.
func VerifyToken(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}

// UserIDFromClaims decodes the subject back into a user id.
func UserIDFromClaims(claims *Claims) (int64, error) {
	return strconv.ParseInt(claims.Subject, 10, 64)
}
