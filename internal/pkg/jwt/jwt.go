package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies access tokens issued by the identity provider. Tokens are HS256
// with the user id in "sub"; "exp" is enforced with a small clock skew allowance.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	// GenerateAccessToken signs a token with the shared secret. The IdP issues real
	// tokens; this exists for local tooling and tests.
	GenerateAccessToken(userID string, ttl time.Duration) (token string, expiresAt int64, err error)
}

type JWTService struct {
	audience  string
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, audience string) Service {
	opts := []jwt.ValidateOption{jwt.WithAcceptableSkew(30 * time.Second)}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	return &JWTService{
		audience:  audience,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, opts...),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, ttl time.Duration) (token string, expiresAt int64, err error) {
	now := time.Now()
	expiresAt = now.Add(ttl).Unix()

	claims := map[string]interface{}{
		jwt.SubjectKey:    userID,
		jwt.IssuedAtKey:   now.Unix(),
		jwt.ExpirationKey: expiresAt,
	}
	if j.audience != "" {
		claims[jwt.AudienceKey] = j.audience
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}
