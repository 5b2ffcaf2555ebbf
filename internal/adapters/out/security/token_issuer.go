package security

import (
	"time"

	"transportes/internal/core/domain/model/usuario"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity and role grants inside an access token.
type Claims struct {
	jwt.RegisteredClaims
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// JWTTokenIssuer implements ports.TokenIssuer using HMAC-signed JWTs.
type JWTTokenIssuer struct {
	secret   []byte
	issuer   string
	lifetime time.Duration
}

// NewJWTTokenIssuer creates an issuer signing with the given secret.
func NewJWTTokenIssuer(secret []byte, issuer string, lifetime time.Duration) JWTTokenIssuer {
	return JWTTokenIssuer{
		secret:   secret,
		issuer:   issuer,
		lifetime: lifetime,
	}
}

// Issue creates a signed token for the user, valid for the configured
// lifetime from now.
func (i JWTTokenIssuer) Issue(aggregate *usuario.Usuario, now time.Time) (string, error) {
	if err := aggregate.Validate(); err != nil {
		return "", err
	}

	roles := make([]string, 0, len(aggregate.Roles()))
	for _, rol := range aggregate.Roles() {
		roles = append(roles, rol.String())
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   aggregate.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
		},
		Username: aggregate.Username(),
		Roles:    roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Parse validates a signed token and returns its claims.
func (i JWTTokenIssuer) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	return token.Claims.(*Claims), nil
}
