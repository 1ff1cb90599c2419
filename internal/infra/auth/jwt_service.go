// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rsa"
	"time"

	"gazette/config"
	"gazette/internal/domain/entity"
	domainerrors "gazette/internal/domain/errors"
	"gazette/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtSigner mints and verifies access tokens. It signs RS256 when an RSA
// key pair is configured, which lets resource servers verify tokens with
// the public key alone, and falls back to HS256 with a shared secret for
// local operation.
type jwtSigner struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	secret     []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
}

// newJWTSigner builds the signer from config. At least one of the RSA key
// pair or the shared secret must be present.
func newJWTSigner(cfg *config.Config) (*jwtSigner, error) {
	if cfg.JWT == nil {
		return nil, domainerrors.ErrConfiguration.WrapMessage("jwt configuration missing")
	}

	signer := &jwtSigner{
		secret:    []byte(cfg.JWT.Secret),
		issuer:    cfg.JWT.Issuer,
		audience:  cfg.JWT.Audience,
		accessTTL: cfg.JWT.AccessTTL,
	}

	if cfg.JWT.PrivateKey != "" {
		privateKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse jwt private key")
		}
		signer.privateKey = privateKey
		signer.publicKey = &privateKey.PublicKey
	}
	if signer.publicKey == nil && cfg.JWT.PublicKey != "" {
		publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.JWT.PublicKey))
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse jwt public key")
		}
		signer.publicKey = publicKey
	}

	if signer.privateKey == nil && len(signer.secret) == 0 {
		return nil, domainerrors.ErrConfiguration.WrapMessage("neither jwt private key nor secret configured")
	}

	return signer, nil
}

// Sign creates a signed access token for the user.
func (s *jwtSigner) Sign(user *entity.User) (string, error) {
	now := time.Now()
	claims := &service.AccessClaims{
		Email:    user.Email,
		Role:     user.RoleName(),
		Provider: user.AuthProvider.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	if s.privateKey != nil {
		token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)

		signed, err := token.SignedString(s.privateKey)
		if err != nil {
			return "", errors.Wrap(err, "failed to sign access token")
		}

		return signed, nil
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Verify parses and validates an access token and returns its claims.
func (s *jwtSigner) Verify(tokenString string) (*service.AccessClaims, error) {
	claims := &service.AccessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, errors.New("access token is not valid")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in access token")
	}
	claims.UserID = userID

	return claims, nil
}

// keyFunc pins the expected signing method to the configured key material.
func (s *jwtSigner) keyFunc(token *jwt.Token) (any, error) {
	if s.publicKey != nil {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.publicKey, nil
	}

	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	return s.secret, nil
}

// AccessTTL returns the configured access token lifetime.
func (s *jwtSigner) AccessTTL() time.Duration {
	return s.accessTTL
}
