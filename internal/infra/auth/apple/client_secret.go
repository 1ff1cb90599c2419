package apple

import (
	"crypto/ecdsa"
	"time"

	domainerrors "gazette/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// appleAudience is the fixed audience for client secret assertions.
const appleAudience = "https://appleid.apple.com"

// clientSecretTTL keeps the assertion well under Apple's 180-day ceiling
// while remaining long enough to be minted per exchange without clock skew
// trouble.
const clientSecretTTL = 5 * time.Minute

// clientSecretSigner mints the ES256 assertion Apple requires in place of a
// static client secret.
type clientSecretSigner struct {
	teamID     string
	keyID      string
	servicesID string
	privateKey *ecdsa.PrivateKey
}

func newClientSecretSigner(teamID, keyID, servicesID, privateKeyPEM string) (*clientSecretSigner, error) {
	if teamID == "" || keyID == "" || servicesID == "" || privateKeyPEM == "" {
		return nil, domainerrors.ErrConfiguration.WrapMessage("incomplete apple sign-in configuration")
	}

	privateKey, err := jwt.ParseECPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse apple private key")
	}

	return &clientSecretSigner{
		teamID:     teamID,
		keyID:      keyID,
		servicesID: servicesID,
		privateKey: privateKey,
	}, nil
}

// Sign produces a fresh client secret assertion for one token exchange.
func (s *clientSecretSigner) Sign(now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.RegisteredClaims{
		Issuer:    s.teamID,
		Subject:   s.servicesID,
		Audience:  jwt.ClaimStrings{appleAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(clientSecretTTL)),
	})
	token.Header["kid"] = s.keyID

	signed, err := token.SignedString(s.privateKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign apple client secret")
	}

	return signed, nil
}
