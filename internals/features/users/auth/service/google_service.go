package service

import (
	"errors"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
)

var ErrInvalidGoogleToken = errors.New("invalid google id token")

// GoogleIdentity is the subset of the verified ID-token claims we keep.
type GoogleIdentity struct {
	Sub   string
	Email string
	Name  string
}

// VerifyGoogleIDToken checks the token signature and audience, then decodes
// the identity claims.
func VerifyGoogleIDToken(idToken, clientID string) (*GoogleIdentity, error) {
	if clientID == "" {
		return nil, errors.New("google client id not configured")
	}

	verifier := googleAuthIDTokenVerifier.Verifier{}
	if err := verifier.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return nil, ErrInvalidGoogleToken
	}

	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, ErrInvalidGoogleToken
	}
	if claims.Email == "" {
		return nil, ErrInvalidGoogleToken
	}

	return &GoogleIdentity{
		Sub:   claims.Sub,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
