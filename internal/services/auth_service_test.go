package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/dto"
	"postboard/internal/testutil"
	"postboard/internal/validation"
)

func TestRegisterAndLogin(t *testing.T) {
	d := Deps{Store: testutil.NewStore(t), Logger: testutil.Logger()}
	auth := NewAuthService(d, "secret", time.Hour)
	ctx := context.Background()

	u, err := auth.Register(ctx, dto.RegisterReq{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = auth.Register(ctx, dto.RegisterReq{Username: "alice", Password: "another-pass"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = auth.Register(ctx, dto.RegisterReq{Username: "al", Password: "short"})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "username")
	assert.Contains(t, verrs, "password")

	_, err = auth.Login(ctx, dto.LoginReq{Username: "alice", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Login(ctx, dto.LoginReq{Username: "bob", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	tok, err := auth.Login(ctx, dto.LoginReq{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.Equal(t, u.ID, tok.User)

	var claims Claims
	_, err = jwt.ParseWithClaims(tok.AccessToken, &claims, func(*jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UID)
	assert.Equal(t, u.ID, claims.Subject)
}
