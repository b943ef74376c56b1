// service/auth/auth_service_test.go
package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	jwtutil "bookexchange/util/jwt"
)

func TestIssueToken_Success(t *testing.T) {
	svc := New("client-1", "test-secret")

	tok, err := svc.IssueToken(context.Background(), "client-1")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := jwtutil.ParseAuth("Bearer "+tok, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "client-1", claims["sub"])
}

func TestIssueToken_WrongClient(t *testing.T) {
	svc := New("client-1", "test-secret")

	_, err := svc.IssueToken(context.Background(), "someone-else")
	require.Error(t, err)
	require.Equal(t, ErrInvalidClient, Code(err))
}

func TestIssueToken_EmptyClient(t *testing.T) {
	svc := New("client-1", "test-secret")

	_, err := svc.IssueToken(context.Background(), "")
	require.Error(t, err)
	require.Equal(t, ErrBadInput, Code(err))
}

func TestCodeExtractor(t *testing.T) {
	require.Equal(t, ErrInvalidClient, Code(makeErr(ErrInvalidClient)))
	require.Equal(t, ErrCode(""), Code(errors.New("plain")))
}
