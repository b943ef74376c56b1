package auth

import (
	"context"
	"errors"
	"time"

	jwtutil "bookexchange/util/jwt"
)

type ErrCode string

const (
	ErrBadInput      ErrCode = "BAD_INPUT"
	ErrInvalidClient ErrCode = "INVALID_CLIENT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

const tokenTTL = time.Hour

type Service interface {
	// IssueToken exchanges the pre-shared client identifier for a bearer token.
	IssueToken(ctx context.Context, clientID string) (string, error)
}

type service struct {
	clientID string
	secret   string
}

func New(clientID, secret string) Service {
	return &service{clientID: clientID, secret: secret}
}

func (s *service) IssueToken(_ context.Context, clientID string) (string, error) {
	if clientID == "" {
		return "", makeErr(ErrBadInput)
	}
	if clientID != s.clientID {
		return "", makeErr(ErrInvalidClient)
	}
	return jwtutil.Issue(s.secret, clientID, tokenTTL)
}
