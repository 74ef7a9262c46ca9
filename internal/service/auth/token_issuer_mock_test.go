package auth

import (
	"sync"
	"time"
)

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	GenerateAccessTokenFunc func(subject string, role string) (string, time.Time, error)
	ValidateAccessTokenFunc func(token string) (string, string, error)

	calls struct {
		GenerateAccessToken []struct {
			Subject string
			Role    string
		}
		ValidateAccessToken []struct {
			Token string
		}
	}
	lockGenerateAccessToken sync.RWMutex
	lockValidateAccessToken sync.RWMutex
}

func (mock *tokenIssuerMock) GenerateAccessToken(subject string, role string) (string, time.Time, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenIssuerMock.GenerateAccessTokenFunc: method is nil but tokenIssuer.GenerateAccessToken was just called")
	}
	callInfo := struct {
		Subject string
		Role    string
	}{
		Subject: subject,
		Role:    role,
	}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(subject, role)
}

func (mock *tokenIssuerMock) GenerateAccessTokenCalls() []struct {
	Subject string
	Role    string
} {
	var calls []struct {
		Subject string
		Role    string
	}
	mock.lockGenerateAccessToken.RLock()
	calls = mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *tokenIssuerMock) ValidateAccessToken(token string) (string, string, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("tokenIssuerMock.ValidateAccessTokenFunc: method is nil but tokenIssuer.ValidateAccessToken was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *tokenIssuerMock) ValidateAccessTokenCalls() []struct {
	Token string
} {
	var calls []struct {
		Token string
	}
	mock.lockValidateAccessToken.RLock()
	calls = mock.calls.ValidateAccessToken
	mock.lockValidateAccessToken.RUnlock()
	return calls
}
