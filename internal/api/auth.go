package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/giakoii/my-store/internal/model"
)

// CheckUserRole запрашивает роль пользователя по номеру телефона до входа.
func (c *Client) CheckUserRole(ctx context.Context, phoneNumber string) (model.UserRoleResponse, error) {
	body := struct {
		PhoneNumber string `json:"phoneNumber"`
	}{PhoneNumber: phoneNumber}

	return request[model.UserRoleResponse](ctx, c, http.MethodPost, "/api/v1/User/user-role", nil, body)
}

type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	ExpiresIn        int64  `json:"expires_in"`
	ErrorDescription string `json:"error_description"`
}

// ExchangeToken обменивает учётные данные на пару токенов.
// Эндпоинт выдачи токена не использует общий конверт: тело запроса кодируется
// как форма, ответ содержит токены либо описание ошибки.
func (c *Client) ExchangeToken(ctx context.Context, req model.LoginRequest) (model.TokenPair, error) {
	form := url.Values{}
	form.Set("grant_type", req.GrantType)
	form.Set("username", req.Username)
	form.Set("password", req.Password)
	form.Set("PhoneNumber", req.PhoneNumber)

	status, data, err := c.send(ctx, http.MethodPost, c.resolveURL("/connect/token"),
		"application/x-www-form-urlencoded;charset=UTF-8", []byte(form.Encode()), nil)
	if err != nil {
		return model.TokenPair{}, err
	}

	var resp tokenResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return model.TokenPair{}, fmt.Errorf("decode token response: %w", ErrMalformedResponse)
	}

	if status < 200 || status > 299 || resp.AccessToken == "" {
		msg := resp.ErrorDescription
		if msg == "" {
			msg = "token exchange failed"
		}
		return model.TokenPair{}, &HTTPError{
			Status:   status,
			Envelope: Envelope[RawPayload]{Message: msg},
		}
	}

	return model.TokenPair{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

// GetSession разрешает текущего пользователя по сохранённому токену.
// Эндпоинт сессии возвращает полезную нагрузку без общего конверта.
func (c *Client) GetSession(ctx context.Context) (model.Session, error) {
	if c.creds == nil {
		return model.Session{}, ErrNoToken
	}
	if _, ok := c.creds.Tokens(); !ok {
		return model.Session{}, ErrNoToken
	}

	status, data, err := c.send(ctx, http.MethodGet, c.resolveURL("/session"), "application/json", nil, nil)
	if err != nil {
		return model.Session{}, err
	}

	if status < 200 || status > 299 {
		httpErr := &HTTPError{Status: status}
		_ = json.Unmarshal(data, &httpErr.Envelope)
		return model.Session{}, httpErr
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return model.Session{}, fmt.Errorf("decode session: %w", ErrMalformedResponse)
	}

	return session, nil
}
