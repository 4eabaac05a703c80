// Package service реализует сценарии верхнего уровня клиента магазина.
package service

import (
	"context"
	"errors"

	"github.com/giakoii/my-store/internal/model"
	"github.com/giakoii/my-store/internal/validation"
)

// Учётные данные, фиксированные на стороне клиента. Покупатели входят по
// одному номеру телефона: обмен токена выполняется от имени сервисной учётной
// записи. Администраторы вводят собственный пароль к общей учётной записи.
const (
	grantTypePassword = "password"

	customerServiceUsername = "edusmartAI@gmail.com"
	customerServicePassword = "Edusmart@123"

	adminUsername = "admin@vuamitkhoa.com"
)

// ErrAdminPasswordRequired возвращается, если для административного входа
// не передан пароль.
var ErrAdminPasswordRequired = errors.New("admin password is required")

// RoleClient описывает операцию проверки роли, используемую сценарием входа.
type RoleClient interface {
	CheckUserRole(ctx context.Context, phoneNumber string) (model.UserRoleResponse, error)
}

// SessionManager описывает операции менеджера сессии, используемые сценарием входа.
type SessionManager interface {
	Login(ctx context.Context, req model.LoginRequest) (model.Session, error)
}

// AuthFlow реализует вход по номеру телефона: проверка роли, затем обмен
// учётных данных, соответствующих роли, и получение сессии.
type AuthFlow struct {
	roles    RoleClient
	sessions SessionManager
}

// NewAuthFlow создаёт сценарий входа.
func NewAuthFlow(roles RoleClient, sessions SessionManager) *AuthFlow {
	return &AuthFlow{
		roles:    roles,
		sessions: sessions,
	}
}

// LoginWithPhone выполняет вход по номеру телефона. Для покупателя вход
// завершается автоматически, для администратора требуется пароль.
func (f *AuthFlow) LoginWithPhone(ctx context.Context, phoneNumber, adminPassword string) (model.Session, error) {
	if err := validation.ValidatePhoneNumber(phoneNumber); err != nil {
		return model.Session{}, err
	}

	role, err := f.roles.CheckUserRole(ctx, phoneNumber)
	if err != nil {
		return model.Session{}, err
	}

	req := model.LoginRequest{
		GrantType:   grantTypePassword,
		PhoneNumber: phoneNumber,
	}

	if role.UserRole == model.RoleAdmin {
		if adminPassword == "" {
			return model.Session{}, ErrAdminPasswordRequired
		}
		req.Username = adminUsername
		req.Password = adminPassword
	} else {
		req.Username = customerServiceUsername
		req.Password = customerServicePassword
	}

	return f.sessions.Login(ctx, req)
}
