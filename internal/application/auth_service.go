package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/navstation/navstation/internal/domain/entity"
	"github.com/navstation/navstation/internal/domain/repository"
	"github.com/navstation/navstation/pkg/apperrors"
	"github.com/navstation/navstation/pkg/helpers"
	"github.com/navstation/navstation/pkg/validation"
)

// User-facing messages. Wrong-password and unknown-user deliberately share one
// message so responses do not reveal which usernames exist.
const (
	MsgEmptyCredentials  = "用户名和密码不能为空"
	MsgBadUsername       = "用户名长度为3-30位，仅限字母、数字和下划线"
	MsgWeakPassword      = "密码至少8位，且需包含大小写字母、数字和特殊字符"
	MsgDuplicateUsername = "用户名已存在"
	MsgRegisterFailed    = "注册失败"
	MsgRegisterOK        = "注册成功"
	MsgBadCredentials    = "用户名或密码错误"
	MsgLoginFailed       = "登录失败"
)

// AuthService validates credentials, persists new users, and mints tokens.
type AuthService struct {
	Users      repository.UserRepository
	JWT        *helpers.JWTManager
	Logger     *logrus.Logger
	BcryptCost int
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, bcryptCost int) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger, BcryptCost: bcryptCost}
}

// Register creates a user from a fresh credential pair. The username is
// trimmed and HTML-stripped before validation and storage; the plaintext
// password is hashed and discarded.
func (s *AuthService) Register(ctx context.Context, username, password string) (*entity.User, error) {
	username = validation.SanitizeText(username)
	if username == "" || password == "" {
		return nil, apperrors.New(apperrors.KindValidation, MsgEmptyCredentials)
	}
	if !validation.Username(username) {
		return nil, apperrors.New(apperrors.KindValidation, MsgBadUsername)
	}
	if !validation.StrongPassword(password) {
		return nil, apperrors.New(apperrors.KindValidation, MsgWeakPassword)
	}

	hash, err := helpers.HashPassword(password, s.BcryptCost)
	if err != nil {
		s.Logger.WithError(err).Error("password hashing failed")
		return nil, apperrors.Wrap(apperrors.KindInternal, MsgRegisterFailed, err)
	}

	u := &entity.User{Username: username, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, apperrors.New(apperrors.KindConflict, MsgDuplicateUsername)
		}
		s.Logger.WithError(err).WithField("username", username).Error("user insert failed")
		return nil, apperrors.Wrap(apperrors.KindInternal, MsgRegisterFailed, err)
	}
	return u, nil
}

// Login checks the credential pair and returns a signed bearer token. On an
// unknown username it still burns a bcrypt comparison so the miss path takes
// as long as a wrong-password path.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = validation.SanitizeText(username)
	if username == "" || password == "" {
		return "", apperrors.New(apperrors.KindValidation, MsgEmptyCredentials)
	}

	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.DummyCompare(password)
			return "", apperrors.New(apperrors.KindAuth, MsgBadCredentials)
		}
		s.Logger.WithError(err).Error("user lookup failed")
		return "", apperrors.Wrap(apperrors.KindInternal, MsgLoginFailed, err)
	}

	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return "", apperrors.New(apperrors.KindAuth, MsgBadCredentials)
	}

	token, _, err := s.JWT.Issue(u.ID, u.Username)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("token signing failed")
		return "", apperrors.Wrap(apperrors.KindInternal, MsgLoginFailed, err)
	}
	return token, nil
}
