package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/grabshow/storefront/internal/entity"
	"github.com/grabshow/storefront/internal/gateway"
	"github.com/grabshow/storefront/internal/session"
)

type authService struct {
	users    gateway.UserGateway
	sessions *session.Manager
	notifier *Notifier
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(users gateway.UserGateway, sessions *session.Manager, notifier *Notifier) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		notifier: notifier,
	}
}

func (s *authService) Register(ctx context.Context, req *entity.RegisterRequest) (*entity.User, error) {
	user, err := s.users.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User registered")

	return user, nil
}

// Login establishes a session from a username lookup. The remote user
// service exposes no credential verification endpoint; the submitted
// password is accepted but never checked against anything.
func (s *authService) Login(ctx context.Context, req *entity.LoginRequest) (*entity.AuthResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("login failed: %w", err)
	}

	sess, err := s.sessions.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User logged in")

	s.notifier.Publish(sess.Token(), entity.NoticeLevelSuccess, "Login successful!")

	return &entity.AuthResponse{Token: sess.Token(), User: user}, nil
}

func (s *authService) Logout(ctx context.Context, sess *session.Session) error {
	if err := s.sessions.Destroy(ctx, sess.Token()); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	logrus.WithField("user_id", sess.UserID()).Info("User logged out")
	return nil
}

func (s *authService) Restore(ctx context.Context, token string) (*session.Session, error) {
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	return sess, nil
}
