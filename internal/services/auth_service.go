package services

import (
	"errors"

	"opticaluna/internal/domain"
	"opticaluna/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("invalid email or password")

// Mailer is the outbound-mail collaborator. Delivery failures surface as a
// false return, never as an error.
type Mailer interface {
	SendPasswordReset(email, name, token string) bool
}

type AuthService struct {
	Users  *repos.UserRepo
	Tokens *ResetTokenService
	Mail   Mailer
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

// CurrentUser resolves the session. A nil user with nil error never happens;
// an unknown or unbound sid returns an error from the repo layer.
func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}

// RequestPasswordReset issues a reset token and mails the link. An unknown
// email reports success without sending, so the endpoint can answer the same
// either way and not leak which accounts exist.
func (s *AuthService) RequestPasswordReset(email string) bool {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return true
	}
	token, err := s.Tokens.Issue(u.ID)
	if err != nil {
		return false
	}
	return s.Mail.SendPasswordReset(u.Email, u.Name, token)
}

// ResetPassword verifies the token and replaces the user's password hash.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	userID, err := s.Tokens.Verify(token)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), 12)
	if err != nil {
		return err
	}
	return s.Users.UpdatePassword(userID, string(hash))
}
