package services

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/repositories"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login, session issuance and the
// identity & role resolution consulted on every authenticated request.
type AuthService struct {
	Users       repositories.UserRepository
	Sessions    repositories.SessionRepository
	Dealerships repositories.DealershipRepository
	Secret      []byte
	TokenTTL    time.Duration
	Log         *zap.Logger
}

// AuthResult is the login/register response payload.
type AuthResult struct {
	Token   string      `json:"token"`
	User    models.User `json:"user"`
	Session string      `json:"sessionId"`
}

func (s AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

func (s AuthService) logInfo(msg string, fields ...zap.Field) {
	if s.Log != nil {
		s.Log.Info(msg, fields...)
	}
}

// Register creates a user with the base 'user' role.
func (s AuthService) Register(name, email, phone, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" {
		return models.User{}, domain.ValidationError{Msg: "name and email are required"}
	}
	if len(password) < 8 {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "must be at least 8 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	id, err := s.Users.Create(name, email, strings.TrimSpace(phone), string(hash))
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "email already registered"}
		}
		return models.User{}, domain.InternalError{Msg: "failed to create user", Err: err}
	}

	s.logInfo("user registered", zap.Int64("user_id", int64(id)))
	return s.loadUser(id)
}

// Login verifies credentials, opens a fresh session (acting role unset)
// and signs a token bound to it.
func (s AuthService) Login(email, password string) (AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, hash, err := s.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AuthResult{}, domain.UnauthenticatedError{Msg: "invalid email or password"}
		}
		return AuthResult{}, domain.InternalError{Msg: "failed to load user", Err: err}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return AuthResult{}, domain.UnauthenticatedError{Msg: "invalid email or password"}
	}

	now := time.Now()
	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl()),
	}
	if err := s.Sessions.Create(session); err != nil {
		return AuthResult{}, domain.InternalError{Msg: "failed to open session", Err: err}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    int64(user.ID),
		"session_id": session.ID,
		"exp":        session.ExpiresAt.Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return AuthResult{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}

	s.logInfo("user logged in", zap.Int64("user_id", int64(user.ID)), zap.String("session_id", session.ID))
	return AuthResult{Token: signed, User: user, Session: session.ID}, nil
}

// Resolve turns a bearer token into a Caller. The acting role comes from
// the session row, the base role from the users row; when the session
// acts as a dealership the owned tenant is resolved too, and its absence
// leaves DealershipID nil ("not yet configured") instead of failing.
func (s AuthService) Resolve(tokenString string) (domain.Caller, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return domain.Caller{}, domain.UnauthenticatedError{Msg: "invalid token", Err: err}
	}

	sessionID, _ := claims["session_id"].(string)
	if sessionID == "" {
		return domain.Caller{}, domain.UnauthenticatedError{Msg: "invalid token"}
	}

	session, err := s.Sessions.GetByID(sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Caller{}, domain.UnauthenticatedError{Msg: "session not found"}
		}
		return domain.Caller{}, domain.InternalError{Msg: "failed to load session", Err: err}
	}
	if time.Now().After(session.ExpiresAt) {
		return domain.Caller{}, domain.UnauthenticatedError{Msg: "session expired"}
	}

	user, err := s.loadUser(session.UserID)
	if err != nil {
		return domain.Caller{}, err
	}

	caller := domain.Caller{
		UserID:     user.ID,
		SessionID:  session.ID,
		Name:       user.Name,
		Role:       user.Role,
		ActingRole: session.SessionType,
	}
	if session.SessionType == domain.ActingDealership {
		dealership, err := s.Dealerships.GetByUserID(user.ID)
		switch {
		case err == nil:
			id := dealership.ID
			caller.DealershipID = &id
		case errors.Is(err, sql.ErrNoRows):
			// dealership not configured yet; callers redirect to setup
		default:
			return domain.Caller{}, domain.InternalError{Msg: "failed to load dealership", Err: err}
		}
	}
	return caller, nil
}

// SetSessionType binds the session to CLIENT or DEALERSHIP. First write
// wins; repeating the call on an already-bound session is a no-op that
// still reports success, so double submits are harmless.
func (s AuthService) SetSessionType(sessionID, rawRole string) (domain.ActingRole, error) {
	role, ok := domain.ParseActingRole(strings.ToUpper(strings.TrimSpace(rawRole)))
	if !ok || role == domain.ActingUnset {
		return domain.ActingUnset, domain.ValidationError{Field: "sessionType", Msg: "must be CLIENT or DEALERSHIP"}
	}

	if err := s.Sessions.SetType(sessionID, role); err != nil {
		return domain.ActingUnset, domain.InternalError{Msg: "failed to set session type", Err: err}
	}

	session, err := s.Sessions.GetByID(sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ActingUnset, domain.UnauthenticatedError{Msg: "session not found"}
		}
		return domain.ActingUnset, domain.InternalError{Msg: "failed to load session", Err: err}
	}
	return session.SessionType, nil
}

// UpdateProfile applies a key-presence PATCH to the caller's own user row.
func (s AuthService) UpdateProfile(caller domain.Caller, upd models.UserUpdate) (models.User, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return models.User{}, domain.ValidationError{Field: "name", Msg: "must not be empty"}
	}
	if err := s.Users.UpdateProfile(caller.UserID, upd); err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to update profile", Err: err}
	}
	return s.loadUser(caller.UserID)
}

func (s AuthService) loadUser(id domain.ID) (models.User, error) {
	user, err := s.Users.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, domain.InternalError{Msg: "failed to load user", Err: err}
	}
	return user, nil
}
