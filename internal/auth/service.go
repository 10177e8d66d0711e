package auth

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/xarthos/portfolio-server/internal/mail"
	"github.com/xarthos/portfolio-server/internal/user"
)

// ConnectionProvider is the connectivity slice of the database layer
// the flows depend on.
type ConnectionProvider interface {
	Ensure(ctx context.Context) error
	Connected(ctx context.Context) bool
}

// Service implements the signup, login and user lookup flows.
type Service struct {
	users    user.Repository
	db       ConnectionProvider
	mail     mail.Validator
	sessions *CookieWriter
	verify   bool
	log      *zap.Logger
}

func NewService(users user.Repository, db ConnectionProvider, validator mail.Validator, sessions *CookieWriter, verify bool, log *zap.Logger) *Service {
	return &Service{
		users:    users,
		db:       db,
		mail:     validator,
		sessions: sessions,
		verify:   verify,
		log:      log,
	}
}

type SignUpInput struct {
	Email        string
	Password     string
	Nickname     string
	FirstName    string
	SecondName   *string
	LastName     string
	AvatarSource *string
}

// SignUp validates the email, persists a new user document and attaches
// a session cookie to the response. Duplicate emails are not rejected
// here; the store accepts whatever passes validation.
func (s *Service) SignUp(ctx context.Context, in SignUpInput, sink HeaderSink) (string, error) {
	if err := s.db.Ensure(ctx); err != nil {
		return "", errors.Wrap(err, "ensure database")
	}

	verdict, err := s.mail.Validate(ctx, in.Email)
	if err != nil {
		return "", errors.Wrap(err, "validate email")
	}
	if !verdict.Valid {
		if verdict.Reason == mail.ReasonSMTP {
			return "", &Error{Message: "Wrong SMTP"}
		}
		return "", &Error{Message: "Email not accepted"}
	}

	password := in.Password
	if s.verify {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return "", errors.Wrap(err, "hash password")
		}
		password = string(hashed)
	}

	u := user.New(user.NewUserInput{
		Email:        in.Email,
		Password:     password,
		Nickname:     in.Nickname,
		FirstName:    in.FirstName,
		SecondName:   in.SecondName,
		LastName:     in.LastName,
		AvatarSource: in.AvatarSource,
	})
	if err := s.users.InsertOne(ctx, u); err != nil {
		return "", errors.Wrap(err, "insert user")
	}

	s.log.Info("sign up", zap.String("userId", u.ID))
	return s.sessions.Attach(u.ID, sink), nil
}

// Login looks up the user by email and attaches a session cookie. The
// supplied password is not checked against the stored credential unless
// credential verification is enabled.
func (s *Service) Login(ctx context.Context, email, password string, sink HeaderSink) (string, error) {
	token, err := s.login(ctx, email, password, sink)
	if err != nil {
		return "", s.classify(ctx, err)
	}
	return token, nil
}

func (s *Service) login(ctx context.Context, email, password string, sink HeaderSink) (string, error) {
	if err := s.db.Ensure(ctx); err != nil {
		return "", errors.Wrap(err, "ensure database")
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", errNotFound()
		}
		return "", errors.Wrap(err, "find user")
	}

	if s.verify {
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
			return "", &Error{Message: "wrong credentials", Code: CodeInvalidCredentials}
		}
	}

	s.log.Debug("authorization", zap.String("userId", u.ID))
	return s.sessions.Attach(u.ID, sink), nil
}

// classify is the login catch-all: structured errors pass through,
// anything else is reported as a missing connection or an unknown
// server fault.
func (s *Service) classify(ctx context.Context, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	s.log.Error("login failed", zap.Error(err))
	if !s.db.Connected(ctx) {
		return errDatabaseNotConnected()
	}
	return errInternal()
}

// GetUser looks up a user by identifier. A missing user is a nil
// result, matching the store's findOne contract; store faults surface
// as a structured error.
func (s *Service) GetUser(ctx context.Context, id string) (*user.User, error) {
	// attempt marker, logged on every outcome
	defer s.log.Info("user query attempt")

	if err := s.db.Ensure(ctx); err != nil {
		return nil, &Error{Message: err.Error(), Code: CodeInternalServerError}
	}

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, nil
		}
		return nil, &Error{Message: err.Error(), Code: CodeInternalServerError}
	}

	return &u, nil
}

// CurrentUser returns whatever user the request context already
// carries. No database access happens here.
func (s *Service) CurrentUser(ctx context.Context) *user.User {
	return UserFrom(ctx)
}
