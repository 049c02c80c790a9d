package services

import (
	"context"
	"errors"

	"github.com/athh15/vef2-hop1/models"
	"github.com/athh15/vef2-hop1/repository"
)

var (
	ErrNoSuchUser      = errors.New("No such user")
	ErrInvalidPassword = errors.New("Invalid password")
)

// RegisterResult is the envelope returned by Register.
type RegisterResult struct {
	Status Status
	Errors []models.FieldError
	Token  string
	User   *models.User
}

type AuthAPI interface {
	Register(ctx context.Context, email, password string) (RegisterResult, error)
	Login(ctx context.Context, email, password string) (string, error)
	User(ctx context.Context, id int) (*models.User, error)
	Users(ctx context.Context) ([]models.User, error)
	SetAdmin(ctx context.Context, id int, admin bool) (*models.User, error)
}

type AuthService struct {
	users  repository.UserRepo
	tokens *TokenService
}

func NewAuthService(users repository.UserRepo, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a user after the uniqueness and password-strength checks
// and issues a session token for the fresh account. Shape and format checks
// on the request body happen before this is called.
func (s *AuthService) Register(ctx context.Context, email, password string) (RegisterResult, error) {
	var errs []models.FieldError

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return RegisterResult{}, err
	}
	if existing != nil {
		errs = append(errs, models.FieldError{
			Field:   "email",
			Message: "Email is already registered",
		})
	}
	if IsCommonPassword(password) {
		errs = append(errs, models.FieldError{
			Field:   "password",
			Message: "Password is too common",
		})
	}
	if len(errs) > 0 {
		return RegisterResult{Status: StatusInvalid, Errors: errs}, nil
	}

	digest, err := HashPassword(password)
	if err != nil {
		return RegisterResult{}, err
	}

	user := models.User{Email: email, Password: digest}
	if err := s.users.Insert(ctx, &user); err != nil {
		return RegisterResult{}, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return RegisterResult{}, err
	}

	return RegisterResult{Status: StatusOK, Token: token, User: &user}, nil
}

// Login exchanges valid credentials for a session token. ErrNoSuchUser and
// ErrInvalidPassword are the only domain failures; anything else is a
// persistence error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrNoSuchUser
	}

	if !ComparePasswords(user.Password, password) {
		return "", ErrInvalidPassword
	}

	return s.tokens.Issue(user.ID)
}

func (s *AuthService) User(ctx context.Context, id int) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *AuthService) Users(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

// SetAdmin flips the admin flag only; no other user field is mutable here.
func (s *AuthService) SetAdmin(ctx context.Context, id int, admin bool) (*models.User, error) {
	return s.users.SetAdmin(ctx, id, admin)
}
