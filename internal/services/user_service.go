package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"auctionBack/internal/models"
	"auctionBack/internal/repositories"
	"auctionBack/utils"
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	exists, err := s.UserRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, models.ErrDuplicateUsername
	}

	exists, err = s.UserRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, models.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Name:     req.Name,
		Balance:  req.Balance,
		Role:     "user",
	}
	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	created.Password = ""
	return created, nil
}

func (s *UserService) SignIn(ctx context.Context, username, password string) (models.SignInResponse, error) {
	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if err == models.ErrUserNotFound {
			return models.SignInResponse{}, models.ErrInvalidCredentials
		}
		return models.SignInResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}

	accessToken, err := s.TokenManager.NewJWT(user.ID, user.Role, s.AccessTTL)
	if err != nil {
		return models.SignInResponse{}, err
	}
	refreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.SignInResponse{}, err
	}

	session := models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.RefreshTTL),
	}
	if err := s.UserRepo.CreateSession(ctx, session); err != nil {
		return models.SignInResponse{}, err
	}

	user.Password = ""
	return models.SignInResponse{
		User: user,
		Tokens: models.Tokens{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, user models.User, role string) (models.User, error) {
	current, err := s.UserRepo.GetUserByID(ctx, user.ID)
	if err != nil {
		return models.User{}, err
	}
	user = sanitizeProfileUpdate(current, user, role)
	updated, err := s.UserRepo.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	updated.Password = ""
	return updated, nil
}

// sanitizeProfileUpdate merges empty fields from the stored profile. The
// balance only moves through settlement debits; a profile update may touch it
// only when an admin performs it.
func sanitizeProfileUpdate(current, update models.User, role string) models.User {
	if update.Email == "" {
		update.Email = current.Email
	}
	if update.Name == "" {
		update.Name = current.Name
	}
	if role != "admin" || update.Balance < 0 {
		update.Balance = current.Balance
	}
	return update
}
