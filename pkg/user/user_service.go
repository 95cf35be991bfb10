package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nutriby-backend/domain"
	"nutriby-backend/entities"
	"nutriby-backend/internal/utils"
	"nutriby-backend/internal/utils/mailing"
	"nutriby-backend/pkg/jwt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserRegisterResponse, error)
		Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error
		VerifyEmail(ctx context.Context, token string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserRegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.UserRegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserRegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserRegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserRegisterResponse{}, err
	}

	// Best effort, registration succeeds even when SMTP is down.
	_ = s.sendVerificationMail(user.Email)

	return domain.UserRegisterResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserLoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.UserLoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.UserLoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)
	return domain.UserLoginResponse{Token: token, Role: domain.RoleUser}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return domain.UserResponse{}, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		ID:         user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		IsVerified: user.IsVerified,
	}, nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.sendVerificationMail(req.Email)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	email, err := s.jwtService.ValidateTokenVerifyEmail(token)
	if err != nil {
		return err
	}

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.IsVerified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) sendVerificationMail(email string) error {
	token, err := s.jwtService.GenerateTokenVerifyEmail(email, time.Hour*24)
	if err != nil {
		return err
	}

	verifyURL := fmt.Sprintf("%s/api/v1/users/verify?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Welcome to NutriBy!</p><p>Please verify your email by clicking <a href=%q>this link</a>. The link is valid for 24 hours.</p>",
		verifyURL,
	)
	return mailing.SendMail(email, "Verify your NutriBy account", body)
}
