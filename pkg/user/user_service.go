package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlexLimaDev-IA/estoque-da-casa/domain"
	"github.com/AlexLimaDev-IA/estoque-da-casa/entities"
	"github.com/AlexLimaDev-IA/estoque-da-casa/internal/utils"
	"github.com/AlexLimaDev-IA/estoque-da-casa/internal/utils/mailing"
	"github.com/AlexLimaDev-IA/estoque-da-casa/internal/utils/storage"
	"github.com/AlexLimaDev-IA/estoque-da-casa/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error)
		SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error
		VerifyEmail(ctx context.Context, token string) error
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:          uuid.New(),
		Email:       req.Email,
		Password:    string(hashed),
		DisplayName: req.DisplayName,
		Role:        domain.RoleUser,
		IsVerified:  false,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	if err := s.sendVerifyMail(user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return domain.LoginResponse{}, domain.ErrEmailNotVerified
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{Token: token, Role: user.Role}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.DisplayName != "" {
		user.DisplayName = req.DisplayName
	}

	if req.Photo != nil {
		var link string
		if user.PhotoURL != "" {
			key := s.s3.GetObjectKeyFromLink(user.PhotoURL)
			link, err = s.s3.UpdateFile(key, req.Photo, storage.AllowImage...)
		} else {
			link, err = s.s3.UploadFile(user.ID.String(), req.Photo, "user-profiles", storage.AllowImage...)
		}
		if err != nil {
			return domain.UserResponse{}, err
		}
		user.PhotoURL = link
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.sendVerifyMail(user)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(token)
	if err != nil {
		return err
	}

	email, _ := claims["email"].(string)
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

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(map[string]any{"email": user.Email}, time.Minute*30)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Olá, %s!</p><p>Recebemos um pedido para redefinir sua senha. "+
			"<a href=%q>Clique aqui</a> para criar uma nova. O link expira em 30 minutos.</p>",
		user.DisplayName, link,
	)
	return mailing.SendMail(user.Email, "Estoque da Casa - Redefinição de senha", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(req.Token)
	if err != nil {
		return err
	}

	email, _ := claims["email"].(string)
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) sendVerifyMail(user *entities.User) error {
	token, err := s.jwtService.GenerateTokenForgetPassword(map[string]any{"email": user.Email}, time.Hour*24)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/verify-email?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Olá, %s!</p><p>Bem-vindo ao Estoque da Casa. "+
			"<a href=%q>Clique aqui</a> para confirmar seu e-mail.</p>",
		user.DisplayName, link,
	)
	return mailing.SendMail(user.Email, "Estoque da Casa - Confirme seu e-mail", body)
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
		IsVerified:  user.IsVerified,
	}
}
