package usecase

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"filmoteka/internal/entity"
	"filmoteka/internal/repo/persistent"
	"filmoteka/pkg/jwt"
	"filmoteka/pkg/logger"
	"filmoteka/pkg/storage"

	"github.com/google/uuid"
)

const minPasswordLength = 6

type AuthUseCase interface {
	Register(username, email, password string) (*entity.User, string, error)
	Login(username, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
	UpdateProfile(userID, username, email string) (*entity.User, error)
	UpdatePreferences(userID string, tagIDs []string) (*entity.User, error)
	UploadAvatar(userID string, file io.Reader, contentType string) (*entity.User, error)
}

type authUseCase struct {
	userRepo      persistent.UserRepository
	jwtService    *jwt.Service
	storageClient *storage.Client
	logger        *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	storageClient *storage.Client,
	log *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:      userRepo,
		jwtService:    jwtService,
		storageClient: storageClient,
		logger:        log,
	}
}

func (uc *authUseCase) Register(username, email, password string) (*entity.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, "", fmt.Errorf("username is required: %w", entity.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, "", fmt.Errorf("password must be at least %d characters: %w",
			minPasswordLength, entity.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username: username,
		Email:    strings.TrimSpace(email),
		Password: string(hash),
		Role:     entity.RoleUser,
		IsActive: true,
	}

	if err := uc.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

func (uc *authUseCase) Login(username, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	if !user.IsActive {
		return nil, "", fmt.Errorf("account is deactivated")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(userID)
}

func (uc *authUseCase) UpdateProfile(userID, username, email string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if username = strings.TrimSpace(username); username != "" {
		user.Username = username
	}
	if email = strings.TrimSpace(email); email != "" {
		user.Email = email
	}

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *authUseCase) UpdatePreferences(userID string, tagIDs []string) (*entity.User, error) {
	return uc.userRepo.UpdatePreferredTags(userID, tagIDs)
}

func (uc *authUseCase) UploadAvatar(userID string, file io.Reader, contentType string) (*entity.User, error) {
	if uc.storageClient == nil {
		return nil, fmt.Errorf("file storage is not configured")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("avatars/%s/%s", userID, uuid.New().String())
	url, err := uc.storageClient.UploadFile(key, file, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	user.AvatarURL = url
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
