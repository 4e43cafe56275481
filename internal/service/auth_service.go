package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
	"go-retail-api/pkg/jwt"
	"go-retail-api/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	Register(req *model.User, password, roleCode string) (*LoginResponse, error)
	Profile(userID uuid.UUID) (*model.UserResponse, error)
	UpdateProfile(userID uuid.UUID, req *model.User) (*model.UserResponse, error)
	ChangePassword(userID uuid.UUID, currentPassword, newPassword string) error
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
	Role  *model.Role        `json:"role"`
}

type authService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewAuthService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) AuthService {
	return &authService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// Single session: issuing a token rotates the version, invalidating any
	// token issued before.
	user.TokenVersion = uuid.New().String()
	if err := s.userRepo.Update(user); err != nil {
		return nil, errors.New("failed to update session")
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName(), user.RoleCode(), user.TokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
		Role:  user.Role,
	}, nil
}

// Register creates an account and logs it in. Unknown or empty role codes fall
// back to STAFF.
func (s *authService) Register(req *model.User, password, roleCode string) (*LoginResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, errors.New(validator.Describe(errs))
	}
	if len(password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}

	if existing, err := s.userRepo.FindByEmail(req.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if roleCode == "" {
		roleCode = model.RoleStaff
	}
	role, err := s.roleRepo.FindByCode(roleCode)
	if err != nil {
		role, err = s.roleRepo.FindByCode(model.RoleStaff)
		if err != nil {
			return nil, err
		}
	}
	req.RoleID = &role.ID
	req.IsActive = true

	if err := req.SetPassword(password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(req); err != nil {
		return nil, err
	}

	return s.Login(req.Email, password)
}

func (s *authService) Profile(userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *authService) UpdateProfile(userID uuid.UUID, req *model.User) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

// ChangePassword rotates the password only after the caller proves knowledge
// of the current one. The token version rotates with it, so every previously
// issued token stops working and the user logs in again.
func (s *authService) ChangePassword(userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}

	if !user.CheckPassword(currentPassword) {
		return ErrWrongPassword
	}
	if len(newPassword) < 6 {
		return errors.New("password must be at least 6 characters")
	}

	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	user.TokenVersion = uuid.New().String()
	return s.userRepo.Update(user)
}
