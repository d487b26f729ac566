package impl

import (
	"context"
	"log/slog"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	imageStorage service.ImageStorage
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		imageStorage: params.ImageStorage,
		logger:       params.Logger,
	}
}

// Login verifies credentials and issues an access token. A missing account
// and a wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting admin login", slog.String("email", input.Email))

	admin, err := srv.adminRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			srv.logger.Warn("Login failed, unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load admin for login")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.logger.Warn("Login failed, password mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.GenerateToken(admin.ID, admin.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.logger.Debug("Admin logged in", slog.Any("adminID", admin.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		Admin:       admin,
	}, nil
}

// RegisterAdmin creates a new back-office account.
func (srv *authService) RegisterAdmin(ctx context.Context, input *usecase.RegisterAdminInput) (*entity.Admin, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleEditor
	}
	if !role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	admin := &entity.Admin{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := srv.adminRepo.Create(ctx, admin); err != nil {
		return nil, errors.Wrap(err, "failed to create admin account")
	}

	srv.logger.Info("Admin account created", slog.Any("adminID", admin.ID), slog.String("role", role.String()))

	return admin, nil
}

// GetProfile loads the caller's own account.
func (srv *authService) GetProfile(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error) {
	admin, err := srv.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAdminNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load admin profile")
	}

	return admin, nil
}

// UpdateProfile applies the editable profile fields. The email never changes
// through this path and the role is not self-assignable.
func (srv *authService) UpdateProfile(ctx context.Context, adminID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Admin, error) {
	admin, err := srv.GetProfile(ctx, adminID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		admin.Name = input.Name
	}

	if input.Password != "" {
		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.logger.Error("Failed to hash password during profile update", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		admin.PasswordHash = hashedPassword
	}

	previousAvatar := admin.Avatar
	if input.Avatar != nil {
		stored, err := saveImageUploads(ctx, srv.imageStorage, []*usecase.ImageUpload{input.Avatar})
		if err != nil {
			return nil, err
		}
		admin.Avatar = stored[0]
	}

	if err := srv.adminRepo.Update(ctx, admin); err != nil {
		if input.Avatar != nil {
			removeImages(ctx, srv.imageStorage, srv.logger, []string{admin.Avatar})
		}

		return nil, errors.Wrap(err, "failed to update admin profile")
	}

	if input.Avatar != nil && previousAvatar != "" && previousAvatar != admin.Avatar {
		removeImages(ctx, srv.imageStorage, srv.logger, []string{previousAvatar})
	}

	srv.logger.Debug("Admin profile updated", slog.Any("adminID", admin.ID))

	return admin, nil
}
