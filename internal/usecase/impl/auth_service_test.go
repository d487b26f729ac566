package impl

import (
	"context"
	"testing"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(adminRepo *fakeAdminRepo, storage *fakeImageStorage) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		AdminRepo:    adminRepo,
		Hasher:       &fakeHasher{},
		TokenService: &fakeTokenService{},
		ImageStorage: storage,
		Logger:       testLogger(),
	})
}

func TestAuthService_Login_Success(t *testing.T) {
	adminID := uuid.New()
	adminRepo := &fakeAdminRepo{
		findByEmailFn: func(_ context.Context, email string) (*entity.Admin, error) {
			assert.Equal(t, "boss@example.com", email)

			return &entity.Admin{
				ID:           adminID,
				Email:        email,
				PasswordHash: "hashed:secret",
				Role:         entity.RoleAdmin,
			}, nil
		},
	}
	service := newAuthService(adminRepo, &fakeImageStorage{})

	output, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "boss@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-"+adminID.String(), output.AccessToken)
	assert.Equal(t, adminID, output.Admin.ID)
	assert.True(t, output.Admin.IsAdmin())
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	service := newAuthService(&fakeAdminRepo{}, &fakeImageStorage{})

	output, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	adminRepo := &fakeAdminRepo{
		findByEmailFn: func(_ context.Context, email string) (*entity.Admin, error) {
			return &entity.Admin{ID: uuid.New(), Email: email, PasswordHash: "hashed:right"}, nil
		},
	}
	service := newAuthService(adminRepo, &fakeImageStorage{})

	_, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "boss@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_RegisterAdmin_DefaultsToEditor(t *testing.T) {
	var created *entity.Admin
	adminRepo := &fakeAdminRepo{
		createFn: func(_ context.Context, admin *entity.Admin) error {
			admin.ID = uuid.New()
			created = admin

			return nil
		},
	}
	service := newAuthService(adminRepo, &fakeImageStorage{})

	admin, err := service.RegisterAdmin(context.Background(), &usecase.RegisterAdminInput{
		Name:     "New Hire",
		Email:    "hire@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.RoleEditor, admin.Role)
	assert.Equal(t, "hashed:secret", admin.PasswordHash)
	assert.False(t, admin.IsAdmin())
}

func TestAuthService_RegisterAdmin_UnknownRole(t *testing.T) {
	service := newAuthService(&fakeAdminRepo{}, &fakeImageStorage{})

	_, err := service.RegisterAdmin(context.Background(), &usecase.RegisterAdminInput{
		Name:     "New Hire",
		Email:    "hire@example.com",
		Password: "secret",
		Role:     entity.Role("superuser"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_RegisterAdmin_DuplicateEmail(t *testing.T) {
	adminRepo := &fakeAdminRepo{
		createFn: func(_ context.Context, _ *entity.Admin) error {
			return domainerrors.ErrEmailAlreadyExists
		},
	}
	service := newAuthService(adminRepo, &fakeImageStorage{})

	_, err := service.RegisterAdmin(context.Background(), &usecase.RegisterAdminInput{
		Name:     "Clone",
		Email:    "boss@example.com",
		Password: "secret",
		Role:     entity.RoleAdmin,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestAuthService_UpdateProfile_KeepsEmailAndRotatesAvatar(t *testing.T) {
	adminID := uuid.New()
	stored := &entity.Admin{
		ID:           adminID,
		Name:         "Old Name",
		Email:        "boss@example.com",
		PasswordHash: "hashed:old",
		Avatar:       "/uploads/old-avatar.png",
	}
	adminRepo := &fakeAdminRepo{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*entity.Admin, error) {
			assert.Equal(t, adminID, id)

			return stored, nil
		},
	}
	storage := &fakeImageStorage{}
	service := newAuthService(adminRepo, storage)

	admin, err := service.UpdateProfile(context.Background(), adminID, &usecase.UpdateProfileInput{
		Name:     "New Name",
		Password: "fresh",
		Avatar:   &usecase.ImageUpload{Filename: "avatar.png", Content: nil},
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", admin.Name)
	assert.Equal(t, "boss@example.com", admin.Email)
	assert.Equal(t, "hashed:fresh", admin.PasswordHash)
	assert.Equal(t, "/uploads/avatar.png", admin.Avatar)
	assert.Contains(t, storage.removed, "/uploads/old-avatar.png")
}

func TestAuthService_UpdateProfile_EmptyFieldsKeepCurrentValues(t *testing.T) {
	adminID := uuid.New()
	adminRepo := &fakeAdminRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Admin, error) {
			return &entity.Admin{
				ID:           adminID,
				Name:         "Old Name",
				Email:        "boss@example.com",
				PasswordHash: "hashed:old",
			}, nil
		},
	}
	service := newAuthService(adminRepo, &fakeImageStorage{})

	admin, err := service.UpdateProfile(context.Background(), adminID, &usecase.UpdateProfileInput{})
	require.NoError(t, err)
	assert.Equal(t, "Old Name", admin.Name)
	assert.Equal(t, "hashed:old", admin.PasswordHash)
}
