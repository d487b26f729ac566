package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"estate/internal/domain/entity"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"

	"github.com/google/uuid"
)

// Hand-written fakes with function fields. Unset functions fall back to the
// matching not-found sentinel so tests only stub what they assert on.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeAdminRepo struct {
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.Admin, error)
	createFn      func(ctx context.Context, admin *entity.Admin) error
	updateFn      func(ctx context.Context, admin *entity.Admin) error
}

func (f *fakeAdminRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	if f.findByIDFn == nil {
		return nil, repository.ErrAdminNotFound
	}

	return f.findByIDFn(ctx, id)
}

func (f *fakeAdminRepo) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	if f.findByEmailFn == nil {
		return nil, repository.ErrAdminNotFound
	}

	return f.findByEmailFn(ctx, email)
}

func (f *fakeAdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	if f.createFn == nil {
		return nil
	}

	return f.createFn(ctx, admin)
}

func (f *fakeAdminRepo) Update(ctx context.Context, admin *entity.Admin) error {
	if f.updateFn == nil {
		return nil
	}

	return f.updateFn(ctx, admin)
}

type fakePropertyRepo struct {
	listFn     func(ctx context.Context, filters repository.PropertyFilters) ([]*entity.Property, error)
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	createFn   func(ctx context.Context, property *entity.Property) error
	updateFn   func(ctx context.Context, property *entity.Property) error
	deleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (f *fakePropertyRepo) List(ctx context.Context, filters repository.PropertyFilters) ([]*entity.Property, error) {
	if f.listFn == nil {
		return nil, nil
	}

	return f.listFn(ctx, filters)
}

func (f *fakePropertyRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	if f.findByIDFn == nil {
		return nil, repository.ErrPropertyNotFound
	}

	return f.findByIDFn(ctx, id)
}

func (f *fakePropertyRepo) Create(ctx context.Context, property *entity.Property) error {
	if f.createFn == nil {
		return nil
	}

	return f.createFn(ctx, property)
}

func (f *fakePropertyRepo) Update(ctx context.Context, property *entity.Property) error {
	if f.updateFn == nil {
		return nil
	}

	return f.updateFn(ctx, property)
}

func (f *fakePropertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		return nil
	}

	return f.deleteFn(ctx, id)
}

type fakeInquiryRepo struct {
	listFn     func(ctx context.Context, filters repository.InquiryFilters) ([]*entity.Inquiry, error)
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error)
	createFn   func(ctx context.Context, inquiry *entity.Inquiry) error
	updateFn   func(ctx context.Context, inquiry *entity.Inquiry) error
	deleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeInquiryRepo) List(ctx context.Context, filters repository.InquiryFilters) ([]*entity.Inquiry, error) {
	if f.listFn == nil {
		return nil, nil
	}

	return f.listFn(ctx, filters)
}

func (f *fakeInquiryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error) {
	if f.findByIDFn == nil {
		return nil, repository.ErrInquiryNotFound
	}

	return f.findByIDFn(ctx, id)
}

func (f *fakeInquiryRepo) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	if f.createFn == nil {
		return nil
	}

	return f.createFn(ctx, inquiry)
}

func (f *fakeInquiryRepo) Update(ctx context.Context, inquiry *entity.Inquiry) error {
	if f.updateFn == nil {
		return nil
	}

	return f.updateFn(ctx, inquiry)
}

func (f *fakeInquiryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		return nil
	}

	return f.deleteFn(ctx, id)
}

type fakeFeedbackRepo struct {
	listFn     func(ctx context.Context, filters repository.FeedbackFilters) ([]*entity.Feedback, error)
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)
	createFn   func(ctx context.Context, feedback *entity.Feedback) error
	updateFn   func(ctx context.Context, feedback *entity.Feedback) error
	deleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeFeedbackRepo) List(ctx context.Context, filters repository.FeedbackFilters) ([]*entity.Feedback, error) {
	if f.listFn == nil {
		return nil, nil
	}

	return f.listFn(ctx, filters)
}

func (f *fakeFeedbackRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	if f.findByIDFn == nil {
		return nil, repository.ErrFeedbackNotFound
	}

	return f.findByIDFn(ctx, id)
}

func (f *fakeFeedbackRepo) Create(ctx context.Context, feedback *entity.Feedback) error {
	if f.createFn == nil {
		return nil
	}

	return f.createFn(ctx, feedback)
}

func (f *fakeFeedbackRepo) Update(ctx context.Context, feedback *entity.Feedback) error {
	if f.updateFn == nil {
		return nil
	}

	return f.updateFn(ctx, feedback)
}

func (f *fakeFeedbackRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		return nil
	}

	return f.deleteFn(ctx, id)
}

type fakeHasher struct {
	hashFn  func(password string) (string, error)
	checkFn func(password, hash string) bool
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashFn == nil {
		return "hashed:" + password, nil
	}

	return f.hashFn(password)
}

func (f *fakeHasher) Check(password, hash string) bool {
	if f.checkFn == nil {
		return hash == "hashed:"+password
	}

	return f.checkFn(password, hash)
}

type fakeTokenService struct {
	generateFn func(adminID uuid.UUID, role string) (string, error)
	validateFn func(tokenString string) (*service.Claims, error)
}

func (f *fakeTokenService) GenerateToken(adminID uuid.UUID, role string) (string, error) {
	if f.generateFn == nil {
		return "token-" + adminID.String(), nil
	}

	return f.generateFn(adminID, role)
}

func (f *fakeTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	if f.validateFn == nil {
		return &service.Claims{}, nil
	}

	return f.validateFn(tokenString)
}

func (f *fakeTokenService) AccessTokenDuration() time.Duration {
	return time.Hour
}

// fakeImageStorage records saves and removals in memory.
type fakeImageStorage struct {
	saveErr error
	saved   []string
	removed []string
}

func (f *fakeImageStorage) Save(_ context.Context, filename string, _ io.Reader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}

	path := "/uploads/" + filename
	f.saved = append(f.saved, path)

	return path, nil
}

func (f *fakeImageStorage) Remove(_ context.Context, storedPath string) error {
	f.removed = append(f.removed, storedPath)

	return nil
}

type fakeQRCodeService struct {
	lastURL string
	png     []byte
	err     error
}

func (f *fakeQRCodeService) GenerateShareQR(url string) ([]byte, error) {
	f.lastURL = url
	if f.err != nil {
		return nil, f.err
	}
	if f.png != nil {
		return f.png, nil
	}

	return []byte("png"), nil
}
