package impl

import (
	"context"
	"log/slog"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inquiryService implements the InquiryUsecase interface.
type inquiryService struct {
	inquiryRepo  repository.InquiryRepository
	propertyRepo repository.PropertyRepository
	logger       *slog.Logger
}

// InquiryServiceParams holds dependencies for inquiryService, injected by Fx.
type InquiryServiceParams struct {
	fx.In

	InquiryRepo  repository.InquiryRepository
	PropertyRepo repository.PropertyRepository
	Logger       *slog.Logger
}

// NewInquiryService is the constructor for inquiryService.
func NewInquiryService(params InquiryServiceParams) usecase.InquiryUsecase {
	return &inquiryService{
		inquiryRepo:  params.InquiryRepo,
		propertyRepo: params.PropertyRepo,
		logger:       params.Logger,
	}
}

// Submit records a new inquiry from the public property page. The referenced
// listing's key fields are denormalized onto the inquiry so it stays readable
// in the back-office even after the listing changes or disappears.
func (srv *inquiryService) Submit(ctx context.Context, input *usecase.SubmitInquiryInput) (*entity.Inquiry, error) {
	inquiry := &entity.Inquiry{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Message:    input.Message,
		PropertyID: input.PropertyID,
		Status:     entity.InquiryNew,
	}

	if input.PropertyID != uuid.Nil {
		property, err := srv.propertyRepo.FindByID(ctx, input.PropertyID)
		switch {
		case err == nil:
			inquiry.Property = &entity.PropertySnapshot{
				Name:        property.Name,
				City:        property.City,
				PricePerGaj: property.PricePerGaj,
				Gaj:         property.Gaj,
			}
		case errors.Is(err, repository.ErrPropertyNotFound):
			// The inquiry is still worth keeping; it just carries no snapshot.
			srv.logger.Warn("Inquiry references unknown property", slog.Any("propertyID", input.PropertyID))
		default:
			return nil, errors.Wrap(err, "failed to resolve property for inquiry snapshot")
		}
	}

	if err := srv.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, errors.Wrap(err, "failed to submit inquiry")
	}

	srv.logger.Info("Inquiry submitted", slog.Any("inquiryID", inquiry.ID), slog.Any("propertyID", input.PropertyID))

	return inquiry, nil
}

// List retrieves inquiries matching the filters.
func (srv *inquiryService) List(ctx context.Context, filters repository.InquiryFilters) ([]*entity.Inquiry, error) {
	inquiries, err := srv.inquiryRepo.List(ctx, filters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inquiries")
	}

	return inquiries, nil
}

// Get retrieves a single inquiry.
func (srv *inquiryService) Get(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error) {
	inquiry, err := srv.inquiryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInquiryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "inquiry lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load inquiry")
	}

	return inquiry, nil
}

// UpdateStatus moves an inquiry along its triage lifecycle. Setting the
// current status again is a no-op so retried requests stay safe.
func (srv *inquiryService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InquiryStatus) (*entity.Inquiry, error) {
	inquiry, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if inquiry.Status == status {
		return inquiry, nil
	}

	if !inquiry.Status.CanTransitionTo(status) {
		srv.logger.Warn("Rejected inquiry status change",
			slog.Any("inquiryID", id),
			slog.String("from", string(inquiry.Status)),
			slog.String("to", string(status)))

		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			"cannot move inquiry from " + string(inquiry.Status) + " to " + string(status))
	}

	inquiry.Status = status

	if err := srv.inquiryRepo.Update(ctx, inquiry); err != nil {
		return nil, errors.Wrap(err, "failed to update inquiry status")
	}

	return inquiry, nil
}

// Delete removes an inquiry permanently.
func (srv *inquiryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.inquiryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInquiryNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "inquiry delete failed")
		}

		return errors.Wrap(err, "failed to delete inquiry")
	}

	return nil
}
