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

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		logger:      params.Logger,
	}
}

// Submit records a new contact request from the public form.
func (srv *contactService) Submit(ctx context.Context, input *usecase.SubmitContactInput) (*entity.Contact, error) {
	contact := &entity.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
		Status:  entity.ContactNew,
	}

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		return nil, errors.Wrap(err, "failed to submit contact request")
	}

	srv.logger.Info("Contact request submitted", slog.Any("contactID", contact.ID))

	return contact, nil
}

// List retrieves contact requests matching the filters.
func (srv *contactService) List(ctx context.Context, filters repository.ContactFilters) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.List(ctx, filters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contact requests")
	}

	return contacts, nil
}

// Get retrieves a single contact request.
func (srv *contactService) Get(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "contact lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load contact request")
	}

	return contact, nil
}

// UpdateStatus moves a contact request along its triage lifecycle. Setting
// the current status again is a no-op so retried requests stay safe.
func (srv *contactService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ContactStatus) (*entity.Contact, error) {
	contact, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if contact.Status == status {
		return contact, nil
	}

	if !contact.Status.CanTransitionTo(status) {
		srv.logger.Warn("Rejected contact status change",
			slog.Any("contactID", id),
			slog.String("from", string(contact.Status)),
			slog.String("to", string(status)))

		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			"cannot move contact from " + string(contact.Status) + " to " + string(status))
	}

	contact.Status = status

	if err := srv.contactRepo.Update(ctx, contact); err != nil {
		return nil, errors.Wrap(err, "failed to update contact status")
	}

	return contact, nil
}

// Delete removes a contact request permanently.
func (srv *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.contactRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "contact delete failed")
		}

		return errors.Wrap(err, "failed to delete contact request")
	}

	return nil
}
