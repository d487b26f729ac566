package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"estate/config"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultSimilarLimit bounds the similar-listings strip on the detail page.
const defaultSimilarLimit = 3

// propertyService implements the PropertyUsecase interface.
type propertyService struct {
	propertyRepo  repository.PropertyRepository
	imageStorage  service.ImageStorage
	qrcodeService service.QRCodeService
	siteBaseURL   string
	logger        *slog.Logger
}

// PropertyServiceParams holds dependencies for propertyService, injected by Fx.
type PropertyServiceParams struct {
	fx.In

	PropertyRepo  repository.PropertyRepository
	ImageStorage  service.ImageStorage
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPropertyService is the constructor for propertyService.
func NewPropertyService(params PropertyServiceParams) usecase.PropertyUsecase {
	siteBaseURL := ""
	if params.Config != nil && params.Config.Assets != nil {
		siteBaseURL = params.Config.Assets.SiteBaseURL
	}

	return &propertyService{
		propertyRepo:  params.PropertyRepo,
		imageStorage:  params.ImageStorage,
		qrcodeService: params.QRCodeService,
		siteBaseURL:   siteBaseURL,
		logger:        params.Logger,
	}
}

// List retrieves listings matching the filters.
func (srv *propertyService) List(ctx context.Context, filters repository.PropertyFilters) ([]*entity.Property, error) {
	properties, err := srv.propertyRepo.List(ctx, filters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	return properties, nil
}

// Get retrieves a single listing.
func (srv *propertyService) Get(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	property, err := srv.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "property lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load property")
	}

	return property, nil
}

// Create stores the uploaded images and persists a new listing. New listings
// always start their sale lifecycle as available.
func (srv *propertyService) Create(ctx context.Context, input *usecase.PropertyInput) (*entity.Property, error) {
	if !input.Category.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown property category")
	}

	stored, err := saveImageUploads(ctx, srv.imageStorage, input.NewImages)
	if err != nil {
		return nil, err
	}

	property := &entity.Property{
		Name:        input.Name,
		Description: input.Description,
		City:        input.City,
		Address:     input.Address,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		PricePerGaj: input.PricePerGaj,
		Gaj:         input.Gaj,
		Category:    input.Category,
		Status:      entity.PropertyAvailable,
		Featured:    input.Featured,
		Images:      stored,
	}

	if err := srv.propertyRepo.Create(ctx, property); err != nil {
		removeImages(ctx, srv.imageStorage, srv.logger, stored)

		return nil, errors.Wrap(err, "failed to create property")
	}

	srv.logger.Info("Property created", slog.Any("propertyID", property.ID), slog.String("city", property.City))

	return property, nil
}

// Update replaces the editable fields of a listing. Images absent from
// KeepImages are removed from storage once the update has been persisted.
func (srv *propertyService) Update(ctx context.Context, id uuid.UUID, input *usecase.PropertyInput) (*entity.Property, error) {
	if !input.Category.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown property category")
	}

	property, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	stored, err := saveImageUploads(ctx, srv.imageStorage, input.NewImages)
	if err != nil {
		return nil, err
	}

	previousImages := property.Images

	property.Name = input.Name
	property.Description = input.Description
	property.City = input.City
	property.Address = input.Address
	property.Latitude = input.Latitude
	property.Longitude = input.Longitude
	property.PricePerGaj = input.PricePerGaj
	property.Gaj = input.Gaj
	property.Category = input.Category
	property.Featured = input.Featured
	property.Images = append(append([]string{}, input.KeepImages...), stored...)

	if err := srv.propertyRepo.Update(ctx, property); err != nil {
		removeImages(ctx, srv.imageStorage, srv.logger, stored)

		return nil, errors.Wrap(err, "failed to update property")
	}

	removeImages(ctx, srv.imageStorage, srv.logger, droppedImages(previousImages, property.Images))

	return property, nil
}

// UpdateStatus moves a listing along its sale lifecycle. Setting the current
// status again is a no-op so retried requests stay safe.
func (srv *propertyService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PropertyStatus) (*entity.Property, error) {
	property, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if property.Status == status {
		return property, nil
	}

	if !property.Status.CanTransitionTo(status) {
		srv.logger.Warn("Rejected property status change",
			slog.Any("propertyID", id),
			slog.String("from", string(property.Status)),
			slog.String("to", string(status)))

		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			"cannot move listing from " + string(property.Status) + " to " + string(status))
	}

	property.Status = status

	if err := srv.propertyRepo.Update(ctx, property); err != nil {
		return nil, errors.Wrap(err, "failed to update property status")
	}

	return property, nil
}

// Delete removes a listing and its stored images.
func (srv *propertyService) Delete(ctx context.Context, id uuid.UUID) error {
	property, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.propertyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "property delete failed")
		}

		return errors.Wrap(err, "failed to delete property")
	}

	removeImages(ctx, srv.imageStorage, srv.logger, property.Images)
	srv.logger.Info("Property deleted", slog.Any("propertyID", id))

	return nil
}

// ListSimilar ranks other available listings against the given one: by
// geographic distance when both sides carry coordinates, with same-city
// listings as a fallback for candidates without a location.
func (srv *propertyService) ListSimilar(ctx context.Context, id uuid.UUID, limit int) ([]*entity.Property, error) {
	if limit <= 0 {
		limit = defaultSimilarLimit
	}

	base, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	candidates, err := srv.propertyRepo.List(ctx, repository.PropertyFilters{Status: entity.PropertyAvailable})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list similar property candidates")
	}

	ranked := rankSimilar(base, candidates)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

type similarCandidate struct {
	property *entity.Property
	distance float64 // Meters; only meaningful when located is true.
	located  bool
	sameCity bool
}

// rankSimilar orders candidates so located ones come first by distance,
// then same-city listings, then the rest. The base listing is excluded.
func rankSimilar(base *entity.Property, candidates []*entity.Property) []*entity.Property {
	scored := make([]similarCandidate, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate.ID == base.ID {
			continue
		}

		sc := similarCandidate{
			property: candidate,
			sameCity: strings.EqualFold(candidate.City, base.City),
		}
		if base.HasLocation() && candidate.HasLocation() {
			sc.distance = geo.Distance(base.Point(), candidate.Point())
			sc.located = true
		}

		scored = append(scored, sc)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.located != b.located {
			return a.located
		}
		if a.located {
			return a.distance < b.distance
		}
		if a.sameCity != b.sameCity {
			return a.sameCity
		}

		return false
	})

	ranked := make([]*entity.Property, 0, len(scored))
	for _, sc := range scored {
		ranked = append(ranked, sc.property)
	}

	return ranked
}

// ShareQR renders a PNG QR code pointing at the listing's public page.
func (srv *propertyService) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	property, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	shareURL := strings.TrimRight(srv.siteBaseURL, "/") + "/properties/" + property.ID.String()

	png, err := srv.qrcodeService.GenerateShareQR(shareURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}
