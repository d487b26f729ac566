package handler

import (
	"time"

	"estate/internal/domain/entity"
	"estate/pkg/assets"

	"github.com/google/uuid"
)

// viewMapper converts domain entities into API views, resolving stored image
// paths to public URLs in the process. All handlers share one instance so
// resolution happens in exactly one place.
type viewMapper struct {
	resolver *assets.Resolver
}

func newViewMapper(resolver *assets.Resolver) *viewMapper {
	return &viewMapper{resolver: resolver}
}

// AdminView is the API shape of a back-office account. The password hash
// never leaves the server.
type AdminView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *viewMapper) admin(a *entity.Admin) *AdminView {
	return &AdminView{
		ID:        a.ID.String(),
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role.String(),
		Avatar:    m.resolver.ResolveURL(a.Avatar),
		IsAdmin:   a.IsAdmin(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// PropertyView is the API shape of a listing.
type PropertyView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	PricePerGaj float64   `json:"pricePerGaj"`
	Gaj         float64   `json:"gaj"`
	TotalPrice  float64   `json:"totalPrice"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Featured    bool      `json:"featured"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (m *viewMapper) property(p *entity.Property) *PropertyView {
	return &PropertyView{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		City:        p.City,
		Address:     p.Address,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		PricePerGaj: p.PricePerGaj,
		Gaj:         p.Gaj,
		TotalPrice:  p.TotalPrice(),
		Category:    string(p.Category),
		Status:      string(p.Status),
		Featured:    p.Featured,
		Images:      m.resolver.ResolveAll(p.Images),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *viewMapper) properties(items []*entity.Property) []*PropertyView {
	views := make([]*PropertyView, 0, len(items))
	for _, item := range items {
		views = append(views, m.property(item))
	}

	return views
}

// BlogPostView is the API shape of a blog post.
type BlogPostView struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	Category   string    `json:"category"`
	CoverImage string    `json:"coverImage"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (m *viewMapper) blogPost(p *entity.BlogPost) *BlogPostView {
	return &BlogPostView{
		ID:         p.ID.String(),
		Title:      p.Title,
		Content:    p.Content,
		Author:     p.Author,
		Category:   p.Category,
		CoverImage: m.resolver.ResolveURL(p.CoverImage),
		Published:  p.Published,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (m *viewMapper) blogPosts(items []*entity.BlogPost) []*BlogPostView {
	views := make([]*BlogPostView, 0, len(items))
	for _, item := range items {
		views = append(views, m.blogPost(item))
	}

	return views
}

// GalleryAlbumView is the API shape of a gallery album.
type GalleryAlbumView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (m *viewMapper) album(a *entity.GalleryAlbum) *GalleryAlbumView {
	return &GalleryAlbumView{
		ID:          a.ID.String(),
		Title:       a.Title,
		Description: a.Description,
		Category:    a.Category,
		Images:      m.resolver.ResolveAll(a.Images),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (m *viewMapper) albums(items []*entity.GalleryAlbum) []*GalleryAlbumView {
	views := make([]*GalleryAlbumView, 0, len(items))
	for _, item := range items {
		views = append(views, m.album(item))
	}

	return views
}

// ContactView is the API shape of a contact request.
type ContactView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *viewMapper) contact(c *entity.Contact) *ContactView {
	return &ContactView{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *viewMapper) contacts(items []*entity.Contact) []*ContactView {
	views := make([]*ContactView, 0, len(items))
	for _, item := range items {
		views = append(views, m.contact(item))
	}

	return views
}

// PropertySnapshotView is the denormalized listing summary embedded in an inquiry.
type PropertySnapshotView struct {
	Name        string  `json:"name"`
	City        string  `json:"city"`
	PricePerGaj float64 `json:"pricePerGaj"`
	Gaj         float64 `json:"gaj"`
}

// InquiryView is the API shape of a property inquiry.
type InquiryView struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	Phone      string                `json:"phone"`
	Message    string                `json:"message"`
	PropertyID string                `json:"propertyId,omitempty"`
	Property   *PropertySnapshotView `json:"property,omitempty"`
	Status     string                `json:"status"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

func (m *viewMapper) inquiry(i *entity.Inquiry) *InquiryView {
	view := &InquiryView{
		ID:        i.ID.String(),
		Name:      i.Name,
		Email:     i.Email,
		Phone:     i.Phone,
		Message:   i.Message,
		Status:    string(i.Status),
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
	if i.PropertyID != uuid.Nil {
		view.PropertyID = i.PropertyID.String()
	}
	if i.Property != nil {
		view.Property = &PropertySnapshotView{
			Name:        i.Property.Name,
			City:        i.Property.City,
			PricePerGaj: i.Property.PricePerGaj,
			Gaj:         i.Property.Gaj,
		}
	}

	return view
}

func (m *viewMapper) inquiries(items []*entity.Inquiry) []*InquiryView {
	views := make([]*InquiryView, 0, len(items))
	for _, item := range items {
		views = append(views, m.inquiry(item))
	}

	return views
}

// FeedbackView is the API shape of a testimonial.
type FeedbackView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	Message   string    `json:"message"`
	Avatar    string    `json:"avatar"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *viewMapper) feedback(f *entity.Feedback) *FeedbackView {
	return &FeedbackView{
		ID:        f.ID.String(),
		Name:      f.Name,
		Email:     f.Email,
		Rating:    f.Rating,
		Message:   f.Message,
		Avatar:    m.resolver.ResolveURL(f.Avatar),
		Status:    string(f.Status),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (m *viewMapper) feedbacks(items []*entity.Feedback) []*FeedbackView {
	views := make([]*FeedbackView, 0, len(items))
	for _, item := range items {
		views = append(views, m.feedback(item))
	}

	return views
}

// TeamMemberView is the API shape of a staff profile.
type TeamMemberView struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Bio          string    `json:"bio"`
	Photo        string    `json:"photo"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (m *viewMapper) teamMember(t *entity.TeamMember) *TeamMemberView {
	return &TeamMemberView{
		ID:           t.ID.String(),
		Name:         t.Name,
		Title:        t.Title,
		Bio:          t.Bio,
		Photo:        m.resolver.ResolveURL(t.Photo),
		DisplayOrder: t.DisplayOrder,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (m *viewMapper) teamMembers(items []*entity.TeamMember) []*TeamMemberView {
	views := make([]*TeamMemberView, 0, len(items))
	for _, item := range items {
		views = append(views, m.teamMember(item))
	}

	return views
}

// SocialLinkView is the API shape of a social link.
type SocialLinkView struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *viewMapper) socialLink(s *entity.SocialLink) *SocialLinkView {
	return &SocialLinkView{
		ID:        s.ID.String(),
		Platform:  s.Platform,
		URL:       s.URL,
		Enabled:   s.Enabled,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *viewMapper) socialLinks(items []*entity.SocialLink) []*SocialLinkView {
	views := make([]*SocialLinkView, 0, len(items))
	for _, item := range items {
		views = append(views, m.socialLink(item))
	}

	return views
}
