package client

import "context"

// API bundles the low-level client, the session and one typed service per
// collection.
type API struct {
	Client  *Client
	Session *Session

	Properties *PropertyService
	Blog       *Resource[BlogPost]
	Gallery    *Resource[GalleryAlbum]
	Contacts   *Resource[Contact]
	Inquiries  *Resource[Inquiry]
	Feedbacks  *Resource[Feedback]
	Team       *Resource[TeamMember]
	Social     *Resource[SocialLink]
}

// New creates an API handle for the server at baseURL.
func New(baseURL string, opts ...Option) *API {
	c := NewClient(baseURL, opts...)

	return &API{
		Client:     c,
		Session:    NewSession(c),
		Properties: &PropertyService{Resource: NewResource[Property](c, "/properties")},
		Blog:       NewResource[BlogPost](c, "/blog"),
		Gallery:    NewResource[GalleryAlbum](c, "/gallery"),
		Contacts:   NewResource[Contact](c, "/contacts"),
		Inquiries:  NewResource[Inquiry](c, "/inquiries"),
		Feedbacks:  NewResource[Feedback](c, "/feedbacks"),
		Team:       NewResource[TeamMember](c, "/team"),
		Social:     NewResource[SocialLink](c, "/social-media"),
	}
}

// PropertyService extends the uniform resource surface with the
// property-only endpoints.
type PropertyService struct {
	*Resource[Property]
}

// Similar fetches listings near the given one.
func (s *PropertyService) Similar(ctx context.Context, id string) ([]Property, error) {
	var items []Property
	if err := s.client.Get(ctx, s.path+"/"+id+"/similar", nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []Property{}
	}

	return items, nil
}

// ShareQR fetches the PNG QR code for a listing's public detail page.
func (s *PropertyService) ShareQR(ctx context.Context, id string) ([]byte, error) {
	return s.client.GetRaw(ctx, s.path+"/"+id+"/qrcode")
}

// SubmitContact sends the public contact form.
func (a *API) SubmitContact(ctx context.Context, name, email, phone, message string) (*Contact, error) {
	var contact Contact
	body := map[string]string{
		"name":    name,
		"email":   email,
		"phone":   phone,
		"message": message,
	}
	if err := a.Client.Post(ctx, "/contact", body, &contact); err != nil {
		return nil, err
	}

	return &contact, nil
}

// SubmitInquiry sends a purchase inquiry for a listing.
func (a *API) SubmitInquiry(ctx context.Context, propertyID, name, email, phone, message string) (*Inquiry, error) {
	var inquiry Inquiry
	body := map[string]string{
		"propertyId": propertyID,
		"name":       name,
		"email":      email,
		"phone":      phone,
		"message":    message,
	}
	if err := a.Client.Post(ctx, "/inquiry", body, &inquiry); err != nil {
		return nil, err
	}

	return &inquiry, nil
}

// SubmitFeedback sends a testimonial for moderation.
func (a *API) SubmitFeedback(ctx context.Context, name, email string, rating int, message string) (*Feedback, error) {
	var feedback Feedback
	body := map[string]any{
		"name":    name,
		"email":   email,
		"rating":  rating,
		"message": message,
	}
	if err := a.Client.Post(ctx, "/feedbacks", body, &feedback); err != nil {
		return nil, err
	}

	return &feedback, nil
}
