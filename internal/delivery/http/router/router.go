// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"estate/internal/delivery/http/middleware"
	"estate/internal/delivery/http/router/handler"
	"estate/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	PropertyHandler *handler.PropertyHandler
	InquiryHandler  *handler.InquiryHandler
	ContactHandler  *handler.ContactHandler
	FeedbackHandler *handler.FeedbackHandler
	BlogHandler     *handler.BlogHandler
	GalleryHandler  *handler.GalleryHandler
	TeamHandler     *handler.TeamHandler
	SocialHandler   *handler.SocialHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth     *handler.AuthHandler
	property *handler.PropertyHandler
	inquiry  *handler.InquiryHandler
	contact  *handler.ContactHandler
	feedback *handler.FeedbackHandler
	blog     *handler.BlogHandler
	gallery  *handler.GalleryHandler
	team     *handler.TeamHandler
	social   *handler.SocialHandler
	authMW   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:     params.AuthHandler,
		property: params.PropertyHandler,
		inquiry:  params.InquiryHandler,
		contact:  params.ContactHandler,
		feedback: params.FeedbackHandler,
		blog:     params.BlogHandler,
		gallery:  params.GalleryHandler,
		team:     params.TeamHandler,
		social:   params.SocialHandler,
		authMW:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Health check endpoint
	api.GET("/health", handler.HealthCheck)

	// Public site routes
	{
		api.GET("/properties", r.property.List)
		api.GET("/properties/:id", r.property.Get)
		api.GET("/properties/:id/similar", r.property.ListSimilar)
		api.GET("/properties/:id/qrcode", r.property.ShareQR)

		api.GET("/blog", r.blog.List)
		api.GET("/blog/:id", r.blog.Get)

		api.GET("/gallery", r.gallery.List)
		api.GET("/gallery/:id", r.gallery.Get)

		api.GET("/team", r.team.List)

		// Shared with the back office: result set widens for valid tokens.
		api.GET("/feedbacks", r.feedback.List, r.authMW.AuthenticateOptional)
		api.GET("/social-media", r.social.List, r.authMW.AuthenticateOptional)

		api.POST("/contact", r.contact.Submit)
		api.POST("/inquiry", r.inquiry.Submit)
		api.POST("/feedbacks", r.feedback.Submit)
	}

	// Auth routes
	api.POST("/admin/login", r.auth.Login)

	// Back office routes that require authentication
	admin := api.Group("", r.authMW.Authenticate)
	{
		admin.GET("/admin/profile", r.auth.GetProfile)
		admin.PUT("/admin/profile", r.auth.UpdateProfile)
		admin.POST("/admin/register", r.auth.Register, r.authMW.RequireRole(entity.RoleAdmin))

		admin.POST("/properties", r.property.Create)
		admin.PUT("/properties/:id", r.property.Update)
		admin.PUT("/properties/:id/status", r.property.UpdateStatus)
		admin.DELETE("/properties/:id", r.property.Delete)

		admin.GET("/inquiries", r.inquiry.List)
		admin.GET("/inquiries/:id", r.inquiry.Get)
		admin.PUT("/inquiries/:id/status", r.inquiry.UpdateStatus)
		admin.DELETE("/inquiries/:id", r.inquiry.Delete)

		admin.GET("/contacts", r.contact.List)
		admin.GET("/contacts/:id", r.contact.Get)
		admin.PUT("/contacts/:id/status", r.contact.UpdateStatus)
		admin.DELETE("/contacts/:id", r.contact.Delete)

		admin.GET("/feedbacks/:id", r.feedback.Get)
		admin.PUT("/feedbacks/:id/status", r.feedback.UpdateStatus)
		admin.DELETE("/feedbacks/:id", r.feedback.Delete)

		admin.POST("/blog", r.blog.Create)
		admin.PUT("/blog/:id", r.blog.Update)
		admin.DELETE("/blog/:id", r.blog.Delete)

		admin.POST("/gallery", r.gallery.Create)
		admin.PUT("/gallery/:id", r.gallery.Update)
		admin.DELETE("/gallery/:id", r.gallery.Delete)

		admin.GET("/team/:id", r.team.Get)
		admin.POST("/team", r.team.Create)
		admin.PUT("/team/:id", r.team.Update)
		admin.DELETE("/team/:id", r.team.Delete)

		admin.GET("/social-media/:id", r.social.Get)
		admin.POST("/social-media", r.social.Create)
		admin.PUT("/social-media/:id", r.social.Update)
		admin.DELETE("/social-media/:id", r.social.Delete)
	}
}
