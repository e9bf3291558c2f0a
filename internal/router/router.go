package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DisableEvent(c *ginext.Context)
	RestoreEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	Calendar(c *ginext.Context)
	MyEvents(c *ginext.Context)
	MyProfileEvents(c *ginext.Context)
	Enroll(c *ginext.Context)
	CheckIn(c *ginext.Context)
	ListParticipants(c *ginext.Context)
	RateEvent(c *ginext.Context)
	RatingSummary(c *ginext.Context)
	AddComment(c *ginext.Context)
	UpdateComment(c *ginext.Context)
	DeleteComment(c *ginext.Context)
	ListComments(c *ginext.Context)
	ReportEvent(c *ginext.Context)
	ReportComment(c *ginext.Context)
	ReportedComments(c *ginext.Context)
	ReportedEvents(c *ginext.Context)
	DisableComment(c *ginext.Context)
	RestoreComment(c *ginext.Context)
	TopCategories(c *ginext.Context)
	TopCreators(c *ginext.Context)
	TopEvents(c *ginext.Context)
	MyPopularEvents(c *ginext.Context)
	MyAttendeesByCategory(c *ginext.Context)
	MyEventStats(c *ginext.Context)
	MyAttendeeStats(c *ginext.Context)
	ListCategories(c *ginext.Context)
	GetCategory(c *ginext.Context)
	GetNotificationPrefs(c *ginext.Context)
	SetNotificationPrefs(c *ginext.Context)
}

// InitRouter: optionalAuth вешается на публичные чтения (анонимный viewer
// допустим), auth обязателен для всего остального.
func InitRouter(mode string, h Handler, auth, optionalAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")

	public := api.Group("")
	public.Use(optionalAuth)
	{
		public.GET("/events", h.ListEvents)
		public.GET("/events/:id", h.GetEvent)
		public.GET("/events/:id/rating", h.RatingSummary)
		public.GET("/events/:id/comments", h.ListComments)
		public.GET("/calendar", h.Calendar)
		public.GET("/categories", h.ListCategories)
		public.GET("/categories/:id", h.GetCategory)
	}

	private := api.Group("")
	private.Use(auth)
	{
		// Events
		private.POST("/events", h.CreateEvent)
		private.PUT("/events/:id", h.UpdateEvent)
		private.DELETE("/events/:id", h.DisableEvent)
		private.POST("/events/:id/restore", h.RestoreEvent)

		// Enrollments
		private.POST("/events/:id/enroll", h.Enroll)
		private.POST("/events/:id/checkin", h.CheckIn)
		private.GET("/events/:id/participants", h.ListParticipants)

		// Ratings and comments
		private.POST("/events/:id/rating", h.RateEvent)
		private.POST("/events/:id/comments", h.AddComment)
		private.PUT("/comments/:id", h.UpdateComment)
		private.DELETE("/comments/:id", h.DeleteComment)

		// Reports and moderation
		private.POST("/events/:id/report", h.ReportEvent)
		private.POST("/comments/:id/report", h.ReportComment)
		private.GET("/moderation/comments", h.ReportedComments)
		private.GET("/moderation/events", h.ReportedEvents)
		private.POST("/moderation/comments/:id/disable", h.DisableComment)
		private.POST("/moderation/comments/:id/restore", h.RestoreComment)

		// Analytics
		private.GET("/analytics/categories", h.TopCategories)
		private.GET("/analytics/creators", h.TopCreators)
		private.GET("/analytics/events", h.TopEvents)

		// Creator dashboard
		private.GET("/me/events", h.MyEvents)
		private.GET("/me/profile-events", h.MyProfileEvents)
		private.GET("/me/popular-events", h.MyPopularEvents)
		private.GET("/me/attendees-by-category", h.MyAttendeesByCategory)
		private.GET("/me/event-stats", h.MyEventStats)
		private.GET("/me/attendee-stats", h.MyAttendeeStats)

		// Notification prefs
		private.GET("/me/notification-prefs", h.GetNotificationPrefs)
		private.PUT("/me/notification-prefs", h.SetNotificationPrefs)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
