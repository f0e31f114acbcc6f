package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AttendanceRoute "churchms_backend/internals/features/attendance/route"
	BranchRoute "churchms_backend/internals/features/branches/route"
	EventRoute "churchms_backend/internals/features/events/route"
	MemberRoute "churchms_backend/internals/features/members/route"
	NotificationRoute "churchms_backend/internals/features/notifications/route"
	PastorRoute "churchms_backend/internals/features/pastors/route"
	SettingsRoute "churchms_backend/internals/features/settings/route"
	TitheRoute "churchms_backend/internals/features/tithes/route"
	UserRoute "churchms_backend/internals/features/users/route"
	"churchms_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// user routes manage their own auth: the Clerk webhook stays public
	api := app.Group("/api")
	UserRoute.UserRoutes(api, db)

	secured := app.Group("/api", auth.ClerkAuthMiddleware())
	MemberRoute.MemberRoutes(secured, db)
	AttendanceRoute.AttendanceRoutes(secured, db)
	TitheRoute.TitheRoutes(secured, db)
	EventRoute.EventRoutes(secured, db)
	PastorRoute.PastorRoutes(secured, db)
	BranchRoute.BranchRoutes(secured, db)
	SettingsRoute.SettingsRoutes(secured, db)
	NotificationRoute.NotificationRoutes(secured, db)

	NotificationRoute.WebSocketRoutes(app)
}
