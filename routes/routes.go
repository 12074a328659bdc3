package routes

import (
	"net/http"

	"github.com/Roei786/Bridal-salon-sub000/appointments"
	"github.com/Roei786/Bridal-salon-sub000/auth"
	"github.com/Roei786/Bridal-salon-sub000/brides"
	"github.com/Roei786/Bridal-salon-sub000/calendar"
	"github.com/Roei786/Bridal-salon-sub000/middleware"
	"github.com/Roei786/Bridal-salon-sub000/ratelim"
	"github.com/Roei786/Bridal-salon-sub000/reminders"
	"github.com/Roei786/Bridal-salon-sub000/reports"
	"github.com/Roei786/Bridal-salon-sub000/settings"
	"github.com/Roei786/Bridal-salon-sub000/shifts"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rl.Limit(middleware.Authenticate(auth.RefreshToken)))
	router.POST("/api/auth/password-reset/request", rl.Limit(auth.RequestPasswordReset))
	router.POST("/api/auth/password-reset/confirm", rl.Limit(auth.ConfirmPasswordReset))
}

func AddBrideRoutes(router *httprouter.Router) {
	router.GET("/api/brides", middleware.Authenticate(brides.ListBrides))
	router.GET("/api/brides/:id", middleware.Authenticate(brides.GetBride))
	router.POST("/api/brides", middleware.Authenticate(brides.CreateBride))
	router.PUT("/api/brides/:id", middleware.Authenticate(brides.UpdateBride))
	router.DELETE("/api/brides/:id", middleware.Authenticate(brides.DeleteBride))
	router.GET("/api/brides/:id/history", middleware.Authenticate(brides.GetBrideHistory))
	router.POST("/api/brides/:id/photos", middleware.Authenticate(brides.UploadBridePhoto))
}

func AddAppointmentRoutes(router *httprouter.Router) {
	router.GET("/api/appointments", middleware.Authenticate(appointments.ListAppointments))
	router.GET("/api/appointments/:id", middleware.Authenticate(appointments.GetAppointment))
	router.POST("/api/appointments", middleware.Authenticate(appointments.CreateAppointment))
	router.PUT("/api/appointments/:id", middleware.Authenticate(appointments.UpdateAppointment))
	router.DELETE("/api/appointments/:id", middleware.Authenticate(appointments.DeleteAppointment))
	router.GET("/ws/calendar", middleware.Authenticate(appointments.HandleWS))
}

func AddCalendarRoutes(router *httprouter.Router) {
	router.GET("/api/calendar/:year/:month", middleware.Authenticate(calendar.GetMonthGrid))
}

func AddShiftRoutes(router *httprouter.Router) {
	router.POST("/api/shifts/clock-in", middleware.Authenticate(shifts.ClockIn))
	router.POST("/api/shifts/clock-out", middleware.Authenticate(shifts.ClockOut))
	router.GET("/api/shifts", middleware.Authenticate(shifts.ListShifts))
	router.GET("/api/shifts/user/:userid", middleware.Authenticate(shifts.ListUserShifts))
}

func AddReminderRoutes(router *httprouter.Router, sweeper *reminders.Sweeper, rl *ratelim.RateLimiter) {
	router.POST("/api/reminders/run", rl.Limit(reminders.TriggerSweep(sweeper)))
}

func AddReportRoutes(router *httprouter.Router) {
	router.GET("/api/reports/brides/:id/form", middleware.Authenticate(reports.BrideFormPDF))
	router.GET("/api/reports/appointments/:year/:month", middleware.Authenticate(reports.MonthlyAppointmentsPDF))
	router.GET("/api/reports/shifts/:userid", middleware.Authenticate(reports.StaffHoursPDF))
}

func AddSettingsRoutes(router *httprouter.Router) {
	router.GET("/api/settings", middleware.Authenticate(settings.GetUserSettings))
	router.PUT("/api/settings/:type", middleware.Authenticate(settings.UpdateUserSetting))
}
