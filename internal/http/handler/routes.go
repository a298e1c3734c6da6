package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"petcare/internal/service"
)

// Services holds every service the HTTP layer talks to.
type Services struct {
	Accounts      service.AccountService
	Pets          service.PetService
	Adoptions     service.MarketplaceService
	Matings       service.MarketplaceService
	Requests      service.RequestService
	Appointments  service.AppointmentService
	Vaccinations  service.VaccinationService
	Moods         service.MoodService
	Alerts        service.AlertService
	Rewards       service.RewardService
	Notifications service.NotificationService
	Diagnosis     service.DiagnosisService
	Uploads       service.UploadService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// requireAuth guards everything under /api except the public account routes.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services, requireAuth fiber.Handler) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Public QR landing page
	app.Get("/pets/qr/:token", PetProfilePage(svc.Pets))
	app.Get("/pets/qr/:token/image.png", PublicPetQRImage(svc.Pets))

	api := app.Group("/api")

	account := api.Group("/account")
	account.Post("/signup/request", RequestSignup(svc.Accounts))
	account.Post("/signup/verify", VerifySignup(svc.Accounts))
	account.Post("/login", Login(svc.Accounts))
	account.Post("/token/refresh", RefreshToken(svc.Accounts))
	account.Post("/forgot-password", ForgotPassword(svc.Accounts))
	account.Post("/reset-password", ResetPassword(svc.Accounts))
	account.Get("/me", requireAuth, Me(svc.Accounts))
	account.Patch("/me", requireAuth, UpdateMe(svc.Accounts))

	pets := api.Group("/pets", requireAuth)
	pets.Get("/", ListPets(svc.Pets))
	pets.Post("/", CreatePet(svc.Pets))
	pets.Get("/qr-list", PetQRList(svc.Pets))
	pets.Get("/:id", GetPet(svc.Pets))
	pets.Put("/:id", ReplacePet(svc.Pets))
	pets.Patch("/:id", PatchPet(svc.Pets))
	pets.Delete("/:id", DeletePet(svc.Pets))
	pets.Get("/:id/qr.png", PetQRImage(svc.Pets))
	pets.Get("/:id/appointments", PetAppointments(svc.Appointments))
	pets.Get("/:id/mood-history", MoodHistory(svc.Moods))

	adoptions := api.Group("/adoptions", requireAuth)
	adoptions.Get("/", ListPosts(svc.Adoptions))
	adoptions.Post("/", CreatePost(svc.Adoptions))
	adoptions.Delete("/:pet_id", WithdrawPost(svc.Adoptions))

	matings := api.Group("/matings", requireAuth)
	matings.Get("/", ListPosts(svc.Matings))
	matings.Post("/", CreatePost(svc.Matings))
	matings.Delete("/:pet_id", WithdrawPost(svc.Matings))

	requests := api.Group("/requests", requireAuth)
	requests.Post("/", CreateRequest(svc.Requests))
	requests.Get("/inbox", RequestInbox(svc.Requests))
	requests.Get("/sent", SentRequests(svc.Requests))
	requests.Get("/:id", GetRequest(svc.Requests))
	requests.Patch("/:id/status", UpdateRequestStatus(svc.Requests))

	appointments := api.Group("/appointments", requireAuth)
	appointments.Get("/", ListAppointments(svc.Appointments))
	appointments.Post("/", CreateAppointment(svc.Appointments))
	appointments.Get("/:id", GetAppointment(svc.Appointments))
	appointments.Put("/:id", ReplaceAppointment(svc.Appointments))
	appointments.Patch("/:id", PatchAppointment(svc.Appointments))
	appointments.Delete("/:id", DeleteAppointment(svc.Appointments))

	vaccinations := api.Group("/vaccinations", requireAuth)
	vaccinations.Get("/", ListVaccinations(svc.Vaccinations))
	vaccinations.Post("/", CreateVaccination(svc.Vaccinations))
	vaccinations.Get("/:id", GetVaccination(svc.Vaccinations))
	vaccinations.Put("/:id", ReplaceVaccination(svc.Vaccinations))
	vaccinations.Patch("/:id", PatchVaccination(svc.Vaccinations))
	vaccinations.Delete("/:id", DeleteVaccination(svc.Vaccinations))

	api.Post("/moods", requireAuth, RecordMood(svc.Moods))

	alerts := api.Group("/alerts", requireAuth)
	alerts.Get("/", ListAlerts(svc.Alerts))
	alerts.Post("/", CreateAlert(svc.Alerts))
	alerts.Get("/:id", GetAlert(svc.Alerts))
	alerts.Put("/:id", ReplaceAlert(svc.Alerts))
	alerts.Patch("/:id", PatchAlert(svc.Alerts))
	alerts.Delete("/:id", DeleteAlert(svc.Alerts))

	rewards := api.Group("/rewards", requireAuth)
	rewards.Get("/points/balance", PointsBalance(svc.Rewards))
	rewards.Post("/points/redeem", RedeemPoints(svc.Rewards))
	rewards.Get("/summary", RewardSummary(svc.Rewards))
	rewards.Get("/coupons", RewardCoupons(svc.Rewards))

	activities := api.Group("/activities", requireAuth)
	activities.Get("/", ListActivities(svc.Rewards))
	activities.Get("/my-logs", ActivityLogs(svc.Rewards))
	activities.Post("/complete", CompleteActivity(svc.Rewards))

	notifications := api.Group("/notifications", requireAuth)
	notifications.Post("/register", RegisterPushToken(svc.Notifications))
	notifications.Delete("/register", UnregisterPushToken(svc.Notifications))

	diagnosis := api.Group("/diagnosis", requireAuth)
	diagnosis.Post("/symptoms", DiagnoseSymptoms(svc.Diagnosis))
	diagnosis.Post("/cat", DiagnoseCatImage(svc.Diagnosis))

	uploads := api.Group("/uploads", requireAuth)
	uploads.Get("/", ListUploads(svc.Uploads))
	uploads.Post("/", UploadImage(svc.Uploads))
	uploads.Get("/:id", GetUpload(svc.Uploads))
	uploads.Get("/:id/content", DownloadUpload(svc.Uploads))
	uploads.Delete("/:id", DeleteUpload(svc.Uploads))
}
