// Package tracker предоставляет маршруты для основного приложения.
package tracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	adminstats "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/admin/stats"
	adminusers "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/admin/users"
	"github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/auth/register"
	diarycreate "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/diary/create"
	diarylist "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/diary/list"
	diaryremove "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/diary/remove"
	diaryunlock "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/diary/unlock"
	diaryupdate "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/diary/update"
	financeattach "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/finance/attach"
	financecreate "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/finance/create"
	"github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/finance/importcsv"
	financelist "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/finance/list"
	financeremove "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/finance/remove"
	fitnesscomplete "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/fitness/complete"
	fitnesscreate "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/fitness/create"
	"github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/fitness/generate"
	fitnesslist "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/fitness/list"
	habitcreate "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/habit/create"
	habitlist "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/habit/list"
	habitlogs "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/habit/logs"
	habitremove "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/habit/remove"
	"github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/habit/toggle"
	habitupdate "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/habit/update"
	"github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/health"
	profileget "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/profile/get"
	profileunlock "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/profile/unlock"
	profileupdate "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/profile/update"
	settingsget "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/settings/get"
	settingsupdate "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/settings/update"
	taskcomplete "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/task/complete"
	taskcreate "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/task/create"
	tasklist "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/task/list"
	taskremove "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/task/remove"
	filelist "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/userfile/list"
	fileremove "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/userfile/remove"
	"github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/userfile/upload"
	watercreate "github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/water/create"
	"github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/water/intake"
	"github.com/magabrotheeeer/liferpg-tracker/internal/http/handlers/xp/history"
	"github.com/magabrotheeeer/liferpg-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/jwt"
	adminservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/admin"
	authservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/auth"
	diaryservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/diary"
	financeservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/finance"
	fitnessservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/fitness"
	habitservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/habit"
	profileservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/profile"
	settingsservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/settings"
	taskservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/task"
	fileservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/userfile"
	waterservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/water"
	xpservice "github.com/magabrotheeeer/liferpg-tracker/internal/services/xp"
)

// Services объединяет все сервисы приложения для регистрации маршрутов.
type Services struct {
	Auth     *authservice.AuthService
	Profile  *profileservice.ProfileService
	XP       *xpservice.XPService
	Habit    *habitservice.HabitService
	Task     *taskservice.TaskService
	Finance  *financeservice.FinanceService
	Fitness  *fitnessservice.FitnessService
	Water    *waterservice.WaterService
	Diary    *diaryservice.DiaryService
	File     *fileservice.FileService
	Settings *settingsservice.SettingsService
	Admin    *adminservice.AdminService
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker, s *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/health", health.New().ServeHTTP)
		r.Post("/register", register.New(logger, s.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, s.Auth).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/profile", profileget.New(logger, s.Profile).ServeHTTP)
			r.Put("/profile", profileupdate.New(logger, s.Profile).ServeHTTP)
			r.Post("/profile/features", profileunlock.New(logger, s.Profile).ServeHTTP)
			r.Get("/xp/history", history.New(logger, s.XP).ServeHTTP)

			r.Post("/habits", habitcreate.New(logger, s.Habit).ServeHTTP)
			r.Get("/habits", habitlist.New(logger, s.Habit).ServeHTTP)
			r.Get("/habits/logs", habitlogs.New(logger, s.Habit).ServeHTTP)
			r.Put("/habits/{id}", habitupdate.New(logger, s.Habit).ServeHTTP)
			r.Delete("/habits/{id}", habitremove.New(logger, s.Habit).ServeHTTP)
			r.Post("/habits/{id}/toggle", toggle.New(logger, s.Habit).ServeHTTP)

			r.Post("/tasks", taskcreate.New(logger, s.Task).ServeHTTP)
			r.Get("/tasks", tasklist.New(logger, s.Task).ServeHTTP)
			r.Post("/tasks/{id}/complete", taskcomplete.New(logger, s.Task).ServeHTTP)
			r.Delete("/tasks/{id}", taskremove.New(logger, s.Task).ServeHTTP)

			r.Post("/finance", financecreate.New(logger, s.Finance).ServeHTTP)
			r.Get("/finance", financelist.New(logger, s.Finance).ServeHTTP)
			r.Post("/finance/import", importcsv.New(logger, s.Finance).ServeHTTP)
			r.Delete("/finance/{id}", financeremove.New(logger, s.Finance).ServeHTTP)
			r.Post("/finance/{id}/attachments", financeattach.New(logger, s.Finance).ServeHTTP)

			r.Post("/fitness/plans", fitnesscreate.New(logger, s.Fitness).ServeHTTP)
			r.Get("/fitness/plans", fitnesslist.New(logger, s.Fitness).ServeHTTP)
			r.Post("/fitness/plans/generate", generate.New(logger, s.Fitness).ServeHTTP)
			r.Post("/fitness/complete", fitnesscomplete.New(logger, s.Fitness).ServeHTTP)

			r.Post("/water", watercreate.New(logger, s.Water).ServeHTTP)
			r.Get("/water/intake", intake.New(logger, s.Water).ServeHTTP)

			r.Post("/diary/unlock", diaryunlock.New(logger, s.Diary).ServeHTTP)
			r.Post("/diary", diarycreate.New(logger, s.Diary).ServeHTTP)
			r.Get("/diary", diarylist.New(logger, s.Diary).ServeHTTP)
			r.Put("/diary/{id}", diaryupdate.New(logger, s.Diary).ServeHTTP)
			r.Delete("/diary/{id}", diaryremove.New(logger, s.Diary).ServeHTTP)

			r.Post("/files", upload.New(logger, s.File).ServeHTTP)
			r.Get("/files", filelist.New(logger, s.File).ServeHTTP)
			r.Delete("/files/{id}", fileremove.New(logger, s.File).ServeHTTP)

			r.Get("/settings", settingsget.New(logger, s.Settings).ServeHTTP)
			r.Put("/settings", settingsupdate.New(logger, s.Settings).ServeHTTP)

			// Группа только для администраторов
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))
				r.Get("/admin/stats", adminstats.New(logger, s.Admin).ServeHTTP)
				r.Get("/admin/users", adminusers.New(logger, s.Admin).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
