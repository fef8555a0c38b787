package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/stafftrack/stafftrack-go/internal/config"
	"github.com/stafftrack/stafftrack-go/internal/fixtures"
	appHTTP "github.com/stafftrack/stafftrack-go/internal/handler/http"
	"github.com/stafftrack/stafftrack-go/internal/pkg/database"
	"github.com/stafftrack/stafftrack-go/internal/pkg/jwt"
	"github.com/stafftrack/stafftrack-go/internal/pkg/kvstore"
	"github.com/stafftrack/stafftrack-go/internal/repository/kv"
	attendanceService "github.com/stafftrack/stafftrack-go/internal/service/attendance"
	authService "github.com/stafftrack/stafftrack-go/internal/service/auth"
	dashboardService "github.com/stafftrack/stafftrack-go/internal/service/dashboard"
	employeeService "github.com/stafftrack/stafftrack-go/internal/service/employee"
	punishmentService "github.com/stafftrack/stafftrack-go/internal/service/punishment"
	reportService "github.com/stafftrack/stafftrack-go/internal/service/report"
	settingsService "github.com/stafftrack/stafftrack-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	var store kvstore.Store
	switch cfg.Storage.Type {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		store, err = kvstore.NewPostgresStore(ctx, db)
		if err != nil {
			log.Fatal("Failed to initialize collection store: ", err)
		}
	case "memory":
		store = kvstore.NewMemoryStore()
	default:
		log.Fatal("Unsupported store type: ", cfg.Storage.Type)
	}

	if err := fixtures.Seed(ctx, store, cfg.Seed.SampleData); err != nil {
		log.Fatal("Failed to seed store: ", err)
	}

	employeeRepo := kv.NewEmployeeRepository(store)
	attendanceRepo := kv.NewAttendanceRepository(store)
	punishmentRepo := kv.NewPunishmentRepository(store)
	activityRepo := kv.NewActivityRepository(store)
	settingsRepo := kv.NewSettingsRepository(store, fixtures.DefaultSettings())
	userRepo := kv.NewUserRepository(store)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewService(userRepo, jwtService)
	employeeSvc := employeeService.NewService(employeeRepo, activityRepo)
	attendanceSvc := attendanceService.NewService(attendanceRepo, employeeRepo, activityRepo)
	punishmentSvc := punishmentService.NewService(punishmentRepo, employeeRepo, settingsRepo, activityRepo)
	settingsSvc := settingsService.NewService(settingsRepo, activityRepo)
	reportSvc := reportService.NewService(employeeRepo, attendanceRepo, punishmentRepo, settingsRepo, activityRepo)
	dashboardSvc := dashboardService.NewService(employeeSvc, attendanceSvc, punishmentSvc, activityRepo)

	router := appHTTP.NewRouter(jwtService, cfg.App.FrontendURL, cfg.App.Env, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Punishment: appHTTP.NewPunishmentHandler(punishmentSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Activity:   appHTTP.NewActivityHandler(activityRepo),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
