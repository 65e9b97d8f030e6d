package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cineworks/roster-backend-go/internal/config"
	"github.com/cineworks/roster-backend-go/internal/domain/roster"
	"github.com/cineworks/roster-backend-go/internal/domain/schedule"
	"github.com/cineworks/roster-backend-go/internal/fixtures"
	appHTTP "github.com/cineworks/roster-backend-go/internal/handler/http"
	"github.com/cineworks/roster-backend-go/internal/pkg/database"
	"github.com/cineworks/roster-backend-go/internal/pkg/jwt"
	"github.com/cineworks/roster-backend-go/internal/repository/memory"
	"github.com/cineworks/roster-backend-go/internal/repository/postgresql"
	authService "github.com/cineworks/roster-backend-go/internal/service/auth"
	leaveService "github.com/cineworks/roster-backend-go/internal/service/leave"
	rosterService "github.com/cineworks/roster-backend-go/internal/service/roster"
	scheduleService "github.com/cineworks/roster-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	staffRepo := postgresql.NewStaffRepository(db)
	cinemaRepo := postgresql.NewCinemaRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	leaveRecordRepo := postgresql.NewLeaveRecordRepository(db)
	allowanceRepo := postgresql.NewAllowanceRepository(db)

	scheduleStore := memory.NewScheduleStore()
	catalog := schedule.NewCatalog()
	holidays := fixtures.GetDefaultHolidays()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var tieBreaker scheduleService.TieBreaker
	if cfg.Schedule.TieBreakSeed != 0 {
		tieBreaker = scheduleService.SeededRandom(cfg.Schedule.TieBreakSeed)
	} else {
		tieBreaker = scheduleService.StableOrder()
	}

	authSvc := authService.NewAuthService(userRepo, JWTService)
	rosterSvc := rosterService.NewRosterService(db, staffRepo, cinemaRepo, leaveRecordRepo, allowanceRepo, scheduleStore)
	scheduleSvc := scheduleService.NewScheduleService(
		scheduleStore,
		staffRepo,
		catalog,
		holidays,
		scheduleService.Config{
			SupportedCinema: roster.CinemaID(cfg.Schedule.SupportedCinema),
			RestQuota:       cfg.Schedule.RestQuota,
			TieBreaker:      tieBreaker,
		},
	)
	leaveSvc := leaveService.NewLeaveService(leaveRecordRepo, allowanceRepo, staffRepo, scheduleStore)

	if err := rosterSvc.SeedDefaults(context.Background(), fixtures.GetDefaultCinemas(), fixtures.GetDefaultStaff()); err != nil {
		fmt.Println("Error seeding defaults:", err)
		return
	}

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	rosterHandler := appHTTP.NewRosterHandler(rosterSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		rosterHandler,
		scheduleHandler,
		leaveHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
