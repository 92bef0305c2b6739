package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/shiftbase-io/timecard-backend-go/internal/config"
	appHTTP "github.com/shiftbase-io/timecard-backend-go/internal/handler/http"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/cron"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/database"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/jwt"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/notion"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/ratelimit"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/storage"
	"github.com/shiftbase-io/timecard-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftbase-io/timecard-backend-go/internal/service/attendance"
	authService "github.com/shiftbase-io/timecard-backend-go/internal/service/auth"
	dailyReportService "github.com/shiftbase-io/timecard-backend-go/internal/service/dailyreport"
	employeeService "github.com/shiftbase-io/timecard-backend-go/internal/service/employee"
	"github.com/shiftbase-io/timecard-backend-go/internal/service/file"
	notificationService "github.com/shiftbase-io/timecard-backend-go/internal/service/notification"
	reportService "github.com/shiftbase-io/timecard-backend-go/internal/service/report"
	tagService "github.com/shiftbase-io/timecard-backend-go/internal/service/tag"
	userService "github.com/shiftbase-io/timecard-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc := cfg.Location()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Pool.Close()

	txManager := postgresql.NewTxManager(db)
	workStatusRepo := postgresql.NewWorkStatusRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	dailyReportRepo := postgresql.NewDailyReportRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	tagRepo := postgresql.NewTagRepository(db)
	tagWorkTimeRepo := postgresql.NewTagWorkTimeRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var limiter ratelimit.Store
	switch cfg.RateLimit.Store {
	case "redis":
		client, err := ratelimit.NewRedisClient(cfg.RateLimit.RedisAddr, cfg.RateLimit.RedisPassword, cfg.RateLimit.RedisDB)
		if err != nil {
			log.Fatal("Failed to connect to redis: ", err)
		}
		limiter = ratelimit.NewRedisStore(client)
	default:
		limiter = ratelimit.NewMemoryStore()
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	var notionClient tagService.NotionClient
	if cfg.Notion.APIKey != "" {
		notionClient = notion.NewClient(cfg.Notion.APIKey)
	}

	fileSvc := file.NewFileService(fileStorage)
	attendanceSvc := attendanceService.NewAttendanceService(txManager, loc, workStatusRepo, timeRecordRepo)
	authSvc := authService.NewAuthService(userRepo, jwtSvc, limiter, authService.LockoutPolicy{
		Threshold: cfg.RateLimit.LockoutThreshold,
		Window:    cfg.RateLimit.LockoutWindow,
	})
	userSvc := userService.NewUserService(userRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, timeRecordRepo)
	reportSvc := reportService.NewReportService(reportRepo, userRepo, workStatusRepo, timeRecordRepo, loc)
	dailyReportSvc := dailyReportService.NewDailyReportService(dailyReportRepo, loc)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	tagSvc := tagService.NewTagService(tagRepo, tagWorkTimeRepo, notionClient, cfg.Notion.DatabaseID, cfg.Notion.TitleProperty, loc)

	scheduler := cron.NewScheduler()
	if notionClient != nil {
		tagJobs := cron.NewTagJobs(tagSvc, cfg.Notion.SyncInterval)
		tagJobs.RegisterJobs(scheduler)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtSvc, limiter, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc, fileSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		User:         appHTTP.NewUserHandler(userSvc),
		Report:       appHTTP.NewReportHandler(reportSvc, attendanceSvc, notificationSvc, userRepo, loc),
		DailyReport:  appHTTP.NewDailyReportHandler(dailyReportSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Tag:          appHTTP.NewTagHandler(tagSvc, loc),
		Health:       appHTTP.NewHealthHandler(db),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
