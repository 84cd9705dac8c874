package app

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/autoassign/api/api"
	"github.com/autoassign/api/config"
	"github.com/autoassign/api/database"
	"github.com/autoassign/api/router"
	"github.com/autoassign/api/services/cron"
	"github.com/autoassign/api/services/storage"
	"github.com/autoassign/api/utils/middleware"
	"github.com/autoassign/api/utils/session"
	"gorm.io/gorm"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		print("Check whether Postgres is running or not\n")
		return err
	}

	if err := store.Init(); err != nil {
		print("Failed to initialize database tables\n")
		return err
	}

	sessionTTL := time.Duration(getEnv.SESSION_TTL_MINUTES) * time.Minute

	// Session store: Redis when configured, in-memory otherwise
	var sessions session.Store
	var memorySessions *session.MemoryStore
	if getEnv.REDIS_URL != "" {
		redisSessions, err := session.NewRedisStore(getEnv.REDIS_URL, sessionTTL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Falling back to in-memory sessions.", err)
		} else {
			sessions = redisSessions
			defer redisSessions.Close()
		}
	}
	if sessions == nil {
		memorySessions = session.NewMemoryStore(sessionTTL)
		sessions = memorySessions
	}

	// Upload storage: Spaces when configured, local disk otherwise
	var uploads storage.Storage
	if getEnv.SPACES_BUCKET != "" {
		spaces, err := storage.NewSpacesStore(storage.SpacesConfig{
			AccessKey: getEnv.SPACES_ACCESS_KEY,
			SecretKey: getEnv.SPACES_SECRET_KEY,
			Bucket:    getEnv.SPACES_BUCKET,
			Region:    getEnv.SPACES_REGION,
			Endpoint:  getEnv.SPACES_ENDPOINT,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize Spaces storage: %w", err)
		}
		uploads = spaces
	} else {
		local, err := storage.NewLocalStore(getEnv.UPLOAD_DIR)
		if err != nil {
			return err
		}
		uploads = local
	}

	// Initialize Cron Manager (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		db, ok := store.GetDB().(*gorm.DB)
		if !ok {
			print("Warning: Failed to get database connection for cron jobs\n")
		} else {
			// The memory store needs periodic sweeping; Redis expires keys itself
			var sweeper cron.Sweeper
			if memorySessions != nil {
				sweeper = memorySessions
			}
			cronManager = cron.NewCronManager(db, sweeper, uploads)
			if err := cronManager.Start(); err != nil {
				print("Warning: Failed to start cron jobs\n")
				print("Error: ", err.Error(), "\n")
			}
		}
	}

	// Defer closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Attach middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
	}
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins: allowedOrigins,
	})

	// Setup routes
	router.SetupRoutes(app, store, router.Dependencies{
		Env:      getEnv,
		Sessions: sessions,
		Uploads:  uploads,
	})

	// Start the server
	return server.Run()
}
