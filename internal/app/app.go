package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/getkin/kin-openapi/routers"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/metinatakli/seat-booking/internal/booking"
	"github.com/metinatakli/seat-booking/internal/domain"
	"github.com/metinatakli/seat-booking/internal/events"
	"github.com/metinatakli/seat-booking/internal/mailer"
	"github.com/metinatakli/seat-booking/internal/metrics"
	"github.com/metinatakli/seat-booking/internal/repository"
	appvalidator "github.com/metinatakli/seat-booking/internal/validator"
	"github.com/metinatakli/seat-booking/internal/vcs"
	"github.com/metinatakli/seat-booking/migrations"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const serviceName = "seat-booking"

var (
	version = vcs.Version()
)

// BookingEngine is the only way entry points create bookings.
type BookingEngine interface {
	AttemptBooking(ctx context.Context, movieID, seatID, userID int) (*domain.Booking, error)
}

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          redis.UniversalClient
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager
	publisher      events.Publisher
	metrics        *metrics.Metrics
	bookingCounter metric.Int64Counter
	templateCache  map[string]*template.Template
	openapiRouter  routers.Router
	wg             sync.WaitGroup

	userRepo    domain.UserRepository
	movieRepo   domain.MovieRepository
	seatRepo    domain.SeatRepository
	bookingRepo domain.BookingRepository

	bookingEngine BookingEngine
}

type Config struct {
	Port             int
	Env              string
	DB               DBConfig
	Redis            RedisConfig
	SMTP             SMTPConfig
	AMQP             AMQPConfig
	OtelCollectorUrl string
	Migrate          bool
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

type AMQPConfig struct {
	URL   string
	Queue string
}

func Run() error {
	// a missing .env file is fine, the environment may already be populated
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config

	flag.IntVar(&cfg.Port, "port", envInt("PORT", 3000), "server port")
	flag.StringVar(&cfg.Env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", os.Getenv("DB_DSN"), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", os.Getenv("REDIS_URL"), "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.SMTP.Host, "smtp-host", envString("SMTP_HOST", "sandbox.smtp.mailtrap.io"), "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", envInt("SMTP_PORT", 2525), "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", os.Getenv("SMTP_USERNAME"), "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", os.Getenv("SMTP_PASSWORD"), "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", envString("SMTP_SENDER", "Seat Booking <no-reply@seat-booking.local>"), "SMTP sender")

	flag.StringVar(&cfg.AMQP.URL, "amqp-url", os.Getenv("AMQP_URL"), "RabbitMQ URL, events are not published when empty")
	flag.StringVar(&cfg.AMQP.Queue, "amqp-queue", envString("AMQP_QUEUE", events.BookingCreatedQueue), "RabbitMQ queue for booking events")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", os.Getenv("OTEL_COLLECTOR_URL"), "OpenTelemetry collector gRPC endpoint")
	flag.BoolVar(&cfg.Migrate, "migrate", false, "Apply database migrations before starting")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	textHandler := slog.NewTextHandler(os.Stdout, nil)
	logger := slog.New(textHandler)

	if cfg.Migrate {
		err = migrations.Up(cfg.DB.DSN)
		if err != nil {
			return err
		}

		logger.Info("database migrations applied")
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.AMQP.URL != "" {
		amqpPublisher := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
		defer amqpPublisher.Close()

		publisher = amqpPublisher
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	userRepo := repository.NewPostgresUserRepository(db)
	movieRepo := repository.NewPostgresMovieRepository(db)
	seatRepo := repository.NewPostgresSeatRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)

	engine := booking.NewEngine(repository.NewPostgresTxManager(db), movieRepo, seatRepo, bookingRepo)

	app := NewApp(
		cfg,
		logger,
		db,
		redisClient,
		appvalidator.NewValidator(),
		mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		NewSessionManager(redisClient),
		publisher,
		metrics.NewWithRegistry(registry),
		userRepo,
		movieRepo,
		seatRepo,
		bookingRepo,
		engine,
	)

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		app.logger = slog.New(NewMultiHandler(textHandler, otelslog.NewHandler(serviceName)))

		// instruments created before the meter provider was installed are no-ops
		app.bookingCounter = newBookingCounter()
	}

	return app.run()
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	mailer mailer.Mailer,
	sessionManager *scs.SessionManager,
	publisher events.Publisher,
	metrics *metrics.Metrics,
	userRepo domain.UserRepository,
	movieRepo domain.MovieRepository,
	seatRepo domain.SeatRepository,
	bookingRepo domain.BookingRepository,
	bookingEngine BookingEngine,
) *Application {
	return &Application{
		config:         cfg,
		logger:         logger,
		db:             db,
		redis:          redisClient,
		validator:      validator,
		mailer:         mailer,
		sessionManager: sessionManager,
		publisher:      publisher,
		metrics:        metrics,
		bookingCounter: newBookingCounter(),
		templateCache:  mustTemplateCache(),
		openapiRouter:  mustOpenAPIRouter(),
		userRepo:       userRepo,
		movieRepo:      movieRepo,
		seatRepo:       seatRepo,
		bookingRepo:    bookingRepo,
		bookingEngine:  bookingEngine,
	}
}

func newBookingCounter() metric.Int64Counter {
	counter, err := otel.Meter(serviceName).Int64Counter(
		"booking.attempts",
		metric.WithDescription("Seat booking attempts by outcome"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return counter
}

func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
			return
		}

		app.logger.Info("completing background tasks", "addr", srv.Addr)

		app.wg.Wait()
		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return v
}
