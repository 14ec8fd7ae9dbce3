package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	_ "go-weather/docs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/application/schedule"
	"go-weather/internal/domain/forecast"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/usecase/city"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/weather"
	infraredis "go-weather/internal/infra/redis"
	"go-weather/internal/infra/tracing"
	"go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"
	"go-weather/pkg/resource"
)

// @title go-weather API
// @version 1.0
// @description City search and Open-Meteo backed weather forecasts
// @BasePath /go-weather
func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init tracing
	shutdownTracing := initTracing(ctx)

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRecover(e)
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	contextPath := resource.GetStringOrDefault("app.server.context-path", "/go-weather")
	apiGroup := e.Group(contextPath)
	apiGroup.GET("/swagger/*", echoSwagger.WrapHandler)

	redisClient := initRedis(ctx)
	cacheGateway := initCacheGateway(redisClient)

	// Init Gateway
	userAgent := map[string]string{"User-Agent": resource.GetStringOrDefault("app.name", "go-weather")}
	geocodingGateway := api.NewGeocodingGateway(
		resource.GetString("app.geocoding.base-url"),
		http.ClientOptions{
			DefaultHeaders: userAgent,
			ReadTimeout:    resource.GetDurationOrDefault("app.weather.http.read-timeout", 10*time.Second),
			Logger:         http.NewZapHTTPLogger("geocoding"),
		},
	)
	geocodingGateway = api.NewRateLimitedGeocodingGateway(geocodingGateway, api.NewLimiter(
		resource.GetFloat64("app.geocoding.rate-limit.requests-per-second"),
		resource.GetInt("app.geocoding.rate-limit.burst"),
	))
	geocodingGateway = api.NewCachedGeocodingGateway(geocodingGateway, cacheGateway)

	forecastGateway := api.NewForecastGateway(
		resource.GetString("app.weather.base-url"),
		resource.GetIntOrDefault("app.weather.forecast-days", 7),
		http.ClientOptions{
			DefaultHeaders: userAgent,
			ReadTimeout:    resource.GetDurationOrDefault("app.weather.http.read-timeout", 10*time.Second),
			Backoff:        http.NewBackoffConfig(resource.GetIntOrDefault("app.weather.http.retry.max-retries", 1)),
			Logger:         http.NewZapHTTPLogger("forecast"),
		},
	)
	forecastGateway = api.NewRateLimitedForecastGateway(forecastGateway, api.NewLimiter(
		resource.GetFloat64("app.weather.rate-limit.requests-per-second"),
		resource.GetInt("app.weather.rate-limit.burst"),
	))
	forecastGateway = api.NewCachedForecastGateway(forecastGateway, cacheGateway)

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(cacheGateway)
	cityUseCase := city.NewCityUseCase(
		geocodingGateway,
		resource.GetIntOrDefault("app.geocoding.count", 30),
		resource.GetStringOrDefault("app.geocoding.language", "en"),
	)
	weatherUseCase := weather.NewWeatherUseCase(
		forecastGateway,
		forecast.NewResponseTransformer(resource.GetIntOrDefault("app.weather.hourly-limit", forecast.DefaultHourlyLimit)),
	)

	// Init Controller
	healthController := controller.NewHealthController(apiGroup, healthUseCase)
	cityController := controller.NewCityController(apiGroup, cityUseCase)
	weatherController := controller.NewWeatherController(apiGroup, weatherUseCase)
	forecastController := controller.NewForecastController(apiGroup, weatherUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	cityController.InitCityRoutes()
	weatherController.InitWeatherRoutes()
	forecastController.InitForecastRoutes()

	// Init Schedule
	prefetchScheduler := initPrefetch(weatherUseCase, redisClient)

	// Start Routes
	port := resource.GetStringOrDefault("app.server.port", "8080")
	server := &nethttp.Server{
		Addr:              ":" + port,
		Handler:           otelhttp.NewHandler(e, "go-weather-server"),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, nethttp.ErrServerClosed) {
			log.Error(msg.GetMessage("app.shutdown-fail", err), zap.Error(err))
		}
	case <-ctx.Done():
	}

	log.Info(msg.GetMessage("app.stopping"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		resource.GetDurationOrDefault("app.server.shutdown-timeout", 10*time.Second))
	defer cancel()

	if prefetchScheduler != nil {
		prefetchScheduler.Stop()
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(msg.GetMessage("app.shutdown-fail", err), zap.Error(err))
		_ = server.Close()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn(msg.GetMessage("tracing.shutdown-fail", err))
	}
}

func initTracing(ctx context.Context) tracing.ShutdownFunc {
	config := tracing.Config{
		Enabled:     resource.GetBool("app.tracing.enabled"),
		Endpoint:    resource.GetString("app.tracing.endpoint"),
		ServiceName: resource.GetStringOrDefault("app.name", "go-weather"),
		Insecure:    resource.GetBool("app.tracing.insecure"),
	}

	shutdown, err := tracing.InitTracerProvider(ctx, config)
	if err != nil {
		log.Warn(msg.GetMessage("tracing.start-fail", err))
		return shutdown
	}
	if config.Enabled {
		log.Info(msg.GetMessage("tracing.start", config.Endpoint))
	}
	return shutdown
}

// initRedis returns nil when the cache is disabled or Redis cannot be reached
func initRedis(ctx context.Context) *redis.Client {
	if !resource.GetBool("app.cache.enabled") {
		return nil
	}

	client, err := infraredis.NewClient()
	if err != nil {
		log.Fatal(msg.GetMessage("app.config-fail", err), zap.Error(err))
	}

	pingCtx, cancel := context.WithTimeout(ctx, client.GetConfig().DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		log.Warn(msg.GetMessage("cache.connect-fail", err))
	}
	return client
}

func initCacheGateway(client *redis.Client) cache.CacheGateway {
	if client == nil {
		return cache.NewNoopCacheGateway()
	}
	return cache.NewRedisCacheGateway(
		client,
		client.GetConfig().CacheTTLs,
		resource.GetDurationOrDefault("app.cache.timeout", 500*time.Millisecond),
	)
}

// initPrefetch schedules cache warming, nil when prefetch or the cache is disabled
func initPrefetch(useCase weather.UseCase, client *redis.Client) *schedule.PrefetchScheduler {
	if !resource.GetBool("app.prefetch.enabled") {
		return nil
	}
	if client == nil {
		log.Warn(msg.GetMessage("prefetch.cache-disabled"))
		return nil
	}

	hostname, _ := os.Hostname()
	locker := infraredis.NewLocker(client, hostname+"-"+uuid.NewString())

	scheduler := schedule.NewPrefetchScheduler(
		useCase,
		schedule.ParseLocations(resource.GetStringSlice("app.prefetch.locations")),
		locker,
		schedule.PrefetchSchedulerConfig{
			CronExpression: resource.GetString("app.prefetch.cron"),
			Timeout:        resource.GetDuration("app.prefetch.timeout"),
			Concurrency:    resource.GetInt("app.prefetch.concurrency"),
			LockTTL:        resource.GetDuration("app.prefetch.lock-ttl"),
		},
	)
	if err := scheduler.InitPrefetchScheduleTasks(); err != nil {
		return nil
	}
	return scheduler
}
