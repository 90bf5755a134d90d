package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"gin-i18n/internal/config"
	"gin-i18n/internal/repository"
	"gin-i18n/internal/router"
	"gin-i18n/internal/service"
	"gin-i18n/pkg/i18n"
	"gin-i18n/pkg/logging"
)

func newPlugin(cfg config.I18nConfig, reg prometheus.Registerer) *i18n.Plugin {
	p, err := i18n.New(cfg.Domain, cfg.LocaleDir,
		i18n.WithDefault(cfg.Default),
		i18n.WithLangCode(cfg.LangCode),
		i18n.WithKeyword(cfg.Keyword),
		i18n.WithLogger(logging.Logger.Named("i18n")),
		i18n.WithRegisterer(reg),
		i18n.WithMissingRecorder(service.MissingRecorder),
	)
	if err != nil {
		logging.Logger.Fatal("Failed to initialize i18n plugin",
			zap.String("locale_dir", cfg.LocaleDir),
			zap.Error(err))
	}
	return p
}

func startCron(cfg config.JobsConfig, p *i18n.Plugin) *cron.Cron {
	c := cron.New()

	// 定时将 Redis 中的缺失翻译计数写入数据库
	if _, err := c.AddFunc(cfg.FlushMissing, func() {
		if err := service.FlushMissingTranslations(); err != nil {
			logging.Logger.Error("Failed to flush missing translations via cron job", zap.Error(err))
		}
	}); err != nil {
		logging.Logger.Fatal("Failed to schedule cron job",
			zap.String("job", "flush_missing"),
			zap.Error(err))
	}

	// 定时重新扫描语言目录，新增的语言无需重启即可生效
	if cfg.RescanLocales != "" {
		if _, err := c.AddFunc(cfg.RescanLocales, func() {
			if err := p.Rescan(); err != nil {
				logging.Logger.Warn("Failed to rescan locale directory", zap.Error(err))
			}
		}); err != nil {
			logging.Logger.Fatal("Failed to schedule cron job",
				zap.String("job", "rescan_locales"),
				zap.Error(err))
		}
	}

	c.Start()
	return c
}

func startServer(cfg config.ServerConfig, h http.Handler, jobs *cron.Cron) {
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: h,
	}

	go func() {
		logging.Logger.Info("Server is running on " + cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// 等待正在执行的定时任务结束，再做最后一次落库
	<-jobs.Stop().Done()
	if err := service.FlushMissingTranslations(); err != nil {
		logging.Logger.Warn("Final flush of missing translations failed", zap.Error(err))
	}
	repository.CloseRedis()

	logging.Logger.Info("Server exiting")
}

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default: ./config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.Log); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logging.Logger.Sync() }()
	logging.Logger.Info("Application started")

	repository.InitDB(cfg.DB, logging.Logger, logging.AtomicLevel)
	repository.InitRedis(cfg.Redis)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	plugin := newPlugin(cfg.I18n, reg)

	gin.SetMode(gin.ReleaseMode)
	h := router.New(router.Options{
		Plugin:       plugin,
		Logger:       logging.Logger,
		Templates:    cfg.Server.Templates,
		Gatherer:     reg,
		Redirect:     cfg.I18n.Redirect,
		Negotiate:    cfg.I18n.Negotiate,
		ExternalKeys: cfg.I18n.External,
	})

	jobs := startCron(cfg.Jobs, plugin)
	startServer(cfg.Server, h, jobs)
}
