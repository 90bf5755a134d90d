package router

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gin-i18n/internal/handler"
	"gin-i18n/internal/middleware"
	"gin-i18n/pkg/i18n"
)

// Options 路由配置
type Options struct {
	Plugin *i18n.Plugin
	Logger *zap.Logger
	// Templates 模板根目录，结构为 <dir>/<lang>/*.html 与 <dir>/shared/*.html；为空时不加载模板
	Templates string
	// Gatherer 非 nil 时注册 /metrics
	Gatherer prometheus.Gatherer

	Redirect     bool
	Negotiate    bool
	ExternalKeys []string
}

// New 构建应用：gin 引擎外包一层语言前缀中间件
func New(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.GlobalErrorMiddleware())
	r.Use(middleware.ZapGinLogger(logger))
	r.Use(middleware.CorsMiddleware())
	r.Use(middleware.I18nHeadersMiddleware())
	if opts.Templates != "" {
		r.LoadHTMLGlob(filepath.Join(opts.Templates, "*", "*.html"))
	}

	// 挂载在 /sub 下的子应用，同样安装插件
	sub := gin.New()
	sub.Use(gin.Recovery())

	mwOpts := []i18n.MiddlewareOption{i18n.WithSubApps(sub)}
	if opts.Redirect {
		mwOpts = append(mwOpts, i18n.WithExplicitRedirect())
	}
	if opts.Negotiate {
		mwOpts = append(mwOpts, i18n.WithNegotiatedFallback())
	}
	if len(opts.ExternalKeys) > 0 {
		mwOpts = append(mwOpts, i18n.WithExternalTranslators(opts.ExternalKeys...))
	}
	// 插件必须在注册路由前安装
	app := i18n.NewMiddleware(r, opts.Plugin, mwOpts...)

	sub.GET("/", handler.SubHelloHandler)

	r.GET("/", handler.IndexHandler(opts.Plugin))
	r.GET("/about", handler.AboutHandler)
	r.GET("/hello/:name", handler.HelloHandler)
	r.Any("/sub/*path", gin.WrapH(http.StripPrefix("/sub", sub)))

	api := r.Group("/api")
	{
		api.GET("/locales", handler.LocalesHandler(opts.Plugin))
		api.GET("/translate", handler.TranslateHandler(opts.Plugin))
		api.GET("/missing", handler.ListMissingTranslationsHandler)
		api.DELETE("/missing/:id", handler.DeleteMissingTranslationHandler)
	}

	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	return app
}
