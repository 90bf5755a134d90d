package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gin-i18n/internal/apperrors"
	"gin-i18n/internal/dto"
	"gin-i18n/internal/service"
	"gin-i18n/pkg/i18n"
	"gin-i18n/pkg/utils"
	"gin-i18n/response"
)

// LocalesHandler 支持的语言及其目录缓存状态（GET /api/locales）
func LocalesHandler(p *i18n.Plugin) gin.HandlerFunc {
	return func(c *gin.Context) {
		locales := p.Locales()
		infos := make([]dto.LocaleInfo, 0, len(locales))
		for _, code := range locales {
			cached, loaded := p.Cached(code)
			infos = append(infos, dto.LocaleInfo{Code: code, Cached: cached, Loaded: loaded})
		}

		c.JSON(http.StatusOK, response.OK(dto.LocalesResponse{
			Default: p.Default(),
			Current: i18n.Lang(c),
			Locales: infos,
		}, i18n.T(c, "success")))
	}
}

// TranslateHandler 翻译预览（GET /api/translate?msgid=Hello&lang=de），lang 为空时使用请求语言。
// lang 只接受已支持的语言或默认语言；预览的 msgid 由客户端决定，不计入缺失翻译。
func TranslateHandler(p *i18n.Plugin) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q dto.TranslateQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			_ = c.Error(apperrors.InvalidRequestError(utils.ValidationMessage(err, q, "Parameter verification failed")))
			return
		}
		if q.Lang != "" {
			if err := utils.ValidateLocaleCode(q.Lang); err != nil {
				_ = c.Error(apperrors.InvalidRequestError("Invalid locale code %q", q.Lang).WithCause(err))
				return
			}
			if !p.Supports(q.Lang) && q.Lang != p.Default() {
				_ = c.Error(apperrors.InvalidRequestError("Unsupported locale %q", q.Lang))
				return
			}
			p.SetLang(c, q.Lang)
		}

		c.JSON(http.StatusOK, response.OK(dto.TranslateResponse{
			Lang:        i18n.Lang(c),
			MsgID:       q.MsgID,
			Translation: i18n.FromContext(c.Request.Context()).WithoutRecorder().T(q.MsgID),
		}, i18n.T(c, "success")))
	}
}

// ListMissingTranslationsHandler 分页查询缺失翻译（GET /api/missing?page=1&size=10&locale=de）
func ListMissingTranslationsHandler(c *gin.Context) {
	var q dto.ListMissingTranslationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(apperrors.InvalidRequestError(utils.ValidationMessage(err, q, "Parameter verification failed")))
		return
	}

	page, err := service.ListMissingTranslations(c.Request.Context(), q.Page, q.Size, q.Locale)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.OK(page, i18n.T(c, "success")))
}

// DeleteMissingTranslationHandler 删除缺失翻译记录（DELETE /api/missing/:id）
func DeleteMissingTranslationHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		_ = c.Error(apperrors.InvalidRequestError("Invalid ID"))
		return
	}

	if err := service.DeleteMissingTranslation(c.Request.Context(), uint(id)); err != nil {
		zap.L().Warn("missing translation deletion failed",
			zap.Error(err),
			zap.Uint64("id", id),
		)
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.OK("", i18n.T(c, "Missing translation deleted")))
}
