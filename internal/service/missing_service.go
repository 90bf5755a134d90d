package service

import (
	"context"
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gin-i18n/constant"
	"gin-i18n/internal/apperrors"
	"gin-i18n/internal/model"
	"gin-i18n/internal/repository"
	"gin-i18n/pkg/i18n"
	"gin-i18n/pkg/logging"
	"gin-i18n/response"
)

// MaxMsgIDLength 与 missing_translations.msg_id 列长度一致，超长的消息 ID 不计数
const MaxMsgIDLength = 512

// MissingRecorder 供插件回调，将缺失翻译计入 Redis
var MissingRecorder i18n.MissingRecorder = i18n.MissingRecorderFunc(RecordMissing)

func closeConn(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		logging.Logger.Error("Failed to close Redis connection",
			zap.Error(err),
			zap.String("operation", "close"),
			zap.String("connection_type", "redis"),
		)
	}
}

// RecordMissing 记录一次缺失翻译（HINCRBY i18n:missing:domain locale|msgid）
func RecordMissing(ctx context.Context, locale, domain, msgid string) {
	if repository.RedisPool == nil || len(msgid) > MaxMsgIDLength {
		return
	}

	conn, err := repository.RedisPool.GetContext(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to get Redis connection for missing translation",
			zap.String("locale", locale),
			zap.Error(err))
		return
	}
	defer closeConn(conn)

	counterKey := constant.GetMissingCounterKey(domain)
	if _, err := conn.Do("HINCRBY", counterKey, constant.GetMissingField(locale, msgid), 1); err != nil {
		logging.Logger.Error("Failed to record missing translation",
			zap.String("key", counterKey),
			zap.String("locale", locale),
			zap.String("msgid", msgid),
			zap.Error(err))
		return
	}
	if _, err := conn.Do("SADD", constant.MissingDomains, domain); err != nil {
		logging.Logger.Error("Failed to register missing translation domain",
			zap.String("domain", domain),
			zap.Error(err))
	}
}

// FlushMissingTranslations 将 Redis 中累计的缺失计数写入数据库，由定时任务调用
func FlushMissingTranslations() error {
	logging.Logger.Info("FlushMissingTranslations start")

	conn := repository.RedisPool.Get()
	defer closeConn(conn)

	domains, err := redis.Strings(conn.Do("SMEMBERS", constant.MissingDomains))
	if err != nil {
		logging.Logger.Error("Failed to list missing translation domains", zap.Error(err))
		return err
	}

	now := time.Now()
	var errs []error
	for _, domain := range domains {
		if err := flushDomain(conn, domain, now); err != nil {
			logging.Logger.Error("Failed to flush missing translations",
				zap.String("domain", domain),
				zap.Error(err))
			errs = append(errs, err)
		}
	}

	logging.Logger.Info("FlushMissingTranslations end", zap.Int("domains", len(domains)))
	return errors.Join(errs...)
}

// flushDomain 先将计数 hash 改名为 flushing 键，再整体落库。
// 落库失败时 flushing 键保留，下一轮优先重试，期间的新计数写入新的计数 hash。
func flushDomain(conn redis.Conn, domain string, seen time.Time) error {
	counterKey := constant.GetMissingCounterKey(domain)
	flushingKey := constant.GetMissingFlushingKey(domain)

	pending, err := redis.Bool(conn.Do("EXISTS", flushingKey))
	if err != nil {
		return err
	}
	if !pending {
		exists, err := redis.Bool(conn.Do("EXISTS", counterKey))
		if err != nil {
			return err
		}
		if !exists {
			return nil
		}
		if _, err := conn.Do("RENAME", counterKey, flushingKey); err != nil {
			return err
		}
	}

	counts, err := redis.Int64Map(conn.Do("HGETALL", flushingKey))
	if err != nil {
		return err
	}

	err = repository.DB.Transaction(func(tx *gorm.DB) error {
		for field, hits := range counts {
			locale, msgid, ok := constant.SplitMissingField(field)
			if !ok {
				logging.Logger.Warn("Skipping malformed missing translation field",
					zap.String("key", flushingKey),
					zap.String("field", field))
				continue
			}
			if err := upsertMissing(tx, domain, locale, msgid, hits, seen); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	_, err = conn.Do("DEL", flushingKey)
	return err
}

func upsertMissing(tx *gorm.DB, domain, locale, msgid string, hits int64, seen time.Time) error {
	var row model.MissingTranslation
	err := tx.Where("locale = ? AND domain = ? AND msg_id = ?", locale, domain, msgid).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&model.MissingTranslation{
			Locale:     locale,
			Domain:     domain,
			MsgID:      msgid,
			Hits:       hits,
			LastSeenAt: seen,
		}).Error
	}
	if err != nil {
		return err
	}

	return tx.Model(&row).Updates(map[string]interface{}{
		"hits":         gorm.Expr("hits + ?", hits),
		"last_seen_at": seen,
	}).Error
}

// ListMissingTranslations 分页查询缺失翻译，按命中次数倒序
func ListMissingTranslations(ctx context.Context, page, size int, locale string) (*response.PageResponse[model.MissingTranslation], error) {
	// 参数校验
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10 // 默认每页10条，最大100条
	}

	db := repository.DB.WithContext(ctx).Model(&model.MissingTranslation{})
	if locale != "" {
		db = db.Where("locale = ?", locale)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		logging.Logger.Error("Failed to count missing translations", zap.Error(err))
		return nil, apperrors.SystemErrorDefault().WithCause(err)
	}

	// 如果总数为0，直接返回空结果，不执行分页查询
	if total == 0 {
		return response.NewPage[model.MissingTranslation](page, size, 0, nil), nil
	}

	var rows []model.MissingTranslation
	if err := db.
		Limit(size).
		Offset((page - 1) * size).
		Order("hits DESC, id DESC").
		Find(&rows).Error; err != nil {
		logging.Logger.Error("Failed to list missing translations", zap.Error(err))
		return nil, apperrors.SystemErrorDefault().WithCause(err)
	}

	return response.NewPage(page, size, total, rows), nil
}

// DeleteMissingTranslation 删除一条缺失翻译记录（通常在补齐翻译后）
func DeleteMissingTranslation(ctx context.Context, id uint) error {
	result := repository.DB.WithContext(ctx).Delete(&model.MissingTranslation{}, id)
	if result.Error != nil {
		logging.Logger.Error("Failed to delete missing translation",
			zap.Uint("id", id),
			zap.Error(result.Error))
		return apperrors.SystemErrorDefault().WithCause(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundError("Missing translation %d not found", id)
	}
	return nil
}
