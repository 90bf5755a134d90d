package repository

import (
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"gin-i18n/internal/config"
	"gin-i18n/internal/model"
	"gin-i18n/pkg/logging"
)

var DB *gorm.DB

// Open 打开数据库并迁移表结构，测试中可传入 sqlite 方言
func Open(dialector gorm.Dialector, logger *zap.Logger, atomicLogLevel zap.AtomicLevel) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logging.NewGormLogger(logger, logging.ToGormLogLevel(atomicLogLevel.Level())),
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.MissingTranslation{})
}

func InitDB(cfg config.DBConfig, logger *zap.Logger, atomicLogLevel zap.AtomicLevel) {
	db, err := Open(mysql.Open(cfg.DSN), logger, atomicLogLevel)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	DB = db
}
