// Package mysql owns the database connection: it opens gorm against
// MySQL, migrates the schema, seeds the default master data and hands
// out the repository layer.
package mysql

import (
	"fmt"

	"contact_admin_server/internal/config"
	"contact_admin_server/internal/dao/mysql/repository"
	"contact_admin_server/internal/model"

	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init opens the MySQL connection from config, migrates and seeds, and
// returns the repository aggregate. Connection or migration failure is
// fatal; the server is useless without its store.
func Init() *repository.Repositories {
	conf := config.GetConfig()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	// TranslateError maps driver duplicate-key errors onto
	// gorm.ErrDuplicatedKey so the repository helpers can classify them.
	db, err := gorm.Open(mysqldriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		zap.L().Fatal("mysql connect failed", zap.Error(err))
	}

	if err := Migrate(db); err != nil {
		zap.L().Fatal("mysql migrate failed", zap.Error(err))
	}

	if err := Seed(db); err != nil {
		zap.L().Fatal("mysql seed failed", zap.Error(err))
	}

	return repository.NewRepositories(db)
}

// Migrate registers the custom join table and auto-migrates the schema.
// Exported so tests can run the same migration against an embedded
// database.
func Migrate(db *gorm.DB) error {
	// Must run before AutoMigrate so the contact_tag table is created
	// with its timestamp columns instead of gorm's bare default.
	if err := db.SetupJoinTable(&model.Contact{}, "Tags", &model.ContactTag{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&model.Category{},
		&model.Tag{},
		&model.Contact{},
	)
}

// Seed inserts the default categories and tags when their tables are
// empty. Categories are not exposed for mutation through the API, so
// this is the only way they come into existence outside of admin SQL.
func Seed(db *gorm.DB) error {
	var categoryCount int64
	if err := db.Model(&model.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if categoryCount == 0 {
		categories := []model.Category{
			{Content: "商品のお届けについて"},
			{Content: "商品の交換について"},
			{Content: "商品トラブル"},
			{Content: "ショップへのお問い合わせ"},
			{Content: "その他"},
		}
		if err := db.Create(&categories).Error; err != nil {
			return err
		}
	}

	var tagCount int64
	if err := db.Model(&model.Tag{}).Count(&tagCount).Error; err != nil {
		return err
	}
	if tagCount == 0 {
		tags := []model.Tag{
			{Name: "質問"},
			{Name: "要望"},
			{Name: "不具合報告"},
			{Name: "ご意見"},
			{Name: "その他"},
		}
		if err := db.Create(&tags).Error; err != nil {
			return err
		}
	}
	return nil
}
