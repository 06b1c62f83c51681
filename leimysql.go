package leimysql

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/zhangjx/leimysql/dialect"
)

// Version, kütüphanenin mevcut sürümünü belirtir.
const Version = "0.1.0"

// Connect, verilen DSN ile yeni bir MySQL bağlantısı açar, doğrular ve DB
// örneğini döndürür.
//
// Örnek:
//
//	db, err := leimysql.Connect("user:pass@tcp(localhost:3306)/dbname")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
func Connect(dsn string, opts ...Option) (*DB, error) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, WrapError("connect", err)
	}

	// Bağlantıyı doğrula
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, WrapError("ping", err)
	}

	return NewDB(sqlDB, opts...), nil
}

// ConnectWithConfig, Config yapısı üzerinden bağlantı açar. Yapılandırma
// önce doğrulanır; eksik host, port, veritabanı adı, kullanıcı veya geçersiz
// havuz boyutu kurulum anında ölümcül hatadır. Havuz sınırları altta yatan
// *sql.DB havuzuna uygulanır.
//
// Örnek:
//
//	cfg := &leimysql.Config{
//	    Host:     "localhost",
//	    Port:     3306,
//	    Database: "mydb",
//	    Username: "user",
//	    Password: "pass",
//	}
//	db, err := leimysql.ConnectWithConfig(cfg)
func ConnectWithConfig(cfg *Config, opts ...Option) (*DB, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := Connect(cfg.DSN(), opts...)
	if err != nil {
		return nil, err
	}

	// Havuz ayarlarını uygula
	if cfg.MaxOpenConns > 0 {
		db.sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLife > 0 {
		db.sqlDB.SetConnMaxLifetime(cfg.ConnMaxLife)
	}
	if cfg.ConnMaxIdle > 0 {
		db.sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdle)
	}
	if cfg.Prefix != "" && db.prefix == "" {
		db.prefix = cfg.Prefix
	}
	if cfg.Loc != nil && db.loc == time.UTC {
		db.loc = cfg.Loc
	}

	return db, nil
}

// Escape, tek bir değeri MySQL kaçış kurallarına göre güvenli SQL literal
// metnine çevirir. Tarih değerleri UTC'de biçimlendirilir; farklı bir zaman
// dilimi için dialect.EscapeValue kullanın.
func Escape(value any) string {
	return dialect.EscapeValue(value, time.UTC)
}

// Close, altta yatan bağlantı havuzunu kapatır. DB özel bir havuzla
// (WithPool) kurulmuşsa Close etkisizdir.
func (d *DB) Close() error {
	if d.sqlDB == nil {
		return nil
	}
	return d.sqlDB.Close()
}

// Ping, bağlantının canlı olup olmadığını kontrol eder.
func (d *DB) Ping(ctx context.Context) error {
	if d.sqlDB == nil {
		return nil
	}
	return d.sqlDB.PingContext(ctx)
}
