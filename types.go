package leimysql

import (
	"database/sql"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
)

// ----------------------------------------------------------------------------
// Row & Result Types
// ----------------------------------------------------------------------------

// Row, tek bir kaydın alan→değer eşlemesidir. Insert çağrılarında girdi,
// Select çağrılarında çıktı olarak kullanılır. map[string]any için bir takma
// ad (alias) olduğundan düz map literalleri doğrudan geçirilebilir.
type Row = map[string]any

// QueryResult, INSERT, UPDATE veya DELETE sonucunda sürücüden dönen ham
// sql.Result değerini sarar ve üzerinde nil-güvenli erişim metotları sunar.
type QueryResult struct {
	result sql.Result
}

// NewQueryResult, ham sql.Result değerinden bir QueryResult oluşturur.
func NewQueryResult(result sql.Result) *QueryResult {
	return &QueryResult{result: result}
}

// LastInsertID, son eklenen kaydın otomatik artan kimliğini döndürür.
// Sonuç yoksa ErrNoRows döner.
func (r *QueryResult) LastInsertID() (int64, error) {
	if r.result == nil {
		return 0, ErrNoRows
	}
	return r.result.LastInsertId()
}

// RowsAffected, sorgudan etkilenen satır sayısını döndürür.
func (r *QueryResult) RowsAffected() (int64, error) {
	if r.result == nil {
		return 0, ErrNoRows
	}
	return r.result.RowsAffected()
}

// ----------------------------------------------------------------------------
// Configuration
// ----------------------------------------------------------------------------

// Config, veritabanı bağlantısının yapılandırma şemasıdır. Bağlantı bilgileri
// yanında havuz sınırlarını, karakter setini ve kaçış katmanının varsayılan
// zaman dilimini de taşır.
type Config struct {
	Host         string         // Veritabanı sunucusunun adresi
	Port         int            // Bağlantı portu
	Database     string         // Bağlanılacak veritabanı adı
	Username     string         // Yetkilendirme için kullanıcı adı
	Password     string         // Yetkilendirme için parola
	Charset      string         // Karakter seti (varsayılan: utf8mb4)
	Collation    string         // Karşılaştırma kuralları
	Prefix       string         // Tablo adlarının önüne eklenecek önek
	MaxOpenConns int            // Havuzdaki maksimum açık bağlantı sayısı (0 = sınırsız)
	MaxIdleConns int            // Boşta bekletilecek maksimum bağlantı sayısı
	ConnMaxLife  time.Duration  // Bir bağlantının yaşam süresi
	ConnMaxIdle  time.Duration  // Bir bağlantının boşta kalabileceği süre
	TLS          bool           // TLS şifreli bağlantı zorunluluğu
	Loc          *time.Location // Tarih literalleri için zaman dilimi (varsayılan: UTC)
}

// DefaultConfig, makul varsayılanlarla dolu bir yapılandırma döndürür.
func DefaultConfig() *Config {
	return &Config{
		Host:         "localhost",
		Port:         3306,
		Charset:      "utf8mb4",
		Collation:    "utf8mb4_unicode_ci",
		MaxOpenConns: 25,
		MaxIdleConns: 5,
		ConnMaxLife:  5 * time.Minute,
		ConnMaxIdle:  5 * time.Minute,
	}
}

// Validate, yapılandırmayı bağlantı kurulmadan önce denetler. Eksik veya
// geçersiz alanlar ErrInvalidConfig'e eşlenen bir ConfigError ile döner;
// bu hatalar kurulum anında ölümcüldür, yeniden denenmez.
func (c *Config) Validate() error {
	if c.Host == "" {
		return &ConfigError{Field: "Host", Reason: "host cannot be empty"}
	}
	if c.Port <= 0 || c.Port > 65535 {
		return &ConfigError{Field: "Port", Reason: "port must be between 1 and 65535"}
	}
	if c.Database == "" {
		return &ConfigError{Field: "Database", Reason: "database name cannot be empty"}
	}
	if c.Username == "" {
		return &ConfigError{Field: "Username", Reason: "username cannot be empty"}
	}
	if c.MaxOpenConns < 0 {
		return &ConfigError{Field: "MaxOpenConns", Reason: "pool size cannot be negative"}
	}
	if c.MaxIdleConns < 0 {
		return &ConfigError{Field: "MaxIdleConns", Reason: "pool size cannot be negative"}
	}
	return nil
}

// DSN, go-sql-driver/mysql'in anlayacağı bağlantı dizesini üretir.
// ParseTime açık tutulur; böylece DATETIME sütunları time.Time olarak döner.
func (c *Config) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.Username
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	mc.DBName = c.Database
	mc.ParseTime = true
	if c.Collation != "" {
		mc.Collation = c.Collation
	}
	if c.Charset != "" {
		mc.Params = map[string]string{"charset": c.Charset}
	}
	if c.Loc != nil {
		mc.Loc = c.Loc
	}
	if c.TLS {
		mc.TLSConfig = "true"
	}
	return mc.FormatDSN()
}

// ----------------------------------------------------------------------------
// Logger Interface
// ----------------------------------------------------------------------------

// Logger, çalıştırılan sorguları, parametrelerini, sürelerini ve hatalarını
// izlemek için kullanılan arayüzdür. Debug modu açıkken her sorgu için bir
// kez çağrılır.
type Logger interface {
	Log(query string, args []any, duration time.Duration, err error)
}

// NopLogger, hiçbir şey kaydetmeyen sessiz logger'dır. Geliştirici bir
// logger belirtmezse varsayılan olarak kullanılır.
type NopLogger struct{}

// Log, gelen tüm veriyi yok sayar.
func (NopLogger) Log(string, []any, time.Duration, error) {}
