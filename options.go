package leimysql

import (
	"time"

	"github.com/zhangjx/leimysql/dialect"
)

// Option tipi, bir *DB örneği üzerinde çalışan yapılandırma fonksiyonlarının
// imzasıdır. Yeni davranışlar, kurucu imzasına dokunmadan WithX fonksiyonları
// ile eklenir.
type Option func(*DB)

// WithGrammar, derleme aşamasında kullanılacak SQL gramerini değiştirir.
// Varsayılan olarak MySQL grameri kullanılır.
//
// Örnek:
//
//	db := leimysql.NewDB(sqlDB, leimysql.WithGrammar(dialect.MySQL()))
func WithGrammar(g dialect.Grammar) Option {
	return func(d *DB) {
		d.grammar = g
	}
}

// WithScanner, sürücüden dönen satırları Row eşlemelerine çeviren tarayıcıyı
// değiştirir. Varsayılan tarayıcı []byte değerlerini string'e normalize eder.
func WithScanner(s Scanner) Option {
	return func(d *DB) {
		d.scanner = s
	}
}

// WithLogger, sorgu izleme için özel bir logger tanımlar. Debug modu ile
// birlikte kullanıldığında her sorgu bu logger üzerinden raporlanır.
//
// Örnek:
//
//	db := leimysql.NewDB(sqlDB,
//	    leimysql.WithDebug(true),
//	    leimysql.WithLogger(leimysql.NewZerologLogger(os.Stderr)),
//	)
func WithLogger(logger Logger) Option {
	return func(d *DB) {
		d.logger = logger
	}
}

// WithDebug, debug modunu açar veya kapatır. Açıkken oluşturulan her sorgu
// süresi ve sonucu ile birlikte loglanır.
func WithDebug(enabled bool) Option {
	return func(d *DB) {
		d.debug = enabled
	}
}

// WithTablePrefix, tüm tablo adlarına otomatik önek ekler.
//
// Örnek:
//
//	db := leimysql.NewDB(sqlDB, leimysql.WithTablePrefix("app_"))
//	// db.Select(ctx, "users", ...)  →  "app_users"
func WithTablePrefix(prefix string) Option {
	return func(d *DB) {
		d.prefix = prefix
	}
}

// WithLocation, tarih/saat literallerinin biçimlendirileceği zaman dilimini
// belirler. Belirtilmezse UTC kullanılır. Zaman dilimi kaçış katmanına her
// çağrıda açık parametre olarak iletilir; paket düzeyinde durum tutulmaz.
func WithLocation(loc *time.Location) Option {
	return func(d *DB) {
		d.loc = loc
	}
}

// WithPool, bağlantıların kiralanacağı havuzu değiştirir. Testlerde sahte
// havuz enjekte etmek veya database/sql dışında bir havuz kullanmak için
// tasarlanmıştır.
func WithPool(pool Pool) Option {
	return func(d *DB) {
		d.pool = pool
	}
}
