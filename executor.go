package leimysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/zhangjx/leimysql/dialect"
)

// DB, bağlantı havuzunu, SQL gramerini ve yardımcı bileşenleri bir araya
// getiren ana erişim noktasıdır. Tablo bazlı CRUD operasyonları ile ham
// parametreli sorgular bu yapı üzerinden çalıştırılır.
//
// Gramer ve kaçış katmanı saf fonksiyonlardan oluştuğu için DB, istenildiği
// kadar goroutine tarafından eşzamanlı kullanılabilir; her sorgu kendi
// kiralanmış bağlantısı üzerinde yürür.
type DB struct {
	sqlDB   *sql.DB
	pool    Pool
	grammar dialect.Grammar
	scanner Scanner
	logger  Logger
	debug   bool
	prefix  string
	loc     *time.Location
}

// NewDB, bir *sql.DB üzerinden DB sarmalayıcısı oluşturur. Grammar, scanner
// ve havuz belirtilmemişse varsayılanları atanır.
func NewDB(db *sql.DB, opts ...Option) *DB {
	d := &DB{
		sqlDB:  db,
		logger: NopLogger{},
		loc:    time.UTC,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}

	if d.grammar == nil {
		d.grammar = dialect.MySQL()
	}
	if d.scanner == nil {
		d.scanner = NewDefaultScanner()
	}
	if d.loc == nil {
		d.loc = time.UTC
	}
	if d.pool == nil {
		d.pool = NewPool(db, d.scanner)
	}

	return d
}

// Grammar, aktif SQL derleme motorunu döndürür.
func (d *DB) Grammar() dialect.Grammar {
	return d.grammar
}

// Logger, sorgu izleme sistemine erişim sağlar.
func (d *DB) Logger() Logger {
	return d.logger
}

// TablePrefix, tablo adlarının başına eklenen öneki döndürür.
func (d *DB) TablePrefix() string {
	return d.prefix
}

// IsDebug, debug modunun açık olup olmadığını bildirir.
func (d *DB) IsDebug() bool {
	return d.debug
}

// Escape, tek bir değeri güvenli SQL literal metnine çevirir.
// Tarih değerleri yapılandırılmış zaman diliminde biçimlendirilir.
func (d *DB) Escape(value any) string {
	return d.grammar.Escape(value, d.loc)
}

// ----------------------------------------------------------------------------
// Pooled Execution
// ----------------------------------------------------------------------------

// withConn, havuzdan tek bir bağlantı kiralar, fn'i çalıştırır ve bağlantıyı
// her çıkış yolunda (başarı, sorgu hatası, panic) tam olarak bir kez geri
// bırakır. Kiralama başarısız olursa fn hiç çağrılmaz ve bırakma yapılmaz.
// Serbest bırakma garantisi defer ile yapısal olarak sağlanır.
func (d *DB) withConn(ctx context.Context, fn func(Conn) error) error {
	conn, err := d.pool.Acquire(ctx)
	if err != nil {
		return WrapError("acquire connection", err)
	}
	defer conn.Release()

	return fn(conn)
}

// log, debug modu açıksa sorguyu süresi ve sonucu ile raporlar.
func (d *DB) log(query string, args []any, start time.Time, err error) {
	if d.debug {
		d.logger.Log(query, args, time.Since(start), err)
	}
}

// Query, ham parametreli bir SELECT sorgusu çalıştırır ve tüm sonuç
// kümesini döndürür. Yer tutucu bağlama işi sürücüye bırakılır.
func (d *DB) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	start := time.Now()

	var rows []Row
	err := d.withConn(ctx, func(conn Conn) error {
		var err error
		rows, err = conn.Query(ctx, query, args...)
		return err
	})
	d.log(query, args, start, err)

	if err != nil {
		return nil, NewQueryError(err, query, args)
	}
	return rows, nil
}

// Exec, satır döndürmeyen ham bir ifadeyi çalıştırır.
func (d *DB) Exec(ctx context.Context, query string, args ...any) (*QueryResult, error) {
	start := time.Now()

	var result sql.Result
	err := d.withConn(ctx, func(conn Conn) error {
		var err error
		result, err = conn.Exec(ctx, query, args...)
		return err
	})
	d.log(query, args, start, err)

	if err != nil {
		return nil, NewQueryError(err, query, args)
	}
	return NewQueryResult(result), nil
}

// ----------------------------------------------------------------------------
// CRUD Operations
// ----------------------------------------------------------------------------

// Insert, bir veya birden fazla satırı tabloya ekler. Sütun listesi tüm
// satırların anahtar birleşimidir; bir satırda eksik olan sütun için ''
// yazılır. Boş satır listesi veya nil satır, ifade gönderilmeden veri
// biçimi hatasıyla döner.
func (d *DB) Insert(ctx context.Context, table string, rows ...Row) (*QueryResult, error) {
	query, err := d.grammar.CompileInsert(d.prefix+table, rows, d.loc)
	if err != nil {
		return nil, err
	}
	return d.Exec(ctx, query)
}

// Update, koşulla eşleşen satırların alanlarını günceller. data boş ise veri
// biçimi hatası döner; koşul boşsa WHERE atlanır ve tüm tablo güncellenir.
func (d *DB) Update(ctx context.Context, table string, condition any, data Row, tail ...string) (*QueryResult, error) {
	cond, err := dialect.Where(condition)
	if err != nil {
		return nil, err
	}
	query, err := d.grammar.CompileUpdate(d.prefix+table, cond, data, firstTail(tail), d.loc)
	if err != nil {
		return nil, err
	}
	return d.Exec(ctx, query)
}

// Delete, koşulla eşleşen satırları siler. Koşul boşsa tüm tablo silinir;
// bilinçli kullanılmalıdır.
func (d *DB) Delete(ctx context.Context, table string, condition any, tail ...string) (*QueryResult, error) {
	cond, err := dialect.Where(condition)
	if err != nil {
		return nil, err
	}
	query, err := d.grammar.CompileDelete(d.prefix+table, cond, firstTail(tail), d.loc)
	if err != nil {
		return nil, err
	}
	return d.Exec(ctx, query)
}

// Select, koşulla eşleşen satırları döndürür. fields ya ham bir string
// ("*", "id, name") ya da tek tek sarılacak sütun adlarıdır; tail "ORDER BY"
// veya "LIMIT" gibi kuyruk cümleleri için kullanılır.
func (d *DB) Select(ctx context.Context, table string, fields any, condition any, tail ...string) ([]Row, error) {
	cond, err := dialect.Where(condition)
	if err != nil {
		return nil, err
	}
	query, err := d.grammar.CompileSelect(d.prefix+table, fields, cond, firstTail(tail), d.loc)
	if err != nil {
		return nil, err
	}
	return d.Query(ctx, query)
}

// SelectOne, eşleşen ilk satırı döndürür. tail içinde limit cümlesi yoksa
// LIMIT 1 eklenir; sonuç kümesi boşsa ErrNoRows döner.
func (d *DB) SelectOne(ctx context.Context, table string, fields any, condition any, tail ...string) (Row, error) {
	cond, err := dialect.Where(condition)
	if err != nil {
		return nil, err
	}
	query, err := d.grammar.CompileSelectOne(d.prefix+table, fields, cond, firstTail(tail), d.loc)
	if err != nil {
		return nil, err
	}

	rows, err := d.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return rows[0], nil
}

// firstTail, opsiyonel kuyruk parametresini normalize eder; verilmemişse boş
// metin kullanılır, hata değildir.
func firstTail(tail []string) string {
	if len(tail) == 0 {
		return ""
	}
	return tail[0]
}
