// Package dialect, SQL koşullarını ve ifadelerini veritabanına özgü metinlere
// derleyen katmandır. Koşullar (Cond) açık bir varyant tipi olarak temsil edilir;
// string / dizi / map biçimindeki polimorfik girdiler Where fonksiyonu ile bu
// tipe çevrilir ve Grammar implementasyonları tarafından derlenir.
package dialect

import (
	"fmt"
	"time"
)

// ----------------------------------------------------------------------------
// Condition Types
// ----------------------------------------------------------------------------

// Cond, bir WHERE filtresinin tek bir parçasını temsil eden kapalı (sealed)
// varyant tipidir. Aşağıdaki kurucular ile oluşturulur:
//
//	Raw("id=1 AND deleted=0")        → güvenilir ham SQL parçası
//	And(Eq("a", 1), Cmp("b", ">", 2)) → (( `a`=1) AND (`b` > 2))
//	Or(...), Not(...)                 → mantıksal birleşimler
//	Eq("name", "glen")                → (`name`='glen')
//	Cmp("id", "IN", []any{1, 2})      → (`id` IN (1, 2))
//	Fields(map[string]any{...})       → `a`=1 AND `b`=2
//	Fragment("`a`=`b`")               → önceden derlenmiş parça, parantezlenir
//
// Boş bir koşul (nil Cond, boş Raw, boş Fields, boş And/Or) derlendiğinde
// sonuç boş string olur; bu, "WHERE cümlesini tamamen atla" nöbetçi değeridir.
type Cond interface {
	isCond()
}

// RawCond, kaçış uygulanmadan aynen kullanılacak ham SQL parçasıdır.
// Sadece güvenilir ve kontrol edilen girdi için kullanın; kullanıcı
// girdisini asla RawCond içine koymayın.
type RawCond string

// FragmentCond, önceden derlenmiş tek bir koşul parçasıdır.
// RawCond'dan farkı, derleme sırasında bir kat parantez içine alınmasıdır.
type FragmentCond string

// AndCond, alt koşulların AND ile birleşimidir.
type AndCond []Cond

// OrCond, alt koşulların OR ile birleşimidir.
type OrCond []Cond

// NotCond, tek bir alt koşulun olumsuzlamasıdır.
type NotCond struct {
	Inner Cond
}

// EqCond, tek bir alan için eşitlik testidir.
type EqCond struct {
	Field string
	Value any
}

// CmpCond, alan–operatör–değer biçiminde bir karşılaştırmadır.
// Operatör, internal/validation beyaz listesinden geçmek zorundadır.
// Value bir dizi ise kaçış kuralları onu parantezli listeye çevirir,
// böylece IN / NOT IN ile doğal olarak eşleşir.
type CmpCond struct {
	Field    string
	Operator string
	Value    any
}

// MapCond, alan→değer eşlemesinin eşitlik testleri olarak AND birleşimidir.
// Anahtarlar deterministik çıktı için sıralanır.
type MapCond map[string]any

func (RawCond) isCond()      {}
func (FragmentCond) isCond() {}
func (AndCond) isCond()      {}
func (OrCond) isCond()       {}
func (NotCond) isCond()      {}
func (EqCond) isCond()       {}
func (CmpCond) isCond()      {}
func (MapCond) isCond()      {}

// Raw, güvenilir ham SQL parçasından bir koşul oluşturur.
func Raw(sql string) Cond { return RawCond(sql) }

// Fragment, önceden derlenmiş bir koşul parçasını sarar.
func Fragment(sql string) Cond { return FragmentCond(sql) }

// And, verilen koşulları AND ile birleştirir.
func And(conds ...Cond) Cond { return AndCond(conds) }

// Or, verilen koşulları OR ile birleştirir.
func Or(conds ...Cond) Cond { return OrCond(conds) }

// Not, verilen koşulu olumsuzlar.
func Not(c Cond) Cond { return NotCond{Inner: c} }

// Eq, alan için eşitlik koşulu oluşturur.
func Eq(field string, value any) Cond { return EqCond{Field: field, Value: value} }

// Cmp, alan–operatör–değer karşılaştırması oluşturur.
func Cmp(field, operator string, value any) Cond {
	return CmpCond{Field: field, Operator: operator, Value: value}
}

// Fields, alan→değer eşlemesinden eşitlik birleşimi oluşturur.
func Fields(m map[string]any) Cond { return MapCond(m) }

// ----------------------------------------------------------------------------
// Polymorphic Condition Parsing
// ----------------------------------------------------------------------------

// Mantıksal operatör etiketleri. Önek dizisinin ilk elemanı bu etiketlerden
// biri ise kalan elemanlar alt koşul olarak yorumlanır.
const (
	tagAnd = "$and"
	tagOr  = "$or"
	tagNot = "$not"
)

// Where, polimorfik bir koşul değerini Cond tipine çevirir.
//
// Desteklenen biçimler:
//
//	nil              → nil (koşul yok)
//	Cond             → olduğu gibi
//	string           → ham SQL parçası
//	map[string]any   → eşitlik birleşimi
//	[]any            → önek gösterimi:
//	    []any{}                          → koşul yok
//	    []any{"$and", c1, c2, ...}       → AND birleşimi
//	    []any{"$or", c1, c2, ...}        → OR birleşimi
//	    []any{"$not", c}                 → olumsuzlama
//	    []any{"`a`=`b`"}                 → önceden derlenmiş parça
//	    []any{"age", 18}                 → eşitlik
//	    []any{"age", ">", 18}            → karşılaştırma
//
// Tanınmayan biçimler ErrInvalidCondition ile reddedilir.
func Where(condition any) (Cond, error) {
	switch c := condition.(type) {
	case nil:
		return nil, nil
	case Cond:
		return c, nil
	case string:
		return RawCond(c), nil
	case map[string]any:
		return MapCond(c), nil
	case []any:
		return parsePrefix(c)
	default:
		return nil, &DialectError{
			Message: fmt.Sprintf("unsupported condition type %T", condition),
			Err:     ErrInvalidCondition,
		}
	}
}

// parsePrefix, önek gösterimindeki bir diziyi Cond tipine çevirir.
// İlk eleman mantıksal etiket değilse anlam, dizinin uzunluğuna göre belirlenir.
func parsePrefix(seq []any) (Cond, error) {
	if len(seq) == 0 {
		return nil, nil
	}

	if tag, ok := seq[0].(string); ok {
		switch tag {
		case tagAnd, tagOr:
			conds := make([]Cond, 0, len(seq)-1)
			for _, item := range seq[1:] {
				c, err := Where(item)
				if err != nil {
					return nil, err
				}
				conds = append(conds, c)
			}
			if tag == tagOr {
				return OrCond(conds), nil
			}
			return AndCond(conds), nil

		case tagNot:
			if len(seq) < 2 {
				return nil, &DialectError{
					Message: "$not requires an inner condition",
					Err:     ErrInvalidCondition,
				}
			}
			inner, err := Where(seq[1])
			if err != nil {
				return nil, err
			}
			return NotCond{Inner: inner}, nil
		}
	}

	switch len(seq) {
	case 1:
		frag, ok := seq[0].(string)
		if !ok {
			return nil, &DialectError{
				Message: fmt.Sprintf("single-element condition must be a string, got %T", seq[0]),
				Err:     ErrInvalidCondition,
			}
		}
		return FragmentCond(frag), nil

	case 2:
		field, ok := seq[0].(string)
		if !ok {
			return nil, &DialectError{
				Message: fmt.Sprintf("condition field name must be a string, got %T", seq[0]),
				Err:     ErrInvalidCondition,
			}
		}
		return EqCond{Field: field, Value: seq[1]}, nil

	default:
		field, ok := seq[0].(string)
		if !ok {
			return nil, &DialectError{
				Message: fmt.Sprintf("condition field name must be a string, got %T", seq[0]),
				Err:     ErrInvalidCondition,
			}
		}
		operator, ok := seq[1].(string)
		if !ok {
			return nil, &DialectError{
				Message: fmt.Sprintf("condition operator must be a string, got %T", seq[1]),
				Err:     ErrInvalidCondition,
			}
		}
		return CmpCond{Field: field, Operator: operator, Value: seq[2]}, nil
	}
}

// ----------------------------------------------------------------------------
// Grammar Interface
// ----------------------------------------------------------------------------

// Grammar, koşulları ve ifade bileşenlerini veritabanına özgü, çalıştırılmaya
// hazır SQL metnine çevirir. Değerler placeholder yerine kaçış uygulanmış
// literal olarak gömülür; tarih/saat biçimlendirmesi için zaman dilimi her
// çağrıya açık parametre olarak verilir (paket düzeyinde durum tutulmaz).
type Grammar interface {
	// Name, gramerin kimliğini döndürür (örn. "mysql").
	Name() string

	// Wrap, bir sütun adını veritabanına özgü tırnaklarla sarar.
	// Geçersiz karakter içeriyorsa hata döner.
	Wrap(identifier string) (string, error)

	// WrapTable, tablo adını sarar ve alias yönetir.
	WrapTable(table string) (string, error)

	// Escape, tek bir değeri güvenli SQL literal metnine çevirir.
	Escape(value any, loc *time.Location) string

	// CompileCondition, bir koşulu tek bir boolean SQL ifadesine derler.
	// Boş string, "WHERE cümlesini atla" nöbetçi değeridir.
	CompileCondition(c Cond, loc *time.Location) (string, error)

	// CompileInsert, çok satırlı INSERT ifadesini derler. Sütun listesi tüm
	// satırların anahtar birleşimidir; bir satırda eksik olan sütun için ''
	// değeri yazılır.
	CompileInsert(table string, rows []map[string]any, loc *time.Location) (string, error)

	// CompileUpdate, UPDATE ifadesini derler. Koşul nöbetçi değere
	// derlenirse WHERE tamamen atlanır.
	CompileUpdate(table string, c Cond, data map[string]any, tail string, loc *time.Location) (string, error)

	// CompileDelete, DELETE ifadesini derler.
	CompileDelete(table string, c Cond, tail string, loc *time.Location) (string, error)

	// CompileSelect, SELECT ifadesini derler. fields ya ham bir string
	// ("*", "id, name") ya da tek tek sarılacak sütun adları dilimidir.
	CompileSelect(table string, fields any, c Cond, tail string, loc *time.Location) (string, error)

	// CompileSelectOne, CompileSelect'e delege eder ve tail içinde
	// (büyük/küçük harf duyarsız) "limit " geçmiyorsa LIMIT 1 ekler.
	CompileSelectOne(table string, fields any, c Cond, tail string, loc *time.Location) (string, error)

	// DateFormat, tarih/saat literalleri için kullanılan Go time formatıdır.
	DateFormat() string
}

// BaseGrammar, gramer implementasyonları için ortak alanları taşır.
type BaseGrammar struct {
	name       string
	dateFormat string
}

// Name, gramerin adını döndürür.
func (g *BaseGrammar) Name() string {
	return g.name
}

// DateFormat, gramerin tarih formatını döndürür.
// Format belirtilmemişse varsayılan "2006-01-02 15:04:05" kullanılır.
func (g *BaseGrammar) DateFormat() string {
	if g.dateFormat == "" {
		return "2006-01-02 15:04:05"
	}
	return g.dateFormat
}

// ----------------------------------------------------------------------------
// Sentinel Errors
// ----------------------------------------------------------------------------

// Dialect implementasyonları için ortak hatalar.
// Ana paket ile import döngüsünü önlemek için burada tanımlanmıştır.
var (
	ErrNoTable          = &DialectError{Message: "no table specified"}
	ErrNoColumns        = &DialectError{Message: "update data must be a non-empty mapping"}
	ErrEmptyBatch       = &DialectError{Message: "cannot insert empty batch"}
	ErrInvalidRow       = &DialectError{Message: "insert rows must be non-nil mappings"}
	ErrInvalidCondition = &DialectError{Message: "invalid condition shape"}
	ErrInvalidFields    = &DialectError{Message: "fields must be a string or a slice of column names"}
)

// DialectError, dialect'e özgü hataları temsil eder. Err alanı doluysa
// errors.Is ile ilgili nöbetçi hataya eşlenir.
type DialectError struct {
	Message string
	Err     error
}

// Error, hatayı string olarak döndürür.
func (e *DialectError) Error() string {
	return "dialect: " + e.Message
}

// Unwrap, sarılan nöbetçi hatayı döndürür.
func (e *DialectError) Unwrap() error {
	return e.Err
}
