package validation

import "strings"

// allowedOperators, karşılaştırma koşullarında kullanılabilecek SQL
// operatörlerinin beyaz listesidir. Listede olmayan her operatör reddedilir.
var allowedOperators = map[string]bool{
	// Karşılaştırma operatörleri
	"=":  true,
	"!=": true,
	"<>": true,
	"<":  true,
	">":  true,
	"<=": true,
	">=": true,

	// Desen eşleştirme
	"LIKE":     true,
	"NOT LIKE": true,

	// NULL kontrolü
	"IS":     true,
	"IS NOT": true,

	// Küme operatörleri
	"IN":          true,
	"NOT IN":      true,
	"BETWEEN":     true,
	"NOT BETWEEN": true,

	// MySQL NULL güvenli eşitliği
	"<=>": true,
}

// ValidateOperator, verilen operatörün izin verilen listede olup olmadığını
// kontrol eder. Karşılaştırma öncesinde büyük harfe çevrilir ve kırpılır.
func ValidateOperator(op string) error {
	normalized := strings.ToUpper(strings.TrimSpace(op))

	if !allowedOperators[normalized] {
		return &OperatorError{
			Operator: op,
			Reason:   "operator not in allowed list",
		}
	}

	return nil
}

// NormalizeOperator, bir operatörü standart biçimine (büyük harf, kırpılmış)
// çevirir. Geçersiz operatör için hata döner.
func NormalizeOperator(op string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(op))

	if !allowedOperators[normalized] {
		return "", &OperatorError{
			Operator: op,
			Reason:   "operator not in allowed list",
		}
	}

	return normalized, nil
}

// OperatorError, operatör doğrulama hatasını temsil eder.
type OperatorError struct {
	Operator string
	Reason   string
}

// Error, error arayüzünü uygular.
func (e *OperatorError) Error() string {
	return "leimysql: invalid operator '" + e.Operator + "': " + e.Reason
}
