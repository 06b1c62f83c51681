package leimysql

import "database/sql"

// Scanner, sürücüden dönen ham satırları Row eşlemelerine çevirir.
// Özel tip dönüşümleri gereken durumlarda WithScanner ile değiştirilebilir.
type Scanner interface {
	ScanRows(rows *sql.Rows) ([]Row, error)
}

// DefaultScanner, her satırı sütun adı→değer eşlemesine çevirir ve sürücünün
// []byte olarak döndürdüğü metin sütunlarını string'e normalize eder.
type DefaultScanner struct{}

// NewDefaultScanner, varsayılan tarayıcıyı oluşturur.
func NewDefaultScanner() *DefaultScanner {
	return &DefaultScanner{}
}

// ScanRows, sonuç kümesinin tamamını okur ve Row dilimi olarak döndürür.
func (s *DefaultScanner) ScanRows(rows *sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		out = append(out, row)
	}

	return out, rows.Err()
}
