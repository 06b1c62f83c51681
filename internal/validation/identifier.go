// Package validation, SQL metnine gömülecek tablo, sütun ve operatör
// adlarını doğrulayan dahili yardımcıları içerir. Derlenen ifadeler literal
// SQL olduğu için, identifier'ların beyaz listeden geçmesi enjeksiyona karşı
// ilk savunma hattıdır.
package validation

import "regexp"

// identifierRegex, geçerli SQL identifier'larını eşler: harf veya alt çizgi
// ile başlar, harf/rakam/alt çizgi ile devam eder. Tek bir nokta (.)
// table.column referanslarını destekler.
var identifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)?$`)

// aliasRegex, "table as alias" veya "table alias" biçimlerini eşler.
var aliasRegex = regexp.MustCompile(`(?i)^([a-zA-Z_][a-zA-Z0-9_]*)\s+(?:as\s+)?([a-zA-Z_][a-zA-Z0-9_]*)$`)

// ValidateIdentifier, verilen identifier'ın geçerli olup olmadığını kontrol
// eder. Geçersizse açıklayıcı bir IdentifierError döner.
func ValidateIdentifier(id string) error {
	if id == "" {
		return &IdentifierError{
			Identifier: id,
			Reason:     "identifier cannot be empty",
		}
	}

	if len(id) > 128 {
		return &IdentifierError{
			Identifier: id,
			Reason:     "identifier exceeds maximum length of 128 characters",
		}
	}

	if !identifierRegex.MatchString(id) {
		return &IdentifierError{
			Identifier: id,
			Reason:     "identifier contains invalid characters; only letters, numbers, underscores, and dots are allowed",
		}
	}

	return nil
}

// ValidateTableWithAlias, bir tablo referansını doğrular.
// Desteklenen biçimler: "table", "table alias", "table as alias".
// Döndürür: tablo adı, alias (varsa) ve hata.
func ValidateTableWithAlias(table string) (name, alias string, err error) {
	if table == "" {
		return "", "", &IdentifierError{
			Identifier: table,
			Reason:     "table name cannot be empty",
		}
	}

	matches := aliasRegex.FindStringSubmatch(table)
	if matches != nil {
		name = matches[1]
		alias = matches[2]

		if err := ValidateIdentifier(name); err != nil {
			return "", "", err
		}
		if err := ValidateIdentifier(alias); err != nil {
			return "", "", &IdentifierError{
				Identifier: alias,
				Reason:     "invalid alias: " + err.Error(),
			}
		}

		return name, alias, nil
	}

	if err := ValidateIdentifier(table); err != nil {
		return "", "", err
	}

	return table, "", nil
}

// IdentifierError, identifier doğrulama hatalarını temsil eder.
type IdentifierError struct {
	Identifier string
	Reason     string
}

// Error, error arayüzünü uygular.
func (e *IdentifierError) Error() string {
	if e.Identifier == "" {
		return "leimysql: invalid identifier: " + e.Reason
	}
	return "leimysql: invalid identifier '" + e.Identifier + "': " + e.Reason
}
