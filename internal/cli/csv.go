package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jhoicas/Impuestos-api/internal/application/dto"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ReadLines lee líneas "descripcion,total,iva,retencion" de un CSV.
// La cabecera es opcional y la retención puede omitirse. Con latin1 el fichero
// se decodifica desde ISO-8859-1 (exportaciones de hojas de cálculo antiguas).
// Con separador ';' los importes se leen en formato español (ParseSpanishAmount).
func ReadLines(r io.Reader, sep rune, latin1 bool) ([]dto.BatchLine, error) {
	parse := ParseAmount
	if sep == ';' {
		parse = ParseSpanishAmount
	}
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var lines []dto.BatchLine
	row := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		row++
		if row == 1 && isHeader(rec) {
			continue
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("fila %d: se esperan al menos 3 columnas, hay %d", row, len(rec))
		}
		line := dto.BatchLine{Description: strings.TrimSpace(rec[0])}
		if line.Total, err = parse(rec[1]); err != nil {
			return nil, fmt.Errorf("fila %d, total: %w", row, err)
		}
		if line.VATRate, err = parse(rec[2]); err != nil {
			return nil, fmt.Errorf("fila %d, iva: %w", row, err)
		}
		if len(rec) > 3 && strings.TrimSpace(rec[3]) != "" {
			if line.WithholdingRate, err = parse(rec[3]); err != nil {
				return nil, fmt.Errorf("fila %d, retención: %w", row, err)
			}
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func isHeader(rec []string) bool {
	if len(rec) < 2 {
		return false
	}
	_, err := ParseAmount(rec[1])
	return err != nil
}

// ParseAmount acepta "1234.56", "1234,56" y "1.234,56". Sin coma decimal el
// punto es siempre decimal: "1.234" es 1.234.
func ParseAmount(s string) (decimal.Decimal, error) {
	return parseAmount(s, false)
}

// ParseSpanishAmount es ParseAmount para exportaciones en formato español:
// sin coma decimal, los puntos en grupos de tres cifras separan miles ("1.234" es 1234).
func ParseSpanishAmount(s string) (decimal.Decimal, error) {
	return parseAmount(s, true)
}

var thousandsGroups = regexp.MustCompile(`^[-+]?\d{1,3}(\.\d{3})+$`)

func parseAmount(s string, spanish bool) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	s = strings.ReplaceAll(s, " ", "")
	switch {
	case strings.LastIndex(s, ",") > strings.LastIndex(s, "."):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case spanish && thousandsGroups.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	default:
		s = strings.ReplaceAll(s, ",", "")
	}
	return decimal.NewFromString(s)
}
