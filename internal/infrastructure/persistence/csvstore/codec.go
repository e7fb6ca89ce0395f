package csvstore

import (
	"fmt"
	"strings"

	"github.com/cargoplan/backend/internal/domain/catalog"
	"github.com/cargoplan/backend/internal/domain/shared"
	csvimport "github.com/cargoplan/backend/internal/infrastructure/import"
	"github.com/shopspring/decimal"
)

// ParseRecords decodes a delimited-text table in the canonical catalog
// schema into SkuRecords. Any structural or per-row failure is returned
// as a single error so callers can surface it without applying a partial
// result.
func ParseRecords(data []byte) ([]catalog.SkuRecord, error) {
	parser, err := csvimport.ParseFromBytes(data)
	if err != nil {
		return nil, shared.NewDomainError("PARSE_ERROR", err.Error())
	}
	if err := parser.ParseHeader(); err != nil {
		return nil, shared.NewDomainError("PARSE_ERROR", err.Error())
	}
	if missing := parser.MissingHeaders(catalog.Columns); len(missing) > 0 {
		return nil, shared.NewDomainError("PARSE_ERROR",
			fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")))
	}

	rows, err := parser.ReadAllRows()
	if err != nil {
		return nil, shared.NewDomainError("PARSE_ERROR", err.Error())
	}

	records := make([]catalog.SkuRecord, 0, len(rows))
	for _, row := range rows {
		record, err := decodeRow(row)
		if err != nil {
			return nil, shared.NewDomainError("PARSE_ERROR", err.Error())
		}
		records = append(records, record)
	}
	return records, nil
}

func decodeRow(row *csvimport.Row) (catalog.SkuRecord, error) {
	length, err := decodeNumber(row, "L_mm")
	if err != nil {
		return catalog.SkuRecord{}, err
	}
	width, err := decodeNumber(row, "W_mm")
	if err != nil {
		return catalog.SkuRecord{}, err
	}
	height, err := decodeNumber(row, "H_mm")
	if err != nil {
		return catalog.SkuRecord{}, err
	}
	weight, err := decodeNumber(row, "Weight_kg")
	if err != nil {
		return catalog.SkuRecord{}, err
	}

	record, err := catalog.NewSkuRecord(row.Get("Item"), row.Get("SKU"), length, width, height, weight)
	if err != nil {
		return catalog.SkuRecord{}, csvimport.NewRowError(row.LineNumber, "SKU", err.Error())
	}
	return record, nil
}

// decodeNumber parses a numeric cell, treating an empty cell as zero.
func decodeNumber(row *csvimport.Row, column string) (decimal.Decimal, error) {
	raw := row.Get(column)
	if raw == "" {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, csvimport.NewRowError(row.LineNumber, column,
			fmt.Sprintf("'%s' is not a number", raw))
	}
	return value, nil
}
