package catalog

// Columns is the canonical column set of the persisted catalog table.
// The store preserves this schema even for an empty catalog.
var Columns = []string{"Item", "SKU", "L_mm", "W_mm", "H_mm", "Weight_kg"}

// Catalog is the ordered collection of SkuRecords held for a session.
// Mutating operations return a new Catalog; the caller persists the result
// and keeps the old value if persistence fails.
type Catalog []SkuRecord

// FindBySKU returns the first record with the given SKU code.
func (c Catalog) FindBySKU(sku string) (SkuRecord, bool) {
	for _, r := range c {
		if r.SKU == sku {
			return r, true
		}
	}
	return SkuRecord{}, false
}

// Upsert removes any record sharing the new record's SKU and appends the
// new record, so an updated record moves to the end of the catalog.
func (c Catalog) Upsert(record SkuRecord) Catalog {
	result := make(Catalog, 0, len(c)+1)
	for _, r := range c {
		if r.SKU != record.SKU {
			result = append(result, r)
		}
	}
	return append(result, record)
}

// Remove drops all records with the given SKU code. Removing an absent
// code is a no-op, not an error.
func (c Catalog) Remove(sku string) Catalog {
	result := make(Catalog, 0, len(c))
	for _, r := range c {
		if r.SKU != sku {
			result = append(result, r)
		}
	}
	return result
}

// MergeLastWins concatenates the catalog with incoming records and
// deduplicates by SKU keeping the last occurrence in scan order. Incoming
// rows override existing records, and a duplicate inside incoming resolves
// to the later row. Records absent from incoming are kept, never deleted.
func (c Catalog) MergeLastWins(incoming []SkuRecord) Catalog {
	combined := make(Catalog, 0, len(c)+len(incoming))
	combined = append(combined, c...)
	combined = append(combined, incoming...)

	lastIndex := make(map[string]int, len(combined))
	for i, r := range combined {
		lastIndex[r.SKU] = i
	}

	result := make(Catalog, 0, len(lastIndex))
	for i, r := range combined {
		if lastIndex[r.SKU] == i {
			result = append(result, r)
		}
	}
	return result
}

// SKUs returns the catalog's SKU codes in catalog order.
func (c Catalog) SKUs() []string {
	codes := make([]string, len(c))
	for i, r := range c {
		codes[i] = r.SKU
	}
	return codes
}
