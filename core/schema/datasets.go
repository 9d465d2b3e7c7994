package schema

import (
	"strings"

	"pfep-analyzer/core/analysis"
	"pfep-analyzer/core/coerce"
	"pfep-analyzer/core/tabular"
)

// Canonical field names shared by both dataset schemas.
const (
	FieldPartID      = "part_id"
	FieldDescription = "description"
	FieldTargetQty   = "target_qty"
	FieldVendorCode  = "vendor_code"
	FieldVendorName  = "vendor_name"
	FieldCity        = "city"
	FieldState       = "state"
	FieldOnHandQty   = "on_hand_qty"
	FieldStockValue  = "stock_value"
)

// ReferenceSchema describes the PFEP master table. Alias lists are ordered by
// how commonly each name appears in real exports.
var ReferenceSchema = Schema{
	Name: "pfep",
	Fields: []Field{
		{Canonical: FieldPartID, Required: true, Aliases: []string{
			"part_no", "part_number", "material", "material_code", "item_code", "code",
		}},
		{Canonical: FieldDescription, Aliases: []string{
			"description", "item_description", "part_description", "desc", "material_description",
		}},
		{Canonical: FieldTargetQty, Required: true, Aliases: []string{
			"rm_in_qty", "rm_qty", "required_qty", "norm_qty", "target_qty", "rm", "ri_in_qty",
		}},
		{Canonical: FieldVendorCode, Aliases: []string{
			"vendor_code", "vendor_id", "supplier_code", "supplier_id",
		}},
		{Canonical: FieldVendorName, Aliases: []string{
			"vendor_name", "vendor", "supplier_name", "supplier",
		}},
		{Canonical: FieldCity, Aliases: []string{"city", "vendor_city", "supplier_city"}},
		{Canonical: FieldState, Aliases: []string{"state", "vendor_state", "supplier_state"}},
	},
}

// InventorySchema describes the current-inventory snapshot table.
var InventorySchema = Schema{
	Name: "inventory",
	Fields: []Field{
		{Canonical: FieldPartID, Required: true, Aliases: []string{
			"part_no", "part_number", "material", "material_code", "item_code", "code",
		}},
		{Canonical: FieldDescription, Aliases: []string{
			"description", "item_description", "part_description", "desc", "material_description",
		}},
		{Canonical: FieldOnHandQty, Required: true, Aliases: []string{
			"current_qty", "qty", "quantity", "stock_qty", "on_hand_qty",
		}},
		{Canonical: FieldStockValue, Aliases: []string{
			"stock_value", "value", "amount", "cost", "inventory_value",
		}},
	},
}

// BuildReference normalizes a raw table into reference items. It returns the
// number of rows dropped for an empty or null-sentinel part identifier or a
// negative target quantity; a missing required column yields a *SchemaError
// and zero records.
func BuildReference(table *tabular.Table) (items []analysis.ReferenceItem, dropped int, err error) {
	mapping, err := ReferenceSchema.Resolve(table.Columns)
	if err != nil {
		return nil, 0, err
	}

	items = make([]analysis.ReferenceItem, 0, len(table.Rows))
	for _, row := range table.Rows {
		partID := strings.TrimSpace(row.Get(mapping[FieldPartID]))
		if coerce.IsNullSentinel(partID) {
			dropped++
			continue
		}

		// Negative targets are data entry noise (accounting-style
		// negatives survive coercion); a target is a stock level.
		targetQty := coerce.ToFloat(row.Get(mapping[FieldTargetQty]))
		if targetQty < 0 {
			dropped++
			continue
		}

		items = append(items, analysis.ReferenceItem{
			PartID:      partID,
			Description: optional(row, mapping, FieldDescription),
			TargetQty:   targetQty,
			VendorCode:  optional(row, mapping, FieldVendorCode),
			VendorName:  optional(row, mapping, FieldVendorName),
			City:        optional(row, mapping, FieldCity),
			State:       optional(row, mapping, FieldState),
		})
	}
	return items, dropped, nil
}

// BuildInventory normalizes a raw table into inventory items, with the same
// dropped-row semantics as BuildReference.
func BuildInventory(table *tabular.Table) (items []analysis.InventoryItem, dropped int, err error) {
	mapping, err := InventorySchema.Resolve(table.Columns)
	if err != nil {
		return nil, 0, err
	}

	items = make([]analysis.InventoryItem, 0, len(table.Rows))
	for _, row := range table.Rows {
		partID := strings.TrimSpace(row.Get(mapping[FieldPartID]))
		if coerce.IsNullSentinel(partID) {
			dropped++
			continue
		}

		onHandQty := coerce.ToFloat(row.Get(mapping[FieldOnHandQty]))
		if onHandQty < 0 {
			dropped++
			continue
		}

		items = append(items, analysis.InventoryItem{
			PartID:      partID,
			Description: optional(row, mapping, FieldDescription),
			OnHandQty:   onHandQty,
			StockValue:  coerce.ToInt(row.Get(mapping[FieldStockValue])),
		})
	}
	return items, dropped, nil
}

// optional reads a non-required field, defaulting to "" when the schema
// resolved no source column for it.
func optional(row tabular.Row, mapping Mapping, field string) string {
	source, ok := mapping[field]
	if !ok {
		return ""
	}
	return strings.TrimSpace(row.Get(source))
}
