package analysis

// SampleReference returns the built-in demonstration PFEP master dataset so
// the system can be exercised without uploading files.
func SampleReference() []ReferenceItem {
	return []ReferenceItem{
		{PartID: "AC0303020106", Description: "FLAT ALUMINIUM PROFILE", TargetQty: 4, VendorCode: "V001", VendorName: "Vendor_A", City: "Mumbai", State: "Maharashtra"},
		{PartID: "AC0303020105", Description: "RAIN GUTTER PROFILE", TargetQty: 6, VendorCode: "V002", VendorName: "Vendor_B", City: "Delhi", State: "Delhi"},
		{PartID: "AA0106010001", Description: "HYDRAULIC POWER STEERING OIL", TargetQty: 10, VendorCode: "V001", VendorName: "Vendor_A", City: "Mumbai", State: "Maharashtra"},
		{PartID: "AC0203020077", Description: "Bulb beading LV battery flap", TargetQty: 3, VendorCode: "V003", VendorName: "Vendor_C", City: "Chennai", State: "Tamil Nadu"},
		{PartID: "AC0303020104", Description: "L- PROFILE JAM PILLAR", TargetQty: 20, VendorCode: "V001", VendorName: "Vendor_A", City: "Mumbai", State: "Maharashtra"},
		{PartID: "AA0112014000", Description: "Conduit Pipe Filter to Compressor", TargetQty: 30, VendorCode: "V002", VendorName: "Vendor_B", City: "Delhi", State: "Delhi"},
		{PartID: "AA0115120001", Description: "HVPDU ms", TargetQty: 12, VendorCode: "V004", VendorName: "Vendor_D", City: "Bangalore", State: "Karnataka"},
		{PartID: "AA0119020017", Description: "REAR TURN INDICATOR", TargetQty: 40, VendorCode: "V003", VendorName: "Vendor_C", City: "Chennai", State: "Tamil Nadu"},
		{PartID: "AA0119020019", Description: "REVERSING LAMP", TargetQty: 20, VendorCode: "V001", VendorName: "Vendor_A", City: "Mumbai", State: "Maharashtra"},
		{PartID: "AA0822010800", Description: "SIDE DISPLAY BOARD", TargetQty: 50, VendorCode: "V002", VendorName: "Vendor_B", City: "Delhi", State: "Delhi"},
		{PartID: "BB0101010001", Description: "ENGINE OIL FILTER", TargetQty: 45, VendorCode: "V005", VendorName: "Vendor_E", City: "Pune", State: "Maharashtra"},
		{PartID: "BB0202020002", Description: "BRAKE PAD SET", TargetQty: 25, VendorCode: "V003", VendorName: "Vendor_C", City: "Chennai", State: "Tamil Nadu"},
		{PartID: "CC0303030003", Description: "CLUTCH DISC", TargetQty: 12, VendorCode: "V004", VendorName: "Vendor_D", City: "Bangalore", State: "Karnataka"},
		{PartID: "DD0404040004", Description: "SPARK PLUG", TargetQty: 35, VendorCode: "V001", VendorName: "Vendor_A", City: "Mumbai", State: "Maharashtra"},
		{PartID: "EE0505050005", Description: "AIR FILTER", TargetQty: 28, VendorCode: "V002", VendorName: "Vendor_B", City: "Delhi", State: "Delhi"},
		{PartID: "FF0606060006", Description: "FUEL FILTER", TargetQty: 50, VendorCode: "V005", VendorName: "Vendor_E", City: "Pune", State: "Maharashtra"},
		{PartID: "GG0707070007", Description: "TRANSMISSION OIL", TargetQty: 35, VendorCode: "V003", VendorName: "Vendor_C", City: "Chennai", State: "Tamil Nadu"},
		{PartID: "HH0808080008", Description: "COOLANT", TargetQty: 30, VendorCode: "V004", VendorName: "Vendor_D", City: "Bangalore", State: "Karnataka"},
		{PartID: "II0909090009", Description: "BRAKE FLUID", TargetQty: 12, VendorCode: "V001", VendorName: "Vendor_A", City: "Mumbai", State: "Maharashtra"},
		{PartID: "JJ1010101010", Description: "WINDSHIELD WASHER", TargetQty: 25, VendorCode: "V002", VendorName: "Vendor_B", City: "Delhi", State: "Delhi"},
	}
}

// SampleInventory returns the built-in demonstration current-inventory
// snapshot matching SampleReference.
func SampleInventory() []InventoryItem {
	return []InventoryItem{
		{PartID: "AC0303020106", Description: "FLAT ALUMINIUM PROFILE", OnHandQty: 5.23, StockValue: 496},
		{PartID: "AC0303020105", Description: "RAIN GUTTER PROFILE", OnHandQty: 8.36, StockValue: 1984},
		{PartID: "AA0106010001", Description: "HYDRAULIC POWER STEERING OIL", OnHandQty: 12.5, StockValue: 2356},
		{PartID: "AC0203020077", Description: "Bulb beading LV battery flap", OnHandQty: 3.5, StockValue: 248},
		{PartID: "AC0303020104", Description: "L- PROFILE JAM PILLAR", OnHandQty: 15.94, StockValue: 992},
		{PartID: "AA0112014000", Description: "Conduit Pipe Filter to Compressor", OnHandQty: 25, StockValue: 1248},
		{PartID: "AA0115120001", Description: "HVPDU ms", OnHandQty: 18, StockValue: 1888},
		{PartID: "AA0119020017", Description: "REAR TURN INDICATOR", OnHandQty: 35, StockValue: 1512},
		{PartID: "AA0119020019", Description: "REVERSING LAMP", OnHandQty: 28, StockValue: 1152},
		{PartID: "AA0822010800", Description: "SIDE DISPLAY BOARD", OnHandQty: 42, StockValue: 2496},
		{PartID: "BB0101010001", Description: "ENGINE OIL FILTER", OnHandQty: 65, StockValue: 1300},
		{PartID: "BB0202020002", Description: "BRAKE PAD SET", OnHandQty: 22, StockValue: 880},
		{PartID: "CC0303030003", Description: "CLUTCH DISC", OnHandQty: 8, StockValue: 640},
		{PartID: "DD0404040004", Description: "SPARK PLUG", OnHandQty: 45, StockValue: 450},
		{PartID: "EE0505050005", Description: "AIR FILTER", OnHandQty: 30, StockValue: 600},
		{PartID: "FF0606060006", Description: "FUEL FILTER", OnHandQty: 55, StockValue: 1100},
		{PartID: "GG0707070007", Description: "TRANSMISSION OIL", OnHandQty: 40, StockValue: 800},
		{PartID: "HH0808080008", Description: "COOLANT", OnHandQty: 22, StockValue: 660},
		{PartID: "II0909090009", Description: "BRAKE FLUID", OnHandQty: 15, StockValue: 300},
		{PartID: "JJ1010101010", Description: "WINDSHIELD WASHER", OnHandQty: 33, StockValue: 495},
	}
}
