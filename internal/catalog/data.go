package catalog

import "github.com/autodinar/autodinar/internal/money"

// Default returns the embedded marketplace data set.
func Default() *Catalog {
	return &Catalog{
		Products:   defaultProducts,
		Services:   defaultServices,
		Stores:     defaultStores,
		Categories: defaultCategories,
	}
}

var defaultProducts = []Listing{
	{
		ID: "prod_brakepads_front", Name: "Premium Ceramic Brake Pads (Front)",
		Store: "Pieces Auto El Djazair", Location: "Algiers", Wilaya: "16 - Algiers",
		Price:       money.FromDinars(5200),
		Description: "Low-dust ceramic pads with shims, front axle set.",
		MainCategory: "Mechanical", SubCategory: "Brake Systems",
		Reviews: 132, StoreAddress: "12 Rue Didouche Mourad, Algiers",
		Compatible: []CompatibleVehicle{
			{Brand: "Renault", Model: "Clio", Years: []int{2012, 2013, 2014, 2015, 2016}},
			{Brand: "Peugeot", Model: "208", Years: []int{2013, 2014, 2015, 2016, 2017}},
		},
	},
	{
		ID: "prod_engine_oil_5w30", Name: "Full Synthetic Engine Oil 5W-30 (5L)",
		Store: "Oran Lubrifiants", Location: "Oran", Wilaya: "31 - Oran",
		Price:       money.FromDinars(3800),
		Description: "API SN full synthetic, 5 litre jug.",
		MainCategory: "Consumables & Fluids", SubCategory: "Oils & Lubricants",
		Reviews: 98, StoreAddress: "4 Boulevard de l'ALN, Oran",
	},
	{
		ID: "prod_air_filter_carbon", Name: "Activated Carbon Cabin Air Filter",
		Store: "Pieces Auto El Djazair", Location: "Algiers", Wilaya: "16 - Algiers",
		Price:       money.FromDinars(1500),
		Description: "Cabin filter with activated carbon layer.",
		MainCategory: "Consumables & Fluids", SubCategory: "Filters (Air, Oil, Cabin)",
		Reviews: 41, StoreAddress: "12 Rue Didouche Mourad, Algiers",
		Compatible: []CompatibleVehicle{
			{Brand: "Volkswagen", Model: "Golf", Years: []int{2013, 2014, 2015, 2016, 2017, 2018}},
		},
	},
	{
		ID: "prod_spark_plugs_ngk", Name: "NGK Iridium IX Spark Plugs (Set of 4)",
		Store: "Blida Moteurs", Location: "Blida", Wilaya: "09 - Blida",
		Price:       money.FromDinars(2200),
		Description: "Iridium tip plugs, pre-gapped set of four.",
		MainCategory: "Electronic & Electrical", SubCategory: "Ignition Systems",
		Reviews: 67, StoreAddress: "Zone Industrielle, Blida",
		Compatible: []CompatibleVehicle{
			{Brand: "Hyundai", Model: "Accent", Years: []int{2014, 2015, 2016, 2017, 2018}},
			{Brand: "Hyundai", Model: "Elantra"},
		},
	},
	{
		ID: "prod_battery_70ah", Name: "Heavy Duty Car Battery 12V 70Ah",
		Store: "Batteries Constantine", Location: "Constantine", Wilaya: "25 - Constantine",
		Price:       money.FromDinars(8500),
		Description: "Maintenance-free calcium battery, 640A cold crank.",
		MainCategory: "Electronic & Electrical", SubCategory: "Batteries & Charging",
		Reviews: 154, StoreAddress: "7 Avenue Aouati Mostefa, Constantine",
	},
	{
		ID: "prod_led_headlight_h7", Name: "LED Headlight Conversion Kit H7",
		Store: "Batteries Constantine", Location: "Constantine", Wilaya: "25 - Constantine",
		Price:       money.FromDinars(3200),
		Description: "6000K LED kit with canbus adapters.",
		MainCategory: "Electronic & Electrical", SubCategory: "Lighting Components",
		Reviews: 29, StoreAddress: "7 Avenue Aouati Mostefa, Constantine",
	},
	{
		ID: "prod_michelin_tire_205", Name: "Michelin Primacy 4 Tire 205/55 R16",
		Store: "Pneus Setif", Location: "Setif", Wilaya: "19 - Setif",
		Price:       money.FromDinars(28000),
		Description: "Touring tire, sold per unit, fitting included.",
		MainCategory: "Consumables & Fluids", SubCategory: "Tires & Wheels",
		Reviews: 201, StoreAddress: "Route Nationale 5, Setif",
		Compatible: []CompatibleVehicle{
			{Brand: "Volkswagen", Model: "Golf", Years: []int{2010, 2011, 2012, 2013, 2014, 2015, 2016}},
			{Brand: "Peugeot", Model: "308"},
		},
	},
	{
		ID: "prod_alternator_clio", Name: "Alternator 110A for Renault Clio IV",
		Store: "Oran Lubrifiants", Location: "Oran", Wilaya: "31 - Oran",
		Price:       money.FromDinars(24500),
		Description: "New 110A alternator, 2 year warranty.",
		MainCategory: "Electronic & Electrical", SubCategory: "Batteries & Charging",
		Reviews: 18, StoreAddress: "4 Boulevard de l'ALN, Oran",
		Compatible: []CompatibleVehicle{
			{Brand: "Renault", Model: "Clio", Years: []int{2013, 2014, 2015, 2016, 2017, 2018}},
		},
	},
}

var defaultServices = []Listing{
	{
		ID: "serv_engine_diagnostic", Name: "Complete Engine Diagnostic",
		Store: "Garage Central Algiers", Location: "Algiers", Wilaya: "16 - Algiers",
		Price:       money.FromDinars(6000),
		Description: "Full OBD scan with written report.",
		MainCategory: "Mechanical Services", SubCategory: "Engine Repair & Diagnostics",
		Reviews: 88, StoreAddress: "3 Rue Hassiba Ben Bouali, Algiers",
	},
	{
		ID: "serv_detailing_full", Name: "Full Interior & Exterior Detailing",
		Store: "Clean Car Oran", Location: "Oran", Wilaya: "31 - Oran",
		Price:       money.FromDinars(4500),
		Description: "Deep clean, polish, and interior shampoo.",
		MainCategory: "Maintenance & Inspection", SubCategory: "Detailing & Car Wash",
		Reviews: 143, StoreAddress: "19 Rue Larbi Ben M'hidi, Oran",
	},
	{
		ID: "serv_timing_belt", Name: "Timing Belt Replacement",
		Store: "Garage Central Algiers", Location: "Algiers", Wilaya: "16 - Algiers",
		Price:       money.FromDinars(18000),
		Description: "Belt, tensioner, and water pump kit, labour included.",
		MainCategory: "Mechanical Services", SubCategory: "Engine Repair & Diagnostics",
		Reviews: 54, StoreAddress: "3 Rue Hassiba Ben Bouali, Algiers",
		Compatible: []CompatibleVehicle{
			{Brand: "Renault"}, {Brand: "Peugeot"}, {Brand: "Volkswagen"},
		},
	},
	{
		ID: "serv_ecu_programming", Name: "ECU Programming & Key Coding",
		Store: "Blida Moteurs", Location: "Blida", Wilaya: "09 - Blida",
		Price:       money.FromDinars(9000),
		Description: "Dealer-level ECU flashing and key registration.",
		MainCategory: "Electrical Services", SubCategory: "ECU Programming & Diagnostics",
		Reviews: 31, StoreAddress: "Zone Industrielle, Blida",
	},
}

var defaultStores = []Store{
	{ID: "store_pieces_auto", Name: "Pieces Auto El Djazair", Location: "Algiers",
		Wilaya: "16 - Algiers", Type: "Parts Retailer", Address: "12 Rue Didouche Mourad, Algiers", Rating: 4.6},
	{ID: "store_garage_central", Name: "Garage Central Algiers", Location: "Algiers",
		Wilaya: "16 - Algiers", Type: "Service Garage", Address: "3 Rue Hassiba Ben Bouali, Algiers", Rating: 4.4},
	{ID: "store_oran_lub", Name: "Oran Lubrifiants", Location: "Oran",
		Wilaya: "31 - Oran", Type: "Parts Retailer", Address: "4 Boulevard de l'ALN, Oran", Rating: 4.1},
	{ID: "store_pneus_setif", Name: "Pneus Setif", Location: "Setif",
		Wilaya: "19 - Setif", Type: "Tire Center", Address: "Route Nationale 5, Setif", Rating: 4.8},
	{ID: "store_batteries_csc", Name: "Batteries Constantine", Location: "Constantine",
		Wilaya: "25 - Constantine", Type: "Parts Retailer", Address: "7 Avenue Aouati Mostefa, Constantine", Rating: 3.9},
}

var defaultCategories = []Category{
	{
		ID: "cat_prod_mech", Name: "Mechanical", Kind: "product",
		SubCategories: []SubCategory{
			{ID: "cat_prod_mech_engine", Name: "Engine Components"},
			{ID: "cat_prod_mech_brakes", Name: "Brake Systems"},
			{ID: "cat_prod_mech_susp", Name: "Suspension & Steering"},
		},
	},
	{
		ID: "cat_prod_elec", Name: "Electronic & Electrical", Kind: "product",
		SubCategories: []SubCategory{
			{ID: "cat_prod_elec_ignition", Name: "Ignition Systems"},
			{ID: "cat_prod_elec_battery", Name: "Batteries & Charging"},
			{ID: "cat_prod_elec_lighting", Name: "Lighting Components"},
		},
	},
	{
		ID: "cat_prod_consum", Name: "Consumables & Fluids", Kind: "product",
		SubCategories: []SubCategory{
			{ID: "cat_prod_consum_oil", Name: "Oils & Lubricants"},
			{ID: "cat_prod_consum_filters", Name: "Filters (Air, Oil, Cabin)"},
			{ID: "cat_prod_consum_tires", Name: "Tires & Wheels"},
		},
	},
	{
		ID: "cat_serv_mech", Name: "Mechanical Services", Kind: "service",
		SubCategories: []SubCategory{
			{ID: "cat_serv_mech_eng_repair", Name: "Engine Repair & Diagnostics"},
			{ID: "cat_serv_mech_tire_serv", Name: "Tire Mounting & Balancing"},
		},
	},
	{
		ID: "cat_serv_elec", Name: "Electrical Services", Kind: "service",
		SubCategories: []SubCategory{
			{ID: "cat_serv_elec_ecu_prog", Name: "ECU Programming & Diagnostics"},
		},
	},
	{
		ID: "cat_serv_maint", Name: "Maintenance & Inspection", Kind: "service",
		SubCategories: []SubCategory{
			{ID: "cat_serv_maint_detailing", Name: "Detailing & Car Wash"},
		},
	},
}
