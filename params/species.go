// Species table, crosswalk and attribute data for the Acadian Variant.
package params

// SppID identifies one species row in the parameter tables.
type SppID struct {
	Index      int    // index into the parameter arrays; -1 shares a crosswalk donor's fit
	Code       string // alpha species code
	Softwood   bool
	CommonName string
}

// Crosswalk maps an unfitted FIA code to the species whose fit it borrows.
type Crosswalk struct {
	FVSCode    string
	MappedCode int
}

// Attributes are static species traits (Niinemets & Valladares tolerances,
// green specific gravity).
type Attributes struct {
	SG       float64 // specific gravity
	WD       float64 // wood density (green, t/m³)
	Shade    float64 // shade tolerance index
	Drought  float64 // drought tolerance index
	Waterlog float64 // waterlogging tolerance index
}

// Crown holds a two-parameter crown width model.
type Crown struct {
	A1, A2 float64
}

// generic catch-all FIA codes
const (
	OtherHardwood = 9990
	OtherSoftwood = 9991
)

func defaultSpecies() map[int]SppID {
	return map[int]SppID{
		12:            {0, "BF", true, "balsam fir"},
		71:            {1, "TA", true, "tamarack"},
		94:            {2, "WS", true, "white spruce"},
		95:            {3, "BS", true, "black spruce"},
		97:            {4, "RS", true, "red spruce"},
		129:           {5, "WP", true, "eastern white pine"},
		241:           {6, "WC", true, "northern white-cedar"},
		261:           {7, "EH", true, "eastern hemlock"},
		316:           {8, "RM", false, "red maple"},
		318:           {9, "SM", false, "sugar maple"},
		371:           {10, "YB", false, "yellow birch"},
		375:           {11, "PB", false, "paper birch"},
		379:           {-1, "GB", false, "gray birch"}, // shares the paper birch fit
		531:           {13, "AB", false, "American beech"},
		541:           {14, "WA", false, "white ash"},
		746:           {15, "QA", false, "quaking aspen"},
		833:           {16, "RO", false, "northern red oak"},
		OtherHardwood: {17, "OH", false, "other hardwoods"},
		OtherSoftwood: {18, "OS", true, "other softwoods"},
	}
}

func defaultCrosswalk() map[int]Crosswalk {
	return map[int]Crosswalk{
		70:  {"LL", 71},  // larch spp. -> tamarack
		91:  {"NS", 94},  // Norway spruce -> white spruce
		96:  {"BE", 97},  // blue spruce -> red spruce
		123: {"PI", 129}, // pine spp. -> white pine
		319: {"MM", 316}, // mountain maple -> red maple
		372: {"BC", 371}, // (birch) -> yellow birch
		379: {"GB", 375}, // gray birch -> paper birch
		543: {"BA", 541}, // black ash -> white ash
		741: {"BP", 746}, // balsam poplar -> quaking aspen
		802: {"WO", 833}, // white oak -> northern red oak
	}
}

// row order follows SppID.Index; zeroed rows fall back to the
// other-softwood/other-hardwood row at resolution time.
func defaultAttrib() []Attributes {
	return []Attributes{
		{0.33, 0.41, 5.01, 1.00, 2.00}, //  0 BF
		{0.49, 0.53, 0.98, 2.00, 3.00}, //  1 TA
		{0.37, 0.42, 4.15, 2.88, 1.02}, //  2 WS
		{0.41, 0.46, 4.08, 2.00, 2.00}, //  3 BS
		{0.38, 0.44, 4.39, 2.50, 1.75}, //  4 RS
		{0.34, 0.39, 3.21, 2.29, 1.03}, //  5 WP
		{0.29, 0.31, 4.50, 2.71, 1.46}, //  6 WC
		{0.38, 0.43, 4.83, 1.00, 1.25}, //  7 EH
		{0.49, 0.54, 3.44, 1.84, 3.08}, //  8 RM
		{0.56, 0.62, 4.76, 2.25, 1.09}, //  9 SM
		{0.55, 0.60, 3.17, 3.00, 2.00}, // 10 YB
		{0.48, 0.53, 1.54, 2.02, 1.25}, // 11 PB
		{0, 0, 0, 0, 0},                // 12 GB (borrows PB)
		{0.56, 0.62, 4.75, 1.50, 1.50}, // 13 AB
		{0.55, 0.60, 2.46, 2.38, 2.57}, // 14 WA
		{0.35, 0.39, 1.21, 1.77, 1.77}, // 15 QA
		{0.56, 0.62, 2.75, 2.88, 1.12}, // 16 RO
		{0.50, 0.55, 2.80, 2.00, 2.00}, // 17 OH
		{0.36, 0.41, 4.00, 2.00, 1.75}, // 18 OS
	}
}

func defaultMCW() []Crown {
	return []Crown{
		{0.844, 0.756}, //  0 BF
		{0.742, 0.788}, //  1 TA
		{0.892, 0.741}, //  2 WS
		{0.719, 0.749}, //  3 BS
		{0.901, 0.733}, //  4 RS
		{1.042, 0.743}, //  5 WP
		{0.813, 0.753}, //  6 WC
		{1.094, 0.716}, //  7 EH
		{1.323, 0.697}, //  8 RM
		{1.385, 0.688}, //  9 SM
		{1.416, 0.681}, // 10 YB
		{1.271, 0.693}, // 11 PB
		{0, 0},         // 12 GB
		{1.488, 0.672}, // 13 AB
		{0, 0},         // 14 WA -> other hardwood
		{1.102, 0.715}, // 15 QA
		{1.529, 0.664}, // 16 RO
		{1.287, 0.690}, // 17 OH
		{0.874, 0.744}, // 18 OS
	}
}

func defaultLCW() []Crown {
	return []Crown{
		{1.361, 0.064}, //  0 BF
		{1.298, 0.058}, //  1 TA
		{1.344, 0.061}, //  2 WS
		{1.402, 0.066}, //  3 BS
		{1.355, 0.062}, //  4 RS
		{1.287, 0.055}, //  5 WP
		{1.371, 0.064}, //  6 WC
		{1.305, 0.057}, //  7 EH
		{1.243, 0.049}, //  8 RM
		{1.221, 0.047}, //  9 SM
		{1.216, 0.046}, // 10 YB
		{1.262, 0.051}, // 11 PB
		{0, 0},         // 12 GB
		{1.204, 0.044}, // 13 AB
		{0, 0},         // 14 WA -> other hardwood
		{1.281, 0.053}, // 15 QA
		{1.198, 0.043}, // 16 RO
		{1.249, 0.050}, // 17 OH
		{1.352, 0.062}, // 18 OS
	}
}

// per-species random intercepts for the height-to-crown-base model; zeroed
// rows fall back to the generic row.
func defaultHCB() []float64 {
	return []float64{
		0.213,  //  0 BF
		-0.118, //  1 TA
		0.147,  //  2 WS
		0.188,  //  3 BS
		0.201,  //  4 RS
		-0.092, //  5 WP
		0.156,  //  6 WC
		0.244,  //  7 EH
		-0.144, //  8 RM
		0.067,  //  9 SM
		-0.051, // 10 YB
		-0.203, // 11 PB
		0,      // 12 GB
		0.094,  // 13 AB
		0,      // 14 WA -> other hardwood
		-0.241, // 15 QA
		-0.088, // 16 RO
		-0.036, // 17 OH
		0.112,  // 18 OS
	}
}

func defaultHCBFixed() [6]float64 {
	return [6]float64{1.217, -0.0103, -0.0209, -0.2866, -0.1462, 0.0014}
}
