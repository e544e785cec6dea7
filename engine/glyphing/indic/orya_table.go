package indic

import "github.com/npillmayer/puashape/engine/glyphing/ligature"

// oriyaRows holds the built-in Oriya ligatures, mapped to EA00–EBFF.
var oriyaRows = []ligature.Row{
	{0xEA00, 300, "0B30 0B4D", 0},                    // RA + VIRAMA
	{0xEA01, 301, "0B30 0B4D", ligature.InitialForm}, // RA + VIRAMA
	{0xEA02, 302, "0B4D 0B2F", 0},                    // VIRAMA + YA
	{0xEA03, 303, "0B4D 0B30", 0},                    // VIRAMA + RA
	{0xEA04, 304, "0B4D 0B2C", 0},                    // VIRAMA + BA
	{0xEA05, 305, "0B4D 0B24", 0},                    // VIRAMA + TA
	{0xEA06, 306, "0B4D 0B28", 0},                    // VIRAMA + NA
	{0xEA07, 307, "0B4D 0B2E", 0},                    // VIRAMA + MA
	{0xEA08, 308, "0B4D 0B32", 0},                    // VIRAMA + LA
	{0xEA09, 309, "0B4D 0B35", 0},                    // VIRAMA + VA
	{0xEA0A, 310, "0B15 0B4D 0B37", 0},               // KA + VIRAMA + SSA
	{0xEA0B, 311, "0B1C 0B4D 0B1E", 0},               // JA + VIRAMA + NYA
	{0xEA0C, 312, "0B15 0B4D 0B15", 0},               // KA + VIRAMA + KA
	{0xEA0D, 313, "0B15 0B4D 0B1F", 0},               // KA + VIRAMA + TTA
	{0xEA0E, 314, "0B19 0B4D 0B15", 0},               // NGA + VIRAMA + KA
	{0xEA0F, 315, "0B1A 0B4D 0B1A", 0},               // CA + VIRAMA + CA
	{0xEA10, 316, "0B1F 0B4D 0B1F", 0},               // TTA + VIRAMA + TTA
	{0xEA11, 317, "0B23 0B4D 0B1F", 0},               // NNA + VIRAMA + TTA
	{0xEA12, 318, "0B24 0B4D 0B24", 0},               // TA + VIRAMA + TA
	{0xEA13, 319, "0B26 0B4D 0B27", 0},               // DA + VIRAMA + DHA
	{0xEA14, 320, "0B28 0B4D 0B26", 0},               // NA + VIRAMA + DA
	{0xEA15, 321, "0B38 0B4D 0B24", 0},               // SA + VIRAMA + TA
	{0xEA16, 322, "0B15 0B4D 0B37 0B4D 0B2E", 0},     // KA + VIRAMA + SSA + VIRAMA + MA
}
