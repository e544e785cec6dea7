package indic

import "github.com/npillmayer/puashape/engine/glyphing/ligature"

// teluguRows holds the built-in Telugu ligatures, mapped to EE00–EFFF.
var teluguRows = []ligature.Row{
	{0xEE00, 300, "0C30 0C4D 200D", 0},                    // RA + VIRAMA + ZWJ
	{0xEE01, 301, "0C30 0C4D 200D", ligature.InitialForm}, // RA + VIRAMA + ZWJ
	{0xEE02, 302, "0C4D 0C15", 0},                         // VIRAMA + KA
	{0xEE03, 303, "0C4D 0C16", 0},                         // VIRAMA + KHA
	{0xEE04, 304, "0C4D 0C17", 0},                         // VIRAMA + GA
	{0xEE05, 305, "0C4D 0C18", 0},                         // VIRAMA + GHA
	{0xEE06, 306, "0C4D 0C19", 0},                         // VIRAMA + NGA
	{0xEE07, 307, "0C4D 0C1A", 0},                         // VIRAMA + CA
	{0xEE08, 308, "0C4D 0C1B", 0},                         // VIRAMA + CHA
	{0xEE09, 309, "0C4D 0C1C", 0},                         // VIRAMA + JA
	{0xEE0A, 310, "0C4D 0C1D", 0},                         // VIRAMA + JHA
	{0xEE0B, 311, "0C4D 0C1E", 0},                         // VIRAMA + NYA
	{0xEE0C, 312, "0C4D 0C1F", 0},                         // VIRAMA + TTA
	{0xEE0D, 313, "0C4D 0C20", 0},                         // VIRAMA + TTHA
	{0xEE0E, 314, "0C4D 0C21", 0},                         // VIRAMA + DDA
	{0xEE0F, 315, "0C4D 0C22", 0},                         // VIRAMA + DDHA
	{0xEE10, 316, "0C4D 0C23", 0},                         // VIRAMA + NNA
	{0xEE11, 317, "0C4D 0C24", 0},                         // VIRAMA + TA
	{0xEE12, 318, "0C4D 0C25", 0},                         // VIRAMA + THA
	{0xEE13, 319, "0C4D 0C26", 0},                         // VIRAMA + DA
	{0xEE14, 320, "0C4D 0C27", 0},                         // VIRAMA + DHA
	{0xEE15, 321, "0C4D 0C28", 0},                         // VIRAMA + NA
	{0xEE16, 322, "0C4D 0C2A", 0},                         // VIRAMA + PA
	{0xEE17, 323, "0C4D 0C2B", 0},                         // VIRAMA + PHA
	{0xEE18, 324, "0C4D 0C2C", 0},                         // VIRAMA + BA
	{0xEE19, 325, "0C4D 0C2D", 0},                         // VIRAMA + BHA
	{0xEE1A, 326, "0C4D 0C2E", 0},                         // VIRAMA + MA
	{0xEE1B, 327, "0C4D 0C2F", 0},                         // VIRAMA + YA
	{0xEE1C, 328, "0C4D 0C30", 0},                         // VIRAMA + RA
	{0xEE1D, 329, "0C4D 0C32", 0},                         // VIRAMA + LA
	{0xEE1E, 330, "0C4D 0C33", 0},                         // VIRAMA + LLA
	{0xEE1F, 331, "0C4D 0C34", 0},                         // VIRAMA + LLLA
	{0xEE20, 332, "0C4D 0C35", 0},                         // VIRAMA + VA
	{0xEE21, 333, "0C4D 0C36", 0},                         // VIRAMA + SHA
	{0xEE22, 334, "0C4D 0C37", 0},                         // VIRAMA + SSA
	{0xEE23, 335, "0C4D 0C38", 0},                         // VIRAMA + SA
	{0xEE24, 336, "0C4D 0C39", 0},                         // VIRAMA + HA
	{0xEE25, 337, "0C15 0C4D 0C37", 0},                    // KA + VIRAMA + SSA
	{0xEE26, 338, "0C1C 0C4D 0C1E", 0},                    // JA + VIRAMA + NYA
}
