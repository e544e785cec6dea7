package indic

import "github.com/npillmayer/puashape/engine/glyphing/ligature"

// malayalamRows holds the built-in Malayalam ligatures, mapped to E800–E9FF.
var malayalamRows = []ligature.Row{
	{0xE800, 300, "0D4D 0D30", 0},                          // VIRAMA + RA
	{0xE801, 301, "0D4D 0D2F", 0},                          // VIRAMA + YA
	{0xE802, 302, "0D4D 0D35", 0},                          // VIRAMA + VA
	{0xE803, 303, "0D15 0D4D 0D15", 0},                     // KA + VIRAMA + KA
	{0xE804, 304, "0D19 0D4D 0D15", 0},                     // NGA + VIRAMA + KA
	{0xE805, 305, "0D19 0D4D 0D19", 0},                     // NGA + VIRAMA + NGA
	{0xE806, 306, "0D1A 0D4D 0D1A", 0},                     // CA + VIRAMA + CA
	{0xE807, 307, "0D1E 0D4D 0D1A", 0},                     // NYA + VIRAMA + CA
	{0xE808, 308, "0D1E 0D4D 0D1E", 0},                     // NYA + VIRAMA + NYA
	{0xE809, 309, "0D1F 0D4D 0D1F", 0},                     // TTA + VIRAMA + TTA
	{0xE80A, 310, "0D23 0D4D 0D1F", 0},                     // NNA + VIRAMA + TTA
	{0xE80B, 311, "0D23 0D4D 0D23", 0},                     // NNA + VIRAMA + NNA
	{0xE80C, 312, "0D24 0D4D 0D24", 0},                     // TA + VIRAMA + TA
	{0xE80D, 313, "0D28 0D4D 0D24", 0},                     // NA + VIRAMA + TA
	{0xE80E, 314, "0D28 0D4D 0D26", 0},                     // NA + VIRAMA + DA
	{0xE80F, 315, "0D28 0D4D 0D28", 0},                     // NA + VIRAMA + NA
	{0xE810, 316, "0D28 0D4D 0D2E", 0},                     // NA + VIRAMA + MA
	{0xE811, 317, "0D2A 0D4D 0D2A", 0},                     // PA + VIRAMA + PA
	{0xE812, 318, "0D2E 0D4D 0D2A", 0},                     // MA + VIRAMA + PA
	{0xE813, 319, "0D2E 0D4D 0D2E", 0},                     // MA + VIRAMA + MA
	{0xE814, 320, "0D2F 0D4D 0D2F", 0},                     // YA + VIRAMA + YA
	{0xE815, 321, "0D32 0D4D 0D32", 0},                     // LA + VIRAMA + LA
	{0xE816, 322, "0D35 0D4D 0D35", 0},                     // VA + VIRAMA + VA
	{0xE817, 323, "0D36 0D4D 0D1A", 0},                     // SHA + VIRAMA + CA
	{0xE818, 324, "0D38 0D4D 0D38", 0},                     // SA + VIRAMA + SA
	{0xE819, 325, "0D33 0D4D 0D33", 0},                     // LLA + VIRAMA + LLA
	{0xE81A, 326, "0D31 0D4D 0D31", 0},                     // RRA + VIRAMA + RRA
	{0xE81B, 327, "0D15 0D4D 0D37", 0},                     // KA + VIRAMA + SSA
	{0xE81C, 328, "0D1C 0D4D 0D1E", 0},                     // JA + VIRAMA + NYA
	{0xE81D, 329, "0D17 0D4D 0D28", 0},                     // GA + VIRAMA + NA
	{0xE81E, 330, "0D39 0D4D 0D2E", 0},                     // HA + VIRAMA + MA
	{0xE81F, 331, "0D28 0D4D 0D31", 0},                     // NA + VIRAMA + RRA
	{0xE820, 332, "0D15 0D41", 0},                          // KA + SIGN U
	{0xE821, 333, "0D15 0D42", 0},                          // KA + SIGN UU
	{0xE822, 334, "0D17 0D41", 0},                          // GA + SIGN U
	{0xE823, 335, "0D17 0D42", 0},                          // GA + SIGN UU
	{0xE824, 336, "0D1A 0D41", 0},                          // CA + SIGN U
	{0xE825, 337, "0D1A 0D42", 0},                          // CA + SIGN UU
	{0xE826, 338, "0D1C 0D41", 0},                          // JA + SIGN U
	{0xE827, 339, "0D1C 0D42", 0},                          // JA + SIGN UU
	{0xE828, 340, "0D1F 0D41", 0},                          // TTA + SIGN U
	{0xE829, 341, "0D1F 0D42", 0},                          // TTA + SIGN UU
	{0xE82A, 342, "0D23 0D41", 0},                          // NNA + SIGN U
	{0xE82B, 343, "0D23 0D42", 0},                          // NNA + SIGN UU
	{0xE82C, 344, "0D24 0D41", 0},                          // TA + SIGN U
	{0xE82D, 345, "0D24 0D42", 0},                          // TA + SIGN UU
	{0xE82E, 346, "0D28 0D41", 0},                          // NA + SIGN U
	{0xE82F, 347, "0D28 0D42", 0},                          // NA + SIGN UU
	{0xE830, 348, "0D2D 0D41", 0},                          // BHA + SIGN U
	{0xE831, 349, "0D2D 0D42", 0},                          // BHA + SIGN UU
	{0xE832, 350, "0D30 0D41", 0},                          // RA + SIGN U
	{0xE833, 351, "0D30 0D42", 0},                          // RA + SIGN UU
	{0xE834, 352, "0D36 0D41", 0},                          // SHA + SIGN U
	{0xE835, 353, "0D36 0D42", 0},                          // SHA + SIGN UU
	{0xE836, 354, "0D39 0D41", 0},                          // HA + SIGN U
	{0xE837, 355, "0D39 0D42", 0},                          // HA + SIGN UU
	{0xE838, 356, "0D23 0D4D 200D", ligature.ViramaExempt}, // NNA + VIRAMA + ZWJ
	{0xE839, 357, "0D28 0D4D 200D", ligature.ViramaExempt}, // NA + VIRAMA + ZWJ
	{0xE83A, 358, "0D30 0D4D 200D", ligature.ViramaExempt}, // RA + VIRAMA + ZWJ
	{0xE83B, 359, "0D32 0D4D 200D", ligature.ViramaExempt}, // LA + VIRAMA + ZWJ
	{0xE83C, 360, "0D33 0D4D 200D", ligature.ViramaExempt}, // LLA + VIRAMA + ZWJ
	{0xE83D, 361, "0D15 0D4D 200D", ligature.ViramaExempt}, // KA + VIRAMA + ZWJ
}
