package indic

import "github.com/npillmayer/puashape/engine/glyphing/ligature"

// banglaRows holds the built-in Bangla ligatures, mapped to E200–E3FF and
// to KHANDA TA.
var banglaRows = []ligature.Row{
	{0x09CE, 66, "09A4 09CD 200D", 0},                // TA + VIRAMA + ZWJ
	{0xE200, 300, "09B0 09CD", 0},                    // RA + VIRAMA
	{0xE201, 301, "09B0 09CD", ligature.InitialForm}, // RA + VIRAMA
	{0xE202, 302, "09CD 09AF", 0},                    // VIRAMA + YA
	{0xE203, 303, "09CD 09B0", 0},                    // VIRAMA + RA
	{0xE204, 304, "09CD 09AC", 0},                    // VIRAMA + BA
	{0xE205, 305, "0995 09CD 09B7", 0},               // KA + VIRAMA + SSA
	{0xE206, 306, "099C 09CD 099E", 0},               // JA + VIRAMA + NYA
	{0xE207, 307, "0995 09CD 09A4", 0},               // KA + VIRAMA + TA
	{0xE208, 308, "0995 09CD 0995", 0},               // KA + VIRAMA + KA
	{0xE209, 309, "0995 09CD 09AE", 0},               // KA + VIRAMA + MA
	{0xE20A, 310, "0995 09CD 09B8", 0},               // KA + VIRAMA + SA
	{0xE20B, 311, "0999 09CD 0995", 0},               // NGA + VIRAMA + KA
	{0xE20C, 312, "0999 09CD 0997", 0},               // NGA + VIRAMA + GA
	{0xE20D, 313, "099A 09CD 099A", 0},               // CA + VIRAMA + CA
	{0xE20E, 314, "099C 09CD 099C", 0},               // JA + VIRAMA + JA
	{0xE20F, 315, "099E 09CD 099A", 0},               // NYA + VIRAMA + CA
	{0xE210, 316, "099E 09CD 099C", 0},               // NYA + VIRAMA + JA
	{0xE211, 317, "099F 09CD 099F", 0},               // TTA + VIRAMA + TTA
	{0xE212, 318, "09A3 09CD 09A0", 0},               // NNA + VIRAMA + TTHA
	{0xE213, 319, "09A3 09CD 09A1", 0},               // NNA + VIRAMA + DDA
	{0xE214, 320, "09A4 09CD 09A4", 0},               // TA + VIRAMA + TA
	{0xE215, 321, "09A4 09CD 09A5", 0},               // TA + VIRAMA + THA
	{0xE216, 322, "09A6 09CD 09A6", 0},               // DA + VIRAMA + DA
	{0xE217, 323, "09A6 09CD 09A7", 0},               // DA + VIRAMA + DHA
	{0xE218, 324, "09A8 09CD 09A4", 0},               // NA + VIRAMA + TA
	{0xE219, 325, "09A8 09CD 09A6", 0},               // NA + VIRAMA + DA
	{0xE21A, 326, "09A8 09CD 09A7", 0},               // NA + VIRAMA + DHA
	{0xE21B, 327, "09A8 09CD 09A8", 0},               // NA + VIRAMA + NA
	{0xE21C, 328, "09AA 09CD 09A4", 0},               // PA + VIRAMA + TA
	{0xE21D, 329, "09AE 09CD 09AA", 0},               // MA + VIRAMA + PA
	{0xE21E, 330, "09AE 09CD 09AD", 0},               // MA + VIRAMA + BHA
	{0xE21F, 331, "09B2 09CD 09B2", 0},               // LA + VIRAMA + LA
	{0xE220, 332, "09B6 09CD 099A", 0},               // SHA + VIRAMA + CA
	{0xE221, 333, "09B7 09CD 099F", 0},               // SSA + VIRAMA + TTA
	{0xE222, 334, "09B7 09CD 09A0", 0},               // SSA + VIRAMA + TTHA
	{0xE223, 335, "09B8 09CD 0995", 0},               // SA + VIRAMA + KA
	{0xE224, 336, "09B8 09CD 09A4", 0},               // SA + VIRAMA + TA
	{0xE225, 337, "09B8 09CD 09AA", 0},               // SA + VIRAMA + PA
	{0xE226, 338, "09B9 09CD 09AE", 0},               // HA + VIRAMA + MA
	{0xE227, 339, "0995 09CD 09B7 09CD 09AE", 0},     // KA + VIRAMA + SSA + VIRAMA + MA
	{0xE228, 340, "09A8 09CD 09A4 09CD 09AC", 0},     // NA + VIRAMA + TA + VIRAMA + BA
	{0xE229, 341, "09B8 09CD 09A4 09CD 09B0", 0},     // SA + VIRAMA + TA + VIRAMA + RA
	{0xE22A, 342, "099C 09CD 099C 09CD 09AC", 0},     // JA + VIRAMA + JA + VIRAMA + BA
	{0xE22B, 343, "0997 09C1", 0},                    // GA + SIGN U
	{0xE22C, 344, "09B6 09C1", 0},                    // SHA + SIGN U
	{0xE22D, 345, "09B0 09C1", 0},                    // RA + SIGN U
	{0xE22E, 346, "09B0 09C2", 0},                    // RA + SIGN UU
	{0xE22F, 347, "09B9 09C3", 0},                    // HA + SIGN VOCALIC R
	{0xE230, 348, "09B9 09C1", 0},                    // HA + SIGN U
	{0xE231, 349, "09A6 09C1", 0},                    // DA + SIGN U
	{0xE232, 350, "09B8 09CD 09A4 09C1", 0},          // SA + VIRAMA + TA + SIGN U
	{0xE233, 351, "0995 09CD 09B7", 0},               // KA + VIRAMA + SSA
}
