package indic

import "github.com/npillmayer/puashape/engine/glyphing/ligature"

// tamilRows holds the built-in Tamil ligatures, mapped to EC00–EDFF.
var tamilRows = []ligature.Row{
	{0xEC00, 300, "0B95 0BCD", ligature.ViramaExempt}, // KA + VIRAMA
	{0xEC01, 301, "0B99 0BCD", ligature.ViramaExempt}, // NGA + VIRAMA
	{0xEC02, 302, "0B9A 0BCD", ligature.ViramaExempt}, // CA + VIRAMA
	{0xEC03, 303, "0B9C 0BCD", ligature.ViramaExempt}, // JA + VIRAMA
	{0xEC04, 304, "0B9E 0BCD", ligature.ViramaExempt}, // NYA + VIRAMA
	{0xEC05, 305, "0B9F 0BCD", ligature.ViramaExempt}, // TTA + VIRAMA
	{0xEC06, 306, "0BA3 0BCD", ligature.ViramaExempt}, // NNA + VIRAMA
	{0xEC07, 307, "0BA4 0BCD", ligature.ViramaExempt}, // TA + VIRAMA
	{0xEC08, 308, "0BA8 0BCD", ligature.ViramaExempt}, // NA + VIRAMA
	{0xEC09, 309, "0BA9 0BCD", ligature.ViramaExempt}, // NNNA + VIRAMA
	{0xEC0A, 310, "0BAA 0BCD", ligature.ViramaExempt}, // PA + VIRAMA
	{0xEC0B, 311, "0BAE 0BCD", ligature.ViramaExempt}, // MA + VIRAMA
	{0xEC0C, 312, "0BAF 0BCD", ligature.ViramaExempt}, // YA + VIRAMA
	{0xEC0D, 313, "0BB0 0BCD", ligature.ViramaExempt}, // RA + VIRAMA
	{0xEC0E, 314, "0BB1 0BCD", ligature.ViramaExempt}, // RRA + VIRAMA
	{0xEC0F, 315, "0BB2 0BCD", ligature.ViramaExempt}, // LA + VIRAMA
	{0xEC10, 316, "0BB3 0BCD", ligature.ViramaExempt}, // LLA + VIRAMA
	{0xEC11, 317, "0BB4 0BCD", ligature.ViramaExempt}, // LLLA + VIRAMA
	{0xEC12, 318, "0BB5 0BCD", ligature.ViramaExempt}, // VA + VIRAMA
	{0xEC13, 319, "0BB6 0BCD", ligature.ViramaExempt}, // SHA + VIRAMA
	{0xEC14, 320, "0BB7 0BCD", ligature.ViramaExempt}, // SSA + VIRAMA
	{0xEC15, 321, "0BB8 0BCD", ligature.ViramaExempt}, // SA + VIRAMA
	{0xEC16, 322, "0BB9 0BCD", ligature.ViramaExempt}, // HA + VIRAMA
	{0xEC17, 323, "0B95 0BCD 0BB7", 0},                // KA + VIRAMA + SSA
	{0xEC18, 324, "0BB6 0BCD 0BB0 0BC0", 0},           // SHA + VIRAMA + RA + SIGN II
	{0xEC19, 325, "0B9F 0BBF", 0},                     // TTA + SIGN I
	{0xEC1A, 326, "0B9F 0BC0", 0},                     // TTA + SIGN II
	{0xEC1B, 327, "0B95 0BC1", 0},                     // KA + SIGN U
	{0xEC1C, 328, "0B95 0BC2", 0},                     // KA + SIGN UU
	{0xEC1D, 329, "0B99 0BC1", 0},                     // NGA + SIGN U
	{0xEC1E, 330, "0B99 0BC2", 0},                     // NGA + SIGN UU
	{0xEC1F, 331, "0B9A 0BC1", 0},                     // CA + SIGN U
	{0xEC20, 332, "0B9A 0BC2", 0},                     // CA + SIGN UU
	{0xEC21, 333, "0B9E 0BC1", 0},                     // NYA + SIGN U
	{0xEC22, 334, "0B9E 0BC2", 0},                     // NYA + SIGN UU
	{0xEC23, 335, "0B9F 0BC1", 0},                     // TTA + SIGN U
	{0xEC24, 336, "0B9F 0BC2", 0},                     // TTA + SIGN UU
	{0xEC25, 337, "0BA3 0BC1", 0},                     // NNA + SIGN U
	{0xEC26, 338, "0BA3 0BC2", 0},                     // NNA + SIGN UU
	{0xEC27, 339, "0BA4 0BC1", 0},                     // TA + SIGN U
	{0xEC28, 340, "0BA4 0BC2", 0},                     // TA + SIGN UU
	{0xEC29, 341, "0BA8 0BC1", 0},                     // NA + SIGN U
	{0xEC2A, 342, "0BA8 0BC2", 0},                     // NA + SIGN UU
	{0xEC2B, 343, "0BA9 0BC1", 0},                     // NNNA + SIGN U
	{0xEC2C, 344, "0BA9 0BC2", 0},                     // NNNA + SIGN UU
	{0xEC2D, 345, "0BAA 0BC1", 0},                     // PA + SIGN U
	{0xEC2E, 346, "0BAA 0BC2", 0},                     // PA + SIGN UU
	{0xEC2F, 347, "0BAE 0BC1", 0},                     // MA + SIGN U
	{0xEC30, 348, "0BAE 0BC2", 0},                     // MA + SIGN UU
	{0xEC31, 349, "0BAF 0BC1", 0},                     // YA + SIGN U
	{0xEC32, 350, "0BAF 0BC2", 0},                     // YA + SIGN UU
	{0xEC33, 351, "0BB0 0BC1", 0},                     // RA + SIGN U
	{0xEC34, 352, "0BB0 0BC2", 0},                     // RA + SIGN UU
	{0xEC35, 353, "0BB1 0BC1", 0},                     // RRA + SIGN U
	{0xEC36, 354, "0BB1 0BC2", 0},                     // RRA + SIGN UU
	{0xEC37, 355, "0BB2 0BC1", 0},                     // LA + SIGN U
	{0xEC38, 356, "0BB2 0BC2", 0},                     // LA + SIGN UU
	{0xEC39, 357, "0BB3 0BC1", 0},                     // LLA + SIGN U
	{0xEC3A, 358, "0BB3 0BC2", 0},                     // LLA + SIGN UU
	{0xEC3B, 359, "0BB4 0BC1", 0},                     // LLLA + SIGN U
	{0xEC3C, 360, "0BB4 0BC2", 0},                     // LLLA + SIGN UU
	{0xEC3D, 361, "0BB5 0BC1", 0},                     // VA + SIGN U
	{0xEC3E, 362, "0BB5 0BC2", 0},                     // VA + SIGN UU
}
