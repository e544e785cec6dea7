package indic

import "github.com/npillmayer/puashape/engine/glyphing/ligature"

// devanagariRows holds the built-in Devanagari ligatures, mapped to E000–E1FF.
var devanagariRows = []ligature.Row{
	{0xE000, 300, "0930 094D", 0},                     // RA + VIRAMA
	{0xE001, 301, "0930 094D", ligature.InitialForm},  // RA + VIRAMA
	{0xE002, 302, "0930 094D 200D", 0},                // RA + VIRAMA + ZWJ
	{0xE003, 303, "0915 094D", 0},                     // KA + VIRAMA
	{0xE004, 304, "0916 094D", 0},                     // KHA + VIRAMA
	{0xE005, 305, "0917 094D", 0},                     // GA + VIRAMA
	{0xE006, 306, "0918 094D", 0},                     // GHA + VIRAMA
	{0xE007, 307, "0919 094D", 0},                     // NGA + VIRAMA
	{0xE008, 308, "091A 094D", 0},                     // CA + VIRAMA
	{0xE009, 309, "091B 094D", 0},                     // CHA + VIRAMA
	{0xE00A, 310, "091C 094D", 0},                     // JA + VIRAMA
	{0xE00B, 311, "091D 094D", 0},                     // JHA + VIRAMA
	{0xE00C, 312, "091E 094D", 0},                     // NYA + VIRAMA
	{0xE00D, 313, "091F 094D", 0},                     // TTA + VIRAMA
	{0xE00E, 314, "0920 094D", 0},                     // TTHA + VIRAMA
	{0xE00F, 315, "0921 094D", 0},                     // DDA + VIRAMA
	{0xE010, 316, "0922 094D", 0},                     // DDHA + VIRAMA
	{0xE011, 317, "0923 094D", 0},                     // NNA + VIRAMA
	{0xE012, 318, "0924 094D", 0},                     // TA + VIRAMA
	{0xE013, 319, "0925 094D", 0},                     // THA + VIRAMA
	{0xE014, 320, "0926 094D", 0},                     // DA + VIRAMA
	{0xE015, 321, "0927 094D", 0},                     // DHA + VIRAMA
	{0xE016, 322, "0928 094D", 0},                     // NA + VIRAMA
	{0xE017, 323, "0929 094D", 0},                     // NNNA + VIRAMA
	{0xE018, 324, "092A 094D", 0},                     // PA + VIRAMA
	{0xE019, 325, "092B 094D", 0},                     // PHA + VIRAMA
	{0xE01A, 326, "092C 094D", 0},                     // BA + VIRAMA
	{0xE01B, 327, "092D 094D", 0},                     // BHA + VIRAMA
	{0xE01C, 328, "092E 094D", 0},                     // MA + VIRAMA
	{0xE01D, 329, "092F 094D", 0},                     // YA + VIRAMA
	{0xE01E, 330, "0932 094D", 0},                     // LA + VIRAMA
	{0xE01F, 331, "0933 094D", 0},                     // LLA + VIRAMA
	{0xE020, 332, "0935 094D", 0},                     // VA + VIRAMA
	{0xE021, 333, "0936 094D", 0},                     // SHA + VIRAMA
	{0xE022, 334, "0937 094D", 0},                     // SSA + VIRAMA
	{0xE023, 335, "0938 094D", 0},                     // SA + VIRAMA
	{0xE024, 336, "0939 094D", 0},                     // HA + VIRAMA
	{0xE025, 337, "094D 0930", 0},                     // VIRAMA + RA
	{0xE026, 338, "0915 094D 0937", 0},                // KA + VIRAMA + SSA
	{0xE027, 339, "091C 094D 091E", 0},                // JA + VIRAMA + NYA
	{0xE028, 340, "0924 094D 0930", 0},                // TA + VIRAMA + RA
	{0xE029, 341, "0936 094D 0930", 0},                // SHA + VIRAMA + RA
	{0xE02A, 342, "0915 094D 0930", 0},                // KA + VIRAMA + RA
	{0xE02B, 343, "092A 094D 0930", 0},                // PA + VIRAMA + RA
	{0xE02C, 344, "0926 094D 0926", 0},                // DA + VIRAMA + DA
	{0xE02D, 345, "0926 094D 0927", 0},                // DA + VIRAMA + DHA
	{0xE02E, 346, "0926 094D 0935", 0},                // DA + VIRAMA + VA
	{0xE02F, 347, "0926 094D 092F", 0},                // DA + VIRAMA + YA
	{0xE030, 348, "0926 094D 092D", 0},                // DA + VIRAMA + BHA
	{0xE031, 349, "0926 094D 092E", 0},                // DA + VIRAMA + MA
	{0xE032, 350, "0939 094D 092E", 0},                // HA + VIRAMA + MA
	{0xE033, 351, "0939 094D 092F", 0},                // HA + VIRAMA + YA
	{0xE034, 352, "0939 094D 0928", 0},                // HA + VIRAMA + NA
	{0xE035, 353, "0939 094D 0932", 0},                // HA + VIRAMA + LA
	{0xE036, 354, "0939 094D 0935", 0},                // HA + VIRAMA + VA
	{0xE037, 355, "0924 094D 0924", 0},                // TA + VIRAMA + TA
	{0xE038, 356, "091F 094D 091F", 0},                // TTA + VIRAMA + TTA
	{0xE039, 357, "091F 094D 0920", 0},                // TTA + VIRAMA + TTHA
	{0xE03A, 358, "0921 094D 0921", 0},                // DDA + VIRAMA + DDA
	{0xE03B, 359, "0919 094D 0915", 0},                // NGA + VIRAMA + KA
	{0xE03C, 360, "0919 094D 0917", 0},                // NGA + VIRAMA + GA
	{0xE03D, 361, "0936 094D 091A", 0},                // SHA + VIRAMA + CA
	{0xE03E, 362, "0936 094D 0935", 0},                // SHA + VIRAMA + VA
	{0xE03F, 363, "0938 094D 0930", 0},                // SA + VIRAMA + RA
	{0xE040, 364, "0926 094D 0930", ligature.Suspect}, // DA + VIRAMA + RA
	{0xE041, 365, "0930 0941", 0},                     // RA + SIGN U
	{0xE042, 366, "0930 0942", 0},                     // RA + SIGN UU
	{0xE043, 367, "0939 0943", 0},                     // HA + SIGN VOCALIC R
	{0xE044, 368, "0915 094D 0937 094D", 0},           // KA + VIRAMA + SSA + VIRAMA
	{0xE045, 369, "091C 094D 091E 094D", 0},           // JA + VIRAMA + NYA + VIRAMA
	{0xE046, 370, "0924 094D 0930 094D", 0},           // TA + VIRAMA + RA + VIRAMA
	{0xE047, 371, "0936 094D 0930 094D", 0},           // SHA + VIRAMA + RA + VIRAMA
	{0xE048, 372, "0924 094D 0924 094D", 0},           // TA + VIRAMA + TA + VIRAMA
	{0xE049, 373, "0938 094D 0924 094D 0930", 0},      // SA + VIRAMA + TA + VIRAMA + RA
	{0xE04A, 374, "0915 094D 0924 094D 0930", 0},      // KA + VIRAMA + TA + VIRAMA + RA
	{0xE04B, 375, "0915 094D 0937 094D 092E", 0},      // KA + VIRAMA + SSA + VIRAMA + MA
	{0xE04C, 376, "0915 094D 0937 094D 092F", 0},      // KA + VIRAMA + SSA + VIRAMA + YA
	{0xE04D, 377, "0915 094D 0937", 0},                // KA + VIRAMA + SSA
}
