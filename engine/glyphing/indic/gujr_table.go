package indic

import "github.com/npillmayer/puashape/engine/glyphing/ligature"

// gujaratiRows holds the built-in Gujarati ligatures, mapped to E400–E5FF.
var gujaratiRows = []ligature.Row{
	{0xE400, 300, "0AB0 0ACD", 0},                    // RA + VIRAMA
	{0xE401, 301, "0AB0 0ACD", ligature.InitialForm}, // RA + VIRAMA
	{0xE402, 302, "0A95 0ACD", 0},                    // KA + VIRAMA
	{0xE403, 303, "0A96 0ACD", 0},                    // KHA + VIRAMA
	{0xE404, 304, "0A97 0ACD", 0},                    // GA + VIRAMA
	{0xE405, 305, "0A98 0ACD", 0},                    // GHA + VIRAMA
	{0xE406, 306, "0A99 0ACD", 0},                    // NGA + VIRAMA
	{0xE407, 307, "0A9A 0ACD", 0},                    // CA + VIRAMA
	{0xE408, 308, "0A9B 0ACD", 0},                    // CHA + VIRAMA
	{0xE409, 309, "0A9C 0ACD", 0},                    // JA + VIRAMA
	{0xE40A, 310, "0A9D 0ACD", 0},                    // JHA + VIRAMA
	{0xE40B, 311, "0A9E 0ACD", 0},                    // NYA + VIRAMA
	{0xE40C, 312, "0A9F 0ACD", 0},                    // TTA + VIRAMA
	{0xE40D, 313, "0AA0 0ACD", 0},                    // TTHA + VIRAMA
	{0xE40E, 314, "0AA1 0ACD", 0},                    // DDA + VIRAMA
	{0xE40F, 315, "0AA2 0ACD", 0},                    // DDHA + VIRAMA
	{0xE410, 316, "0AA3 0ACD", 0},                    // NNA + VIRAMA
	{0xE411, 317, "0AA4 0ACD", 0},                    // TA + VIRAMA
	{0xE412, 318, "0AA5 0ACD", 0},                    // THA + VIRAMA
	{0xE413, 319, "0AA6 0ACD", 0},                    // DA + VIRAMA
	{0xE414, 320, "0AA7 0ACD", 0},                    // DHA + VIRAMA
	{0xE415, 321, "0AA8 0ACD", 0},                    // NA + VIRAMA
	{0xE416, 322, "0AAA 0ACD", 0},                    // PA + VIRAMA
	{0xE417, 323, "0AAB 0ACD", 0},                    // PHA + VIRAMA
	{0xE418, 324, "0AAC 0ACD", 0},                    // BA + VIRAMA
	{0xE419, 325, "0AAD 0ACD", 0},                    // BHA + VIRAMA
	{0xE41A, 326, "0AAE 0ACD", 0},                    // MA + VIRAMA
	{0xE41B, 327, "0AAF 0ACD", 0},                    // YA + VIRAMA
	{0xE41C, 328, "0AB2 0ACD", 0},                    // LA + VIRAMA
	{0xE41D, 329, "0AB3 0ACD", 0},                    // LLA + VIRAMA
	{0xE41E, 330, "0AB5 0ACD", 0},                    // VA + VIRAMA
	{0xE41F, 331, "0AB6 0ACD", 0},                    // SHA + VIRAMA
	{0xE420, 332, "0AB7 0ACD", 0},                    // SSA + VIRAMA
	{0xE421, 333, "0AB8 0ACD", 0},                    // SA + VIRAMA
	{0xE422, 334, "0AB9 0ACD", 0},                    // HA + VIRAMA
	{0xE423, 335, "0ACD 0AB0", 0},                    // VIRAMA + RA
	{0xE424, 336, "0A95 0ACD 0AB7", 0},               // KA + VIRAMA + SSA
	{0xE425, 337, "0A9C 0ACD 0A9E", 0},               // JA + VIRAMA + NYA
	{0xE426, 338, "0AA4 0ACD 0AB0", 0},               // TA + VIRAMA + RA
	{0xE427, 339, "0AB6 0ACD 0AB0", 0},               // SHA + VIRAMA + RA
	{0xE428, 340, "0A95 0ACD 0AB0", 0},               // KA + VIRAMA + RA
	{0xE429, 341, "0AAA 0ACD 0AB0", 0},               // PA + VIRAMA + RA
	{0xE42A, 342, "0AA6 0ACD 0AA6", 0},               // DA + VIRAMA + DA
	{0xE42B, 343, "0AA6 0ACD 0AB5", 0},               // DA + VIRAMA + VA
	{0xE42C, 344, "0AA6 0ACD 0AAF", 0},               // DA + VIRAMA + YA
	{0xE42D, 345, "0AB9 0ACD 0AAE", 0},               // HA + VIRAMA + MA
	{0xE42E, 346, "0AB9 0ACD 0AAF", 0},               // HA + VIRAMA + YA
	{0xE42F, 347, "0AA4 0ACD 0AA4", 0},               // TA + VIRAMA + TA
	{0xE430, 348, "0A9F 0ACD 0A9F", 0},               // TTA + VIRAMA + TTA
	{0xE431, 349, "0AB6 0ACD 0A9A", 0},               // SHA + VIRAMA + CA
	{0xE432, 350, "0AB8 0ACD 0AB0", 0},               // SA + VIRAMA + RA
	{0xE433, 351, "0AB0 0AC1", 0},                    // RA + SIGN U
	{0xE434, 352, "0AB0 0AC2", 0},                    // RA + SIGN UU
	{0xE435, 353, "0AA6 0AC3", 0},                    // DA + SIGN VOCALIC R
	{0xE436, 354, "0A95 0ACD 0AB7 0ACD", 0},          // KA + VIRAMA + SSA + VIRAMA
	{0xE437, 355, "0A9C 0ACD 0A9E 0ACD", 0},          // JA + VIRAMA + NYA + VIRAMA
	{0xE438, 356, "0AA4 0ACD 0AB0 0ACD", 0},          // TA + VIRAMA + RA + VIRAMA
	{0xE439, 357, "0AB8 0ACD 0AA4 0ACD 0AB0", 0},     // SA + VIRAMA + TA + VIRAMA + RA
}
