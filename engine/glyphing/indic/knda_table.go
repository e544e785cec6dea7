package indic

import "github.com/npillmayer/puashape/engine/glyphing/ligature"

// kannadaRows holds the built-in Kannada ligatures, mapped to E600–E7FF.
var kannadaRows = []ligature.Row{
	{0xE600, 300, "0CB0 0CCD 200D", 0},                    // RA + VIRAMA + ZWJ
	{0xE601, 301, "0CB0 0CCD 200D", ligature.InitialForm}, // RA + VIRAMA + ZWJ
	{0xE602, 302, "0CCD 0C95", 0},                         // VIRAMA + KA
	{0xE603, 303, "0CCD 0C96", 0},                         // VIRAMA + KHA
	{0xE604, 304, "0CCD 0C97", 0},                         // VIRAMA + GA
	{0xE605, 305, "0CCD 0C98", 0},                         // VIRAMA + GHA
	{0xE606, 306, "0CCD 0C99", 0},                         // VIRAMA + NGA
	{0xE607, 307, "0CCD 0C9A", 0},                         // VIRAMA + CA
	{0xE608, 308, "0CCD 0C9B", 0},                         // VIRAMA + CHA
	{0xE609, 309, "0CCD 0C9C", 0},                         // VIRAMA + JA
	{0xE60A, 310, "0CCD 0C9D", 0},                         // VIRAMA + JHA
	{0xE60B, 311, "0CCD 0C9E", 0},                         // VIRAMA + NYA
	{0xE60C, 312, "0CCD 0C9F", 0},                         // VIRAMA + TTA
	{0xE60D, 313, "0CCD 0CA0", 0},                         // VIRAMA + TTHA
	{0xE60E, 314, "0CCD 0CA1", 0},                         // VIRAMA + DDA
	{0xE60F, 315, "0CCD 0CA2", 0},                         // VIRAMA + DDHA
	{0xE610, 316, "0CCD 0CA3", 0},                         // VIRAMA + NNA
	{0xE611, 317, "0CCD 0CA4", 0},                         // VIRAMA + TA
	{0xE612, 318, "0CCD 0CA5", 0},                         // VIRAMA + THA
	{0xE613, 319, "0CCD 0CA6", 0},                         // VIRAMA + DA
	{0xE614, 320, "0CCD 0CA7", 0},                         // VIRAMA + DHA
	{0xE615, 321, "0CCD 0CA8", 0},                         // VIRAMA + NA
	{0xE616, 322, "0CCD 0CAA", 0},                         // VIRAMA + PA
	{0xE617, 323, "0CCD 0CAB", 0},                         // VIRAMA + PHA
	{0xE618, 324, "0CCD 0CAC", 0},                         // VIRAMA + BA
	{0xE619, 325, "0CCD 0CAD", 0},                         // VIRAMA + BHA
	{0xE61A, 326, "0CCD 0CAE", 0},                         // VIRAMA + MA
	{0xE61B, 327, "0CCD 0CAF", 0},                         // VIRAMA + YA
	{0xE61C, 328, "0CCD 0CB0", 0},                         // VIRAMA + RA
	{0xE61D, 329, "0CCD 0CB2", 0},                         // VIRAMA + LA
	{0xE61E, 330, "0CCD 0CB3", 0},                         // VIRAMA + LLA
	{0xE61F, 331, "0CCD 0CB5", 0},                         // VIRAMA + VA
	{0xE620, 332, "0CCD 0CB6", 0},                         // VIRAMA + SHA
	{0xE621, 333, "0CCD 0CB7", 0},                         // VIRAMA + SSA
	{0xE622, 334, "0CCD 0CB8", 0},                         // VIRAMA + SA
	{0xE623, 335, "0CCD 0CB9", 0},                         // VIRAMA + HA
	{0xE624, 336, "0C95 0CCD 0CB7", 0},                    // KA + VIRAMA + SSA
	{0xE625, 337, "0C9C 0CCD 0C9E", 0},                    // JA + VIRAMA + NYA
}
