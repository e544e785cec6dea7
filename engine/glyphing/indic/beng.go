package indic

// Bangla has no half forms in its tables. A consonant followed by a virama
// stays decomposed, and pre-base vowel signs move across the virama.
// KHANDA TA is treated as a ligature of TA, VIRAMA and ZWJ.
func bangla() *definition {
	return &definition{
		script:  Bangla,
		blocks:  runes(block(0x0980)...),
		base:    0x0980,
		pua:     runes(append(puaBlock(0xE200), 0x09CE)...),
		virama:  0x09CD,
		classes: map[rune]Class{0x09F0: Consonant, 0x09F1: Consonant},
		rows:    banglaRows,
		reph:    "09B0 09CD",
		passes: []pass{
			rephPass{skip: skipping(Nukta, PostBase)},
			preBasePass{name: "I", matras: runes(0x09BF), skip: clusterSkip},
			preBasePass{name: "E/AI", matras: runes(0x09C7, 0x09C8), skip: clusterSkip},
			newSplitPass("O/AU", splitPre, clusterSkip, map[rune][2]rune{
				0x09CB: {0x09C7, 0x09BE},
				0x09CC: {0x09C7, 0x09D7},
			}),
		},
	}
}
