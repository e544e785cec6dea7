package indic

func oriya() *definition {
	return &definition{
		script:  Oriya,
		blocks:  runes(block(0x0B00)...),
		base:    0x0B00,
		pua:     runes(puaBlock(0xEA00)...),
		virama:  0x0B4D,
		classes: map[rune]Class{0x0B71: Consonant},
		rows:    oriyaRows,
		reph:    "0B30 0B4D",
		passes: []pass{
			rephPass{skip: skipping(Nukta, PostBase)},
			preBasePass{name: "E", matras: runes(0x0B47), skip: clusterSkip},
			newSplitPass("AI/O/AU", splitPre, clusterSkip, map[rune][2]rune{
				0x0B48: {0x0B47, 0x0B56},
				0x0B4B: {0x0B47, 0x0B3E},
				0x0B4C: {0x0B47, 0x0B57},
			}),
		},
	}
}
