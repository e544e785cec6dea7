package indic

func gujarati() *definition {
	return &definition{
		script:  Gujarati,
		blocks:  runes(block(0x0A80)...),
		base:    0x0A80,
		pua:     runes(puaBlock(0xE400)...),
		virama:  0x0ACD,
		classes: map[rune]Class{0x0AF9: Consonant},
		rows:    gujaratiRows,
		reph:    "0AB0 0ACD",
		passes: []pass{
			rephPass{skip: skipping(Nukta, PostBase, Matra).but(0x0ABF)},
			belowBasePass{above: runes(0x0AC5, 0x0AC7, 0x0AC8, 0x0AC9, 0x0ACB, 0x0ACC)},
			preBasePass{name: "I", matras: runes(0x0ABF), skip: clusterSkip},
		},
	}
}
