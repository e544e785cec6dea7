package indic

func telugu() *definition {
	return &definition{
		script: Telugu,
		blocks: runes(block(0x0C00)...),
		base:   0x0C00,
		pua:    runes(puaBlock(0xEE00)...),
		virama: 0x0C4D,
		rows:   teluguRows,
		reph:   "0C30 0C4D 200D",
		passes: []pass{
			rephPass{skip: skipping(Nukta, PostBase, Matra)},
			belowBasePass{above: runes(0x0C3E, 0x0C3F, 0x0C40, 0x0C46, 0x0C47, 0x0C48, 0x0C4A, 0x0C4B, 0x0C4C)},
			newSplitPass("AI", splitPost, skipSet{}, map[rune][2]rune{
				0x0C48: {0x0C46, 0x0C56},
			}),
		},
	}
}
