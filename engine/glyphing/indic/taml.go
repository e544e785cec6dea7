package indic

// Tamil has neither reph nor half forms. Dead consonants are ligatures of
// their own and act as bases.
func tamil() *definition {
	return &definition{
		script: Tamil,
		blocks: runes(block(0x0B80)...),
		base:   0x0B80,
		pua:    runes(puaBlock(0xEC00)...),
		virama: 0x0BCD,
		rows:   tamilRows,
		passes: []pass{
			preBasePass{name: "E", matras: runes(0x0BC6), skip: clusterSkip},
			preBasePass{name: "EE/AI", matras: runes(0x0BC7, 0x0BC8), skip: clusterSkip},
			newSplitPass("O/OO/AU", splitPre, clusterSkip, map[rune][2]rune{
				0x0BCA: {0x0BC6, 0x0BBE},
				0x0BCB: {0x0BC7, 0x0BBE},
				0x0BCC: {0x0BC6, 0x0BD7},
			}),
		},
	}
}
