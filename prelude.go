package main

// bootstrapColon hand-assembles `:` as a Compound of Call(WORD) Call(BD)
// Call(]), since the normal compile pipeline that would otherwise build
// it depends on `:` already existing (§4.2 construction order).
func bootstrapColon(d *Dictionary) {
	wordIdx, _ := d.Lookup("word")
	bdIdx, _ := d.Lookup("bd")
	rbracketIdx, _ := d.Lookup("]")

	d.Raw(":", Entry{
		Kind: KindCompound,
		Lin:  0,
		Lout: 0,
		Body: []Instruction{
			callInstr(wordIdx),
			callInstr(bdIdx),
			callInstr(rbracketIdx),
			retInstr(),
		},
	}, Immediate)
}

// preludeSource defines create, binary, decimal, and hex via the normal
// driver, now that `:` exists. create's body uses postpone twice so that
// literal and ; — both Immediate, and so normally executed the instant
// they're read during compilation — instead get compiled as calls into
// create's own body, so they run each time create runs and act on the
// definition that word/bd just began: create's own compile-time
// construction must not run them early.
const preludeSource = `
: create word bd here postpone literal postpone ; ;
: binary 2 base ! ;
: decimal 10 base ! ;
: hex 16 base ! ;
`
