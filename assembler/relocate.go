package assembler

// relocate assigns a base address to every section in the order text ->
// rodata -> data -> bss -> custom (first-seen within a kind), then
// converts every label's section-relative offset into an absolute
// address.
func relocate(st *pass1State) (map[string]uint32, uint32, uint32) {
	var cursor uint32
	var textSize, dataSize uint32

	for _, kind := range sectionOrder {
		for _, name := range st.sectionList {
			s := st.sections[name]
			if s.kind != kind {
				continue
			}
			s.base = cursor
			cursor += s.size
			switch kind {
			case SectionText:
				textSize += s.size
			case SectionData, SectionRodata, SectionBss:
				dataSize += s.size
			}
		}
	}

	addrs := make(map[string]uint32, len(st.labels))
	for name, l := range st.labels {
		addrs[name] = st.sections[l.section].base + l.offset
	}

	return addrs, textSize, dataSize
}
