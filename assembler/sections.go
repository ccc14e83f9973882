package assembler

import "strings"

// SectionKind classifies a section by the leading component of its name.
type SectionKind int

const (
	SectionText SectionKind = iota
	SectionRodata
	SectionData
	SectionBss
	SectionCustom
)

// sectionOrder is the relocation order: text, then rodata, then data,
// then bss, then custom sections in first-seen order.
var sectionOrder = []SectionKind{SectionText, SectionRodata, SectionData, SectionBss, SectionCustom}

func classifySection(name string) SectionKind {
	switch {
	case strings.HasPrefix(name, ".text"):
		return SectionText
	case strings.HasPrefix(name, ".rodata"):
		return SectionRodata
	case strings.HasPrefix(name, ".data"):
		return SectionData
	case strings.HasPrefix(name, ".bss"):
		return SectionBss
	default:
		return SectionCustom
	}
}

// section is a named region of the output image. size grows during pass
// 1; base is assigned during relocation.
type section struct {
	name string
	kind SectionKind
	size uint32
	base uint32
}
