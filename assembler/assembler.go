// Package assembler implements the two-pass textual RV32I assembler:
// pass 1 sizes sections and labels, a relocation step converts
// section-relative label offsets to absolute addresses, and pass 2
// rewinds the input and encodes the final image.
package assembler

// Result is the output of a successful Assemble call.
type Result struct {
	// Image is the raw little-endian binary image: text, then rodata,
	// then data, then bss (explicit zero bytes), then custom sections in
	// first-seen order. No header, no relocation table, no symbol table.
	Image []byte
	// TextSize and DataSize are reported for the integration layer,
	// matching the pass-1 section-size bookkeeping explicitly.
	TextSize uint32
	DataSize uint32
	// Labels maps every symbol to its final absolute address, useful for
	// a driver or test that wants to set the initial PC to a named entry
	// point rather than address 0.
	Labels map[string]uint32
}

// Assemble translates source into a Result, or returns the first fatal
// error encountered. Running it twice on the same input with no
// duplicate labels produces a byte-identical Image both times: both
// passes are pure functions of their inputs.
func Assemble(source string) (Result, error) {
	st, err := runPass1(source)
	if err != nil {
		return Result{}, err
	}

	labels, textSize, dataSize := relocate(st)

	var total uint32
	for _, s := range st.sections {
		if end := s.base + s.size; end > total {
			total = end
		}
	}

	img, err := runPass2(source, st, labels, total)
	if err != nil {
		return Result{}, err
	}

	return Result{Image: img, TextSize: textSize, DataSize: dataSize, Labels: labels}, nil
}
