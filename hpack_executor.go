package http2

import "io"

// Executor wraps a Decoder and a connection's HPACK tables, applying each
// decoded instruction in order to produce the actual (name, value) header
// fields and to keep the dynamic table's state consistent between peers.
// Instructions and their table effects must be applied in strict wire
// order — the dynamic table is shared, ordered state, not a cache.
type Executor struct {
	dec *Decoder
	dyn *DynamicTable
}

// NewExecutor pairs dec with the dynamic table its instructions act on.
func NewExecutor(dec *Decoder, dyn *DynamicTable) *Executor {
	return &Executor{dec: dec, dyn: dyn}
}

// Next decodes and applies the next instruction, returning the header
// field it produces. Dynamic Table Size Update instructions have no
// associated header field; Next applies their table effect and continues
// to the following instruction rather than returning early, mirroring RFC
// 7541 section 6.3's framing of them as a header-block-embedded control
// signal rather than a header field.
//
// Next returns io.EOF once the block is exhausted, or a ConnectionError
// wrapping ErrCodeCompression for any malformed instruction or table
// operation.
func (e *Executor) Next() (HeaderField, error) {
	for {
		instr, err := e.dec.Next()
		if err != nil {
			if err == io.EOF {
				return HeaderField{}, io.EOF
			}
			return HeaderField{}, NewHPACKError(err)
		}

		switch instr.Kind {
		case InstrIndexedHeader:
			hf, ok := ResolveIndex(e.dyn, instr.Index)
			if !ok {
				return HeaderField{}, NewHPACKError(hpackIntError("http2: indexed header field references unknown index"))
			}
			return hf, nil

		case InstrDynamicTableSizeUpdate:
			// A size update may set MaxSize above ProtocolMaxSize without
			// itself being an error; DynamicTable.Insert is what enforces
			// the ceiling, by refusing to store anything while MaxSize
			// exceeds it.
			e.dyn.SetMaxSize(instr.NewMaxSize)
			continue

		default: // the three literal kinds
			hf, err := e.resolveLiteral(instr)
			if err != nil {
				return HeaderField{}, err
			}
			if instr.Mode == IndexIncremental && !e.dyn.Insert(hf) && e.dyn.MaxSize() > e.dyn.ProtocolMaxSize() {
				// An oversized entry that merely empties the table is not
				// an error; a refusal because of the ceiling is.
				return HeaderField{}, NewHPACKError(hpackIntError("http2: dynamic table insert refused while max size exceeds protocol max size"))
			}
			return hf, nil
		}
	}
}

func (e *Executor) resolveLiteral(instr Instruction) (HeaderField, error) {
	hf := HeaderField{Value: instr.Value, Sensitive: instr.Mode == IndexNever}
	if instr.NameIndex == 0 {
		hf.Name = instr.NameLiteral
		return hf, nil
	}
	named, ok := ResolveIndex(e.dyn, instr.NameIndex)
	if !ok {
		return HeaderField{}, NewHPACKError(hpackIntError("http2: literal header field references unknown name index"))
	}
	hf.Name = named.Name
	return hf, nil
}
