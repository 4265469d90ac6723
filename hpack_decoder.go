package http2

import "io"

// InstructionKind discriminates the HPACK instruction variants of RFC 7541
// section 6.
type InstructionKind uint8

const (
	InstrIndexedHeader InstructionKind = iota
	InstrLiteralIncrementalIndexing
	InstrLiteralWithoutIndexing
	InstrLiteralNeverIndexed
	InstrDynamicTableSizeUpdate
)

// IndexingMode reports how a literal instruction affects the dynamic
// table, folded into one type so the executor can switch on it directly.
type IndexingMode uint8

const (
	IndexNone IndexingMode = iota
	IndexIncremental
	IndexNever
)

// Instruction is one decoded HPACK wire instruction, lazily produced by
// Decoder.Next before any table lookups or insertions happen — table
// effects are applied by Executor, not here.
type Instruction struct {
	Kind InstructionKind

	// Valid for InstrIndexedHeader: the combined static+dynamic index.
	Index int

	// Valid for the three Literal* kinds.
	NameIndex int    // 0 means the name is a literal (NameLiteral), else an index
	NameLiteral string
	Value     string
	Mode      IndexingMode

	// Valid for InstrDynamicTableSizeUpdate.
	NewMaxSize uint32
}

// Decoder lazily splits an HPACK header block into instructions per RFC
// 7541 section 6, dispatching on the leading octet's top bits. It performs
// no table lookups; pair that with Executor to produce HeaderFields.
type Decoder struct {
	buf []byte
}

// NewDecoder creates a Decoder over a complete header block. HPACK header
// blocks may span multiple HEADERS/CONTINUATION frames; the caller is
// responsible for reassembling them into one buffer before decoding
// starts.
func NewDecoder(block []byte) *Decoder {
	return &Decoder{buf: block}
}

// Next returns the next instruction, or io.EOF once the block is fully
// consumed. Any other error is fatal to the whole header block per RFC
// 7541 section 4.3: a single malformed instruction corrupts the shared
// compression state and the encloser must treat it as a connection error.
func (d *Decoder) Next() (Instruction, error) {
	if len(d.buf) == 0 {
		return Instruction{}, io.EOF
	}
	first := d.buf[0]

	switch {
	case first&0x80 != 0: // 1xxxxxxx: Indexed Header Field
		idx, n, err := DecodeInteger(d.buf, 7)
		if err != nil {
			return Instruction{}, err
		}
		if idx == 0 {
			return Instruction{}, ConnectionError{Code: ErrCodeCompression, Err: hpackIntError("http2: indexed header field index 0")}
		}
		d.buf = d.buf[n:]
		return Instruction{Kind: InstrIndexedHeader, Index: int(idx)}, nil

	case first&0xc0 == 0x40: // 01xxxxxx: Literal with Incremental Indexing
		return d.decodeLiteral(6, IndexIncremental)

	case first&0xe0 == 0x20: // 001xxxxx: Dynamic Table Size Update
		n32, n, err := DecodeInteger(d.buf, 5)
		if err != nil {
			return Instruction{}, err
		}
		d.buf = d.buf[n:]
		return Instruction{Kind: InstrDynamicTableSizeUpdate, NewMaxSize: n32}, nil

	case first&0xf0 == 0x10: // 0001xxxx: Literal Never Indexed
		return d.decodeLiteral(4, IndexNever)

	default: // 0000xxxx: Literal Without Indexing
		return d.decodeLiteral(4, IndexNone)
	}
}

func (d *Decoder) decodeLiteral(prefixBits uint, mode IndexingMode) (Instruction, error) {
	nameIdx, n, err := DecodeInteger(d.buf, prefixBits)
	if err != nil {
		return Instruction{}, err
	}
	d.buf = d.buf[n:]

	instr := Instruction{Mode: mode}
	switch mode {
	case IndexIncremental:
		instr.Kind = InstrLiteralIncrementalIndexing
	case IndexNever:
		instr.Kind = InstrLiteralNeverIndexed
	default:
		instr.Kind = InstrLiteralWithoutIndexing
	}

	if nameIdx == 0 {
		name, consumed, err := DecodeString(nil, d.buf)
		if err != nil {
			return Instruction{}, err
		}
		d.buf = d.buf[consumed:]
		// name is a freshly allocated slice owned by nobody else, so the
		// zero-copy conversion below never aliases a buffer the caller
		// could mutate out from under the decoded instruction.
		instr.NameLiteral = b2s(name)
	} else {
		instr.NameIndex = int(nameIdx)
	}

	value, consumed, err := DecodeString(nil, d.buf)
	if err != nil {
		return Instruction{}, err
	}
	d.buf = d.buf[consumed:]
	instr.Value = b2s(value)

	return instr, nil
}
