package http2

// HPACK indexing tables: the 61-entry static table fixed by RFC 7541
// Appendix A, and the per-connection dynamic table described in sections
// 2.3.2 and 4. Insert reports whether the entry was actually stored,
// since RFC 7541 section 4.4 requires that an entry larger than the
// table's current max size empty the table rather than being silently
// dropped alongside everything else.

// HeaderField is a decoded or to-be-encoded header name/value pair.
type HeaderField struct {
	Name  string
	Value string
	// Sensitive marks a field decoded from a "never indexed" literal. It
	// must never be inserted into the dynamic table nor represented as an
	// indexed header when-reencoded.
	Sensitive bool
}

// Size is the entry's contribution to a table's size accounting, per RFC
// 7541 section 4.1: name length + value length + 32.
func (h HeaderField) Size() uint32 {
	return uint32(len(h.Name)) + uint32(len(h.Value)) + 32
}

var staticTable = [61]HeaderField{
	{Name: ":authority"},
	{Name: ":method", Value: "GET"},
	{Name: ":method", Value: "POST"},
	{Name: ":path", Value: "/"},
	{Name: ":path", Value: "/index.html"},
	{Name: ":scheme", Value: "http"},
	{Name: ":scheme", Value: "https"},
	{Name: ":status", Value: "200"},
	{Name: ":status", Value: "204"},
	{Name: ":status", Value: "206"},
	{Name: ":status", Value: "304"},
	{Name: ":status", Value: "400"},
	{Name: ":status", Value: "404"},
	{Name: ":status", Value: "500"},
	{Name: "accept-charset"},
	{Name: "accept-encoding", Value: "gzip, deflate"},
	{Name: "accept-language"},
	{Name: "accept-ranges"},
	{Name: "accept"},
	{Name: "access-control-allow-origin"},
	{Name: "age"},
	{Name: "allow"},
	{Name: "authorization"},
	{Name: "cache-control"},
	{Name: "content-disposition"},
	{Name: "content-encoding"},
	{Name: "content-language"},
	{Name: "content-length"},
	{Name: "content-location"},
	{Name: "content-range"},
	{Name: "content-type"},
	{Name: "cookie"},
	{Name: "date"},
	{Name: "etag"},
	{Name: "expect"},
	{Name: "expires"},
	{Name: "from"},
	{Name: "host"},
	{Name: "if-match"},
	{Name: "if-modified-since"},
	{Name: "if-none-match"},
	{Name: "if-range"},
	{Name: "if-unmodified-since"},
	{Name: "last-modified"},
	{Name: "link"},
	{Name: "location"},
	{Name: "max-forwards"},
	{Name: "proxy-authenticate"},
	{Name: "proxy-authorization"},
	{Name: "range"},
	{Name: "referer"},
	{Name: "refresh"},
	{Name: "retry-after"},
	{Name: "server"},
	{Name: "set-cookie"},
	{Name: "strict-transport-security"},
	{Name: "transfer-encoding"},
	{Name: "user-agent"},
	{Name: "vary"},
	{Name: "via"},
	{Name: "www-authenticate"},
}

// staticIndexByName maps a header name to the lowest static-table index
// carrying it (1-based), used for opportunistically matching a
// name-only hit even when the value differs.
var staticIndexByName = map[string]int{}

// staticIndexByPair maps an exact (name, value) pair to its static-table
// index (1-based), used to prefer a full-match indexed representation.
var staticIndexByPair = map[HeaderField]int{}

func init() {
	for i, hf := range staticTable {
		idx := i + 1
		if _, ok := staticIndexByName[hf.Name]; !ok {
			staticIndexByName[hf.Name] = idx
		}
		staticIndexByPair[HeaderField{Name: hf.Name, Value: hf.Value}] = idx
	}
}

// StaticEntry returns the static table entry at the given 1-based index.
func StaticEntry(index int) (HeaderField, bool) {
	if index < 1 || index > len(staticTable) {
		return HeaderField{}, false
	}
	return staticTable[index-1], true
}

// FindStatic looks up a header field in the static table, preferring an
// exact (name, value) match and falling back to a name-only match.
// fullMatch reports whether both name and value matched.
func FindStatic(hf HeaderField) (index int, fullMatch bool) {
	if i, ok := staticIndexByPair[HeaderField{Name: hf.Name, Value: hf.Value}]; ok {
		return i, true
	}
	if i, ok := staticIndexByName[hf.Name]; ok {
		return i, false
	}
	return 0, false
}

// DynamicTable is the per-connection evolving header table described in
// RFC 7541 section 2.3.2. Entries are added at the front; eviction removes
// from the back once the table's total Size exceeds its current max.
//
// Not safe for concurrent use: callers serialize access the same way they
// serialize frame delivery per direction.
type DynamicTable struct {
	entries []HeaderField // entries[0] is the most recently added
	size    uint32        // sum of entries[i].Size()

	maxSize         uint32 // current negotiated size (may exceed protocolMaxSize; see Insert)
	protocolMaxSize uint32 // SETTINGS_HEADER_TABLE_SIZE ceiling
}

// NewDynamicTable creates an empty table whose MaxSize starts at
// protocolMaxSize.
// SetMaxSize may later move MaxSize above or below ProtocolMaxSize; Insert
// is what enforces the ceiling, by refusing to store anything while
// MaxSize exceeds ProtocolMaxSize.
func NewDynamicTable(protocolMaxSize uint32) *DynamicTable {
	return &DynamicTable{maxSize: protocolMaxSize, protocolMaxSize: protocolMaxSize}
}

// Len returns the number of entries currently stored.
func (t *DynamicTable) Len() int { return len(t.entries) }

// Size returns the table's current total size (RFC 7541 section 4.1).
func (t *DynamicTable) Size() uint32 { return t.size }

// MaxSize returns the table's current negotiated maximum size.
func (t *DynamicTable) MaxSize() uint32 { return t.maxSize }

// Get returns the entry at the given 1-based dynamic-table index (index 1
// is the most recently inserted entry).
func (t *DynamicTable) Get(index int) (HeaderField, bool) {
	if index < 1 || index > len(t.entries) {
		return HeaderField{}, false
	}
	return t.entries[index-1], true
}

// Find looks up hf in the dynamic table, preferring an exact match.
func (t *DynamicTable) Find(hf HeaderField) (index int, fullMatch bool) {
	nameIdx := 0
	for i, e := range t.entries {
		if e.Name == hf.Name && e.Value == hf.Value {
			return i + 1, true
		}
		if nameIdx == 0 && e.Name == hf.Name {
			nameIdx = i + 1
		}
	}
	if nameIdx != 0 {
		return nameIdx, false
	}
	return 0, false
}

// Insert adds hf to the front of the table, evicting from the back until
// it fits within MaxSize. It returns false without inserting if hf alone
// exceeds MaxSize (per RFC 7541 section 4.4, this also clears the table),
// or if MaxSize currently exceeds ProtocolMaxSize: a dynamic table size
// update may raise MaxSize past the negotiated SETTINGS_HEADER_TABLE_SIZE
// ceiling without itself being an error, but no entry may be stored while
// that's the case.
func (t *DynamicTable) Insert(hf HeaderField) bool {
	if t.maxSize > t.protocolMaxSize {
		return false
	}
	sz := hf.Size()
	if sz > t.maxSize {
		t.entries = t.entries[:0]
		t.size = 0
		return false
	}
	for t.size+sz > t.maxSize && len(t.entries) > 0 {
		t.evictOldest()
	}
	t.entries = append([]HeaderField{hf}, t.entries...)
	t.size += sz
	return true
}

func (t *DynamicTable) evictOldest() {
	last := t.entries[len(t.entries)-1]
	t.entries = t.entries[:len(t.entries)-1]
	t.size -= last.Size()
}

// SetMaxSize changes the negotiated maximum size, as instructed by a
// dynamic table size update within the header block. n may exceed
// ProtocolMaxSize; that's not an error here; it just means Insert will
// refuse to store anything until a later update brings MaxSize back down.
func (t *DynamicTable) SetMaxSize(n uint32) {
	t.maxSize = n
	for t.size > t.maxSize && len(t.entries) > 0 {
		t.evictOldest()
	}
}

// SetProtocolMaxSize updates the ceiling imposed by SETTINGS_HEADER_TABLE_SIZE.
// It does not itself evict or touch MaxSize: a negotiated MaxSize above the
// new ceiling is left as-is (Insert refuses to store anything until a
// subsequent dynamic table size update brings MaxSize back down).
func (t *DynamicTable) SetProtocolMaxSize(n uint32) {
	t.protocolMaxSize = n
}

// ProtocolMaxSize returns the current SETTINGS_HEADER_TABLE_SIZE ceiling.
func (t *DynamicTable) ProtocolMaxSize() uint32 { return t.protocolMaxSize }

// combinedIndexSpace helpers: HPACK addresses the static and dynamic
// tables as one contiguous index space, static first (RFC 7541 section
// 2.3.3): indices [1, 61] are static, [62, 61+len(dynamic)] are dynamic.

// ResolveIndex looks up a combined static+dynamic index.
func ResolveIndex(dyn *DynamicTable, index int) (HeaderField, bool) {
	if index >= 1 && index <= len(staticTable) {
		return StaticEntry(index)
	}
	return dyn.Get(index - len(staticTable))
}
