package http2

import (
	"github.com/go-h2/h2c/http2utils"
)

var _ Frame = &Settings{}

// SettingID identifies one SETTINGS parameter, RFC 7540 section 6.5.2.
type SettingID uint16

const (
	SettingHeaderTableSize      SettingID = 0x1
	SettingEnablePush           SettingID = 0x2
	SettingMaxConcurrentStreams SettingID = 0x3
	SettingInitialWindowSize    SettingID = 0x4
	SettingMaxFrameSize         SettingID = 0x5
	SettingMaxHeaderListSize    SettingID = 0x6
)

// Default values from RFC 7540 section 6.5.2.
const (
	DefaultHeaderTableSize   uint32 = 4096
	DefaultInitialWindowSize uint32 = 65535
	DefaultMaxFrameSize      uint32 = 1 << 14
	MaxAllowedFrameSize      uint32 = 1<<24 - 1
)

// Setting is one (identifier, value) pair within a SETTINGS frame.
type Setting struct {
	ID    SettingID
	Value uint32
}

// Settings communicates connection-level configuration parameters.
//
// Flags: ACK.
//
// https://tools.ietf.org/html/rfc7540#section-6.5
type Settings struct {
	ack      bool
	settings []Setting
}

func (s *Settings) Type() FrameType { return FrameSettings }

func (s *Settings) Reset() {
	s.ack = false
	s.settings = s.settings[:0]
}

func (s *Settings) CopyTo(other *Settings) {
	other.ack = s.ack
	other.settings = append(other.settings[:0], s.settings...)
}

func (s *Settings) Ack() bool     { return s.ack }
func (s *Settings) SetAck(v bool) { s.ack = v }

// Settings returns the decoded (identifier, value) pairs, in wire order.
// Duplicates are preserved; RFC 7540 section 6.5.2 says the last value for
// a given identifier wins, which a consumer applying these in order gets
// for free.
func (s *Settings) Settings() []Setting { return s.settings }

// Add appends a setting to be sent.
func (s *Settings) Add(id SettingID, value uint32) {
	s.settings = append(s.settings, Setting{ID: id, Value: value})
}

// Get returns the last value set for id among the decoded settings, and
// whether id was present at all.
func (s *Settings) Get(id SettingID) (uint32, bool) {
	found := false
	var v uint32
	for _, st := range s.settings {
		if st.ID == id {
			v = st.Value
			found = true
		}
	}
	return v, found
}

func (s *Settings) Deserialize(fr *FrameHeader) error {
	s.ack = fr.Flags().Has(FlagAck)

	if s.ack {
		if fr.Len() != 0 {
			return ConnectionError{Code: ErrCodeFrameSize, Err: hpackIntError("http2: SETTINGS ack carries a payload")}
		}
		return nil
	}

	if fr.Len()%6 != 0 {
		return ConnectionError{Code: ErrCodeFrameSize, Err: hpackIntError("http2: SETTINGS payload not a multiple of 6")}
	}

	payload := fr.payload
	s.settings = s.settings[:0]
	for len(payload) > 0 {
		id := SettingID(payload[0])<<8 | SettingID(payload[1])
		value := http2utils.BytesToUint32(payload[2:6])
		payload = payload[6:]

		if err := validateSetting(id, value); err != nil {
			return err
		}
		s.settings = append(s.settings, Setting{ID: id, Value: value})
	}

	return nil
}

// validateSetting applies the per-identifier range checks of RFC 7540
// section 6.5.2. An unrecognized identifier is ignored, not rejected.
func validateSetting(id SettingID, value uint32) error {
	switch id {
	case SettingEnablePush:
		if value != 0 && value != 1 {
			return ConnectionError{Code: ErrCodeProtocol, Err: hpackIntError("http2: SETTINGS_ENABLE_PUSH must be 0 or 1")}
		}
	case SettingInitialWindowSize:
		if value > 1<<31-1 {
			return ConnectionError{Code: ErrCodeFlowControl, Err: hpackIntError("http2: SETTINGS_INITIAL_WINDOW_SIZE exceeds maximum flow-control window")}
		}
	case SettingMaxFrameSize:
		if value < DefaultMaxFrameSize || value > MaxAllowedFrameSize {
			return ConnectionError{Code: ErrCodeProtocol, Err: hpackIntError("http2: SETTINGS_MAX_FRAME_SIZE out of range")}
		}
	}
	return nil
}

func (s *Settings) Serialize(fr *FrameHeader) {
	if s.ack {
		fr.SetFlags(fr.Flags().Add(FlagAck))
		fr.setPayload(nil)
		return
	}

	payload := make([]byte, 0, len(s.settings)*6)
	for _, st := range s.settings {
		payload = append(payload, byte(st.ID>>8), byte(st.ID))
		payload = http2utils.AppendUint32Bytes(payload, st.Value)
	}
	fr.setPayload(payload)
}
