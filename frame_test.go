package http2

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeFrame(t *testing.T, raw []byte) (*FrameHeader, error) {
	t.Helper()
	fr, err := ReadFrameFromWithSize(bufio.NewReader(bytes.NewReader(raw)), 1<<24-1)
	return fr, err
}

func header(length int, kind FrameType, flags FrameFlags, stream uint32) []byte {
	b := make([]byte, 9)
	b[0] = byte(length >> 16)
	b[1] = byte(length >> 8)
	b[2] = byte(length)
	b[3] = byte(kind)
	b[4] = byte(flags)
	b[5] = byte(stream >> 24)
	b[6] = byte(stream >> 16)
	b[7] = byte(stream >> 8)
	b[8] = byte(stream)
	return b
}

func TestDataOnStreamZeroIsProtocolError(t *testing.T) {
	raw := append(header(1, FrameData, 0, 0), 0x00)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var ce ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrCodeProtocol, ce.Code)
}

func TestDataPaddedWithPadLengthExceedingPayload(t *testing.T) {
	raw := append(header(1, FrameData, FlagPadded, 1), 0x01)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var ce ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrCodeProtocol, ce.Code)
}

func TestDataPaddedFullPadding(t *testing.T) {
	payload := append([]byte{0xFF}, make([]byte, 255)...)
	raw := append(header(len(payload), FrameData, FlagPadded, 1), payload...)
	fr, err := decodeFrame(t, raw)
	require.NoError(t, err)
	data := fr.Body().(*Data)
	require.False(t, data.EndStream())
	require.Empty(t, data.Data())
}

func TestPriorityDecodesDependencyAndWeight(t *testing.T) {
	raw := append(header(5, FramePriority, 0, 1), 0x00, 0x00, 0x00, 0x01, 0x00)
	fr, err := decodeFrame(t, raw)
	require.NoError(t, err)
	pry := fr.Body().(*Priority)
	require.False(t, pry.Exclusive())
	require.EqualValues(t, 1, pry.StreamDep())
	require.EqualValues(t, 0, pry.Weight())
}

func TestPriorityExclusiveBitMasksDependency(t *testing.T) {
	raw := append(header(5, FramePriority, 0, 1), 0x80, 0x00, 0x00, 0x01, 0x00)
	fr, err := decodeFrame(t, raw)
	require.NoError(t, err)
	pry := fr.Body().(*Priority)
	require.True(t, pry.Exclusive())
	require.EqualValues(t, 1, pry.StreamDep())
}

func TestPriorityOnStreamZeroIsProtocolError(t *testing.T) {
	raw := append(header(5, FramePriority, 0, 0), 0x00, 0x00, 0x00, 0x01, 0x00)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var ce ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrCodeProtocol, ce.Code)
}

func TestPriorityWrongLengthIsFrameSizeError(t *testing.T) {
	raw := append(header(4, FramePriority, 0, 1), 0x00, 0x00, 0x00, 0x01)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var se StreamError
	require.ErrorAs(t, err, &se)
	require.Equal(t, ErrCodeFrameSize, se.Code)
}

func TestPriorityDependencyZeroIsProtocolError(t *testing.T) {
	raw := append(header(5, FramePriority, 0, 1), 0x00, 0x00, 0x00, 0x00, 0x00)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var se StreamError
	require.ErrorAs(t, err, &se)
	require.Equal(t, ErrCodeProtocol, se.Code)
}

func TestSettingsAckWithPayloadIsFrameSizeError(t *testing.T) {
	raw := append(header(1, FrameSettings, FlagAck, 0), 0x00)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var ce ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrCodeFrameSize, ce.Code)
}

func TestSettingsLengthNotMultipleOfSixIsFrameSizeError(t *testing.T) {
	raw := append(header(5, FrameSettings, 0, 0), 0x00, 0x01, 0x00, 0x00, 0x00)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var ce ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrCodeFrameSize, ce.Code)
}

func settingsPayload(id SettingID, value uint32) []byte {
	return []byte{
		byte(id >> 8), byte(id),
		byte(value >> 24), byte(value >> 16), byte(value >> 8), byte(value),
	}
}

func TestSettingsEnablePushOutOfRangeIsProtocolError(t *testing.T) {
	payload := settingsPayload(SettingEnablePush, 2)
	raw := append(header(len(payload), FrameSettings, 0, 0), payload...)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var ce ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrCodeProtocol, ce.Code)
}

func TestSettingsInitialWindowSizeTooLargeIsFlowControlError(t *testing.T) {
	payload := settingsPayload(SettingInitialWindowSize, 0x80000000)
	raw := append(header(len(payload), FrameSettings, 0, 0), payload...)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var ce ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrCodeFlowControl, ce.Code)
}

func TestSettingsMaxFrameSizeTooSmallIsProtocolError(t *testing.T) {
	payload := settingsPayload(SettingMaxFrameSize, 0x3FFF)
	raw := append(header(len(payload), FrameSettings, 0, 0), payload...)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var ce ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrCodeProtocol, ce.Code)
}

func TestSettingsMaxFrameSizeTooLargeIsProtocolError(t *testing.T) {
	payload := settingsPayload(SettingMaxFrameSize, 0x1000000)
	raw := append(header(len(payload), FrameSettings, 0, 0), payload...)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var ce ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrCodeProtocol, ce.Code)
}

func TestWindowUpdateZeroIncrementIsProtocolError(t *testing.T) {
	raw := append(header(4, FrameWindowUpdate, 0, 1), 0x00, 0x00, 0x00, 0x00)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var se StreamError
	require.ErrorAs(t, err, &se)
	require.Equal(t, ErrCodeProtocol, se.Code)
	require.EqualValues(t, 1, se.StreamID)
}

func TestWindowUpdateZeroIncrementOnConnectionIsProtocolError(t *testing.T) {
	raw := append(header(4, FrameWindowUpdate, 0, 0), 0x00, 0x00, 0x00, 0x00)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var ce ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrCodeProtocol, ce.Code)
}

func TestWindowUpdateWrongLengthIsFrameSizeError(t *testing.T) {
	raw := append(header(3, FrameWindowUpdate, 0, 1), 0x00, 0x00, 0x00)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var ce ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrCodeFrameSize, ce.Code)
}

func TestWindowUpdateIncrementValue(t *testing.T) {
	raw := append(header(4, FrameWindowUpdate, 0, 1), 0xFE, 0xDC, 0xBA, 0x98)
	fr, err := decodeFrame(t, raw)
	require.NoError(t, err)
	wu := fr.Body().(*WindowUpdate)
	require.EqualValues(t, 0x7EDCBA98, wu.Increment())
}

func TestWindowUpdateOnConnectionStreamDecodesCleanly(t *testing.T) {
	raw := append(header(4, FrameWindowUpdate, 0, 0), 0x00, 0x00, 0x10, 0x00)
	fr, err := decodeFrame(t, raw)
	require.NoError(t, err)
	wu := fr.Body().(*WindowUpdate)
	require.EqualValues(t, 0x1000, wu.Increment())
}

func TestGoAwayOnNonzeroStreamIsProtocolError(t *testing.T) {
	payload := make([]byte, 8)
	raw := append(header(8, FrameGoAway, 0, 1), payload...)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var ce ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrCodeProtocol, ce.Code)
}

func TestGoAwayTooShortIsFrameSizeError(t *testing.T) {
	raw := append(header(4, FrameGoAway, 0, 0), 0x00, 0x00, 0x00, 0x00)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var ce ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrCodeFrameSize, ce.Code)
}

func TestGoAwayRoundTrip(t *testing.T) {
	payload := make([]byte, 0, 12)
	payload = append(payload, 0x00, 0x00, 0x00, 0x05)
	payload = append(payload, 0x00, 0x00, 0x00, byte(ErrCodeCancel))
	payload = append(payload, "oops"...)
	raw := append(header(len(payload), FrameGoAway, 0, 0), payload...)
	fr, err := decodeFrame(t, raw)
	require.NoError(t, err)
	ga := fr.Body().(*GoAway)
	require.EqualValues(t, 5, ga.LastStreamID())
	require.Equal(t, ErrCodeCancel, ga.Code())
	require.Equal(t, "oops", string(ga.Data()))
}

func TestPingOnNonzeroStreamIsProtocolError(t *testing.T) {
	raw := append(header(8, FramePing, 0, 1), make([]byte, 8)...)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var ce ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrCodeProtocol, ce.Code)
}

func TestPingWrongLengthIsFrameSizeError(t *testing.T) {
	raw := append(header(7, FramePing, 0, 0), make([]byte, 7)...)
	_, err := decodeFrame(t, raw)
	require.Error(t, err)
	var ce ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrCodeFrameSize, ce.Code)
}

func TestPingOpaqueDataRoundTrip(t *testing.T) {
	opaque := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	raw := append(header(8, FramePing, FlagAck, 0), opaque...)
	fr, err := decodeFrame(t, raw)
	require.NoError(t, err)
	ping := fr.Body().(*Ping)
	require.True(t, ping.Ack())
	require.Equal(t, opaque, ping.Data())
}

func TestUnknownFrameTypeDecodesOpaquely(t *testing.T) {
	raw := append(header(3, FrameType(0xEE), 0, 7), 0xAA, 0xBB, 0xCC)
	fr, err := decodeFrame(t, raw)
	require.NoError(t, err)
	u, ok := fr.Body().(*UnknownFrame)
	require.True(t, ok)
	require.Equal(t, FrameType(0xEE), u.Type())
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC}, u.Payload())
}
