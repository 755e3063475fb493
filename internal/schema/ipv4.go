package schema

import (
	"encoding/binary"

	"wirefuzz.dev/pkg/wirefuzz/internal/domain"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

const ipv4HeaderLen = 20

// IP protocol numbers.
const (
	ProtoICMP uint8 = 1
	ProtoTCP  uint8 = 6
	ProtoUDP  uint8 = 17
)

// IPv4 is an IPv4 header with an opaque payload. The version, header length,
// total length and checksum are repaired after every change; the fuzzer
// occasionally skips the repair so malformed headers are sent as well.
func IPv4() *domain.StructType {
	protocol := domain.NewUnitEnum("ip_protocol",
		domain.UnitVariant[uint8]{Name: "ICMP", Value: ProtoICMP},
		domain.UnitVariant[uint8]{Name: "TCP", Value: ProtoTCP, Weight: 3},
		domain.UnitVariant[uint8]{Name: "UDP", Value: ProtoUDP, Weight: 3},
	)

	return domain.NewStruct("ipv4", []*domain.Field{
		domain.NewField("ihl", domain.U8(), domain.Bits(4)),
		domain.NewField("version", domain.U8(), domain.Bits(4)),
		domain.NewField("ecn", domain.U8(), domain.Bits(2)),
		domain.NewField("dscp", domain.U8(), domain.Bits(6)),
		domain.NewField("total_length", domain.U16(), domain.BigEndian()),
		domain.NewField("identification", domain.U16(), domain.BigEndian()),
		domain.NewField("fragment_offset", domain.U16(), domain.Bits(13), domain.BigEndian()),
		domain.NewField("flags", domain.U16(), domain.Bits(3)),
		domain.NewField("ttl", domain.U8().Between(1, 255).WeightTo(m.WeightMax)),
		domain.NewField("protocol", domain.UnsafeEnum(protocol)),
		domain.NewField("checksum", domain.U16(), domain.BigEndian()),
		domain.NewField("source", domain.U32(), domain.BigEndian()),
		domain.NewField("destination", domain.U32(), domain.BigEndian()),
		domain.NewField("payload", domain.VecOf(domain.U8(), domain.WithLen(0, 64))),
	}, domain.WithFixup(fixIPv4))
}

func fixIPv4(v *domain.StructValue, _ *domain.Engine) {
	payload := domain.FieldValue[*domain.VecValue](v, "payload")

	domain.FieldValue[*domain.ScalarValue[uint8]](v, "version").V = 4
	domain.FieldValue[*domain.ScalarValue[uint8]](v, "ihl").V = ipv4HeaderLen / 4
	domain.FieldValue[*domain.ScalarValue[uint16]](v, "total_length").V = uint16(ipv4HeaderLen + payload.Len())

	checksum := domain.FieldValue[*domain.ScalarValue[uint16]](v, "checksum")
	checksum.V = 0
	checksum.V = headerChecksum(domain.Serialize(v, binary.BigEndian)[:ipv4HeaderLen])
}

// headerChecksum is the ones' complement sum of the header's 16-bit words.
func headerChecksum(header []byte) uint16 {
	var sum uint32
	for i := 0; i+1 < len(header); i += 2 {
		sum += uint32(binary.BigEndian.Uint16(header[i:]))
	}

	for sum > 0xffff {
		sum = (sum >> 16) + (sum & 0xffff)
	}

	return ^uint16(sum)
}
