package schema

import (
	"wirefuzz.dev/pkg/wirefuzz/internal/domain"
)

// Packet operations.
const (
	PacketRead  uint32 = 0
	PacketWrite uint32 = 1
	PacketReset uint32 = 2
)

// PacketType is the operation of a packet, written as a u32.
func PacketType() *domain.UnitEnumType[uint32] {
	return domain.NewUnitEnum("packet_type",
		domain.UnitVariant[uint32]{Name: "Read", Value: PacketRead},
		domain.UnitVariant[uint32]{Name: "Write", Value: PacketWrite},
		domain.UnitVariant[uint32]{Name: "Reset", Value: PacketReset},
	)
}

// Packet is a small request frame: an operation that may carry an unknown
// discriminant, an offset, a length kept equal to the data size, and up to
// nine data bytes.
func Packet() *domain.StructType {
	return domain.NewStruct("packet", []*domain.Field{
		domain.NewField("typ", domain.UnsafeEnum(PacketType())),
		domain.NewField("offset", domain.U64()),
		domain.NewField("length", domain.U64()),
		domain.NewField("data", domain.VecOf(domain.U8(), domain.WithLen(0, 10))),
	}, domain.WithFixup(fixPacketLength))
}

func fixPacketLength(v *domain.StructValue, _ *domain.Engine) {
	data := domain.FieldValue[*domain.VecValue](v, "data")
	domain.FieldValue[*domain.ScalarValue[uint64]](v, "length").V = uint64(data.Len())
}
