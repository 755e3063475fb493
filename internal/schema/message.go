package schema

import (
	"wirefuzz.dev/pkg/wirefuzz/internal/domain"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// Message kinds, written as the leading byte of every message.
const (
	KindHello uint8 = 1
	KindPing  uint8 = 2
	KindData  uint8 = 3
	KindClose uint8 = 4
)

// Message is a chat-style protocol frame. Each variant starts with its kind
// byte; the body depends on the variant.
func Message() *domain.EnumType {
	kind := func(k uint8) *domain.Field {
		return domain.NewField("kind", domain.U8(), domain.Initializer(func(*domain.Engine) domain.Value {
			return &domain.ScalarValue[uint8]{V: k}
		}))
	}

	return domain.NewEnum("message",
		domain.NewVariant("Hello", []*domain.Field{
			kind(KindHello),
			domain.NewField("nonce", domain.ArrayOf(domain.U8(), 8, domain.WithElementStrategy(domain.IndependentElements))),
			domain.NewField("resume", domain.Bool()),
			domain.NewField("client", domain.AsciiString().WithLen(1, 16)),
		}),
		domain.NewVariant("Ping", []*domain.Field{
			kind(KindPing),
			domain.NewField("seq", domain.U32().WeightTo(m.WeightMin), domain.BigEndian()),
		}, domain.VariantWeight(4)),
		domain.NewVariant("Data", []*domain.Field{
			kind(KindData),
			domain.NewField("channel", domain.U16().Between(0, 16), domain.BigEndian()),
			domain.NewField("length", domain.U16(), domain.BigEndian()),
			domain.NewField("body", domain.Utf8String().WithLen(0, 128)),
		}, domain.VariantWeight(4), domain.VariantFixup(fixDataLength)),
		domain.NewVariant("Close", []*domain.Field{
			kind(KindClose),
			domain.NewField("code", domain.U16(), domain.BigEndian()),
			domain.NewField("reason", domain.Optional(domain.AsciiString().WithLen(0, 32))),
			domain.NewField("debug", domain.Bool(), domain.Ignore()),
		}, domain.VariantIgnoreChance(0.5)),
	)
}

func fixDataLength(v *domain.StructValue, _ *domain.Engine) {
	body := domain.FieldValue[*domain.StringValue](v, "body")
	domain.FieldValue[*domain.ScalarValue[uint16]](v, "length").V = uint16(body.SerializedSize())
}
