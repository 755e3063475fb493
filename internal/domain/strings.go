package domain

import (
	"unicode/utf8"

	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

const (
	defaultStringMin = 0
	defaultStringMax = 256
)

// StringKind selects the character repertoire of a StringType.
type StringKind int

const (
	ASCII StringKind = iota
	UTF8
)

var programmingChars = []rune{
	' ', ' ', ' ', '\t', '\n', '~', '`', '!', '@', '#', '$', '%', '^', '&', '*',
	'(', ')', '_', '-', '=', '+', '[', ']', '{', '}', ':', ';', '\'', '"', '\\',
	'|', ',', '<', '>', '.', '/', '?', '0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9',
}

var trickyChars = []rune{
	'\u0149', '\ufff0', '\ufff1', '\ufff2', '\ufff3', '\ufff4', '\ufff5', '\ufff6', '\ufff7',
	'\ufff8', '\ufff9', '\ufffa', '\ufffb', '\ufffc', '\ufffd', '\ufffe', '\uffff', '\u0600',
	'\u0601', '\u0602', '\u0603', '\u0604', '\u0605', '\u061c', '\u06dd', '\u070f', '\u180e',
	'\U000110bd', '\U0001d173', '\U000e0001', '\U000e0020', '\ue000', '\ue001', '\U000ef8ff',
	'\U000f0000', '\U000ffffd', '\U000ffffe', '\U000fffff', '\U00100000', '\U0010fffd',
	'\U0010fffe', '\U0010ffff', '\u3000', '\u1680',
}

// StringType is a variable-length string written without a length prefix.
type StringType struct {
	kind     StringKind
	min, max int
	weight   m.Weighted
}

// AsciiString returns a string type drawing 7-bit characters.
func AsciiString() *StringType {
	return &StringType{kind: ASCII, min: defaultStringMin, max: defaultStringMax}
}

// Utf8String returns a string type drawing arbitrary unicode scalars.
func Utf8String() *StringType {
	return &StringType{kind: UTF8, min: defaultStringMin, max: defaultStringMax}
}

// WithLen returns a copy generating [min, max) characters.
func (t *StringType) WithLen(min, max int) *StringType {
	mustValidate(m.NewConstraints[int]().WithMin(min).WithMax(max))

	out := *t
	out.min, out.max = min, max

	return &out
}

// WeightTo returns a copy with its length biased toward w.
func (t *StringType) WeightTo(w m.Weighted) *StringType {
	out := *t
	out.weight = w

	return &out
}

func (t *StringType) Name() string {
	if t.kind == ASCII {
		return "ascii_string"
	}

	return "utf8_string"
}

func (t *StringType) MinNonzeroElementsSize() int { return 1 }

func (t *StringType) MaxDefaultObjectSize() int { return 0 }

func (t *StringType) IsVariableSize() bool { return true }

func (t *StringType) Zero() Value {
	return &StringValue{}
}

func (t *StringType) Generate(e *Engine, c *m.Constraints[int]) Value {
	lo, hi, w := t.min, t.max, t.weight

	if c != nil {
		if c.Min != nil {
			lo = *c.Min
		}

		if c.Max != nil {
			hi = *c.Max
		}

		if w == m.WeightNone {
			w = c.Weighted
		}
	}

	b := newBudget(t, c)
	if b.limited {
		hi = min(hi, b.remaining+1)
	}

	n := pickLen(e, lo, hi, w)
	out := &StringValue{runes: make([]rune, 0, n)}
	size := 0

	fits := func(r rune) bool {
		return !b.limited || size+utf8.RuneLen(r) <= b.remaining
	}

	for len(out.runes) < n {
		r := t.char(e)
		if !fits(r) {
			break
		}

		size += utf8.RuneLen(r)
		out.runes = append(out.runes, r)

		if len(out.runes) >= n || !e.GenChance(ChanceToRepeatArrayValue) {
			continue
		}

		end := GenRange(e, len(out.runes), n)
		for len(out.runes) < end && fits(r) {
			size += utf8.RuneLen(r)
			out.runes = append(out.runes, r)
		}
	}

	return out
}

// Mutate replaces a random sample of characters when the string is the
// field being mutated. A replacement that would grow the encoding past the
// budget is skipped.
func (t *StringType) Mutate(e *Engine, v Value, c *m.Constraints[int]) {
	sv := mustValue[*StringValue](t, v)
	e.markMutationPass()

	if !e.shouldMutateLeaf() || len(sv.runes) == 0 {
		return
	}

	b := newBudget(t, c)
	size := sv.SerializedSize()

	k := 1
	if len(sv.runes) > 1 {
		k = GenRange(e, 1, len(sv.runes))
	}

	for _, idx := range e.rng.Perm(len(sv.runes))[:k] {
		r := t.char(e)

		grown := size + utf8.RuneLen(r) - utf8.RuneLen(sv.runes[idx])
		if b.limited && grown > b.remaining && grown > size {
			continue
		}

		sv.runes[idx] = r
		size = grown
	}
}

func (t *StringType) char(e *Engine) rune {
	if t.kind == ASCII {
		return asciiChar(e)
	}

	return utf8Char(e)
}

func asciiChar(e *Engine) rune {
	if e.rng.IntN(100) < 50 {
		return rune(e.rng.IntN(0x80))
	}

	return programmingChars[e.rng.IntN(len(programmingChars))]
}

// utf8Char picks a character class first: plain low code points, the basic
// multilingual plane, programming punctuation, tricky code points, general
// punctuation or anything at all.
func utf8Char(e *Engine) rune {
	switch mode := e.rng.IntN(100); {
	case mode < 50:
		return rune(e.rng.IntN(0xb0))
	case mode < 60:
		for {
			if r := rune(e.rng.IntN(0x10000)); utf8.ValidRune(r) {
				return r
			}
		}
	case mode < 85:
		return programmingChars[e.rng.IntN(len(programmingChars))]
	case mode < 90:
		return trickyChars[e.rng.IntN(len(trickyChars))]
	case mode < 95:
		return rune(0x2000 + e.rng.IntN(0x70))
	default:
		for {
			if r := rune(e.rng.IntN(utf8.MaxRune + 1)); utf8.ValidRune(r) {
				return r
			}
		}
	}
}

// StringValue is an instance of a StringType.
type StringValue struct {
	runes []rune
}

// NewStringValue wraps s.
func NewStringValue(s string) *StringValue {
	return &StringValue{runes: []rune(s)}
}

func (v *StringValue) String() string {
	return string(v.runes)
}

// Len returns the number of characters.
func (v *StringValue) Len() int {
	return len(v.runes)
}

func (v *StringValue) SerializedSize() int {
	n := 0
	for _, r := range v.runes {
		n += utf8.RuneLen(r)
	}

	return n
}

func (v *StringValue) MinEnumVariantSize() int {
	return v.SerializedSize()
}

func (v *StringValue) Serialize(enc *Encoder) {
	enc.WriteBytes([]byte(string(v.runes)))
}

func (v *StringValue) Clone() Value {
	return &StringValue{runes: append([]rune(nil), v.runes...)}
}
