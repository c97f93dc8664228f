package graph

// AttrKind tags the dynamic type carried by an AttrValue.
type AttrKind int

const (
	// AttrString marks an AttrValue holding a string.
	AttrString AttrKind = iota
	// AttrNumber marks an AttrValue holding a float64.
	AttrNumber
	// AttrBool marks an AttrValue holding a bool.
	AttrBool
)

// AttrValue is a tagged value of {string, number, boolean}, the three
// metadata kinds nodes and edges may carry.
type AttrValue struct {
	kind AttrKind
	str  string
	num  float64
	flag bool
}

// StringAttr builds a string-kind AttrValue.
func StringAttr(s string) AttrValue { return AttrValue{kind: AttrString, str: s} }

// NumberAttr builds a number-kind AttrValue.
func NumberAttr(n float64) AttrValue { return AttrValue{kind: AttrNumber, num: n} }

// BoolAttr builds a boolean-kind AttrValue.
func BoolAttr(b bool) AttrValue { return AttrValue{kind: AttrBool, flag: b} }

// Kind reports which variant is populated.
func (v AttrValue) Kind() AttrKind { return v.kind }

// StringValue returns the string payload and whether Kind() == AttrString.
func (v AttrValue) StringValue() (string, bool) { return v.str, v.kind == AttrString }

// NumberValue returns the numeric payload and whether Kind() == AttrNumber.
func (v AttrValue) NumberValue() (float64, bool) { return v.num, v.kind == AttrNumber }

// BoolValue returns the boolean payload and whether Kind() == AttrBool.
func (v AttrValue) BoolValue() (bool, bool) { return v.flag, v.kind == AttrBool }
