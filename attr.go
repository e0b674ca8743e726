package rustty

// Attr is a single text attribute. A style carries exactly one; attributes
// are not combinable flags.
type Attr uint8

// Attributes a Style can carry.
const (
	AttrDefault Attr = iota
	AttrBold
	AttrUnderline
	AttrReverse
)

// String returns the attribute name.
func (a Attr) String() string {
	switch a {
	case AttrDefault:
		return "default"
	case AttrBold:
		return "bold"
	case AttrUnderline:
		return "underline"
	case AttrReverse:
		return "reverse"
	default:
		return "unknown"
	}
}
