package skeleton

// Element is the minimal DOM capability the flattener needs. Any parser
// representation can be adapted to it - the package never depends on a
// concrete node type.
type Element interface {
	// TagName returns the lowercase tag name ("div", "span", ...).
	TagName() string
	// Attr returns the value of the named attribute or empty string.
	Attr(name string) string
	// Children returns child elements in document order. Text, comments and
	// other non-element nodes are not included.
	Children() []Element
}
