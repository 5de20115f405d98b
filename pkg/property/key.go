package property

// Key is a recognized option of the property decorator
type Key int

const (
	KeyUnknown Key = iota
	KeyConverter
	KeyReflect
	KeyAttribute
	KeyType
	KeyValue
)

var keyNames = map[string]Key{
	"converter": KeyConverter,
	"reflect":   KeyReflect,
	"attribute": KeyAttribute,
	"type":      KeyType,
	"value":     KeyValue,
}

// ParseKey maps an option name to its Key. Unrecognized names map to
// KeyUnknown.
func ParseKey(name string) Key {
	return keyNames[name]
}

// String returns the option name
func (k Key) String() string {
	switch k {
	case KeyConverter:
		return "converter"
	case KeyReflect:
		return "reflect"
	case KeyAttribute:
		return "attribute"
	case KeyType:
		return "type"
	case KeyValue:
		return "value"
	default:
		return "unknown"
	}
}
