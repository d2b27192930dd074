package api

// NoArgs is the argument type of methods that take no arguments
type NoArgs struct{}

// NoArgsFromObject accepts an absent value or any JSON object
func NoArgsFromObject(obj any) (NoArgs, error) {
	if obj == nil {
		return NoArgs{}, nil
	}
	if _, err := AsObject("NoArgs", obj); err != nil {
		return NoArgs{}, err
	}
	return NoArgs{}, nil
}

// ToObject implements Encodable
func (NoArgs) ToObject() Object {
	return Object{}
}

// Callable is the untyped view of a Method used to list and replay methods
type Callable interface {
	Name() string
	Call(raw []byte) ([]byte, error)
	Describe() Descriptor
}
