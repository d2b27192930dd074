package api

// GreetArgs are the arguments of the greet method
type GreetArgs struct {
	Name string `json:"name"`
}

// GreetArgsFromObject builds GreetArgs from a decoded object
func GreetArgsFromObject(obj any) (GreetArgs, error) {
	m, err := AsObject("GreetArgs", obj)
	if err != nil {
		return GreetArgs{}, err
	}

	name, err := RequiredString("GreetArgs", m, "name")
	if err != nil {
		return GreetArgs{}, err
	}

	return GreetArgs{Name: name}, nil
}

// ToObject implements Encodable
func (a GreetArgs) ToObject() Object {
	return Object{"name": a.Name}
}

// GreetResponse is the response of the greet method
type GreetResponse struct {
	Greeting string `json:"greeting"`
}

// GreetResponseFromObject builds a GreetResponse from a decoded object
func GreetResponseFromObject(obj any) (GreetResponse, error) {
	m, err := AsObject("GreetResponse", obj)
	if err != nil {
		return GreetResponse{}, err
	}

	greeting, err := RequiredString("GreetResponse", m, "greeting")
	if err != nil {
		return GreetResponse{}, err
	}

	return GreetResponse{Greeting: greeting}, nil
}

// ToObject implements Encodable
func (r GreetResponse) ToObject() Object {
	return Object{"greeting": r.Greeting}
}
