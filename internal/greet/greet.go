// Package greet implements the demonstration greet method.
package greet

import (
	"fmt"

	"github.com/zamm-dev/zamm/internal/api"
)

// MethodName is the name the greet method is known by in requests and sample calls
const MethodName = "greet"

// Method describes the greet method
var Method = api.NewMethod(MethodName, api.GreetArgsFromObject, invoke)

// Greet says hello-world
func Greet(args api.GreetArgs) api.GreetResponse {
	return api.GreetResponse{
		Greeting: fmt.Sprintf("Hello, %s! You have been greeted from Python", args.Name),
	}
}

func invoke(args api.GreetArgs) (api.GreetResponse, error) {
	return Greet(args), nil
}
