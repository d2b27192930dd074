// Package apikeys discovers API keys available to the process.
package apikeys

import (
	"os"

	"github.com/zamm-dev/zamm/internal/api"
)

// MethodName is the name of the API keys method
const MethodName = "get_api_keys"

// OpenAIEnvVar holds the OpenAI key
const OpenAIEnvVar = "OPENAI_API_KEY"

// Method describes the get_api_keys method
var Method = api.NewMethod(MethodName, api.NoArgsFromObject, invoke)

// Source is where a key was found
type Source string

const SourceEnvironment Source = "Environment"

// APIKey is one discovered key
type APIKey struct {
	Value  string `json:"value"`
	Source Source `json:"source"`
}

// APIKeys lists the known keys. Missing keys are nil.
type APIKeys struct {
	OpenAI *APIKey `json:"openai"`
}

// ToObject implements api.Encodable
func (k APIKeys) ToObject() api.Object {
	obj := api.Object{"openai": nil}
	if k.OpenAI != nil {
		obj["openai"] = api.Object{
			"value":  k.OpenAI.Value,
			"source": string(k.OpenAI.Source),
		}
	}
	return obj
}

// FromEnvironment reads keys from environment variables
func FromEnvironment() APIKeys {
	var keys APIKeys
	if value, ok := os.LookupEnv(OpenAIEnvVar); ok {
		keys.OpenAI = &APIKey{Value: value, Source: SourceEnvironment}
	}
	return keys
}

func invoke(api.NoArgs) (APIKeys, error) {
	return FromEnvironment(), nil
}
