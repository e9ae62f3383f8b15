package api

import _ "embed"

//go:embed api.yaml
var document []byte

// Document returns the OpenAPI document in the form it is served to clients.
func Document() []byte {
	return document
}
