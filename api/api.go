// Package api embeds the OpenAPI document of the REST server.
package api

import _ "embed"

//go:embed openapi.yml
var OpenAPISpec []byte
