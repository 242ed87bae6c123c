package main

import (
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/swaggo/swag"
)

// openAPIDoc hands huma's document to the Swagger UI. The bundled UI reads
// OpenAPI 3.0, so the 3.1 document is downgraded.
type openAPIDoc struct {
	api huma.API
}

func (d *openAPIDoc) ReadDoc() string {
	b, err := d.api.OpenAPI().Downgrade()
	if err != nil {
		return "{}"
	}
	return string(b)
}

// swag panics on a second registration under the same name
var registerDocOnce sync.Once

func registerSwaggerDoc(api huma.API) {
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, &openAPIDoc{api: api})
	})
}
