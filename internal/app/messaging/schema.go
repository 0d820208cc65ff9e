package messaging

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of the message contract: the request
// Message and the Response sent back for handled messages.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{RequiredFromJSONSchemaTags: true}

	schema := r.Reflect(&Message{})
	schema.ID = "https://github.com/bnema/readably/message.schema.json"
	schema.Title = "readably message"
	schema.Description = "Request sent from the popup to a page."

	respSchema := r.Reflect(&Response{})
	if schema.Definitions == nil {
		schema.Definitions = jsonschema.Definitions{}
	}
	for name, def := range respSchema.Definitions {
		schema.Definitions[name] = def
	}
	return schema
}

// SchemaJSON returns Schema indented for display.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}
