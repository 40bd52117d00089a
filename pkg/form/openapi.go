package form

import "github.com/getkin/kin-openapi/openapi3"

// ToOpenAPI converts an inferred display schema into an OpenAPI schema so
// schema-driven form renderers and tooling that already speak OpenAPI can
// consume the result without a custom binding. The nested-group rendering
// hint travels as an x-docform-group extension.
func ToOpenAPI(node SchemaNode) *openapi3.Schema {
	out := &openapi3.Schema{
		Type:  &openapi3.Types{string(node.Type)},
		Title: node.Title,
	}
	if node.Default != nil {
		out.Default = node.Default
	}

	if len(node.Properties) > 0 {
		out.Properties = make(openapi3.Schemas, len(node.Properties))
		for _, prop := range node.Properties {
			out.Properties[prop.Name] = openapi3.NewSchemaRef("", ToOpenAPI(prop.Schema))
		}
	}
	if node.Items != nil {
		out.Items = openapi3.NewSchemaRef("", ToOpenAPI(*node.Items))
	}
	if node.Group {
		out.Extensions = map[string]any{"x-docform-group": true}
	}
	return out
}
