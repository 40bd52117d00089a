package form

import "github.com/Rejishankar/docform/pkg/jsonval"

// Builder infers display schemas from normalized extraction values.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := options
	if opts.Labeler == nil {
		opts.Labeler = Titleize
	}
	return &Builder{opts: opts}
}

// Build walks a normalized value and derives the display schema the
// rendering layer consumes. It is total: every input, however malformed,
// infers to something editable.
func (b *Builder) Build(value jsonval.Value) SchemaNode {
	return b.nodeFor("", value)
}

// nodeFor applies the per-key inference policy in priority order: blank
// leaves first, then objects, arrays, booleans, numbers, and finally the
// string fallback for everything else.
func (b *Builder) nodeFor(key string, value jsonval.Value) SchemaNode {
	title := b.opts.Labeler(key)

	if IsBlank(value) {
		return BlankLeafSchema(title)
	}

	switch value.Kind() {
	case jsonval.KindObject:
		return b.objectNode(title, value)
	case jsonval.KindArray:
		return b.arrayNode(key, title, value)
	case jsonval.KindBool:
		return SchemaNode{Type: FieldTypeBoolean, Title: title, Default: value.Bool()}
	case jsonval.KindNumber:
		return SchemaNode{Type: FieldTypeNumber, Title: title, Default: value.Num()}
	default:
		return SchemaNode{Type: FieldTypeString, Title: title, Default: value.Text()}
	}
}

func (b *Builder) objectNode(title string, value jsonval.Value) SchemaNode {
	members := value.Members()
	properties := make([]Property, 0, len(members))
	for _, m := range members {
		properties = append(properties, Property{
			Name:   m.Key,
			Schema: b.nodeFor(m.Key, m.Value),
		})
	}
	return SchemaNode{
		Type:       FieldTypeObject,
		Title:      title,
		Properties: properties,
		Group:      true,
	}
}

func (b *Builder) arrayNode(key, title string, value jsonval.Value) SchemaNode {
	if text, ok := SingleStringArray(value); ok {
		return SchemaNode{Type: FieldTypeString, Title: title, Default: text}
	}

	var items SchemaNode
	if value.Len() == 0 {
		items = EmptyArrayItemSchema(title)
	} else {
		items = b.nodeFor(key, value.Items()[0])
	}
	return SchemaNode{
		Type:  FieldTypeArray,
		Title: title,
		Items: &items,
	}
}
