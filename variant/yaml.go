package variant

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/amp-labs/tofu/errors"
	"gopkg.in/yaml.v3"
)

// YAML tags for the kinds YAML has no core tag for.
const (
	TagChar    = "!char"
	TagInvalid = "!invalid"
	TagUnknown = "!unknown"
)

var _ yaml.Marshaler = (*Value)(nil)

// DecodeYAML parses a YAML document into a new Value. Sequences become
// arrays; mappings are rejected with errors.ErrMismatch.
func DecodeYAML(data []byte, opts ...Option) (*Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrMismatch, err)
	}

	// An empty input leaves doc without a kind.
	if doc.Kind == 0 {
		return Create(KindNull, nil, opts...)
	}

	return FromYAML(&doc, opts...)
}

// FromYAML converts a YAML node into a new Value.
//
// Scalars map by resolved tag: !!int, !!float, !!str, !!bool and !!null.
// The local tags !char, !invalid and !unknown select the remaining kinds.
// Every element error of a sequence is reported, not only the first.
func FromYAML(node *yaml.Node, opts ...Option) (*Value, error) {
	return fromNode(node, buildOptions(opts))
}

func fromNode(node *yaml.Node, o *options) (*Value, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: yaml node", errors.ErrNullptr)
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Create(KindNull, nil, WithLedger(o.ledger))
		}

		return fromNode(node.Content[0], o)
	case yaml.AliasNode:
		return fromNode(node.Alias, o)
	case yaml.SequenceNode:
		return fromSequence(node, o)
	case yaml.ScalarNode:
		payload, err := scalarPayload(node)
		if err != nil {
			return nil, err
		}

		return New(payload, WithLedger(o.ledger))
	default:
		return nil, fmt.Errorf("%w: line %d: yaml mappings have no kind", errors.ErrMismatch, node.Line)
	}
}

func fromSequence(node *yaml.Node, o *options) (*Value, error) {
	elems := make(Array, 0, len(node.Content))

	var errs errors.Collection

	for _, child := range node.Content {
		elem, err := fromNode(child, o)
		if err != nil {
			errs.Add(err)

			continue
		}

		elems = append(elems, elem)
	}

	if errs.HasError() {
		for _, elem := range elems {
			Erase(elem)
		}

		return nil, errs.GetError()
	}

	v, err := adoptArray(elems, o.ledger)
	if err != nil {
		for _, elem := range elems {
			Erase(elem)
		}

		return nil, err
	}

	return v, nil
}

func scalarPayload(node *yaml.Node) (Payload, error) {
	switch tag := node.ShortTag(); tag {
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", errors.ErrMismatch, node.Line, err)
		}

		return Integer(i), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", errors.ErrMismatch, node.Line, err)
		}

		return Double(f), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", errors.ErrMismatch, node.Line, err)
		}

		return Boolean(b), nil
	case "!!null":
		return Null{}, nil
	case "!!str":
		return String(node.Value), nil
	case TagChar:
		r, size := utf8.DecodeRuneInString(node.Value)
		if size == 0 || size != len(node.Value) || !utf8.ValidString(node.Value) {
			return nil, fmt.Errorf("%w: line %d: %q is not a single character", errors.ErrMismatch, node.Line, node.Value)
		}

		return Char(r), nil
	case TagInvalid:
		return Invalid{}, nil
	case TagUnknown:
		return Unknown{}, nil
	default:
		return nil, fmt.Errorf("%w: line %d: unsupported tag %s", errors.ErrMismatch, node.Line, tag)
	}
}

// ToYAML converts v into a YAML node.
func (v *Value) ToYAML() (*yaml.Node, error) {
	if v == nil || v.payload == nil {
		return nil, fmt.Errorf("%w: cannot encode an absent value", errors.ErrNullptr)
	}

	scalar := func(tag, value string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	}

	switch p := v.payload.(type) {
	case Integer:
		return scalar("!!int", strconv.FormatInt(int64(p), 10)), nil
	case Double:
		return scalar("!!float", yamlFloat(float64(p))), nil
	case String:
		return scalar("!!str", string(p)), nil
	case Char:
		return scalar(TagChar, string(rune(p))), nil
	case Boolean:
		return scalar("!!bool", strconv.FormatBool(bool(p))), nil
	case Null:
		return scalar("!!null", "null"), nil
	case Invalid:
		return scalar(TagInvalid, ""), nil
	case Unknown:
		return scalar(TagUnknown, ""), nil
	case Array:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}

		for i, elem := range p {
			child, err := elem.ToYAML()
			if err != nil {
				return nil, fmt.Errorf("array element %d: %w", i, err)
			}

			if child.Kind == yaml.SequenceNode {
				seq.Style = 0
			}

			seq.Content = append(seq.Content, child)
		}

		return seq, nil
	default:
		return nil, fmt.Errorf("%w: %T", errors.ErrUnknown, p)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (v *Value) MarshalYAML() (any, error) {
	return v.ToYAML()
}

// EncodeYAML renders v as a YAML document.
func EncodeYAML(v *Value) ([]byte, error) {
	node, err := v.ToYAML()
	if err != nil {
		return nil, err
	}

	return yaml.Marshal(node)
}

func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	default:
		return Double(f).String()
	}
}
