package rdf

import (
	"fmt"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

// GoldCodec implements NQuadCodec on top of piprate/json-gold's N-Quads
// serializer. It exists so callers that already round-trip datasets through json-gold
// elsewhere in their pipeline can share a single N-Quads implementation
// with the canonicalizer instead of running two.
type GoldCodec struct{}

// EmitNQuad serializes q through json-gold's NQuadRDFSerializer.
func (GoldCodec) EmitNQuad(q Quad) (string, error) {
	if q.S == nil || q.P.Value == "" || q.O == nil {
		return "", &InvalidInputError{Reason: "quad missing subject, predicate, or object", Quad: q}
	}
	quad := &ld.Quad{
		Subject:   toGoldNode(q.S),
		Predicate: toGoldNode(q.P),
		Object:    toGoldNode(q.O),
	}
	key := graphKey(q.G)
	if q.G != nil {
		quad.Graph = toGoldNode(q.G)
	}
	dataset := &ld.RDFDataset{Graphs: map[string][]*ld.Quad{key: {quad}}}
	serializer := &ld.NQuadRDFSerializer{}
	out, err := serializer.Serialize(dataset)
	if err != nil {
		return "", err
	}
	line, ok := out.(string)
	if !ok {
		return "", &InternalError{Reason: fmt.Sprintf("json-gold serializer returned %T, not string", out)}
	}
	return line, nil
}

// ParseNQuads parses text through json-gold's NQuadRDFSerializer.
func (GoldCodec) ParseNQuads(text string) (Dataset, error) {
	serializer := &ld.NQuadRDFSerializer{}
	parsed, err := serializer.Parse(text)
	if err != nil {
		return nil, err
	}
	ds := NewDataset()
	for graphName, quads := range parsed.Graphs {
		for _, q := range quads {
			s, err := fromGoldNode(q.Subject)
			if err != nil {
				return nil, err
			}
			p, err := fromGoldNode(q.Predicate)
			if err != nil {
				return nil, err
			}
			pIRI, ok := p.(IRI)
			if !ok {
				return nil, &InvalidInputError{Reason: "predicate is not an IRI"}
			}
			o, err := fromGoldNode(q.Object)
			if err != nil {
				return nil, err
			}
			ds.AddTriple(graphName, Triple{S: s, P: pIRI, O: o})
		}
	}
	return ds, nil
}

func toGoldNode(t Term) ld.Node {
	switch v := t.(type) {
	case IRI:
		return ld.IRI{Value: v.Value}
	case BlankNode:
		return ld.BlankNode{Attribute: "_:" + v.ID}
	case Literal:
		// json-gold writes "^^<datatype>" unless the datatype is xsd:string
		// or rdf:langString, so map plain and language-tagged literals onto
		// those to match the native codec's output.
		datatype := v.Datatype.Value
		if v.Lang != "" {
			datatype = ld.RDFLangString
		} else if datatype == "" {
			datatype = ld.XSDString
		}
		return ld.Literal{Value: v.Lexical, Datatype: datatype, Language: v.Lang}
	default:
		return nil
	}
}

func fromGoldNode(n ld.Node) (Term, error) {
	switch v := n.(type) {
	case ld.IRI:
		return IRI{Value: v.Value}, nil
	case ld.BlankNode:
		return BlankNode{ID: strings.TrimPrefix(v.Attribute, "_:")}, nil
	case ld.Literal:
		datatype := v.Datatype
		if datatype == ld.XSDString || datatype == ld.RDFLangString {
			datatype = ""
		}
		return Literal{Lexical: v.Value, Datatype: IRI{Value: datatype}, Lang: v.Language}, nil
	default:
		return nil, fmt.Errorf("urdna2015: unsupported json-gold node type %T", n)
	}
}
