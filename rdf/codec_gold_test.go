package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoldCodec_EmitNQuad(t *testing.T) {
	codec := GoldCodec{}
	q := Quad{
		S: IRI{Value: "http://ex/s"},
		P: IRI{Value: "http://ex/p"},
		O: Literal{Lexical: "v"},
	}
	line, err := codec.EmitNQuad(q)
	require.NoError(t, err)
	assert.Contains(t, line, "http://ex/s")
	assert.Contains(t, line, "http://ex/p")
	assert.Contains(t, line, "v")
}

func TestGoldCodec_EmitNQuad_MissingComponent(t *testing.T) {
	codec := GoldCodec{}
	_, err := codec.EmitNQuad(Quad{P: IRI{Value: "http://ex/p"}})
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidInput, Code(err))
}

func TestGoldCodec_EmitThenParse_RoundTrip(t *testing.T) {
	codec := GoldCodec{}
	q := Quad{
		S: BlankNode{ID: "a"},
		P: IRI{Value: "http://ex/p"},
		O: IRI{Value: "http://ex/o"},
	}
	line, err := codec.EmitNQuad(q)
	require.NoError(t, err)

	ds, err := codec.ParseNQuads(line)
	require.NoError(t, err)

	quads := ds.Quads()
	require.Len(t, quads, 1)
	assert.Equal(t, IRI{Value: "http://ex/p"}, quads[0].P)
	assert.Equal(t, IRI{Value: "http://ex/o"}, quads[0].O)
}

func TestToGoldNodeAndFromGoldNode_BlankNode(t *testing.T) {
	node := toGoldNode(BlankNode{ID: "x"})
	term, err := fromGoldNode(node)
	require.NoError(t, err)
	assert.Equal(t, BlankNode{ID: "x"}, term)
}

func TestToGoldNodeAndFromGoldNode_Literal(t *testing.T) {
	lit := Literal{Lexical: "hi", Lang: "en"}
	node := toGoldNode(lit)
	term, err := fromGoldNode(node)
	require.NoError(t, err)
	assert.Equal(t, lit, term)
}
