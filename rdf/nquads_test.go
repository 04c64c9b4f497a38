package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitNQuad_IRIsAndLiteral(t *testing.T) {
	q := Quad{
		S: IRI{Value: "http://ex/s"},
		P: IRI{Value: "http://ex/p"},
		O: Literal{Lexical: "v"},
	}
	line, err := EmitNQuad(q)
	require.NoError(t, err)
	assert.Equal(t, "<http://ex/s> <http://ex/p> \"v\" .\n", line)
}

func TestEmitNQuad_BlankNodeAndGraph(t *testing.T) {
	q := Quad{
		S: BlankNode{ID: "a"},
		P: IRI{Value: "http://ex/p"},
		O: BlankNode{ID: "b"},
		G: IRI{Value: "http://ex/g"},
	}
	line, err := EmitNQuad(q)
	require.NoError(t, err)
	assert.Equal(t, "_:a <http://ex/p> _:b <http://ex/g> .\n", line)
}

func TestEmitNQuad_LiteralWithDatatypeAndLanguage(t *testing.T) {
	withDatatype := Quad{
		S: IRI{Value: "http://ex/s"}, P: IRI{Value: "http://ex/p"},
		O: Literal{Lexical: "1", Datatype: IRI{Value: "http://ex/int"}},
	}
	line, err := EmitNQuad(withDatatype)
	require.NoError(t, err)
	assert.Equal(t, "<http://ex/s> <http://ex/p> \"1\"^^<http://ex/int> .\n", line)

	withLang := Quad{
		S: IRI{Value: "http://ex/s"}, P: IRI{Value: "http://ex/p"},
		O: Literal{Lexical: "hi", Lang: "en"},
	}
	line, err = EmitNQuad(withLang)
	require.NoError(t, err)
	assert.Equal(t, "<http://ex/s> <http://ex/p> \"hi\"@en .\n", line)
}

func TestEmitNQuad_MissingComponent(t *testing.T) {
	_, err := EmitNQuad(Quad{P: IRI{Value: "http://ex/p"}, O: Literal{Lexical: "v"}})
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidInput, Code(err))
}

func TestParseNQuads_RoundTrip(t *testing.T) {
	text := "<http://ex/s> <http://ex/p> \"v\" .\n_:a <http://ex/p> _:b <http://ex/g> .\n"
	ds, err := ParseNQuads(text)
	require.NoError(t, err)

	quads := ds.Quads()
	assert.Len(t, quads, 2)

	for _, q := range quads {
		line, err := EmitNQuad(q)
		require.NoError(t, err)
		assert.Contains(t, text, line)
	}
}

func TestParseNQuads_SkipsBlankLinesAndComments(t *testing.T) {
	text := "# a comment\n\n<http://ex/s> <http://ex/p> <http://ex/o> .\n"
	ds, err := ParseNQuads(text)
	require.NoError(t, err)
	assert.Len(t, ds.Quads(), 1)
}

func TestParseNQuads_EscapedLiteral(t *testing.T) {
	text := "<http://ex/s> <http://ex/p> \"a\\nb\\t\\\"c\\\"\" .\n"
	ds, err := ParseNQuads(text)
	require.NoError(t, err)
	quads := ds.Quads()
	require.Len(t, quads, 1)
	lit, ok := quads[0].O.(Literal)
	require.True(t, ok)
	assert.Equal(t, "a\nb\t\"c\"", lit.Lexical)
}

func TestParseNQuads_MalformedLine(t *testing.T) {
	_, err := ParseNQuads("not a valid quad\n")
	require.Error(t, err)
}
