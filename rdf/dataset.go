package rdf

// DefaultGraph is the sentinel graph name used by Dataset for triples that
// belong to the default graph.
const DefaultGraph = "@default"

// Dataset is a mapping from graph name (or DefaultGraph) to the triples
// asserted in that graph. It is the read-only shape the canonicalization
// driver consumes; building and maintaining it is an external concern.
type Dataset map[string][]Triple

// NewDataset returns an empty dataset with only the default graph present.
func NewDataset() Dataset {
	return Dataset{DefaultGraph: nil}
}

// AddTriple appends t to the named graph, creating the graph if necessary.
// Pass DefaultGraph to add to the default graph.
func (d Dataset) AddTriple(graphName string, t Triple) {
	d[graphName] = append(d[graphName], t)
}

// GraphNames returns the dataset's graph names in no defined order. It
// includes DefaultGraph whenever that key is present, which for a Dataset
// built with NewDataset is always, even if the default graph is empty.
func (d Dataset) GraphNames() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	return names
}

// Quads flattens the dataset into a single slice of quads. Triples keep
// their order within a graph; the order of the graphs is not defined. A graph
// name equal to DefaultGraph produces quads with a nil graph term; any other
// graph name beginning with "_:" produces a BlankNode graph term, and any
// other name produces an IRI graph term.
func (d Dataset) Quads() []Quad {
	var quads []Quad
	for graphName, triples := range d {
		graphTerm := graphTermFor(graphName)
		for _, t := range triples {
			quads = append(quads, Quad{S: t.S, P: t.P, O: t.O, G: graphTerm})
		}
	}
	return quads
}

func graphTermFor(graphName string) Term {
	if graphName == DefaultGraph {
		return nil
	}
	if len(graphName) >= 2 && graphName[:2] == "_:" {
		return BlankNode{ID: graphName[2:]}
	}
	return IRI{Value: graphName}
}

// graphKey returns the dataset graph-name key for a quad's graph term,
// the inverse of graphTermFor.
func graphKey(g Term) string {
	if g == nil {
		return DefaultGraph
	}
	return g.String()
}

// FromQuads rebuilds a Dataset from a flat quad slice, grouping by graph.
func FromQuads(quads []Quad) Dataset {
	d := NewDataset()
	for _, q := range quads {
		d.AddTriple(graphKey(q.G), q.ToTriple())
	}
	return d
}
