package rdf

import (
	"context"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// canonicalPrefix is the reserved namespace the canonical issuer mints
// labels from. Input blank nodes are never allowed to carry it already.
const canonicalPrefix = "_:c14n"

// BlankNodeInfo holds everything the canonicalization driver tracks about a
// single blank-node label for the duration of a Normalize run: the quads
// that reference it, and its memoized first-degree hash, computed at most
// once.
type BlankNodeInfo struct {
	quads []Quad
	hash  *string
}

// run holds the mutable state of a single Normalize invocation. A run is
// never reused or shared across goroutines; Normalize constructs one, uses
// it to completion, and discards it.
type run struct {
	ctx             context.Context
	quads           []Quad
	blankNodeInfo   map[string]*BlankNodeInfo
	canonicalIssuer *IdentifierIssuer
	codec           NQuadCodec
	logger          *log.Logger
}

// Normalize canonicalizes dataset per the URDNA2015 algorithm and returns
// either a sorted N-Quads string (WithFormat(FormatNQuads)) or a parsed
// Dataset (the default). ctx is checked between blank-node groups in the
// complex assignment phase and at the top of each permutation explored by
// the N-degree hash; a cancelled context aborts the run and returns
// context.Cause(ctx), never partial output.
func Normalize(ctx context.Context, dataset Dataset, opts ...Option) (interface{}, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	o := buildOptions(opts)
	if o.format != "" && o.format != FormatNQuads {
		return nil, &UnknownFormatError{Format: o.format}
	}

	r := &run{
		ctx:             ctx,
		blankNodeInfo:   make(map[string]*BlankNodeInfo),
		canonicalIssuer: NewIdentifierIssuer(canonicalPrefix),
		codec:           o.codec,
		logger:          o.logger,
	}

	if err := r.indexDataset(dataset); err != nil {
		return nil, err
	}

	nonNormalized, err := r.assignSimple()
	if err != nil {
		return nil, err
	}

	if err := r.assignComplex(nonNormalized); err != nil {
		return nil, err
	}

	lines, err := r.rewriteAndEmit()
	if err != nil {
		return nil, err
	}

	if o.format == FormatNQuads {
		var out string
		for _, l := range lines {
			out += l
		}
		return out, nil
	}

	var out string
	for _, l := range lines {
		out += l
	}
	return o.codec.ParseNQuads(out)
}

// indexDataset implements Phase A: flattening the dataset into quads and
// building the blank-node-to-quads index, rejecting structurally invalid
// quads and any blank node already claiming the canonical namespace.
func (r *run) indexDataset(dataset Dataset) error {
	quads := dataset.Quads()
	r.quads = quads

	for _, q := range quads {
		if q.S == nil || q.P.Value == "" || q.O == nil {
			return &InvalidInputError{Reason: "quad missing subject, predicate, or object", Quad: q}
		}
		if _, ok := q.S.(Literal); ok {
			return &InvalidInputError{Reason: "subject must be an IRI or blank node, not a literal", Quad: q}
		}
		if _, ok := q.G.(Literal); ok {
			return &InvalidInputError{Reason: "graph name must be an IRI or blank node, not a literal", Quad: q}
		}
		for _, term := range []Term{q.S, q.O, q.G} {
			switch term.(type) {
			case nil, IRI, BlankNode, Literal:
				// the only term kinds this algorithm's data model admits
			default:
				return &InvalidInputError{Reason: "unsupported term type encountered", Quad: q}
			}
			bn, ok := term.(BlankNode)
			if !ok {
				continue
			}
			if strings.HasPrefix("_:"+bn.ID, canonicalPrefix) {
				return &InvalidInputError{Reason: "blank node label collides with the canonical prefix " + canonicalPrefix, Quad: q}
			}
		}
	}

	for i, q := range quads {
		for _, term := range []Term{q.S, q.O, q.G} {
			bn, ok := term.(BlankNode)
			if !ok {
				continue
			}
			info := r.blankNodeInfo[bn.ID]
			if info == nil {
				info = &BlankNodeInfo{}
				r.blankNodeInfo[bn.ID] = info
			}
			info.quads = append(info.quads, quads[i])
		}
	}
	r.logger.Debugf("indexed %d quads, %d distinct blank nodes", len(quads), len(r.blankNodeInfo))
	return nil
}

// assignSimple implements Phase B: repeatedly issuing canonical labels to
// every blank node whose first-degree hash is currently unique, until a
// full pass issues none. It returns the hash-to-id groups still ambiguous
// once the loop settles.
func (r *run) assignSimple() (map[string][]string, error) {
	nonNormalized := make(map[string]bool, len(r.blankNodeInfo))
	for id := range r.blankNodeInfo {
		nonNormalized[id] = true
	}

	var hashToBlankNodes map[string][]string
	simple := true
	for simple {
		simple = false
		hashToBlankNodes = make(map[string][]string)

		ids := make([]string, 0, len(nonNormalized))
		for id := range nonNormalized {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			hash, err := r.hashFirstDegreeQuads(id)
			if err != nil {
				return nil, err
			}
			hashToBlankNodes[hash] = append(hashToBlankNodes[hash], id)
		}

		// Snapshot the sorted hash order before mutating the map: removing
		// a resolved hash mid-iteration must not change which entries this
		// pass visits.
		hashes := sortedKeys(hashToBlankNodes)
		for _, hash := range hashes {
			idList := hashToBlankNodes[hash]
			if len(idList) != 1 {
				continue
			}
			id := idList[0]
			r.canonicalIssuer.Issue(id)
			delete(nonNormalized, id)
			delete(hashToBlankNodes, hash)
			simple = true
		}
	}
	r.logger.Debugf("phase B resolved %d blank nodes, %d remain ambiguous", len(r.blankNodeInfo)-len(nonNormalized), len(nonNormalized))
	return hashToBlankNodes, nil
}

// assignComplex implements Phase C: breaking each remaining ambiguous
// hash group with N-degree hashing, issuing canonical labels in the order
// dictated by the lexicographically smallest N-degree hash within the
// group.
func (r *run) assignComplex(hashToBlankNodes map[string][]string) error {
	type hashPath struct {
		hash   string
		issuer *IdentifierIssuer
	}

	const largeEquivalenceClassThreshold = 8

	for _, hash := range sortedKeys(hashToBlankNodes) {
		if err := context.Cause(r.ctx); err != nil {
			return err
		}
		idList := hashToBlankNodes[hash]
		r.logger.Debugf("phase C: hash group %s entering N-degree search with %d ambiguous blank nodes, canonical prefix %s", hash, len(idList), r.canonicalIssuer.Prefix())
		if len(idList) > largeEquivalenceClassThreshold {
			r.logger.Warnf("phase C: hash group %s has %d ambiguous blank nodes, permutation search may be expensive", hash, len(idList))
		}

		var hashPathList []hashPath
		for _, id := range idList {
			if r.canonicalIssuer.Has(id) {
				continue
			}
			issuer := NewIdentifierIssuer("_:b")
			issuer.Issue(id)
			h, resultIssuer, err := r.hashNDegreeQuads(issuer, id)
			if err != nil {
				return err
			}
			hashPathList = append(hashPathList, hashPath{hash: h, issuer: resultIssuer})
		}

		sort.Slice(hashPathList, func(i, j int) bool { return hashPathList[i].hash < hashPathList[j].hash })

		for _, result := range hashPathList {
			for _, old := range result.issuer.Ordered() {
				r.canonicalIssuer.Issue(old)
			}
		}
	}
	r.logger.Debugf("phase C issued remaining canonical labels; canonical issuer count=%d", r.canonicalIssuer.counter)
	return nil
}

// rewriteAndEmit implements Phase D: replacing blank-node labels with their
// canonical replacements, emitting each quad, and sorting the result.
func (r *run) rewriteAndEmit() ([]string, error) {
	lines := make([]string, 0, len(r.quads))
	for _, q := range r.quads {
		rewritten := Quad{
			S: r.canonicalize(q.S),
			P: q.P,
			O: r.canonicalize(q.O),
			G: r.canonicalize(q.G),
		}
		line, err := r.codec.EmitNQuad(rewritten)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	sortLines(lines)
	return lines, nil
}

func (r *run) canonicalize(term Term) Term {
	bn, ok := term.(BlankNode)
	if !ok {
		return term
	}
	if !r.canonicalIssuer.Has(bn.ID) {
		return term
	}
	return BlankNode{ID: r.canonicalIssuer.Issue(bn.ID)[2:]}
}
