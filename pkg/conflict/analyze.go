package conflict

import (
	"github.com/dshills/slidediag/pkg/diagconsts"
	"github.com/dshills/slidediag/pkg/separation"
	"github.com/dshills/slidediag/pkg/slide"
)

// Analyze builds the conflict graph from defects (only "overlap" defects
// with both endpoints contribute), dom, and ir: connected components via
// BFS over the overlap graph, each carrying its edges (with separation
// options) and its nodes' free-space envelopes. Returns nil if there are
// no overlap defects with two endpoints.
func Analyze(defects []slide.Defect, dom *slide.DOMDocument, ir *slide.IRDocument, tuning diagconsts.Tuning) []slide.ConflictComponent {
	overlaps := filterOverlapDefects(defects)
	if len(overlaps) == 0 {
		return nil
	}

	g := newOverlapGraph()
	for _, d := range overlaps {
		g.addEdge(d.OwnerEID, d.OtherEID)
	}

	compNodeSets := g.components()
	components := make([]slide.ConflictComponent, 0, len(compNodeSets))
	for _, nodes := range compNodeSets {
		memberSet := make(map[string]bool, len(nodes))
		for _, n := range nodes {
			memberSet[n] = true
		}

		components = append(components, slide.ConflictComponent{
			EIDs:      nodes,
			Edges:     buildEdges(overlaps, memberSet, dom, tuning),
			Envelopes: buildEnvelopes(nodes, dom, ir),
		})
	}
	return components
}

// filterOverlapDefects keeps only "overlap" defects that carry both
// endpoint eids.
func filterOverlapDefects(defects []slide.Defect) []slide.Defect {
	var out []slide.Defect
	for _, d := range defects {
		if d.Type != slide.DefectOverlap {
			continue
		}
		if d.OwnerEID == "" || d.OtherEID == "" {
			continue
		}
		out = append(out, d)
	}
	return out
}

func buildEdges(overlaps []slide.Defect, member map[string]bool, dom *slide.DOMDocument, tuning diagconsts.Tuning) []slide.ConflictEdge {
	var edges []slide.ConflictEdge
	for _, d := range overlaps {
		if !member[d.OwnerEID] || !member[d.OtherEID] {
			continue
		}
		ownerEl, ok1 := dom.ElementByEID(d.OwnerEID)
		otherEl, ok2 := dom.ElementByEID(d.OtherEID)
		if !ok1 || !ok2 {
			continue
		}

		area, _ := d.Details["overlap_area_px"].(int)
		opts := separation.Options(
			separation.Box{BBox: ownerEl.BBox, SafeBox: ownerEl.SafeBox},
			separation.Box{BBox: otherEl.BBox, SafeBox: otherEl.SafeBox},
			tuning.SafePadding,
		)

		edges = append(edges, slide.ConflictEdge{
			OwnerEID:    d.OwnerEID,
			OtherEID:    d.OtherEID,
			OverlapArea: float64(area),
			Separations: opts,
		})
	}
	return edges
}
