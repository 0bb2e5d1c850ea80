package conflict

import (
	"github.com/dshills/slidediag/pkg/geometry"
	"github.com/dshills/slidediag/pkg/slide"
)

// buildEnvelopes computes one SpaceEnvelope per eid in nodes: the free
// pixel distance from that element's safeBox to the nearest non-group,
// non-decoration obstacle (or slide edge) in each cardinal direction.
func buildEnvelopes(nodes []string, dom *slide.DOMDocument, ir *slide.IRDocument) []slide.SpaceEnvelope {
	envelopes := make([]slide.SpaceEnvelope, 0, len(nodes))
	for _, eid := range nodes {
		focal, ok := dom.ElementByEID(eid)
		if !ok {
			continue
		}
		focalIR, ok := ir.ElementByEID(eid)
		if !ok {
			continue
		}
		envelopes = append(envelopes, envelopeFor(focal, focalIR, dom, ir))
	}
	return envelopes
}

func envelopeFor(focal slide.DOMElement, focalIR slide.IRElement, dom *slide.DOMDocument, ir *slide.IRDocument) slide.SpaceEnvelope {
	sb := focal.SafeBox
	env := slide.SpaceEnvelope{
		EID:        focal.EID,
		FreeTop:    sb.Y,
		FreeBottom: slideH(dom) - sb.Bottom(),
		FreeLeft:   sb.X,
		FreeRight:  slideW(dom) - sb.Right(),
	}

	for _, n := range dom.Elements {
		if n.EID == focal.EID {
			continue
		}
		nIR, ok := ir.ElementByEID(n.EID)
		if !ok || nIR.Type == slide.TypeDecoration {
			continue
		}
		if slide.SameGroup(focalIR, nIR) {
			continue
		}

		nb := n.SafeBox
		if geometry.XOverlap(sb, nb) {
			switch {
			case nb.Bottom() <= sb.Y:
				tighten(&env.FreeTop, sb.Y-nb.Bottom())
			case nb.Y >= sb.Bottom():
				tighten(&env.FreeBottom, nb.Y-sb.Bottom())
			}
		}
		if geometry.YOverlap(sb, nb) {
			switch {
			case nb.Right() <= sb.X:
				tighten(&env.FreeLeft, sb.X-nb.Right())
			case nb.X >= sb.Right():
				tighten(&env.FreeRight, nb.X-sb.Right())
			}
		}
	}

	env.FreeTop = clampRound(env.FreeTop)
	env.FreeBottom = clampRound(env.FreeBottom)
	env.FreeLeft = clampRound(env.FreeLeft)
	env.FreeRight = clampRound(env.FreeRight)
	return env
}

func tighten(free *float64, candidate float64) {
	if candidate < *free {
		*free = candidate
	}
}

func clampRound(v float64) float64 {
	return float64(geometry.RoundClamped(v))
}

func slideW(dom *slide.DOMDocument) float64 { return dom.Slide.W }
func slideH(dom *slide.DOMDocument) float64 { return dom.Slide.H }
