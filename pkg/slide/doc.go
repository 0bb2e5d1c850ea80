// Package slide defines the typed shapes the diagnostics engine consumes
// and produces: the measured DOM document, the semantic IR document, and
// the resulting diagnostics document (defects, warnings, hints, and the
// conflict graph). All JSON field names are snake_case per the wire
// contract; field ordering within an object is not part of the contract.
package slide
