// Package impact precomputes per-impact-position responses of one wire plane
// and looks them up by transverse offset.
//
// A field-response tabulation samples the current induced on a wire for a
// set of drift paths ending at discrete transverse ("pitch") positions. For
// each tabulated path, [NewPlane] rebins the current onto a target time
// binning, transforms it to the frequency domain and optionally convolves it
// with an electronics response. The resulting [Response] values are then
// arranged in rows, one per wire, using the mirror symmetry of the plane.
//
// # Tabulation layout
//
// Paths must be ordered by strictly increasing pitch position. Each wire w
// owns [Config.ImpactsPerWire] paths spaced uniformly from half a pitch
// below the wire up to the wire itself. Wires are numbered -H..H around the
// plane center. The response at +x relative to a wire is taken to be the
// response at -x, so each row spans the full pitch around its wire:
//
//	row(k) = group(k) + reverse(group(-k))[1:]
//
// Layouts that break these rules are rejected with [ErrMalformedTabulation].
//
// # Lookup
//
// [Plane.Closest] snaps an offset to the nearest wire and then to the
// nearest impact position of that wire. [Plane.Bounded] returns the two
// entries that bracket the offset, for interpolation, and
// [Plane.Interpolated] blends their spectra linearly.
//
//	tbins, _ := binning.New(10000, 0, 5*units.Millisecond)
//	plane, err := impact.NewPlane(fr, 0, tbins,
//		impact.WithColdElectronics(14, 2*units.Microsecond))
//	ir := plane.Closest(1.2 * units.Millimeter)
//
// A Plane is immutable once built and safe for concurrent lookups.
package impact
