// Package response provides detector response models shared by the
// field-response tabulation ([schema]) and the per-impact response engine
// ([impact]).
//
// The electronics response is modelled by a [Generator], which samples a
// time-domain impulse response on a target time binning. [ColdElec] is the
// standard cold-electronics preamplifier and shaper: its peak equals the
// gain and peaks shortly after the shaping time.
//
//	ce := response.ColdElec{Gain: 14, Shaping: 2 * units.Microsecond}
//	wave := ce.Generate(tbins)
package response
