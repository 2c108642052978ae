// Package schema defines the tabulated field-response data model and reads
// it from the boxed JSON layout used for field-response files.
//
// A [FieldResponse] holds one [PlaneResponse] per wire plane. Each plane
// holds an ordered list of [PathResponse] records: the induced current
// sampled along a drift path ending at one transverse (pitch) position.
//
// Files store times in microseconds and distances in millimetres. [Load]
// and [Decode] convert them into the internal units of package units, and
// [Encode] converts back.
//
//	fr, err := schema.Load("garfield-1d-3planes-21wires-6impacts.json.bz2")
//	plane, err := fr.PlaneByID(0)
package schema
