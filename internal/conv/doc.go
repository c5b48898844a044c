// Package conv provides checked integer conversions.
//
// Slot indexes are plain Go ints inside the module but cross into uint32
// when exchanged as roaring bitmaps. These helpers reject values that do not
// survive the conversion.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices bounded by a validated capacity), use direct type casts instead.
package conv
