// Package frame reports the stack-frame layout a symtab.Table implies: the
// total byte size local variables occupy and each variable's slot, in
// offset order.
//
// The builder shape and the deterministic content hash are both adapted
// from the teacher's derivation builder, which computes a reproducible
// hash over sorted key/value pairs before deriving a store path; here the
// same sorted-content-hash technique gives a frame a stable signature that
// only changes when its variable set or layout does, useful for a
// diagnostic CLI comparing two parses of the same function.
package frame
