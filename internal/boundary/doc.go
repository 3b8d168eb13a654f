// Package boundary defines the serializable, anemic data structures of the
// public OpenFairDB API together with their conversions from and to the
// internal domain model.
//
// Instances are short-lived: they exist only while a request body is decoded
// or a response body is encoded. Conversions into the domain are fallible
// exactly where the schema documents it (coordinate range, URL parsing, date
// parsing); conversions out of the domain are always total.
package boundary
