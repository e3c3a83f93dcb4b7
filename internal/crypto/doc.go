// Package crypto holds the small hashing helpers the booking flow needs.
//
// Fingerprint gives a short, stable label for a signature image so operators
// can correlate the PNG attached to a notification with request logs without
// logging the image itself.
package crypto
