// Package logging provides the logging interface used by fibiter. It hides the
// zerolog backend behind Logger so the driver and its tests can swap writers
// and levels freely.
package logging
