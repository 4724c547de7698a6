// Package dpx provides a pure-Go codec for 10-bit RGB DPX images.
//
// Parse reads the fixed-layout header into typed fields and captures the raw header bytes.
// Decode unpacks the word-packed payload into normalized float samples, and Encode replays
// the captured header verbatim followed by a freshly packed payload, so that fields the
// codec never interprets survive a round trip unchanged.
package dpx
