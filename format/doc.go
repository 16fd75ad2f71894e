// Package format defines the crunched text grammar and the compression types
// understood by the packed envelope.
//
// A crunched string is a ';'-separated list of segments. Each segment is a
// value, a ':' and a ','-separated list of runs, where a run is either a
// single zero-based position ("4") or an inclusive range ("4-7"):
//
//	50:0-1,3-4;3:2,5;60:6;70:7-8
//
// The grammar has no escaping mechanism of its own. Values containing ':' or
// ';' corrupt the output unless both sides opt into the backslash escaping
// implemented by AppendValue, Split and Unescape.
package format
