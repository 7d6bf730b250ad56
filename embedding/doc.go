// Package embedding turns catalog items into binary feature vectors over a
// vocabulary of hardiness zones and categorical attribute values.
package embedding
