// Package bruteforce answers kNN queries by scanning all vectors and scoring
// them by cosine similarity. It is the exact baseline for the quadtree index.
package bruteforce
