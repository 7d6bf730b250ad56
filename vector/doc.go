// Package vector holds the similarity primitives shared by the indexes and the
// SQL functions:
//   - cosine similarity, L2 distance and a pairwise cosine distance matrix
//   - float32 embedding BLOB codec
//   - bit-packed codec for binary feature vectors
package vector
