// Package index defines the neighbour index abstraction. Implementations:
//   - bruteforce: exact cosine ranking over feature vectors
//   - quad: approximate neighbours by quadtree topology over 2-D points
package index
