// Package quad adapts the point-splitting quadtree to the index.Index
// contract. Vectors are 2-D coordinates; the root region is the bounding box
// of the input.
package quad
