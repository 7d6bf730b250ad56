// Package recommend wires the pipeline that turns a catalog into neighbour
// recommendations: feature embedding, t-SNE projection, scaling into a square
// and a quadtree index answering approximate kNN queries. An exact cosine
// index over the features is kept alongside for comparison.
package recommend
