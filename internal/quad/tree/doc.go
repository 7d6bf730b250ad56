// Package tree implements the point-splitting quadtree used to answer
// approximate nearest-neighbour queries over 2-D item embeddings.
//
// Nodes are kept in an arena and addressed by NodeID. A node routes new points
// by its splitting point, which is the coordinate of the first point it stored,
// while its children always split the node's region at the geometric centre.
package tree
