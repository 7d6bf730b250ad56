// Package projection reduces feature vectors to two dimensions with exact
// t-SNE and rescales the result into a fixed square.
package projection
