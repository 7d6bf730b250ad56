// Package catalog models the item catalog behind the recommender: items with
// their categorical attributes, name and alias resolution, CSV loading,
// attribute search over roaring posting lists, garden suitability filtering
// and SQLite persistence.
package catalog
