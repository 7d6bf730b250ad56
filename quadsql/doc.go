// Package quadsql exposes neighbour sources to SQL through the "quad"
// virtual table module.
//
//	CREATE VIRTUAL TABLE nn USING quad(flowers);
//	SELECT label, rank FROM nn WHERE label MATCH 'rose' AND k = 5;
//
// RegisterModule must run before the database opens its connections. The
// module argument names a source bound with Register. k is a hidden
// column defaulting to DefaultK; rank is a hidden 1-based discovery order.
package quadsql
