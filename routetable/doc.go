// Package routetable loads route tables and compiles their URL patterns.
//
// Each route gets its own routepattern.Scanner and routepattern.Parser, so
// routes are compiled in parallel. A malformed pattern never fails the load:
// its diagnostics are kept on the CompiledRoute next to the best-effort
// PatternList and can be printed with Render.
package routetable
