// Package envdoc turns an annotated .env file into a markdown table with one
// row per variable.
//
// Annotation comments are collected until the next variable line:
//
//	# [@responsible=platform-team]
//	# [@type=int]
//	# [@secret=false]
//	# [@policy=required]
//	# [@docs=https://example.com/port]
//	# Port the HTTP server listens on
//	PORT=8080
//
// The variable line closes the row, which is written immediately.
package envdoc
