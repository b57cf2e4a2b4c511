// Package planner is the facade that turns an obstacle-tour Request into a
// Response: it builds an Arena, searches for the cheapest tour with tour,
// compiles the result into a robot command program with command, and wraps
// the whole pipeline with request validation and structured logging.
package planner
