// Package jeopardy implements the rules of a Jeopardy-style trivia board:
// board construction, team rotation, scoring and point stealing.
// It has zero external dependencies.
package jeopardy
