// Package console renders comparison results as a numbered table on a
// terminal, with a header naming the compared sources and a trailing summary
// line. Rendering is a pure function of the result and the width hint.
package console
