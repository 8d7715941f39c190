// Package scriptdoc turns a tree of lua and ruby scripts into reStructuredText
// reference pages. Each script declares its command name above a line of '='
// and carries its documentation between a pair of marker tokens; the generated
// pages pull those blocks in with include directives, one page per category.
package scriptdoc
