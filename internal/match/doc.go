// Package match suggests known class names for references that do not
// resolve. Names are compared after normalization, so DATE_TIME, DateTime and
// Date Time are the same name, and the closest candidate by edit distance wins.
package match
