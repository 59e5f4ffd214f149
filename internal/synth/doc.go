// Package synth decides how a mapping's sources are joined and which
// expressions fill the SELECT list.
//
// Join choice:
//   - one source: FROM <source>
//   - several sources sharing columns (case-insensitive, across all of them):
//     FROM <first> JOIN <next> USING (<common>) ...
//   - several sources sharing nothing: FROM <first> CROSS JOIN <next> ...
//
// Projection: columns common to all sources stay unqualified, other columns
// are qualified with the first source that declares them, and columns no
// source declares become NULL AS <column>.
package synth
