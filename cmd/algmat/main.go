// algmat is a command-line front end to the algebraic-matroid library:
// it builds the matroid of an ideal given on the command line and answers
// rank, circuit and base-degree queries.
//
//	algmat rank --vars x,y --gen "y - x^2" --subset x,y
//	algmat circuit --vars x,y,z --gen "z - x - y" --basis x,y --element z
//	algmat basedegree --vars x,y --gen "y - x^2" --basis y
package main

func main() {
	Execute()
}
