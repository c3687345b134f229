package crt

// SeparateChaining - Collision resolution technique where each slot holds an ordered chain of records
const SeparateChaining int = 1

// QuadraticProbing - Open addressing collision resolution technique probing slot h0 + i*i
const QuadraticProbing int = 2

// Name - Returns a printable name of a collision resolution technique
func Name(technique int) string {
	switch technique {
	case SeparateChaining:
		return "Chaining"
	case QuadraticProbing:
		return "Open Addressing"
	default:
		return "Unknown"
	}
}
