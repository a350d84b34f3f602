// Package opgen generates the C++ operator overloads of the accessorpp Accessor
// type, and provides the small jenny framework used to write them to disk.
package opgen

// A Jenny is an opgen code generator.
//
// Each Jenny works with exactly one type of input to its code generation, as
// indicated by type parameter. opgen follows a naming convention of naming
// these type parameters "Input" as an indicator for humans that a particular
// type parameter is used in this way.
//
// Each Jenny takes either one or many Inputs, and produces zero, one, or many
// output files. For accessor operators the Input is a [Category].
//
// Go's generic system does not allow expression of the abstraction over
// individual kinds of Jennies as part of the Jenny interface itself, so
// [JennyList] dispatches on [OneToOne], [ManyToOne] and [ManyToMany].
type Jenny[Input any] interface {
	NamedJenny
}

// NamedJenny is the part of a Jenny that does not depend on its Input type.
type NamedJenny interface {
	// JennyName returns the name of the generator.
	JennyName() string
}
