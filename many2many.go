package opgen

// ManyToMany is a Jenny that accepts many inputs, and produces 0 to N files as output.
type ManyToMany[Input any] interface {
	Jenny[Input]

	// Generate takes a slice of Input and generates many [File]s, or none (nil) if the j
	// was a no-op for the provided Input.
	//
	// A nil, nil return is used to indicate the generator had nothing to do for the
	// provided Input.
	Generate([]Input) (Files, error)
}

var _ ManyToMany[Category] = &JennyList[Category]{}
