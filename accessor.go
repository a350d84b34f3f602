package opgen

// Operators and templates for the accessorpp Accessor type. The generated
// functions rely on the IsAccessor<T> and AccessorValueType<T> traits defined
// in accessorpp/accessor.h, and use C style casts because static_cast fails
// for some value types, such as char[].

var (
	LogicOperators = []Operator{
		"==", "!=", ">", ">=", "<", "<=",
		"&&", "||",
	}

	BinaryOperators = []Operator{
		"+", "-", "*", "/", "%",
		"&", "|", "^", "<<", ">>",
	}

	BinaryAssignOperators = []Operator{
		"+=", "-=", "*=", "/=", "%=",
		"&=", "|=", "^=", "<<=", ">>=",
	}
)

const LogicTemplate Template = `
template <typename T, typename U>
auto operator {op} (const T & a, const U & b)
	-> typename std::enable_if<IsAccessor<T>::value, bool>::type
{
	return (typename AccessorValueType<T>::Type)(a) {op} (typename AccessorValueType<U>::Type)(b);
}
`

const BinaryTemplate Template = `
template <typename T, typename U>
auto operator {op} (const T & a, const U & b)
	-> typename std::enable_if<IsAccessor<T>::value, T>::type
{
	T result(a);
	result = (typename AccessorValueType<T>::Type)(a) {op} (typename AccessorValueType<U>::Type)(b);
	return result;
}
`

const BinaryAssignTemplate Template = `
template <typename T, typename U>
auto operator {op} (T & a, const U & b)
	-> typename std::enable_if<IsAccessor<T>::value, T &>::type
{
	a = (typename AccessorValueType<T>::Type)(a) {rop} (typename AccessorValueType<U>::Type)(b);
	return a;
}
`

// Preamble is the note accessor.h carries above the generated operators.
const Preamble = `// Below operators are generated from tool generateops.
// Using C style cast because static_cast may fail on some case, such as char[]

`

// AccessorCategories returns the accessor operator categories in output order.
func AccessorCategories() []Category {
	return []Category{
		{
			Name:      "Logic operators",
			Operators: LogicOperators,
			Template:  LogicTemplate,
		},
		{
			Name:      "Binary operators",
			Operators: BinaryOperators,
			Template:  BinaryTemplate,
		},
		{
			Name:      "Binary assignment operators",
			Operators: BinaryAssignOperators,
			Template:  BinaryAssignTemplate,
			Assign:    true,
		},
	}
}
