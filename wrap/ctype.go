package wrap

// goType pairs the safe-side Go type with the cgo type used at the call
// boundary for one C pointee.
type goType struct {
	Go  string
	Cgo string
}

// ctypes maps the simple named C types LAPACK prototypes use. A pointee
// outside this table cannot produce a compiling wrapper, so it is
// rejected during classification instead of passed through.
var ctypes = map[string]goType{
	"char":       {"byte", "C.char"},
	"int":        {"int32", "C.int"},
	"int32_t":    {"int32", "C.int32_t"},
	"lapack_int": {"int32", "C.lapack_int"},
	"float":      {"float32", "C.float"},
	"double":     {"float64", "C.double"},
}
